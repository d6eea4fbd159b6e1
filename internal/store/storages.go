package store

import "github.com/MKhiriev/cadet-sync/internal/logger"

// Storages groups the repositories of the development backend.
type Storages struct {
	SquadronRepository SquadronRepository
}

// NewStorages creates in-memory storages seeded with a demo roster.
func NewStorages(log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	roster, err := DefaultRoster()
	if err != nil {
		return nil, err
	}

	return &Storages{SquadronRepository: NewMemorySquadronRepository(roster, log)}, nil
}
