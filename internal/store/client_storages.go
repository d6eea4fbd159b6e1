package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/cadet-sync/internal/config"
	"github.com/MKhiriev/cadet-sync/internal/logger"
)

// ClientStorages groups all client-side storage repositories into a single
// value that can be passed around the service layer.
type ClientStorages struct {
	QueueRepository QueueRepository
	CacheRepository CacheRepository
	StateRepository StateRepository

	db *DB
}

// NewClientStorages opens the SQLite database at cfg.DB.DSN (creating the
// file if needed), applies pending migrations and wires the repositories.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*ClientStorages, error) {
	log.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return NewClientStoragesFromDB(db, log), nil
}

// NewClientStoragesFromDB wires repositories over an already migrated DB.
func NewClientStoragesFromDB(db *DB, log *logger.Logger) *ClientStorages {
	return &ClientStorages{
		QueueRepository: NewQueueRepository(db, log),
		CacheRepository: NewCacheRepository(db, log),
		StateRepository: NewStateRepository(db, log),
		db:              db,
	}
}

// Close releases the underlying database connection.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
