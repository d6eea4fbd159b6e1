package store

import (
	"context"

	"github.com/MKhiriev/cadet-sync/models"
)

// SquadronRepository is the persistence layer of the development backend.
// Writes are deduplicated on temp_id: saving a temp_id twice stores the
// record once and reports created == false.
type SquadronRepository interface {
	SavePresence(ctx context.Context, presence models.OfflinePresence) (created bool, err error)
	SaveInspection(ctx context.Context, inspection models.OfflineInspection) (created bool, err error)

	CadetExists(ctx context.Context, cadetID string) (bool, error)
	ListCollection(ctx context.Context, collection models.Collection) ([]models.Entity, error)

	Presences(ctx context.Context) ([]models.OfflinePresence, error)
	Inspections(ctx context.Context) ([]models.OfflineInspection, error)
}
