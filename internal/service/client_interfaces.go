package service

import (
	"context"

	"github.com/MKhiriev/cadet-sync/internal/connectivity"
	"github.com/MKhiriev/cadet-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ConnectivityStatus reports the last known connection state without
// blocking.
type ConnectivityStatus interface {
	Status() bool
}

// ConnectivityMonitor is the part of [connectivity.Monitor] the controller
// drives.
type ConnectivityMonitor interface {
	ConnectivityStatus

	Init(ctx context.Context)
	AddListener(fn connectivity.Listener) connectivity.ListenerID
	RemoveListener(id connectivity.ListenerID)
	Close()
}

// ClientQueueService owns the durable outbound mutation queue. Every
// mutation goes through a single in-process lock and is one SQLite
// transaction.
type ClientQueueService interface {
	// AddToSyncQueue appends item with zero attempts. A temp_id is generated
	// when the payload carries none; an existing one is kept as is.
	AddToSyncQueue(ctx context.Context, item models.SyncQueueItem) (models.SyncQueueItem, error)

	// GetSyncQueue returns copies of every pending item in insertion order.
	GetSyncQueue(ctx context.Context) ([]models.SyncQueueItem, error)

	Count(ctx context.Context) (int, error)

	// RecordPresence validates and queues an attendance mark. Queuing is the
	// success path; only invalid input or a storage failure return an error.
	RecordPresence(ctx context.Context, cadetID, date string, status models.PresenceStatus, comment string) (models.RecordResult, error)

	// RecordUniformInspection validates and queues a uniform inspection.
	RecordUniformInspection(ctx context.Context, cadetID, date, uniformType string, scores map[string]int, comment string) (models.RecordResult, error)

	// Peek returns the snapshot a sync pass works on.
	Peek(ctx context.Context) ([]models.SyncQueueItem, error)

	// Commit persists the outcome of a sync pass. Items appended after the
	// matching Peek are never touched.
	Commit(ctx context.Context, outcome models.QueueOutcome) error
}

// ClientCacheService keeps the local copy of the reference collections.
type ClientCacheService interface {
	// DownloadCacheData fetches users, sections and activities and replaces
	// the stored snapshot only when all three succeed. A nil error means the
	// snapshot was replaced.
	DownloadCacheData(ctx context.Context) error

	// GetCacheData returns the stored snapshot, or nil if none was ever
	// stored.
	GetCacheData(ctx context.Context) (*models.CacheSnapshot, error)

	// UserName returns the display name of a user, or id when unknown.
	UserName(ctx context.Context, id string) string

	// SectionName returns the display name of a section, or id when unknown.
	SectionName(ctx context.Context, id string) string
}

// ClientSyncEngine drains the mutation queue against the backend.
type ClientSyncEngine interface {
	// SyncQueue runs one pass. It never returns an error: failures are
	// reported in the result.
	SyncQueue(ctx context.Context) models.SyncResult

	IsSyncing() bool

	// RecoverStaleFlag clears a sync-in-progress marker left by a process
	// that died mid-pass.
	RecoverStaleFlag(ctx context.Context) error
}

// ClientController composes connectivity, cache, queue and engine into the
// state and actions consumed by the UI.
type ClientController interface {
	// Start initialises connectivity, loads the queue length and starts the
	// background workers. Calling Start twice is a no-op.
	Start(ctx context.Context) error

	// Stop stops the workers, waits for in-flight background work and closes
	// the connectivity monitor.
	Stop()

	State() models.ControllerState

	// HandleManualSync runs a pass on demand and refreshes the queue count.
	HandleManualSync(ctx context.Context) models.SyncResult

	// RefreshCache refreshes reference data. Returns ErrOffline when offline.
	RefreshCache(ctx context.Context) error

	// SubmitPresence posts directly when online and falls back to the queue,
	// with the same temp_id, when the backend cannot be reached.
	SubmitPresence(ctx context.Context, cadetID, date string, status models.PresenceStatus, comment string) (models.RecordResult, error)

	SubmitUniformInspection(ctx context.Context, cadetID, date, uniformType string, scores map[string]int, comment string) (models.RecordResult, error)

	// SubmitPresencesBulk posts a whole roll call. Per-record errors returned
	// by the backend are terminal; on a transport failure every record is
	// queued individually.
	SubmitPresencesBulk(ctx context.Context, date string, records []models.PresenceRecord) (models.BulkPresenceResult, error)
}
