package store

import (
	"context"

	"github.com/MKhiriev/cadet-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// Keys of the offline_state table.
const (
	StateKeyCacheTimestamp = "offline.cache.timestamp"
	StateKeySyncInProgress = "offline.sync.in_progress"
	StateKeyAuthToken      = "offline.auth.token"
)

// QueueRepository persists the outbound mutation queue.
type QueueRepository interface {
	// Append stores item at the tail of the queue and returns it with Seq set.
	Append(ctx context.Context, item models.SyncQueueItem) (models.SyncQueueItem, error)
	// List returns every queued item in insertion order.
	List(ctx context.Context) ([]models.SyncQueueItem, error)
	Count(ctx context.Context) (int, error)
	// Commit applies the outcome of a sync pass in one transaction.
	Commit(ctx context.Context, outcome models.QueueOutcome) error
}

// CacheRepository persists the reference data snapshot.
type CacheRepository interface {
	// ReplaceSnapshot swaps every collection and the cache timestamp atomically.
	ReplaceSnapshot(ctx context.Context, snapshot models.CacheSnapshot) error
	// LoadSnapshot returns nil when no snapshot was ever stored.
	LoadSnapshot(ctx context.Context) (*models.CacheSnapshot, error)
}

// StateRepository is a small key/value store for engine bookkeeping.
type StateRepository interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
