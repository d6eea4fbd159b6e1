package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/cadet-sync/internal/app"
	"github.com/MKhiriev/cadet-sync/internal/config"
	"github.com/MKhiriev/cadet-sync/internal/logger"
	"github.com/MKhiriev/cadet-sync/internal/workers"
	"github.com/MKhiriev/cadet-sync/models"
)

// NewClientSyncJob creates a worker that drains the queue every
// cfg.SyncInterval while online. While passes keep leaving items behind the
// interval doubles up to cfg.MaxBackoff; a clean pass restores it.
func NewClientSyncJob(engine ClientSyncEngine, queue ClientQueueService, status ConnectivityStatus, onResult func(models.SyncResult), cfg config.ClientWorkers, log *logger.Logger) workers.Worker {
	task := func(ctx context.Context) error {
		if !status.Status() {
			return nil
		}

		n, err := queue.Count(ctx)
		if err != nil {
			return err
		}
		if n == 0 {
			return nil
		}

		result := engine.SyncQueue(ctx)
		if onResult != nil && result.Message != app.MsgAlreadySyncing {
			onResult(result)
		}

		return passError(result)
	}

	return workers.NewPeriodic("sync-job", cfg.SyncInterval, task, log, workers.WithBackoff(cfg.MaxBackoff))
}

// passError reports whether the periodic job should back off after result.
func passError(result models.SyncResult) error {
	switch {
	case result.Retained > 0:
		return fmt.Errorf("%w: %d item(s) kept", ErrSyncIncomplete, result.Retained)
	case result.Message == app.MsgQueueUnreadable, result.Message == app.MsgQueueUnsaved:
		return fmt.Errorf("%w: %s", ErrQueueStorage, result.Message)
	default:
		return nil
	}
}
