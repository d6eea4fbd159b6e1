// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/cadet-sync/internal/adapter"
	"github.com/MKhiriev/cadet-sync/internal/app"
	"github.com/MKhiriev/cadet-sync/internal/logger"
	"github.com/MKhiriev/cadet-sync/internal/metrics"
	"github.com/MKhiriev/cadet-sync/internal/store"
	"github.com/MKhiriev/cadet-sync/models"
)

type clientSyncEngine struct {
	queue       ClientQueueService
	adapter     adapter.ServerAdapter
	status      ConnectivityStatus
	state       store.StateRepository
	metrics     metrics.Recorder
	logger      *logger.Logger
	maxAttempts int
	now         func() time.Time

	syncing atomic.Bool
}

// NewClientSyncEngine creates the queue drainer. maxAttempts flags items
// that keep failing; zero disables flagging.
func NewClientSyncEngine(
	queue ClientQueueService,
	serverAdapter adapter.ServerAdapter,
	status ConnectivityStatus,
	storages *store.ClientStorages,
	recorder metrics.Recorder,
	maxAttempts int,
	log *logger.Logger,
) ClientSyncEngine {
	return &clientSyncEngine{
		queue:       queue,
		adapter:     serverAdapter,
		status:      status,
		state:       storages.StateRepository,
		metrics:     recorder,
		logger:      log.WithComponent("sync-engine"),
		maxAttempts: maxAttempts,
		now:         time.Now,
	}
}

func (e *clientSyncEngine) IsSyncing() bool {
	return e.syncing.Load()
}

func (e *clientSyncEngine) SyncQueue(ctx context.Context) models.SyncResult {
	if !e.syncing.CompareAndSwap(false, true) {
		result := models.SyncResult{Success: false, Message: app.MsgAlreadySyncing}
		e.metrics.ObserveSyncPass(result, 0)
		return result
	}
	defer e.syncing.Store(false)

	if !e.status.Status() {
		result := models.SyncResult{Success: false, Message: app.MsgNoConnection}
		e.metrics.ObserveSyncPass(result, 0)
		return result
	}

	start := e.now()
	e.markInProgress(ctx, start)
	defer e.clearInProgress(ctx)

	result := e.drain(ctx)
	e.metrics.ObserveSyncPass(result, e.now().Sub(start))

	e.logger.Info().
		Bool("success", result.Success).
		Int("synced", result.Synced).
		Int("errors", result.Errors).
		Int("retained", result.Retained).
		Int("flagged", result.Flagged).
		Dur("duration", e.now().Sub(start)).
		Msg("sync pass finished")

	return result
}

func (e *clientSyncEngine) drain(ctx context.Context) models.SyncResult {
	items, err := e.queue.Peek(ctx)
	if err != nil {
		e.logger.Err(err).Msg("cannot read sync queue")
		return models.SyncResult{Success: false, Message: app.MsgQueueUnreadable}
	}
	if len(items) == 0 {
		return models.SyncResult{Success: true, Message: app.MsgNothingToSync}
	}

	ordered, unknown := groupByType(items)
	if unknown > 0 {
		e.logger.Warn().Int("items", unknown).Msg("queue holds items of unknown type, they will be rejected")
	}
	outcome := models.QueueOutcome{
		Failed:    make(map[string]string),
		AttemptAt: e.now().UTC(),
	}
	result := models.SyncResult{}

	for i, item := range ordered {
		if ctx.Err() != nil {
			result.Retained += len(ordered) - i
			result.Message = app.MsgSyncPartial
			break
		}

		err := e.submit(ctx, item)
		log := e.logger.With().
			Str("temp_id", item.TempID()).
			Str("type", string(item.Type)).
			Int("attempts", item.Attempts).
			Logger()

		switch {
		case err == nil:
			outcome.Remove = append(outcome.Remove, item.TempID())
			result.Synced++

		case adapter.IsAuthError(err):
			// the token is refreshed outside the engine; every remaining
			// call would fail the same way
			result.Errors++
			result.ErrorDetails = append(result.ErrorDetails, errorDetail(item, err))
			result.Retained += len(ordered) - i
			result.Message = app.MsgSessionExpired
			log.Warn().Err(err).Int("not_reached", len(ordered)-i-1).Msg("authentication rejected, sync pass aborted")

		case adapter.IsPayloadError(err):
			outcome.Remove = append(outcome.Remove, item.TempID())
			result.Errors++
			result.ErrorDetails = append(result.ErrorDetails, errorDetail(item, err))
			log.Warn().Err(err).Msg("item rejected by server, dropped from queue")

		default:
			outcome.Failed[item.TempID()] = err.Error()
			result.Retained++
			if e.maxAttempts > 0 && item.Attempts+1 >= e.maxAttempts {
				result.Flagged++
				log.Error().Err(err).Int("max_attempts", e.maxAttempts).Msg("item keeps failing, needs manual attention")
			} else {
				log.Debug().Err(err).Msg("transient failure, item kept")
			}
		}

		if result.Message == app.MsgSessionExpired {
			break
		}
	}

	// outcomes of requests that already completed must survive a cancelled pass
	if err := e.queue.Commit(context.WithoutCancel(ctx), outcome); err != nil {
		e.logger.Err(err).Msg("cannot persist sync outcome")
		result.Success = false
		result.Message = app.MsgQueueUnsaved
		return result
	}

	result.Success = result.Errors == 0 && result.Retained == 0
	if result.Message == "" {
		if result.Success {
			result.Message = app.MsgSyncComplete
		} else {
			result.Message = app.MsgSyncPartial
		}
	}

	return result
}

func (e *clientSyncEngine) submit(ctx context.Context, item models.SyncQueueItem) error {
	switch item.Type {
	case models.ItemTypePresence:
		if item.Presence == nil {
			return fmt.Errorf("%w: presence payload missing", adapter.ErrBadRequest)
		}
		return e.adapter.CreatePresence(ctx, *item.Presence)
	case models.ItemTypeInspection:
		if item.Inspection == nil {
			return fmt.Errorf("%w: inspection payload missing", adapter.ErrBadRequest)
		}
		return e.adapter.CreateUniformInspection(ctx, *item.Inspection)
	default:
		return fmt.Errorf("%w: unknown item type %q", adapter.ErrBadRequest, item.Type)
	}
}

func (e *clientSyncEngine) RecoverStaleFlag(ctx context.Context) error {
	since, found, err := e.state.Get(ctx, store.StateKeySyncInProgress)
	if err != nil {
		return fmt.Errorf("read sync flag: %w", err)
	}
	if !found {
		return nil
	}

	e.logger.Warn().Str("since", since).Msg("previous sync pass did not finish, clearing stale flag")

	if err = e.state.Delete(ctx, store.StateKeySyncInProgress); err != nil {
		return fmt.Errorf("clear sync flag: %w", err)
	}

	return nil
}

func (e *clientSyncEngine) markInProgress(ctx context.Context, start time.Time) {
	if err := e.state.Set(ctx, store.StateKeySyncInProgress, start.UTC().Format(time.RFC3339Nano)); err != nil {
		e.logger.Warn().Err(err).Msg("cannot persist sync flag")
	}
}

func (e *clientSyncEngine) clearInProgress(ctx context.Context) {
	if err := e.state.Delete(context.WithoutCancel(ctx), store.StateKeySyncInProgress); err != nil {
		e.logger.Warn().Err(err).Msg("cannot clear sync flag")
	}
}

// groupByType orders items presences first, then inspections, keeping
// insertion order inside each group. Items of any other type go last so
// submit rejects them instead of leaving them in the queue forever.
func groupByType(items []models.SyncQueueItem) (ordered []models.SyncQueueItem, unknown int) {
	ordered = make([]models.SyncQueueItem, 0, len(items))
	for _, t := range models.ItemTypes {
		for _, item := range items {
			if item.Type == t {
				ordered = append(ordered, item)
			}
		}
	}

	for _, item := range items {
		if !slices.Contains(models.ItemTypes, item.Type) {
			ordered = append(ordered, item)
			unknown++
		}
	}

	return ordered, unknown
}

func errorDetail(item models.SyncQueueItem, err error) models.ErrorDetail {
	return models.ErrorDetail{
		TempID:     item.TempID(),
		Type:       item.Type,
		CadetID:    item.CadetID(),
		StatusCode: adapter.StatusCode(err),
		Message:    adapter.Message(err),
	}
}
