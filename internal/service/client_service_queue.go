// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/cadet-sync/internal/logger"
	"github.com/MKhiriev/cadet-sync/internal/store"
	"github.com/MKhiriev/cadet-sync/internal/utils"
	"github.com/MKhiriev/cadet-sync/internal/validators"
	"github.com/MKhiriev/cadet-sync/models"
)

type clientQueueService struct {
	repo      store.QueueRepository
	validator validators.Validator
	ids       utils.IDGenerator
	logger    *logger.Logger
	now       func() time.Time

	// mu serialises every queue mutation.
	mu sync.Mutex
}

func NewClientQueueService(storages *store.ClientStorages, validator validators.Validator, ids utils.IDGenerator, log *logger.Logger) ClientQueueService {
	return &clientQueueService{
		repo:      storages.QueueRepository,
		validator: validator,
		ids:       ids,
		logger:    log.WithComponent("sync-queue"),
		now:       time.Now,
	}
}

func (q *clientQueueService) AddToSyncQueue(ctx context.Context, item models.SyncQueueItem) (models.SyncQueueItem, error) {
	item = item.Clone()
	if item.TempID() == "" {
		item.SetTempID(q.ids.Generate())
	}
	item.Seq = 0
	item.Attempts = 0
	item.LastAttemptAt = nil
	item.LastError = ""
	if item.CreatedAt.IsZero() {
		item.CreatedAt = q.now().UTC()
	}

	if err := q.validator.Validate(ctx, item); err != nil {
		return models.SyncQueueItem{}, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	stored, err := q.repo.Append(ctx, item)
	if err != nil {
		q.logger.Err(err).
			Str("temp_id", item.TempID()).
			Str("type", string(item.Type)).
			Msg("failed to append item to sync queue")
		return models.SyncQueueItem{}, fmt.Errorf("%w: %w", ErrQueueStorage, err)
	}

	q.logger.Debug().
		Str("temp_id", stored.TempID()).
		Str("type", string(stored.Type)).
		Int64("seq", stored.Seq).
		Msg("item queued")

	return stored.Clone(), nil
}

func (q *clientQueueService) GetSyncQueue(ctx context.Context) ([]models.SyncQueueItem, error) {
	items, err := q.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQueueStorage, err)
	}

	out := make([]models.SyncQueueItem, 0, len(items))
	for _, item := range items {
		out = append(out, item.Clone())
	}

	return out, nil
}

func (q *clientQueueService) Count(ctx context.Context) (int, error) {
	n, err := q.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrQueueStorage, err)
	}
	return n, nil
}

func (q *clientQueueService) RecordPresence(ctx context.Context, cadetID, date string, status models.PresenceStatus, comment string) (models.RecordResult, error) {
	return q.record(ctx, models.SyncQueueItem{
		Type: models.ItemTypePresence,
		Presence: &models.OfflinePresence{
			CadetID:     cadetID,
			Date:        date,
			Status:      status,
			Commentaire: comment,
		},
	})
}

func (q *clientQueueService) RecordUniformInspection(ctx context.Context, cadetID, date, uniformType string, scores map[string]int, comment string) (models.RecordResult, error) {
	return q.record(ctx, models.SyncQueueItem{
		Type: models.ItemTypeInspection,
		Inspection: &models.OfflineInspection{
			CadetID:        cadetID,
			Date:           date,
			UniformType:    uniformType,
			CriteriaScores: scores,
			Commentaire:    comment,
		},
	})
}

func (q *clientQueueService) record(ctx context.Context, item models.SyncQueueItem) (models.RecordResult, error) {
	stored, err := q.AddToSyncQueue(ctx, item)
	if err != nil {
		return models.RecordResult{}, err
	}

	return models.RecordResult{Success: true, Offline: true, TempID: stored.TempID()}, nil
}

func (q *clientQueueService) Peek(ctx context.Context) ([]models.SyncQueueItem, error) {
	return q.GetSyncQueue(ctx)
}

func (q *clientQueueService) Commit(ctx context.Context, outcome models.QueueOutcome) error {
	if outcome.IsEmpty() {
		return nil
	}
	if outcome.AttemptAt.IsZero() {
		outcome.AttemptAt = q.now().UTC()
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	if err := q.repo.Commit(ctx, outcome); err != nil {
		q.logger.Err(err).
			Int("removed", len(outcome.Remove)).
			Int("failed", len(outcome.Failed)).
			Msg("failed to commit sync outcome")
		return fmt.Errorf("%w: %w", ErrQueueStorage, err)
	}

	return nil
}
