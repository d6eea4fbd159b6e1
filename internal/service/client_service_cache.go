package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/cadet-sync/internal/adapter"
	"github.com/MKhiriev/cadet-sync/internal/logger"
	"github.com/MKhiriev/cadet-sync/internal/metrics"
	"github.com/MKhiriev/cadet-sync/internal/store"
	"github.com/MKhiriev/cadet-sync/models"
)

type clientCacheService struct {
	repo    store.CacheRepository
	adapter adapter.ServerAdapter
	metrics metrics.Recorder
	logger  *logger.Logger
	now     func() time.Time

	// refreshMu allows a single download at a time.
	refreshMu sync.Mutex

	mu       sync.RWMutex
	loaded   bool
	snapshot *models.CacheSnapshot
}

func NewClientCacheService(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, recorder metrics.Recorder, log *logger.Logger) ClientCacheService {
	return &clientCacheService{
		repo:    storages.CacheRepository,
		adapter: serverAdapter,
		metrics: recorder,
		logger:  log.WithComponent("cache"),
		now:     time.Now,
	}
}

func (c *clientCacheService) DownloadCacheData(ctx context.Context) (err error) {
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	start := c.now()
	defer func() {
		c.metrics.ObserveCacheRefresh(err == nil, c.now().Sub(start))
	}()

	next := models.CacheSnapshot{}
	var errs []error
	for _, collection := range models.Collections {
		entities, fetchErr := c.adapter.GetCollection(ctx, collection)
		if fetchErr != nil {
			errs = append(errs, fmt.Errorf("%s: %w", collection, fetchErr))
			continue
		}
		if entities == nil {
			entities = []models.Entity{}
		}
		next.Set(collection, entities)
	}

	if len(errs) > 0 {
		err = fmt.Errorf("%w: %w", ErrCacheRefresh, errors.Join(errs...))
		c.logger.Warn().Err(err).Msg("reference data refresh failed, keeping previous snapshot")
		return err
	}

	next.Timestamp = c.now().UTC()
	if err = c.repo.ReplaceSnapshot(ctx, next); err != nil {
		err = fmt.Errorf("%w: %w", ErrCacheStorage, err)
		c.logger.Err(err).Msg("failed to store reference data")
		return err
	}

	c.mu.Lock()
	c.snapshot = &next
	c.loaded = true
	c.mu.Unlock()

	c.logger.Info().
		Int("users", len(next.Users)).
		Int("sections", len(next.Sections)).
		Int("activities", len(next.Activities)).
		Msg("reference data refreshed")

	return nil
}

func (c *clientCacheService) GetCacheData(ctx context.Context) (*models.CacheSnapshot, error) {
	c.mu.RLock()
	if c.loaded {
		snapshot := cloneSnapshot(c.snapshot)
		c.mu.RUnlock()
		return snapshot, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.loaded {
		snapshot, err := c.repo.LoadSnapshot(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCacheStorage, err)
		}
		c.snapshot = snapshot
		c.loaded = true
	}

	return cloneSnapshot(c.snapshot), nil
}

func (c *clientCacheService) UserName(ctx context.Context, id string) string {
	return c.displayName(ctx, models.CollectionUsers, id)
}

func (c *clientCacheService) SectionName(ctx context.Context, id string) string {
	return c.displayName(ctx, models.CollectionSections, id)
}

func (c *clientCacheService) displayName(ctx context.Context, collection models.Collection, id string) string {
	snapshot, err := c.GetCacheData(ctx)
	if err != nil || snapshot == nil {
		return id
	}

	entity, ok := snapshot.Find(collection, id)
	if !ok || entity.Name == "" {
		return id
	}

	return entity.Name
}

func cloneSnapshot(s *models.CacheSnapshot) *models.CacheSnapshot {
	if s == nil {
		return nil
	}

	out := &models.CacheSnapshot{Timestamp: s.Timestamp}
	for _, collection := range models.Collections {
		src := s.Get(collection)
		if src == nil {
			continue
		}
		dst := make([]models.Entity, len(src))
		copy(dst, src)
		out.Set(collection, dst)
	}

	return out
}
