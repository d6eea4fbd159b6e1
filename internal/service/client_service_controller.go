package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/cadet-sync/internal/adapter"
	"github.com/MKhiriev/cadet-sync/internal/app"
	"github.com/MKhiriev/cadet-sync/internal/config"
	"github.com/MKhiriev/cadet-sync/internal/connectivity"
	"github.com/MKhiriev/cadet-sync/internal/logger"
	"github.com/MKhiriev/cadet-sync/internal/metrics"
	"github.com/MKhiriev/cadet-sync/internal/utils"
	"github.com/MKhiriev/cadet-sync/internal/validators"
	"github.com/MKhiriev/cadet-sync/internal/workers"
	"github.com/MKhiriev/cadet-sync/models"
)

type clientController struct {
	monitor   ConnectivityMonitor
	queue     ClientQueueService
	cache     ClientCacheService
	engine    ClientSyncEngine
	adapter   adapter.ServerAdapter
	validator validators.Validator
	ids       utils.IDGenerator
	metrics   metrics.Recorder
	cfg       config.ClientWorkers
	logger    *logger.Logger

	mu             sync.RWMutex
	started        bool
	count          int
	lastResult     *models.SyncResult
	cacheTimestamp *time.Time
	listenerID     connectivity.ListenerID
	workers        *workers.Workers
	bgCtx          context.Context
	bgCancel       context.CancelFunc

	// bg tracks fire-and-forget work started on reconnect.
	bg sync.WaitGroup
}

// ControllerDeps groups the collaborators of the controller.
type ControllerDeps struct {
	Monitor   ConnectivityMonitor
	Queue     ClientQueueService
	Cache     ClientCacheService
	Engine    ClientSyncEngine
	Adapter   adapter.ServerAdapter
	Validator validators.Validator
	IDs       utils.IDGenerator
	Metrics   metrics.Recorder
}

func NewClientController(deps ControllerDeps, cfg config.ClientWorkers, log *logger.Logger) ClientController {
	return &clientController{
		monitor:   deps.Monitor,
		queue:     deps.Queue,
		cache:     deps.Cache,
		engine:    deps.Engine,
		adapter:   deps.Adapter,
		validator: deps.Validator,
		ids:       deps.IDs,
		metrics:   deps.Metrics,
		cfg:       cfg,
		logger:    log.WithComponent("controller"),
	}
}

func (c *clientController) Start(ctx context.Context) error {
	c.mu.Lock()
	if c.started {
		c.mu.Unlock()
		return nil
	}
	c.started = true
	c.bgCtx, c.bgCancel = context.WithCancel(ctx)
	c.mu.Unlock()

	if err := c.engine.RecoverStaleFlag(ctx); err != nil {
		c.logger.Warn().Err(err).Msg("cannot check stale sync flag")
	}

	// the listener goes in before Init so an edge published while the
	// source subscribes is not lost
	listenerID := c.monitor.AddListener(c.onConnectivityChange)
	c.mu.Lock()
	c.listenerID = listenerID
	c.mu.Unlock()

	c.monitor.Init(ctx)
	online := c.monitor.Status()
	c.metrics.SetOnline(online)

	if err := c.refreshCount(ctx); err != nil {
		c.logger.Warn().Err(err).Msg("cannot read sync queue length")
	}
	if snapshot, err := c.cache.GetCacheData(ctx); err == nil && snapshot != nil {
		c.setCacheTimestamp(snapshot.Timestamp)
	}

	c.mu.Lock()
	c.workers = workers.New(
		workers.NewPeriodic("queue-count", c.cfg.QueuePollInterval, c.refreshCount, c.logger),
		workers.NewPeriodic("cache-refresh", c.cfg.CacheRefreshInterval, c.refreshCacheIfOnline, c.logger),
		NewClientSyncJob(c.engine, c.queue, c.monitor, c.setLastResult, c.cfg, c.logger),
	)
	c.workers.Start(c.bgCtx)
	c.mu.Unlock()

	c.logger.Info().Bool("online", online).Msg("offline engine started")

	if online {
		c.goBackground(func(ctx context.Context) {
			_ = c.refreshCacheIfOnline(ctx)
		})
	}

	return nil
}

func (c *clientController) Stop() {
	c.mu.Lock()
	if !c.started {
		c.mu.Unlock()
		return
	}
	c.started = false
	c.monitor.RemoveListener(c.listenerID)
	c.bgCancel()
	ws := c.workers
	c.mu.Unlock()

	ws.Stop()
	c.bg.Wait()
	c.monitor.Close()

	c.logger.Info().Msg("offline engine stopped")
}

func (c *clientController) State() models.ControllerState {
	c.mu.RLock()
	defer c.mu.RUnlock()

	state := models.ControllerState{
		IsOnline:       c.monitor.Status(),
		IsSyncing:      c.engine.IsSyncing(),
		SyncQueueCount: c.count,
	}
	if c.lastResult != nil {
		r := *c.lastResult
		state.LastResult = &r
	}
	if c.cacheTimestamp != nil {
		ts := *c.cacheTimestamp
		state.CacheTimestamp = &ts
	}

	return state
}

func (c *clientController) HandleManualSync(ctx context.Context) models.SyncResult {
	result := c.engine.SyncQueue(ctx)
	if result.Message != app.MsgAlreadySyncing {
		c.setLastResult(result)
	}

	if err := c.refreshCount(ctx); err != nil {
		c.logger.Warn().Err(err).Msg("cannot read sync queue length")
	}

	return result
}

func (c *clientController) RefreshCache(ctx context.Context) error {
	if !c.monitor.Status() {
		return ErrOffline
	}

	if err := c.cache.DownloadCacheData(ctx); err != nil {
		return err
	}

	if snapshot, err := c.cache.GetCacheData(ctx); err == nil && snapshot != nil {
		c.setCacheTimestamp(snapshot.Timestamp)
	}

	return nil
}

func (c *clientController) SubmitPresence(ctx context.Context, cadetID, date string, status models.PresenceStatus, comment string) (models.RecordResult, error) {
	presence := models.OfflinePresence{
		TempID:      c.ids.Generate(),
		CadetID:     cadetID,
		Date:        date,
		Status:      status,
		Commentaire: comment,
	}
	if err := c.validator.Validate(ctx, presence); err != nil {
		return models.RecordResult{}, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}

	item := models.SyncQueueItem{Type: models.ItemTypePresence, Presence: &presence}
	if !c.monitor.Status() {
		return c.enqueue(ctx, item)
	}

	return c.afterDirectSubmit(ctx, item, c.adapter.CreatePresence(ctx, presence))
}

func (c *clientController) SubmitUniformInspection(ctx context.Context, cadetID, date, uniformType string, scores map[string]int, comment string) (models.RecordResult, error) {
	inspection := models.OfflineInspection{
		TempID:         c.ids.Generate(),
		CadetID:        cadetID,
		Date:           date,
		UniformType:    uniformType,
		CriteriaScores: scores,
		Commentaire:    comment,
	}
	if err := c.validator.Validate(ctx, inspection); err != nil {
		return models.RecordResult{}, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}

	item := models.SyncQueueItem{Type: models.ItemTypeInspection, Inspection: &inspection}
	if !c.monitor.Status() {
		return c.enqueue(ctx, item)
	}

	return c.afterDirectSubmit(ctx, item, c.adapter.CreateUniformInspection(ctx, inspection))
}

// afterDirectSubmit decides what happens to a record after a direct POST.
// Payload rejections are surfaced and dropped. An auth rejection is
// surfaced too, but the record is queued so it survives until the token is
// renewed. Anything else is queued with the same temp_id.
func (c *clientController) afterDirectSubmit(ctx context.Context, item models.SyncQueueItem, err error) (models.RecordResult, error) {
	switch {
	case err == nil:
		return models.RecordResult{Success: true, Offline: false, TempID: item.TempID()}, nil
	case adapter.IsPayloadError(err):
		return models.RecordResult{TempID: item.TempID()}, mapAdapterError(err)
	case adapter.IsAuthError(err):
		c.logger.Warn().Err(err).
			Str("temp_id", item.TempID()).
			Str("type", string(item.Type)).
			Msg("direct submit refused by backend, session expired; queuing record")
		result, qErr := c.enqueue(ctx, item)
		if qErr != nil {
			return result, qErr
		}
		return result, mapAdapterError(err)
	default:
		c.logger.Info().Err(err).
			Str("temp_id", item.TempID()).
			Str("type", string(item.Type)).
			Msg("direct submit failed, queuing record")
		return c.enqueue(ctx, item)
	}
}

func (c *clientController) enqueue(ctx context.Context, item models.SyncQueueItem) (models.RecordResult, error) {
	stored, err := c.queue.AddToSyncQueue(ctx, item)
	if err != nil {
		return models.RecordResult{}, err
	}

	if err = c.refreshCount(ctx); err != nil {
		c.logger.Warn().Err(err).Msg("cannot read sync queue length")
	}

	return models.RecordResult{Success: true, Offline: true, TempID: stored.TempID()}, nil
}

func (c *clientController) SubmitPresencesBulk(ctx context.Context, date string, records []models.PresenceRecord) (models.BulkPresenceResult, error) {
	req := models.BulkPresenceRequest{Date: date, Presences: records}
	if err := c.validator.Validate(ctx, req); err != nil {
		return models.BulkPresenceResult{}, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}

	if !c.monitor.Status() {
		return c.enqueueBulk(ctx, req)
	}

	resp, err := c.adapter.CreatePresencesBulk(ctx, req)
	switch {
	case err == nil:
		return models.BulkPresenceResult{CreatedCount: resp.CreatedCount, Errors: resp.Errors}, nil
	case adapter.IsPayloadError(err):
		return models.BulkPresenceResult{}, mapAdapterError(err)
	case adapter.IsAuthError(err):
		c.logger.Warn().Err(err).Int("records", len(records)).Msg("bulk submit refused by backend, session expired; queuing records")
		result, qErr := c.enqueueBulk(ctx, req)
		if qErr != nil {
			return result, qErr
		}
		return result, mapAdapterError(err)
	default:
		c.logger.Info().Err(err).Int("records", len(records)).Msg("bulk submit failed, queuing records")
		return c.enqueueBulk(ctx, req)
	}
}

func (c *clientController) enqueueBulk(ctx context.Context, req models.BulkPresenceRequest) (models.BulkPresenceResult, error) {
	result := models.BulkPresenceResult{Offline: true}

	for _, record := range req.Presences {
		presence := models.PresenceFromRecord(req.Date, record)
		presence.TempID = c.ids.Generate()

		if _, err := c.queue.AddToSyncQueue(ctx, models.SyncQueueItem{Type: models.ItemTypePresence, Presence: &presence}); err != nil {
			_ = c.refreshCount(ctx)
			return result, fmt.Errorf("queue presence for cadet %s: %w", record.CadetID, err)
		}
		result.Queued++
	}

	if err := c.refreshCount(ctx); err != nil {
		c.logger.Warn().Err(err).Msg("cannot read sync queue length")
	}

	return result, nil
}

func (c *clientController) onConnectivityChange(online bool) {
	c.metrics.SetOnline(online)
	c.logger.Debug().Bool("online", online).Msg("handling connectivity edge")

	if !online {
		return
	}

	c.goBackground(func(ctx context.Context) {
		result := c.engine.SyncQueue(ctx)
		if result.Message != app.MsgAlreadySyncing {
			c.setLastResult(result)
		}
		if err := c.refreshCount(ctx); err != nil {
			c.logger.Warn().Err(err).Msg("cannot read sync queue length")
		}
		_ = c.refreshCacheIfOnline(ctx)
	})
}

// goBackground runs fn on the controller's background context. It is a
// no-op once Stop has been called.
func (c *clientController) goBackground(fn func(ctx context.Context)) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.started {
		return
	}

	ctx := c.bgCtx
	c.bg.Add(1)
	go func() {
		defer c.bg.Done()
		fn(ctx)
	}()
}

func (c *clientController) refreshCacheIfOnline(ctx context.Context) error {
	err := c.RefreshCache(ctx)
	if errors.Is(err, ErrOffline) {
		return nil
	}
	return err
}

func (c *clientController) refreshCount(ctx context.Context) error {
	n, err := c.queue.Count(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.count = n
	c.mu.Unlock()
	c.metrics.SetQueueDepth(n)

	return nil
}

func (c *clientController) setLastResult(result models.SyncResult) {
	c.mu.Lock()
	c.lastResult = &result
	c.mu.Unlock()
}

func (c *clientController) setCacheTimestamp(ts time.Time) {
	if ts.IsZero() {
		return
	}

	c.mu.Lock()
	c.cacheTimestamp = &ts
	c.mu.Unlock()
}
