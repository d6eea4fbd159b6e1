package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/cadet-sync/internal/adapter"
	"github.com/MKhiriev/cadet-sync/internal/app"
	"github.com/MKhiriev/cadet-sync/internal/config"
	"github.com/MKhiriev/cadet-sync/internal/connectivity"
	"github.com/MKhiriev/cadet-sync/internal/logger"
	"github.com/MKhiriev/cadet-sync/internal/metrics"
	"github.com/MKhiriev/cadet-sync/internal/mock"
	"github.com/MKhiriev/cadet-sync/internal/store"
	"github.com/MKhiriev/cadet-sync/internal/validators"
	"github.com/MKhiriev/cadet-sync/models"
)

type controllerFixture struct {
	controller *clientController
	source     *connectivity.ManualSource
	adapter    *mock.MockServerAdapter
	queue      *clientQueueService
	storages   *store.ClientStorages
}

// newControllerFixture собирает контроллер на реальных SQLite, мониторе и
// очереди; сеть подменяется gomock-адаптером. Воркеры работают с большими
// интервалами, чтобы не вмешиваться в тесты.
func newControllerFixture(t *testing.T, online bool) *controllerFixture {
	t.Helper()
	source := connectivity.NewManualSource(online)
	f := newControllerFixtureWithSource(t, source)
	f.source = source
	return f
}

func newControllerFixtureWithSource(t *testing.T, source connectivity.Source) *controllerFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	storages := openStorages(t, "")
	a := mock.NewMockServerAdapter(ctrl)
	monitor := connectivity.NewMonitor(source, logger.Nop())

	ids := &seqIDs{}
	validator := validators.NewRecordValidator()
	queue := NewClientQueueService(storages, validator, ids, logger.Nop()).(*clientQueueService)
	cache := NewClientCacheService(storages, a, metrics.Nop{}, logger.Nop())
	engine := NewClientSyncEngine(queue, a, monitor, storages, metrics.Nop{}, 0, logger.Nop())

	cfg := config.ClientWorkers{
		SyncInterval:         time.Hour,
		CacheRefreshInterval: time.Hour,
		QueuePollInterval:    time.Hour,
		MaxBackoff:           time.Hour,
	}
	c := NewClientController(ControllerDeps{
		Monitor:   monitor,
		Queue:     queue,
		Cache:     cache,
		Engine:    engine,
		Adapter:   a,
		Validator: validator,
		IDs:       ids,
		Metrics:   metrics.Nop{},
	}, cfg, logger.Nop()).(*clientController)
	t.Cleanup(c.Stop)

	return &controllerFixture{controller: c, adapter: a, queue: queue, storages: storages}
}

func (f *controllerFixture) allowCacheRefresh() {
	f.adapter.EXPECT().GetCollection(gomock.Any(), gomock.Any()).Return([]models.Entity{}, nil).AnyTimes()
}

func (f *controllerFixture) queued(t *testing.T) []models.SyncQueueItem {
	t.Helper()
	items, err := f.queue.GetSyncQueue(context.Background())
	require.NoError(t, err)
	return items
}

// ── Start / Stop ─────────────────────────────────────────────────────────────

func TestClientController_Start_Offline(t *testing.T) {
	f := newControllerFixture(t, false)
	ctx := context.Background()

	_, err := f.queue.AddToSyncQueue(ctx, presence("A", "c-1"))
	require.NoError(t, err)

	require.NoError(t, f.controller.Start(ctx))

	state := f.controller.State()
	assert.False(t, state.IsOnline)
	assert.False(t, state.IsSyncing)
	assert.Equal(t, 1, state.SyncQueueCount)
	assert.Nil(t, state.LastResult)
	assert.Nil(t, state.CacheTimestamp)
}

func TestClientController_Start_OnlineRefreshesCache(t *testing.T) {
	f := newControllerFixture(t, true)
	f.allowCacheRefresh()

	require.NoError(t, f.controller.Start(context.Background()))

	require.Eventually(t, func() bool {
		return f.controller.State().CacheTimestamp != nil
	}, time.Second, 5*time.Millisecond)
}

func TestClientController_Start_Twice(t *testing.T) {
	f := newControllerFixture(t, false)

	require.NoError(t, f.controller.Start(context.Background()))
	require.NoError(t, f.controller.Start(context.Background()))

	assert.Equal(t, 1, f.source.Subscribers())
}

func TestClientController_Start_ClearsStaleSyncFlag(t *testing.T) {
	f := newControllerFixture(t, false)
	ctx := context.Background()
	require.NoError(t, f.storages.StateRepository.Set(ctx, store.StateKeySyncInProgress, "2025-01-10T08:00:00Z"))

	require.NoError(t, f.controller.Start(ctx))

	_, found, err := f.storages.StateRepository.Get(ctx, store.StateKeySyncInProgress)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestClientController_Stop_WithoutStart(t *testing.T) {
	f := newControllerFixture(t, false)
	assert.NotPanics(t, f.controller.Stop)
}

func TestClientController_Stop_Unsubscribes(t *testing.T) {
	f := newControllerFixture(t, false)
	require.NoError(t, f.controller.Start(context.Background()))

	f.controller.Stop()

	assert.Zero(t, f.source.Subscribers())
}

// risingSource сообщает «offline» при чтении и сразу публикует переход в
// online прямо внутри Subscribe, то есть во время monitor.Init.
type risingSource struct{}

func (risingSource) Current(context.Context) (bool, error) { return false, nil }

func (risingSource) Subscribe(fn func(online bool)) (func(), error) {
	fn(true)
	return func() {}, nil
}

func TestClientController_Start_EdgeDuringInitTriggersSync(t *testing.T) {
	f := newControllerFixtureWithSource(t, risingSource{})
	f.allowCacheRefresh()
	ctx := context.Background()

	_, err := f.queue.AddToSyncQueue(ctx, presence("A", "c-1"))
	require.NoError(t, err)

	sent := make(chan string, 1)
	f.adapter.EXPECT().CreatePresence(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p models.OfflinePresence) error {
		sent <- p.TempID
		return nil
	})

	require.NoError(t, f.controller.Start(ctx))

	select {
	case tempID := <-sent:
		assert.Equal(t, "A", tempID)
	case <-time.After(time.Second):
		t.Fatal("edge published during Init did not trigger a sync")
	}

	require.Eventually(t, func() bool {
		return f.controller.State().SyncQueueCount == 0
	}, time.Second, 5*time.Millisecond)
}

// ── Offline → reconnect ──────────────────────────────────────────────────────

func TestClientController_OfflineThenReconnect(t *testing.T) {
	f := newControllerFixture(t, false)
	ctx := context.Background()
	require.NoError(t, f.controller.Start(ctx))

	res, err := f.controller.SubmitPresence(ctx, "c-1", "2025-01-10", models.PresenceStatusPresent, "")
	require.NoError(t, err)
	assert.Equal(t, models.RecordResult{Success: true, Offline: true, TempID: "tmp-1"}, res)
	assert.Equal(t, 1, f.controller.State().SyncQueueCount)

	// при восстановлении связи запись уходит с тем же temp_id
	sent := make(chan string, 1)
	f.adapter.EXPECT().CreatePresence(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p models.OfflinePresence) error {
		sent <- p.TempID
		return nil
	})
	f.allowCacheRefresh()

	f.source.Set(true)

	select {
	case tempID := <-sent:
		assert.Equal(t, "tmp-1", tempID)
	case <-time.After(time.Second):
		t.Fatal("queue was not drained on reconnect")
	}

	require.Eventually(t, func() bool {
		s := f.controller.State()
		return s.SyncQueueCount == 0 && s.LastResult != nil && s.LastResult.Success && s.CacheTimestamp != nil
	}, time.Second, 5*time.Millisecond)
	assert.Empty(t, f.queued(t))
}

func TestClientController_GoingOfflineDoesNotSync(t *testing.T) {
	f := newControllerFixture(t, true)
	f.allowCacheRefresh()
	require.NoError(t, f.controller.Start(context.Background()))

	// ни одного CreatePresence не ожидается
	f.source.Set(false)

	assert.False(t, f.controller.State().IsOnline)
}

// ── Submit ───────────────────────────────────────────────────────────────────

func TestClientController_SubmitPresence_OnlineDirect(t *testing.T) {
	f := newControllerFixture(t, true)
	f.allowCacheRefresh()
	require.NoError(t, f.controller.Start(context.Background()))

	f.adapter.EXPECT().CreatePresence(gomock.Any(), gomock.Any()).Return(nil)

	res, err := f.controller.SubmitPresence(context.Background(), "c-1", "2025-01-10", models.PresenceStatusAbsent, "")
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.False(t, res.Offline)
	assert.Empty(t, f.queued(t))
}

func TestClientController_SubmitPresence_TransientFallsBackToQueue(t *testing.T) {
	f := newControllerFixture(t, true)
	f.allowCacheRefresh()
	require.NoError(t, f.controller.Start(context.Background()))

	var postedTempID string
	f.adapter.EXPECT().CreatePresence(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p models.OfflinePresence) error {
		postedTempID = p.TempID
		return adapter.ErrNetwork
	})

	res, err := f.controller.SubmitPresence(context.Background(), "c-1", "2025-01-10", models.PresenceStatusPresent, "")
	require.NoError(t, err)
	assert.True(t, res.Offline)

	items := f.queued(t)
	require.Len(t, items, 1)
	assert.Equal(t, postedTempID, items[0].TempID(), "в очередь должен попасть тот же temp_id")
	assert.Equal(t, res.TempID, postedTempID)
}

func TestClientController_SubmitPresence_PayloadErrorNotQueued(t *testing.T) {
	f := newControllerFixture(t, true)
	f.allowCacheRefresh()
	require.NoError(t, f.controller.Start(context.Background()))

	f.adapter.EXPECT().CreatePresence(gomock.Any(), gomock.Any()).Return(adapter.NewHTTPError(404, app.MsgCadetNotFound))

	_, err := f.controller.SubmitPresence(context.Background(), "c-404", "2025-01-10", models.PresenceStatusPresent, "")
	require.ErrorIs(t, err, ErrRecordRejected)
	assert.Equal(t, app.MsgCadetNotFound, UserMessage(err))
	assert.Empty(t, f.queued(t))
}

func TestClientController_SubmitPresence_AuthErrorSurfacedAndQueued(t *testing.T) {
	f := newControllerFixture(t, true)
	f.allowCacheRefresh()
	require.NoError(t, f.controller.Start(context.Background()))

	f.adapter.EXPECT().CreatePresence(gomock.Any(), gomock.Any()).Return(adapter.NewHTTPError(401, "jeton expiré"))

	res, err := f.controller.SubmitPresence(context.Background(), "c-1", "2025-01-10", models.PresenceStatusPresent, "")
	require.ErrorIs(t, err, ErrSessionExpired)
	assert.Equal(t, app.MsgSessionExpired, UserMessage(err))

	// запись не теряется: она ждёт в очереди нового токена
	assert.True(t, res.Offline)
	assert.Equal(t, "tmp-1", res.TempID)
	items := f.queued(t)
	require.Len(t, items, 1)
	assert.Equal(t, "tmp-1", items[0].TempID())
	assert.Equal(t, 1, f.controller.State().SyncQueueCount)
}

func TestClientController_SubmitUniformInspection_ForbiddenSurfaced(t *testing.T) {
	f := newControllerFixture(t, true)
	f.allowCacheRefresh()
	require.NoError(t, f.controller.Start(context.Background()))

	f.adapter.EXPECT().CreateUniformInspection(gomock.Any(), gomock.Any()).Return(adapter.NewHTTPError(403, "accès refusé"))

	_, err := f.controller.SubmitUniformInspection(context.Background(), "c-1", "2025-01-10", "treillis", map[string]int{"coiffure": 3}, "")
	require.ErrorIs(t, err, ErrSessionExpired)
	assert.Len(t, f.queued(t), 1)
}

func TestClientController_SubmitPresence_Invalid(t *testing.T) {
	f := newControllerFixture(t, true)

	_, err := f.controller.SubmitPresence(context.Background(), "", "2025-01-10", models.PresenceStatusPresent, "")
	assert.ErrorIs(t, err, ErrInvalidRecord)
}

func TestClientController_SubmitUniformInspection_Offline(t *testing.T) {
	f := newControllerFixture(t, false)
	require.NoError(t, f.controller.Start(context.Background()))

	res, err := f.controller.SubmitUniformInspection(context.Background(), "c-1", "2025-01-10", "treillis", map[string]int{"coiffure": 3}, "")
	require.NoError(t, err)
	assert.True(t, res.Offline)

	items := f.queued(t)
	require.Len(t, items, 1)
	assert.Equal(t, models.ItemTypeInspection, items[0].Type)
}

func TestClientController_SubmitUniformInspection_ServerErrorFallsBack(t *testing.T) {
	f := newControllerFixture(t, true)
	f.allowCacheRefresh()
	require.NoError(t, f.controller.Start(context.Background()))

	f.adapter.EXPECT().CreateUniformInspection(gomock.Any(), gomock.Any()).Return(adapter.NewHTTPError(502, "bad gateway"))

	res, err := f.controller.SubmitUniformInspection(context.Background(), "c-1", "2025-01-10", "treillis", map[string]int{"coiffure": 3}, "")
	require.NoError(t, err)
	assert.True(t, res.Offline)
	assert.Len(t, f.queued(t), 1)
}

// ── Bulk ─────────────────────────────────────────────────────────────────────

func rollCall() []models.PresenceRecord {
	return []models.PresenceRecord{
		{CadetID: "c-1", Status: models.PresenceStatusPresent},
		{CadetID: "c-2", Status: models.PresenceStatusAbsent},
		{CadetID: "c-404", Status: models.PresenceStatusPresent},
	}
}

func TestClientController_SubmitPresencesBulk_PartialFailure(t *testing.T) {
	f := newControllerFixture(t, true)
	f.allowCacheRefresh()
	ctx := context.Background()

	// несвязанная запись, оставшаяся в очереди с прошлого раза
	_, err := f.queue.AddToSyncQueue(ctx, inspection("X", "c-9"))
	require.NoError(t, err)
	require.NoError(t, f.controller.Start(ctx))

	f.adapter.EXPECT().CreatePresencesBulk(gomock.Any(), models.BulkPresenceRequest{Date: "2025-01-10", Presences: rollCall()}).
		Return(models.BulkPresenceResponse{
			CreatedCount: 2,
			Errors:       []models.BulkPresenceError{{CadetID: "c-404", Message: app.MsgCadetNotFound}},
		}, nil)

	res, err := f.controller.SubmitPresencesBulk(ctx, "2025-01-10", rollCall())
	require.NoError(t, err)
	assert.Equal(t, 2, res.CreatedCount)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "c-404", res.Errors[0].CadetID)
	assert.False(t, res.Offline)
	assert.Zero(t, res.Queued)

	// ошибки bulk терминальны: в очереди только X, и он по-прежнему повторяем
	items := f.queued(t)
	require.Len(t, items, 1)
	assert.Equal(t, "X", items[0].TempID())
	assert.Equal(t, 0, items[0].Attempts)

	f.adapter.EXPECT().CreateUniformInspection(gomock.Any(), gomock.Any()).Return(nil)
	sync := f.controller.HandleManualSync(ctx)
	assert.True(t, sync.Success)
	assert.Equal(t, 1, sync.Synced)
	assert.Zero(t, f.controller.State().SyncQueueCount)
}

func TestClientController_SubmitPresencesBulk_TransportFailureQueuesEachRecord(t *testing.T) {
	f := newControllerFixture(t, true)
	f.allowCacheRefresh()
	require.NoError(t, f.controller.Start(context.Background()))

	f.adapter.EXPECT().CreatePresencesBulk(gomock.Any(), gomock.Any()).Return(models.BulkPresenceResponse{}, adapter.ErrNetwork)

	res, err := f.controller.SubmitPresencesBulk(context.Background(), "2025-01-10", rollCall())
	require.NoError(t, err)
	assert.True(t, res.Offline)
	assert.Equal(t, 3, res.Queued)

	items := f.queued(t)
	require.Len(t, items, 3)
	for i, item := range items {
		assert.Equal(t, rollCall()[i].CadetID, item.CadetID())
		assert.Equal(t, "2025-01-10", item.Presence.Date)
		assert.NotEmpty(t, item.TempID())
	}
	assert.Equal(t, 3, f.controller.State().SyncQueueCount)
}

func TestClientController_SubmitPresencesBulk_AuthErrorSurfacedAndQueued(t *testing.T) {
	f := newControllerFixture(t, true)
	f.allowCacheRefresh()
	require.NoError(t, f.controller.Start(context.Background()))

	f.adapter.EXPECT().CreatePresencesBulk(gomock.Any(), gomock.Any()).Return(models.BulkPresenceResponse{}, adapter.NewHTTPError(401, "jeton expiré"))

	res, err := f.controller.SubmitPresencesBulk(context.Background(), "2025-01-10", rollCall())
	require.ErrorIs(t, err, ErrSessionExpired)
	assert.Equal(t, app.MsgSessionExpired, UserMessage(err))
	assert.True(t, res.Offline)
	assert.Equal(t, 3, res.Queued)
	assert.Len(t, f.queued(t), 3)
}

func TestClientController_SubmitPresencesBulk_Offline(t *testing.T) {
	f := newControllerFixture(t, false)
	require.NoError(t, f.controller.Start(context.Background()))

	res, err := f.controller.SubmitPresencesBulk(context.Background(), "2025-01-10", rollCall())
	require.NoError(t, err)
	assert.Equal(t, models.BulkPresenceResult{Offline: true, Queued: 3}, res)
}

func TestClientController_SubmitPresencesBulk_Invalid(t *testing.T) {
	f := newControllerFixture(t, true)

	records := []models.PresenceRecord{
		{CadetID: "c-1", Status: models.PresenceStatusPresent},
		{CadetID: "c-1", Status: models.PresenceStatusAbsent},
	}
	_, err := f.controller.SubmitPresencesBulk(context.Background(), "2025-01-10", records)
	assert.ErrorIs(t, err, ErrInvalidRecord)
	assert.ErrorIs(t, err, validators.ErrDuplicateCadet)
}

// ── Manual sync / cache ──────────────────────────────────────────────────────

func TestClientController_HandleManualSync_Offline(t *testing.T) {
	f := newControllerFixture(t, false)
	require.NoError(t, f.controller.Start(context.Background()))

	res := f.controller.HandleManualSync(context.Background())
	assert.False(t, res.Success)
	assert.Equal(t, app.MsgNoConnection, res.Message)

	last := f.controller.State().LastResult
	require.NotNil(t, last)
	assert.Equal(t, app.MsgNoConnection, last.Message)
}

func TestClientController_RefreshCache_Offline(t *testing.T) {
	f := newControllerFixture(t, false)
	require.NoError(t, f.controller.Start(context.Background()))

	err := f.controller.RefreshCache(context.Background())
	assert.ErrorIs(t, err, ErrOffline)
}

func TestClientController_RefreshCache_FailureKeepsTimestamp(t *testing.T) {
	f := newControllerFixture(t, false)
	require.NoError(t, f.controller.Start(context.Background()))

	f.adapter.EXPECT().GetCollection(gomock.Any(), gomock.Any()).Return(nil, adapter.ErrNetwork).AnyTimes()
	f.source.Set(true)

	err := f.controller.RefreshCache(context.Background())
	assert.ErrorIs(t, err, ErrCacheRefresh)
	assert.Nil(t, f.controller.State().CacheTimestamp)
}
