package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/cadet-sync/internal/adapter"
	"github.com/MKhiriev/cadet-sync/internal/logger"
	"github.com/MKhiriev/cadet-sync/internal/metrics"
	"github.com/MKhiriev/cadet-sync/internal/mock"
	"github.com/MKhiriev/cadet-sync/internal/store"
	"github.com/MKhiriev/cadet-sync/models"
)

func entity(t *testing.T, id, name string) models.Entity {
	t.Helper()
	var e models.Entity
	raw, err := json.Marshal(map[string]string{"id": id, "name": name})
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &e))
	return e
}

func newTestCache(t *testing.T, storages *store.ClientStorages, a adapter.ServerAdapter) *clientCacheService {
	t.Helper()
	return NewClientCacheService(storages, a, metrics.Nop{}, logger.Nop()).(*clientCacheService)
}

func expectCollections(a *mock.MockServerAdapter, users, sections, activities []models.Entity, failOn models.Collection) {
	data := map[models.Collection][]models.Entity{
		models.CollectionUsers:      users,
		models.CollectionSections:   sections,
		models.CollectionActivities: activities,
	}
	for _, c := range models.Collections {
		if c == failOn {
			a.EXPECT().GetCollection(gomock.Any(), c).Return(nil, adapter.ErrServiceUnavailable)
			continue
		}
		a.EXPECT().GetCollection(gomock.Any(), c).Return(data[c], nil)
	}
}

// ── DownloadCacheData ────────────────────────────────────────────────────────

func TestClientCacheService_DownloadCacheData_ReplacesSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := mock.NewMockServerAdapter(ctrl)
	c := newTestCache(t, openStorages(t, ""), a)
	ctx := context.Background()

	expectCollections(a,
		[]models.Entity{entity(t, "u1", "Jeanne Martin")},
		[]models.Entity{entity(t, "s1", "Escadron 1")},
		nil,
		"",
	)

	require.NoError(t, c.DownloadCacheData(ctx))

	snap, err := c.GetCacheData(ctx)
	require.NoError(t, err)
	require.NotNil(t, snap)
	assert.Len(t, snap.Users, 1)
	assert.Len(t, snap.Sections, 1)
	assert.NotNil(t, snap.Activities, "пустая коллекция хранится как [], а не null")
	assert.WithinDuration(t, time.Now(), snap.Timestamp, time.Minute)
}

func TestClientCacheService_DownloadCacheData_PartialFailureKeepsPrevious(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := mock.NewMockServerAdapter(ctrl)
	storages := openStorages(t, "")
	c := newTestCache(t, storages, a)
	ctx := context.Background()

	// первое обновление успешно
	expectCollections(a,
		[]models.Entity{entity(t, "u1", "Jeanne Martin")},
		[]models.Entity{entity(t, "s1", "Escadron 1")},
		[]models.Entity{entity(t, "a1", "Cérémonie")},
		"",
	)
	require.NoError(t, c.DownloadCacheData(ctx))
	before, err := c.GetCacheData(ctx)
	require.NoError(t, err)

	// второе: sections падает с 503
	expectCollections(a,
		[]models.Entity{entity(t, "u2", "Paul Durand")},
		nil,
		[]models.Entity{},
		models.CollectionSections,
	)
	err = c.DownloadCacheData(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCacheRefresh)
	assert.ErrorIs(t, err, adapter.ErrServiceUnavailable)

	after, err := c.GetCacheData(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)

	// и на диске тоже ничего не поменялось
	stored, err := storages.CacheRepository.LoadSnapshot(ctx)
	require.NoError(t, err)
	require.Len(t, stored.Users, 1)
	assert.Equal(t, "u1", stored.Users[0].ID)
}

func TestClientCacheService_DownloadCacheData_JoinsAllErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := mock.NewMockServerAdapter(ctrl)
	c := newTestCache(t, openStorages(t, ""), a)

	a.EXPECT().GetCollection(gomock.Any(), models.CollectionUsers).Return(nil, adapter.ErrNetwork)
	a.EXPECT().GetCollection(gomock.Any(), models.CollectionSections).Return(nil, adapter.ErrUnauthorized)
	a.EXPECT().GetCollection(gomock.Any(), models.CollectionActivities).Return([]models.Entity{}, nil)

	err := c.DownloadCacheData(context.Background())
	assert.ErrorIs(t, err, adapter.ErrNetwork)
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
}

func TestClientCacheService_DownloadCacheData_StorageFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := mock.NewMockServerAdapter(ctrl)
	repo := mock.NewMockCacheRepository(ctrl)
	c := newTestCache(t, &store.ClientStorages{CacheRepository: repo}, a)

	expectCollections(a, nil, nil, nil, "")
	repo.EXPECT().ReplaceSnapshot(gomock.Any(), gomock.Any()).Return(errors.New("database is locked"))

	err := c.DownloadCacheData(context.Background())
	assert.ErrorIs(t, err, ErrCacheStorage)
}

// ── GetCacheData ─────────────────────────────────────────────────────────────

func TestClientCacheService_GetCacheData_NilWhenNeverStored(t *testing.T) {
	c := newTestCache(t, openStorages(t, ""), nil)

	snap, err := c.GetCacheData(context.Background())
	require.NoError(t, err)
	assert.Nil(t, snap)
}

func TestClientCacheService_GetCacheData_LoadsOnceFromStorage(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockCacheRepository(ctrl)
	c := newTestCache(t, &store.ClientStorages{CacheRepository: repo}, nil)

	snap := &models.CacheSnapshot{Users: []models.Entity{entity(t, "u1", "Jeanne")}}
	repo.EXPECT().LoadSnapshot(gomock.Any()).Return(snap, nil).Times(1)

	for range 3 {
		got, err := c.GetCacheData(context.Background())
		require.NoError(t, err)
		assert.Len(t, got.Users, 1)
	}
}

func TestClientCacheService_GetCacheData_ReturnsCopy(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockCacheRepository(ctrl)
	c := newTestCache(t, &store.ClientStorages{CacheRepository: repo}, nil)

	repo.EXPECT().LoadSnapshot(gomock.Any()).Return(&models.CacheSnapshot{Users: []models.Entity{entity(t, "u1", "Jeanne")}}, nil)

	got, err := c.GetCacheData(context.Background())
	require.NoError(t, err)
	got.Users[0].Name = "changed"

	again, err := c.GetCacheData(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Jeanne", again.Users[0].Name)
}

func TestClientCacheService_GetCacheData_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockCacheRepository(ctrl)
	c := newTestCache(t, &store.ClientStorages{CacheRepository: repo}, nil)

	repo.EXPECT().LoadSnapshot(gomock.Any()).Return(nil, store.ErrCorruptedRow)

	_, err := c.GetCacheData(context.Background())
	assert.ErrorIs(t, err, ErrCacheStorage)
}

// ── Lookup helpers ───────────────────────────────────────────────────────────

func TestClientCacheService_DisplayNames(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockCacheRepository(ctrl)
	c := newTestCache(t, &store.ClientStorages{CacheRepository: repo}, nil)

	repo.EXPECT().LoadSnapshot(gomock.Any()).Return(&models.CacheSnapshot{
		Users:    []models.Entity{entity(t, "u1", "Jeanne Martin")},
		Sections: []models.Entity{entity(t, "s1", "Escadron 1")},
	}, nil)

	ctx := context.Background()
	assert.Equal(t, "Jeanne Martin", c.UserName(ctx, "u1"))
	assert.Equal(t, "u404", c.UserName(ctx, "u404"))
	assert.Equal(t, "Escadron 1", c.SectionName(ctx, "s1"))
}

func TestClientCacheService_DisplayNames_NoSnapshot(t *testing.T) {
	c := newTestCache(t, openStorages(t, ""), nil)
	assert.Equal(t, "u1", c.UserName(context.Background(), "u1"))
}
