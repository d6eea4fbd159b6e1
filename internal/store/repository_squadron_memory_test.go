package store

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/cadet-sync/internal/logger"
	"github.com/MKhiriev/cadet-sync/models"
)

func newMemoryRepo(t *testing.T) SquadronRepository {
	t.Helper()
	roster, err := DefaultRoster()
	require.NoError(t, err)
	return NewMemorySquadronRepository(roster, logger.Nop())
}

func TestDefaultRoster(t *testing.T) {
	roster, err := DefaultRoster()
	require.NoError(t, err)

	require.NotEmpty(t, roster.Users)
	assert.Equal(t, "1", roster.Users[0].ID)
	assert.Equal(t, "Jeanne Martin", roster.Users[0].Name)
	assert.Equal(t, "Section Alpha", roster.Sections[0].Name)
	assert.Contains(t, string(roster.Users[0].Raw), `"section_id":"10"`)
}

func TestMemorySquadronRepository_SavePresence_DeduplicatesTempID(t *testing.T) {
	repo := newMemoryRepo(t)
	ctx := testContext()

	p := models.OfflinePresence{TempID: "t-1", CadetID: "1", Date: "2025-01-10", Status: models.PresenceStatusPresent}

	created, err := repo.SavePresence(ctx, p)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repo.SavePresence(ctx, p)
	require.NoError(t, err)
	assert.False(t, created)

	stored, err := repo.Presences(ctx)
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestMemorySquadronRepository_SavePresence_NoTempIDAlwaysStored(t *testing.T) {
	repo := newMemoryRepo(t)
	ctx := testContext()

	p := models.OfflinePresence{CadetID: "1", Date: "2025-01-10", Status: models.PresenceStatusPresent}
	for range 2 {
		created, err := repo.SavePresence(ctx, p)
		require.NoError(t, err)
		assert.True(t, created)
	}

	stored, err := repo.Presences(ctx)
	require.NoError(t, err)
	assert.Len(t, stored, 2)
}

func TestMemorySquadronRepository_SaveInspection_ConcurrentReplays(t *testing.T) {
	repo := newMemoryRepo(t)
	ctx := testContext()

	i := models.OfflineInspection{TempID: "t-9", CadetID: "2", Date: "2025-01-10", UniformType: "treillis", CriteriaScores: map[string]int{"a": 1}}

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.SaveInspection(ctx, i)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	stored, err := repo.Inspections(ctx)
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestMemorySquadronRepository_CadetExists(t *testing.T) {
	repo := newMemoryRepo(t)

	ok, err := repo.CadetExists(context.Background(), "1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.CadetExists(context.Background(), "404")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemorySquadronRepository_ListCollection(t *testing.T) {
	repo := newMemoryRepo(t)

	for _, c := range models.Collections {
		entities, err := repo.ListCollection(context.Background(), c)
		require.NoError(t, err)
		assert.NotEmpty(t, entities, c)
	}

	_, err := repo.ListCollection(context.Background(), "grades")
	assert.ErrorIs(t, err, ErrUnknownCollection)
}
