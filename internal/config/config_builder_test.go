package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.layers)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourcesOverride verifies that a later non-zero field wins
// and a later zero field keeps the earlier value.
func TestBuild_LaterSourcesOverride(t *testing.T) {
	b := newConfigBuilder()
	b.layers = append(b.layers,
		&StructuredConfig{
			Adapter: Adapter{HTTPAddress: "env:8080", RequestTimeout: 5 * time.Second},
			Storage: Storage{DB: DB{DSN: "env.db"}},
		},
		&StructuredConfig{
			Adapter: Adapter{HTTPAddress: "flag:9090"},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "flag:9090", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "env.db", cfg.Storage.DB.DSN)
}

func TestBuild_RejectsNegativeMaxAttempts(t *testing.T) {
	b := newConfigBuilder()
	b.layers = append(b.layers, &StructuredConfig{Workers: Workers{MaxAttempts: -1}})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidWorkerConfigs)
}

// ── withFlags / withJSON ──────────────────────────────────────────────────────

func TestWithJSON_UsesPathFromFlags(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"adapter": map[string]any{"http_address": "json:8080"},
		"storage": map[string]any{"db": map[string]any{"dsn": "json.db"}},
	})

	cfg, err := newConfigBuilder().
		withFlags([]string{"-c", path, "-a", "flag:8080"}).
		withJSON().
		build()

	require.NoError(t, err)
	assert.Equal(t, "json:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "json.db", cfg.Storage.DB.DSN)
}

func TestWithJSON_MissingFileIsError(t *testing.T) {
	_, err := newConfigBuilder().
		withFlags([]string{"-c", "/does/not/exist.json"}).
		withJSON().
		build()

	require.Error(t, err)
}

func TestWithFlags_BadFlagIsError(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-max-attempts", "many"})
	assert.Error(t, b.err)
}

// ── client view ───────────────────────────────────────────────────────────────

func TestNewClientConfig_AppliesDefaults(t *testing.T) {
	cfg := newClientConfig(&StructuredConfig{Adapter: Adapter{HTTPAddress: "localhost:8080"}})

	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultDSN, cfg.Storage.DB.DSN)
	assert.Equal(t, DefaultSyncInterval, cfg.Workers.SyncInterval)
	assert.Equal(t, DefaultCacheRefreshInterval, cfg.Workers.CacheRefreshInterval)
	assert.Equal(t, DefaultQueuePollInterval, cfg.Workers.QueuePollInterval)
	assert.Equal(t, DefaultProbeInterval, cfg.Workers.ProbeInterval)
	assert.NoError(t, cfg.validate())
}

func TestClientConfig_Validate(t *testing.T) {
	valid := func() *ClientConfig {
		return newClientConfig(&StructuredConfig{Adapter: Adapter{HTTPAddress: "localhost:8080"}})
	}

	tests := []struct {
		name   string
		mutate func(c *ClientConfig)
		want   error
	}{
		{name: "valid", mutate: func(*ClientConfig) {}},
		{name: "memory dsn", mutate: func(c *ClientConfig) { c.Storage.DB.DSN = ":memory:" }, want: ErrInvalidStorageConfigs},
		{name: "no address", mutate: func(c *ClientConfig) { c.Adapter.HTTPAddress = "" }, want: ErrInvalidAdapterConfigs},
		{name: "zero poll", mutate: func(c *ClientConfig) { c.Workers.QueuePollInterval = 0 }, want: ErrInvalidWorkerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := c.validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDevServerConfig_RequiresSignKey(t *testing.T) {
	cfg := &DevServerConfig{}
	assert.ErrorIs(t, cfg.validate(), ErrInvalidAppConfigs)

	cfg.TokenSignKey = "secret"
	assert.NoError(t, cfg.validate())
}
