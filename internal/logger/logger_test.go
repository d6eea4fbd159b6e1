package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- Helpers ----

func decodeEntry(t *testing.T, raw []byte) map[string]any {
	t.Helper()

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(raw), &entry))
	return entry
}

func bufferedLogger(role string) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return newLogger(role, &buf), &buf
}

// ── NewLogger ──

func TestNewLogger_Fields(t *testing.T) {
	l, buf := bufferedLogger("cadet-sync-devserver")

	l.Info().Str("temp_id", "t-42").Msg("presence stored")

	entry := decodeEntry(t, buf.Bytes())
	assert.Equal(t, "cadet-sync-devserver", entry["role"])
	assert.Equal(t, "t-42", entry["temp_id"])
	assert.Equal(t, "presence stored", entry["message"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry, "func")
}

func TestNewLogger_GlobalSettings(t *testing.T) {
	require.NotNil(t, NewLogger("devserver"))

	assert.Equal(t, "func", zerolog.CallerFieldName)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNewClientLogger_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "client.log")

	l := NewClientLogger("client", path)
	l.Info().Str("temp_id", "abc").Msg("queued")

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	entry := decodeEntry(t, data)
	assert.Equal(t, "client", entry["role"])
	assert.Equal(t, "abc", entry["temp_id"])
	assert.Equal(t, "queued", entry["message"])
}

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("ignored")

	assert.Empty(t, buf.String())
}

// ── Дочерние логгеры ──

func TestWithComponent_AddsField(t *testing.T) {
	parent, buf := bufferedLogger("client")

	parent.WithComponent("sync").Info().Msg("pass")

	entry := decodeEntry(t, buf.Bytes())
	assert.Equal(t, "sync", entry["component"])
	assert.Equal(t, "client", entry["role"])
}

func TestGetChildLogger_KeepsParentUntouched(t *testing.T) {
	parent, buf := bufferedLogger("client")

	child := parent.GetChildLogger()
	require.NotSame(t, parent, child)
	child.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", "tr-1")
	})

	parent.Info().Msg("parent")
	entry := decodeEntry(t, buf.Bytes())
	assert.NotContains(t, entry, "trace_id")

	buf.Reset()
	child.Info().Msg("child")
	entry = decodeEntry(t, buf.Bytes())
	assert.Equal(t, "tr-1", entry["trace_id"])
	assert.Equal(t, "client", entry["role"])
}

// ── Логгер из контекста ──

func TestFromContext(t *testing.T) {
	require.NotNil(t, FromContext(context.Background()))

	l, buf := bufferedLogger("devserver")
	ctx := l.WithContext(context.Background())

	FromContext(ctx).Info().Msg("from context")

	assert.Equal(t, "devserver", decodeEntry(t, buf.Bytes())["role"])
}

func TestFromRequest(t *testing.T) {
	l, buf := bufferedLogger("devserver")
	req := httptest.NewRequest(http.MethodPost, "/api/presences", nil)
	req = req.WithContext(l.WithContext(req.Context()))

	FromRequest(req).Info().Msg("from request")

	assert.Equal(t, "devserver", decodeEntry(t, buf.Bytes())["role"])
}
