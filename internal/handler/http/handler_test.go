package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/cadet-sync/internal/config"
	"github.com/MKhiriev/cadet-sync/internal/logger"
	"github.com/MKhiriev/cadet-sync/internal/service"
	"github.com/MKhiriev/cadet-sync/internal/store"
	"github.com/MKhiriev/cadet-sync/models"
)

// ---- Helpers ----

// newTestRouter собирает роутер поверх настоящих сервисов и in-memory хранилища.
func newTestRouter(t *testing.T) (http.Handler, *service.Services) {
	t.Helper()

	storages, err := store.NewStorages(logger.Nop())
	require.NoError(t, err)

	cfg := config.DevServerConfig{
		TokenSignKey:  "handler-test-key",
		TokenIssuer:   "cadet-sync-test",
		TokenDuration: time.Hour,
	}
	services, err := service.NewServices(storages, cfg, models.NewAppBuildInfo("1.2.3", "2026-01-02", "abc123"), logger.Nop())
	require.NoError(t, err)

	return NewHandler(services, logger.Nop()).Init(), services
}

func bearer(t *testing.T, services *service.Services) string {
	t.Helper()
	token, err := services.AuthService.CreateToken(t.Context(), "instructor-7")
	require.NoError(t, err)
	return "Bearer " + token.String()
}

func doJSON(t *testing.T, router http.Handler, method, path, auth string, body any, headers ...string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(t, json.NewEncoder(&buf).Encode(b))
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeMessage(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body.Message
}
