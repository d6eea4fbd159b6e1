// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/cadet-sync/internal/app"
	"github.com/MKhiriev/cadet-sync/models"
)

// ── Presences ───────────────────────────────

func TestCreatePresence_CreatedThenReplayed(t *testing.T) {
	router, services := newTestRouter(t)
	auth := bearer(t, services)

	p := models.OfflinePresence{TempID: "t-1", CadetID: "1", Date: "2025-01-10", Status: models.PresenceStatusPresent}

	rr := doJSON(t, router, http.MethodPost, "/api/presences", auth, p, idempotencyKeyHeader, "t-1")
	require.Equal(t, http.StatusCreated, rr.Code)

	var first createdResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &first))
	assert.True(t, first.Created)
	assert.Equal(t, "t-1", first.TempID)

	// повтор с тем же ключом: 200, запись не дублируется
	rr = doJSON(t, router, http.MethodPost, "/api/presences", auth, p, idempotencyKeyHeader, "t-1")
	require.Equal(t, http.StatusOK, rr.Code)

	var second createdResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &second))
	assert.False(t, second.Created)
}

func TestCreatePresence_TempIDFromHeaderOnly(t *testing.T) {
	router, services := newTestRouter(t)
	auth := bearer(t, services)

	p := models.OfflinePresence{CadetID: "2", Date: "2025-01-10", Status: models.PresenceStatusAbsent}

	rr := doJSON(t, router, http.MethodPost, "/api/presences", auth, p, idempotencyKeyHeader, "hdr-1")
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = doJSON(t, router, http.MethodPost, "/api/presences", auth, p, idempotencyKeyHeader, "hdr-1")
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestCreatePresence_Rejections(t *testing.T) {
	router, services := newTestRouter(t)
	auth := bearer(t, services)

	tests := []struct {
		name     string
		body     any
		headers  []string
		wantCode int
		wantMsg  string
	}{
		{
			name:     "broken json",
			body:     "{\"cadet_id\":",
			wantCode: http.StatusBadRequest,
			wantMsg:  app.MsgInvalidDataProvided,
		},
		{
			name:     "key mismatch",
			body:     models.OfflinePresence{TempID: "a", CadetID: "1", Date: "2025-01-10", Status: "present"},
			headers:  []string{idempotencyKeyHeader, "b"},
			wantCode: http.StatusBadRequest,
			wantMsg:  app.MsgInvalidDataProvided,
		},
		{
			name:     "invalid status",
			body:     models.OfflinePresence{TempID: "c", CadetID: "1", Date: "2025-01-10", Status: "malade"},
			wantCode: http.StatusUnprocessableEntity,
			wantMsg:  app.MsgInvalidDataProvided,
		},
		{
			name:     "unknown cadet",
			body:     models.OfflinePresence{TempID: "d", CadetID: "999", Date: "2025-01-10", Status: "present"},
			wantCode: http.StatusNotFound,
			wantMsg:  app.MsgCadetNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := doJSON(t, router, http.MethodPost, "/api/presences", auth, tt.body, tt.headers...)
			assert.Equal(t, tt.wantCode, rr.Code)
			assert.Equal(t, tt.wantMsg, decodeMessage(t, rr))
		})
	}
}

// ── Bulk ────────────────────────────────────

func TestCreatePresencesBulk_PartialSuccess(t *testing.T) {
	router, services := newTestRouter(t)
	auth := bearer(t, services)

	req := models.BulkPresenceRequest{
		Date: "2025-01-10",
		Presences: []models.PresenceRecord{
			{CadetID: "1", Status: models.PresenceStatusPresent},
			{CadetID: "404", Status: models.PresenceStatusPresent},
			{CadetID: "3", Status: models.PresenceStatusLate, Commentaire: "bus"},
		},
	}

	rr := doJSON(t, router, http.MethodPost, "/api/presences/bulk", auth, req)
	require.Equal(t, http.StatusCreated, rr.Code)

	var resp models.BulkPresenceResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.CreatedCount)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "404", resp.Errors[0].CadetID)
	assert.Equal(t, app.MsgCadetNotFound, resp.Errors[0].Message)
}

func TestCreatePresencesBulk_DuplicateCadet(t *testing.T) {
	router, services := newTestRouter(t)
	auth := bearer(t, services)

	req := models.BulkPresenceRequest{
		Date: "2025-01-10",
		Presences: []models.PresenceRecord{
			{CadetID: "1", Status: models.PresenceStatusPresent},
			{CadetID: "1", Status: models.PresenceStatusAbsent},
		},
	}

	rr := doJSON(t, router, http.MethodPost, "/api/presences/bulk", auth, req)
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Equal(t, app.MsgDuplicateInBulk, decodeMessage(t, rr))
}

// ── Uniform inspections ─────────────────────

func TestCreateUniformInspection(t *testing.T) {
	router, services := newTestRouter(t)
	auth := bearer(t, services)

	i := models.OfflineInspection{
		TempID:         "insp-1",
		CadetID:        "2",
		Date:           "2025-01-10",
		UniformType:    "tenue de sortie",
		CriteriaScores: map[string]int{"chaussures": 4, "coiffure": 5},
	}

	rr := doJSON(t, router, http.MethodPost, "/api/uniform-inspections", auth, i, idempotencyKeyHeader, "insp-1")
	assert.Equal(t, http.StatusCreated, rr.Code)

	rr = doJSON(t, router, http.MethodPost, "/api/uniform-inspections", auth, i, idempotencyKeyHeader, "insp-1")
	assert.Equal(t, http.StatusOK, rr.Code)

	i.CriteriaScores = nil
	i.TempID = "insp-2"
	rr = doJSON(t, router, http.MethodPost, "/api/uniform-inspections", auth, i)
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}

// ── Collections ─────────────────────────────

func TestListCollection_DataEnvelope(t *testing.T) {
	router, services := newTestRouter(t)
	auth := bearer(t, services)

	for _, path := range []string{"/api/users", "/api/sections", "/api/activities"} {
		rr := doJSON(t, router, http.MethodGet, path, auth, nil)
		require.Equal(t, http.StatusOK, rr.Code, path)

		var body struct {
			Data []json.RawMessage `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body), path)
		assert.NotEmpty(t, body.Data, path)
	}
}
