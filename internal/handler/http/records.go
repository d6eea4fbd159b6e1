// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/cadet-sync/internal/app"
	"github.com/MKhiriev/cadet-sync/internal/logger"
	"github.com/MKhiriev/cadet-sync/internal/utils"
	"github.com/MKhiriev/cadet-sync/models"
)

// createdResponse answers a single-record write. A replayed temp_id is
// answered 200 with created == false instead of 201.
type createdResponse struct {
	TempID  string `json:"temp_id,omitempty"`
	Created bool   `json:"created"`
}

type collectionResponse struct {
	Data []models.Entity `json:"data"`
}

func (h *Handler) createPresence(w http.ResponseWriter, r *http.Request) {
	var presence models.OfflinePresence
	if !decodeBody(w, r, &presence) {
		return
	}

	tempID, err := resolveTempID(r, presence.TempID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	presence.TempID = tempID

	created, err := h.services.SquadronService.CreatePresence(r.Context(), presence)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeCreated(w, tempID, created)
}

func (h *Handler) createUniformInspection(w http.ResponseWriter, r *http.Request) {
	var inspection models.OfflineInspection
	if !decodeBody(w, r, &inspection) {
		return
	}

	tempID, err := resolveTempID(r, inspection.TempID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	inspection.TempID = tempID

	created, err := h.services.SquadronService.CreateUniformInspection(r.Context(), inspection)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeCreated(w, tempID, created)
}

// createPresencesBulk answers 201 even when some records were refused; the
// refusals are listed in the body.
func (h *Handler) createPresencesBulk(w http.ResponseWriter, r *http.Request) {
	var req models.BulkPresenceRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.services.SquadronService.CreatePresencesBulk(r.Context(), req)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusCreated)
}

func (h *Handler) listCollection(collection models.Collection) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entities, err := h.services.SquadronService.GetCollection(r.Context(), collection)
		if err != nil {
			h.writeServiceError(w, r, err)
			return
		}

		utils.WriteJSON(w, collectionResponse{Data: entities}, http.StatusOK)
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.FromRequest(r).Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return false
	}
	return true
}

// resolveTempID reconciles the Idempotency-Key header with the body temp_id.
// Either may be missing; when both are present they must agree.
func resolveTempID(r *http.Request, bodyTempID string) (string, error) {
	key := r.Header.Get(idempotencyKeyHeader)
	switch {
	case key == "":
		return bodyTempID, nil
	case bodyTempID == "" || bodyTempID == key:
		return key, nil
	default:
		return "", ErrIdempotencyKeyMismatch
	}
}

func writeCreated(w http.ResponseWriter, tempID string, created bool) {
	status := http.StatusCreated
	if !created {
		status = http.StatusOK
	}
	utils.WriteJSON(w, createdResponse{TempID: tempID, Created: created}, status)
}
