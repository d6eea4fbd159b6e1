package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/cadet-sync/internal/app"
	"github.com/MKhiriev/cadet-sync/internal/logger"
	"github.com/MKhiriev/cadet-sync/internal/service"
	"github.com/MKhiriev/cadet-sync/internal/store"
	"github.com/MKhiriev/cadet-sync/internal/utils"
	"github.com/MKhiriev/cadet-sync/internal/validators"
)

type errorResponse struct {
	status  int
	message string
}

// errorResponses is checked in order; the first match wins.
var errorResponses = []struct {
	target error
	errorResponse
}{
	{validators.ErrDuplicateCadet, errorResponse{http.StatusUnprocessableEntity, app.MsgDuplicateInBulk}},
	{service.ErrInvalidDataProvided, errorResponse{http.StatusUnprocessableEntity, app.MsgInvalidDataProvided}},
	{ErrIdempotencyKeyMismatch, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{service.ErrTokenIsExpiredOrInvalid, errorResponse{http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid}},
	{service.ErrCadetNotFound, errorResponse{http.StatusNotFound, app.MsgCadetNotFound}},
	{store.ErrUnknownCollection, errorResponse{http.StatusNotFound, app.MsgNotFound}},
}

func responseFromError(err error) errorResponse {
	for _, e := range errorResponses {
		if errors.Is(err, e.target) {
			return e.errorResponse
		}
	}
	return errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}
}

func statusFromError(err error) int {
	return responseFromError(err).status
}

// writeServiceError logs err and answers with the mapped status and French
// message.
func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	resp := responseFromError(err)

	event := logger.FromRequest(r).Warn()
	if resp.status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Int("status", resp.status).Msg("request failed")

	utils.WriteError(w, resp.message, resp.status)
}
