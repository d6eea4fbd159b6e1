package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/cadet-sync/internal/app"
	"github.com/MKhiriev/cadet-sync/internal/logger"
	"github.com/MKhiriev/cadet-sync/internal/utils"
)

type tokenRequest struct {
	UserID string `json:"user_id"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// issueToken mints a bearer token for any user id. The development backend
// has no accounts.
func (h *Handler) issueToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req tokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, req.UserID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	log.Info().Str("user_id", req.UserID).Msg("token issued")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, tokenResponse{Token: token.SignedString}, http.StatusOK)
}
