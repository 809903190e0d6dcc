package http

import (
	"encoding/json"
	"net/http"

	"go-folio/internal/app"
	"go-folio/internal/logger"
	"go-folio/internal/utils"
	"go-folio/models"
)

// The profile is a singleton resource: no ID in the path, one row in storage.

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	profile, err := h.services.ProfileService.GetProfile(ctx)
	if err != nil {
		log.Err(err).Msg("getting profile failed")
		respondError(w, err, err.Error())
		return
	}

	if _, err := utils.WriteJSON(w, profile, http.StatusOK); err != nil {
		log.Err(err).Msg("writing response failed")
	}
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var profile models.Profile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		log.Err(err).Msg("decoding profile failed")
		utils.WriteJSONError(w, app.MsgInvalidRequestBody, http.StatusBadRequest)
		return
	}

	updated, err := h.services.ProfileService.UpdateProfile(ctx, profile)
	if err != nil {
		log.Err(err).Msg("updating profile failed")
		respondError(w, err, err.Error())
		return
	}

	if _, err := utils.WriteJSON(w, updated, http.StatusOK); err != nil {
		log.Err(err).Msg("writing response failed")
	}
}
