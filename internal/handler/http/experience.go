package http

import (
	"encoding/json"
	"net/http"

	"go-folio/internal/app"
	"go-folio/internal/logger"
	"go-folio/internal/utils"
	"go-folio/models"
)

func (h *Handler) listExperience(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	entries, err := h.services.ExperienceService.ListExperience(ctx)
	if err != nil {
		log.Err(err).Msg("listing experience failed")
		respondError(w, err, err.Error())
		return
	}

	if _, err := utils.WriteJSON(w, entries, http.StatusOK); err != nil {
		log.Err(err).Msg("writing response failed")
	}
}

func (h *Handler) getExperience(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := idFromRequest(r)
	if err != nil {
		utils.WriteJSONError(w, app.MsgInvalidID, http.StatusBadRequest)
		return
	}

	entry, err := h.services.ExperienceService.GetExperience(ctx, id)
	if err != nil {
		log.Err(err).Int64("experience_id", id).Msg("getting experience failed")
		respondError(w, err, app.MsgExperienceNotFound)
		return
	}

	if _, err := utils.WriteJSON(w, entry, http.StatusOK); err != nil {
		log.Err(err).Msg("writing response failed")
	}
}

func (h *Handler) createExperience(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var entry models.Experience
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		log.Err(err).Msg("decoding experience failed")
		utils.WriteJSONError(w, app.MsgInvalidRequestBody, http.StatusBadRequest)
		return
	}

	created, err := h.services.ExperienceService.CreateExperience(ctx, entry)
	if err != nil {
		log.Err(err).Msg("creating experience failed")
		respondError(w, err, err.Error())
		return
	}

	if _, err := utils.WriteJSON(w, created, http.StatusCreated); err != nil {
		log.Err(err).Msg("writing response failed")
	}
}

func (h *Handler) updateExperience(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := idFromRequest(r)
	if err != nil {
		utils.WriteJSONError(w, app.MsgInvalidID, http.StatusBadRequest)
		return
	}

	var entry models.Experience
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		log.Err(err).Msg("decoding experience failed")
		utils.WriteJSONError(w, app.MsgInvalidRequestBody, http.StatusBadRequest)
		return
	}
	entry.ID = id

	updated, err := h.services.ExperienceService.UpdateExperience(ctx, entry)
	if err != nil {
		log.Err(err).Int64("experience_id", id).Msg("updating experience failed")
		respondError(w, err, err.Error())
		return
	}

	if _, err := utils.WriteJSON(w, updated, http.StatusOK); err != nil {
		log.Err(err).Msg("writing response failed")
	}
}

func (h *Handler) deleteExperience(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := idFromRequest(r)
	if err != nil {
		utils.WriteJSONError(w, app.MsgInvalidID, http.StatusBadRequest)
		return
	}

	if err := h.services.ExperienceService.DeleteExperience(ctx, id); err != nil {
		log.Err(err).Int64("experience_id", id).Msg("deleting experience failed")
		respondError(w, err, err.Error())
		return
	}

	if _, err := utils.WriteJSON(w, models.StatusResponse{Status: "ok"}, http.StatusOK); err != nil {
		log.Err(err).Msg("writing response failed")
	}
}
