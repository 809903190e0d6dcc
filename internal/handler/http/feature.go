package http

import (
	"encoding/json"
	"net/http"

	"go-folio/internal/app"
	"go-folio/internal/logger"
	"go-folio/internal/utils"
	"go-folio/models"
)

func (h *Handler) listFeatures(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	features, err := h.services.FeatureService.ListFeatures(ctx)
	if err != nil {
		log.Err(err).Msg("listing features failed")
		respondError(w, err, err.Error())
		return
	}

	if _, err := utils.WriteJSON(w, features, http.StatusOK); err != nil {
		log.Err(err).Msg("writing response failed")
	}
}

func (h *Handler) getFeature(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := idFromRequest(r)
	if err != nil {
		utils.WriteJSONError(w, app.MsgInvalidID, http.StatusBadRequest)
		return
	}

	feature, err := h.services.FeatureService.GetFeature(ctx, id)
	if err != nil {
		log.Err(err).Int64("feature_id", id).Msg("getting feature failed")
		respondError(w, err, app.MsgFeatureNotFound)
		return
	}

	if _, err := utils.WriteJSON(w, feature, http.StatusOK); err != nil {
		log.Err(err).Msg("writing response failed")
	}
}

func (h *Handler) createFeature(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var feature models.Feature
	if err := json.NewDecoder(r.Body).Decode(&feature); err != nil {
		log.Err(err).Msg("decoding feature failed")
		utils.WriteJSONError(w, app.MsgInvalidRequestBody, http.StatusBadRequest)
		return
	}

	created, err := h.services.FeatureService.CreateFeature(ctx, feature)
	if err != nil {
		log.Err(err).Msg("creating feature failed")
		respondError(w, err, err.Error())
		return
	}

	if _, err := utils.WriteJSON(w, created, http.StatusCreated); err != nil {
		log.Err(err).Msg("writing response failed")
	}
}

func (h *Handler) updateFeature(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := idFromRequest(r)
	if err != nil {
		utils.WriteJSONError(w, app.MsgInvalidID, http.StatusBadRequest)
		return
	}

	var feature models.Feature
	if err := json.NewDecoder(r.Body).Decode(&feature); err != nil {
		log.Err(err).Msg("decoding feature failed")
		utils.WriteJSONError(w, app.MsgInvalidRequestBody, http.StatusBadRequest)
		return
	}
	feature.ID = id

	updated, err := h.services.FeatureService.UpdateFeature(ctx, feature)
	if err != nil {
		log.Err(err).Int64("feature_id", id).Msg("updating feature failed")
		respondError(w, err, err.Error())
		return
	}

	if _, err := utils.WriteJSON(w, updated, http.StatusOK); err != nil {
		log.Err(err).Msg("writing response failed")
	}
}

func (h *Handler) deleteFeature(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := idFromRequest(r)
	if err != nil {
		utils.WriteJSONError(w, app.MsgInvalidID, http.StatusBadRequest)
		return
	}

	if err := h.services.FeatureService.DeleteFeature(ctx, id); err != nil {
		log.Err(err).Int64("feature_id", id).Msg("deleting feature failed")
		respondError(w, err, err.Error())
		return
	}

	if _, err := utils.WriteJSON(w, models.StatusResponse{Status: "ok"}, http.StatusOK); err != nil {
		log.Err(err).Msg("writing response failed")
	}
}
