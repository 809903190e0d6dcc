package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"go-folio/internal/app"
	"go-folio/internal/logger"
	"go-folio/internal/utils"
	"go-folio/models"
)

// getSEOSettings answers with every page's SEO settings keyed by page name.
func (h *Handler) getSEOSettings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	settings, err := h.services.SEOService.GetSEOSettings(ctx)
	if err != nil {
		log.Err(err).Msg("listing seo settings failed")
		respondError(w, err, err.Error())
		return
	}

	if _, err := utils.WriteJSON(w, settings, http.StatusOK); err != nil {
		log.Err(err).Msg("writing response failed")
	}
}

func (h *Handler) getSEOByPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	page := chi.URLParam(r, "page")

	setting, err := h.services.SEOService.GetSEOByPage(ctx, page)
	if err != nil {
		log.Err(err).Str("page", page).Msg("getting seo settings failed")
		respondError(w, err, app.MsgSEONotFound)
		return
	}

	if _, err := utils.WriteJSON(w, setting, http.StatusOK); err != nil {
		log.Err(err).Msg("writing response failed")
	}
}

// upsertSEO creates the page's settings if missing and replaces them
// otherwise. The page is identified by the PageName field of the body.
func (h *Handler) upsertSEO(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var setting models.SEOSetting
	if err := json.NewDecoder(r.Body).Decode(&setting); err != nil {
		log.Err(err).Msg("decoding seo settings failed")
		utils.WriteJSONError(w, app.MsgInvalidRequestBody, http.StatusBadRequest)
		return
	}

	saved, err := h.services.SEOService.UpsertSEO(ctx, setting)
	if err != nil {
		log.Err(err).Str("page", setting.PageName).Msg("upserting seo settings failed")
		respondError(w, err, err.Error())
		return
	}

	if _, err := utils.WriteJSON(w, saved, http.StatusOK); err != nil {
		log.Err(err).Msg("writing response failed")
	}
}

func (h *Handler) updateSEOByPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	page := chi.URLParam(r, "page")

	var setting models.SEOSetting
	if err := json.NewDecoder(r.Body).Decode(&setting); err != nil {
		log.Err(err).Msg("decoding seo settings failed")
		utils.WriteJSONError(w, app.MsgInvalidRequestBody, http.StatusBadRequest)
		return
	}

	updated, err := h.services.SEOService.UpdateSEOByPage(ctx, page, setting)
	if err != nil {
		log.Err(err).Str("page", page).Msg("updating seo settings failed")
		respondError(w, err, err.Error())
		return
	}

	if _, err := utils.WriteJSON(w, updated, http.StatusOK); err != nil {
		log.Err(err).Msg("writing response failed")
	}
}
