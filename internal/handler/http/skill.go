// SPDX-License-Identifier: Apache-2.0

package http

import (
	"encoding/json"
	"net/http"

	"go-folio/internal/app"
	"go-folio/internal/logger"
	"go-folio/internal/utils"
	"go-folio/models"
)

// listSkills answers with skills grouped by category, the shape the public
// site renders directly.
func (h *Handler) listSkills(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	grouped, err := h.services.SkillService.ListSkills(ctx)
	if err != nil {
		log.Err(err).Msg("listing skills failed")
		respondError(w, err, err.Error())
		return
	}

	if _, err := utils.WriteJSON(w, grouped, http.StatusOK); err != nil {
		log.Err(err).Msg("writing response failed")
	}
}

func (h *Handler) getSkill(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := idFromRequest(r)
	if err != nil {
		utils.WriteJSONError(w, app.MsgInvalidID, http.StatusBadRequest)
		return
	}

	skill, err := h.services.SkillService.GetSkill(ctx, id)
	if err != nil {
		log.Err(err).Int64("skill_id", id).Msg("getting skill failed")
		respondError(w, err, app.MsgSkillNotFound)
		return
	}

	if _, err := utils.WriteJSON(w, skill, http.StatusOK); err != nil {
		log.Err(err).Msg("writing response failed")
	}
}

func (h *Handler) createSkill(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var skill models.Skill
	if err := json.NewDecoder(r.Body).Decode(&skill); err != nil {
		log.Err(err).Msg("decoding skill failed")
		utils.WriteJSONError(w, app.MsgInvalidRequestBody, http.StatusBadRequest)
		return
	}

	created, err := h.services.SkillService.CreateSkill(ctx, skill)
	if err != nil {
		log.Err(err).Msg("creating skill failed")
		respondError(w, err, err.Error())
		return
	}

	if _, err := utils.WriteJSON(w, created, http.StatusCreated); err != nil {
		log.Err(err).Msg("writing response failed")
	}
}

func (h *Handler) updateSkill(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := idFromRequest(r)
	if err != nil {
		utils.WriteJSONError(w, app.MsgInvalidID, http.StatusBadRequest)
		return
	}

	var skill models.Skill
	if err := json.NewDecoder(r.Body).Decode(&skill); err != nil {
		log.Err(err).Msg("decoding skill failed")
		utils.WriteJSONError(w, app.MsgInvalidRequestBody, http.StatusBadRequest)
		return
	}
	skill.ID = id

	updated, err := h.services.SkillService.UpdateSkill(ctx, skill)
	if err != nil {
		log.Err(err).Int64("skill_id", id).Msg("updating skill failed")
		respondError(w, err, err.Error())
		return
	}

	if _, err := utils.WriteJSON(w, updated, http.StatusOK); err != nil {
		log.Err(err).Msg("writing response failed")
	}
}

func (h *Handler) deleteSkill(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := idFromRequest(r)
	if err != nil {
		utils.WriteJSONError(w, app.MsgInvalidID, http.StatusBadRequest)
		return
	}

	if err := h.services.SkillService.DeleteSkill(ctx, id); err != nil {
		log.Err(err).Int64("skill_id", id).Msg("deleting skill failed")
		respondError(w, err, err.Error())
		return
	}

	if _, err := utils.WriteJSON(w, models.StatusResponse{Status: "ok"}, http.StatusOK); err != nil {
		log.Err(err).Msg("writing response failed")
	}
}
