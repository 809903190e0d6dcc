package http

import (
	"encoding/json"
	"net/http"

	"go-folio/internal/app"
	"go-folio/internal/logger"
	"go-folio/internal/utils"
	"go-folio/models"
)

func (h *Handler) listProjects(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	projects, err := h.services.ProjectService.ListProjects(ctx)
	if err != nil {
		log.Err(err).Msg("listing projects failed")
		respondError(w, err, err.Error())
		return
	}

	if _, err := utils.WriteJSON(w, projects, http.StatusOK); err != nil {
		log.Err(err).Msg("writing response failed")
	}
}

func (h *Handler) getProject(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := idFromRequest(r)
	if err != nil {
		utils.WriteJSONError(w, app.MsgInvalidID, http.StatusBadRequest)
		return
	}

	project, err := h.services.ProjectService.GetProject(ctx, id)
	if err != nil {
		log.Err(err).Int64("project_id", id).Msg("getting project failed")
		respondError(w, err, app.MsgProjectNotFound)
		return
	}

	if _, err := utils.WriteJSON(w, project, http.StatusOK); err != nil {
		log.Err(err).Msg("writing response failed")
	}
}

func (h *Handler) createProject(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var project models.Project
	if err := json.NewDecoder(r.Body).Decode(&project); err != nil {
		log.Err(err).Msg("decoding project failed")
		utils.WriteJSONError(w, app.MsgInvalidRequestBody, http.StatusBadRequest)
		return
	}

	created, err := h.services.ProjectService.CreateProject(ctx, project)
	if err != nil {
		log.Err(err).Msg("creating project failed")
		respondError(w, err, err.Error())
		return
	}

	if _, err := utils.WriteJSON(w, created, http.StatusCreated); err != nil {
		log.Err(err).Msg("writing response failed")
	}
}

func (h *Handler) updateProject(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := idFromRequest(r)
	if err != nil {
		utils.WriteJSONError(w, app.MsgInvalidID, http.StatusBadRequest)
		return
	}

	var project models.Project
	if err := json.NewDecoder(r.Body).Decode(&project); err != nil {
		log.Err(err).Msg("decoding project failed")
		utils.WriteJSONError(w, app.MsgInvalidRequestBody, http.StatusBadRequest)
		return
	}
	project.ID = id

	updated, err := h.services.ProjectService.UpdateProject(ctx, project)
	if err != nil {
		log.Err(err).Int64("project_id", id).Msg("updating project failed")
		respondError(w, err, err.Error())
		return
	}

	if _, err := utils.WriteJSON(w, updated, http.StatusOK); err != nil {
		log.Err(err).Msg("writing response failed")
	}
}

func (h *Handler) deleteProject(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := idFromRequest(r)
	if err != nil {
		utils.WriteJSONError(w, app.MsgInvalidID, http.StatusBadRequest)
		return
	}

	if err := h.services.ProjectService.DeleteProject(ctx, id); err != nil {
		log.Err(err).Int64("project_id", id).Msg("deleting project failed")
		respondError(w, err, err.Error())
		return
	}

	if _, err := utils.WriteJSON(w, models.StatusResponse{Status: "ok"}, http.StatusOK); err != nil {
		log.Err(err).Msg("writing response failed")
	}
}
