package http

import (
	"encoding/json"
	"net/http"

	"go-folio/internal/app"
	"go-folio/internal/logger"
	"go-folio/internal/utils"
	"go-folio/models"
)

// submitContact accepts a visitor's message. It is the only unauthenticated
// write in the API, so the service layer validates aggressively before the
// message reaches storage.
func (h *Handler) submitContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var message models.ContactMessage
	if err := json.NewDecoder(r.Body).Decode(&message); err != nil {
		log.Err(err).Msg("decoding contact message failed")
		utils.WriteJSONError(w, app.MsgInvalidRequestBody, http.StatusBadRequest)
		return
	}

	saved, err := h.services.ContactService.SubmitMessage(ctx, message)
	if err != nil {
		log.Err(err).Msg("submitting contact message failed")
		respondError(w, err, err.Error())
		return
	}

	if _, err := utils.WriteJSON(w, saved, http.StatusCreated); err != nil {
		log.Err(err).Msg("writing response failed")
	}
}

func (h *Handler) listContactMessages(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	messages, err := h.services.ContactService.ListMessages(ctx)
	if err != nil {
		log.Err(err).Msg("listing contact messages failed")
		respondError(w, err, err.Error())
		return
	}

	if _, err := utils.WriteJSON(w, messages, http.StatusOK); err != nil {
		log.Err(err).Msg("writing response failed")
	}
}
