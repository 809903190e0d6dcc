package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"go-folio/internal/app"
	"go-folio/internal/logger"
	"go-folio/internal/service"
	"go-folio/internal/store"
	"go-folio/internal/utils"
	"go-folio/models"
)

// login authenticates an admin by username and password and returns a signed
// JWT together with the user's public fields. Wrong credentials and unknown
// usernames are indistinguishable to the caller: both answer 401.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Msg("decoding login request failed")
		utils.WriteJSONError(w, app.MsgInvalidRequestBody, http.StatusBadRequest)
		return
	}

	user, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		log.Err(err).Str("username", credentials.Username).Msg("login failed")
		if errors.Is(err, store.ErrNotFound) || errors.Is(err, service.ErrWrongPassword) {
			utils.WriteJSONError(w, app.MsgInvalidCredentials, http.StatusUnauthorized)
			return
		}
		respondError(w, err, err.Error())
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		log.Err(err).Int64("user_id", user.ID).Msg("token creation failed")
		respondError(w, err, "")
		return
	}

	if _, err := utils.WriteJSON(w, models.LoginResponse{Token: token.SignedString, User: user}, http.StatusOK); err != nil {
		log.Err(err).Msg("writing login response failed")
	}
}
