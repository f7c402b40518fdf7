package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/akarpov/notelink/internal/logger"
	"github.com/akarpov/notelink/internal/service"
	"github.com/akarpov/notelink/internal/store"
	"github.com/akarpov/notelink/internal/utils"
	"github.com/akarpov/notelink/models"
)

// register handles POST /register: creates an account from a JSON payload
// and answers the created user. The password hash never appears in the
// response.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeEnvelope(w, http.StatusBadRequest, "Invalid JSON was passed", nil)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, request)
	if err != nil {
		log.Err(err).Msg("user registration failed")
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, registeredUser)
}

// login handles POST /login: authenticates by email or username and
// answers the signed bearer token. A missing account and a wrong password
// are indistinguishable in the response.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeEnvelope(w, http.StatusBadRequest, "Invalid JSON was passed", nil)
		return
	}

	token, err := h.services.AuthService.Login(ctx, request)
	if err != nil {
		log.Err(err).Msg("user login failed")
		if errors.Is(err, store.ErrNoUserWasFound) || errors.Is(err, service.ErrWrongPassword) {
			writeEnvelope(w, http.StatusBadRequest, "Invalid credentials", nil)
			return
		}
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, token.SignedString)
}

// logout handles POST /logout: revokes the session behind the presented
// token so it stops being accepted immediately.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	sessionID, ok := utils.GetSessionIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no session id in context")
		writeEnvelope(w, http.StatusUnauthorized, msgLoginFirst, nil)
		return
	}

	if err := h.services.AuthService.Logout(ctx, sessionID); err != nil {
		log.Err(err).Msg("logout failed")
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, nil)
}
