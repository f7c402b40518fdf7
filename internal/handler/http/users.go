package http

import (
	"net/http"

	"github.com/akarpov/notelink/internal/logger"
)

// listUsers handles GET /users: every account except the caller's.
func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	callerID, ok := principal(r)
	if !ok {
		writeEnvelope(w, http.StatusUnauthorized, msgLoginFirst, nil)
		return
	}

	users, err := h.services.UserService.ListOtherUsers(ctx, callerID)
	if err != nil {
		log.Err(err).Msg("user listing failed")
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, users)
}

// me handles GET /users/me: the caller's own account.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	callerID, ok := principal(r)
	if !ok {
		writeEnvelope(w, http.StatusUnauthorized, msgLoginFirst, nil)
		return
	}

	user, err := h.services.UserService.GetUser(ctx, callerID)
	if err != nil {
		log.Err(err).Msg("caller lookup failed")
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, user)
}
