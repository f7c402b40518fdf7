package http

import (
	"net/http"

	"github.com/akarpov/notelink/internal/logger"
)

// friendsOverview handles GET /friends: established friendships plus
// pending requests in both directions.
func (h *Handler) friendsOverview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	callerID, ok := principal(r)
	if !ok {
		writeEnvelope(w, http.StatusUnauthorized, msgLoginFirst, nil)
		return
	}

	overview, err := h.services.FriendService.Overview(ctx, callerID)
	if err != nil {
		log.Err(err).Msg("friends overview failed")
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, overview)
}

// sendFriendRequest handles POST /friends/{id}: the caller asks user {id}
// to be friends.
func (h *Handler) sendFriendRequest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	callerID, ok := principal(r)
	if !ok {
		writeEnvelope(w, http.StatusUnauthorized, msgLoginFirst, nil)
		return
	}

	receiverID, err := idParam(r)
	if err != nil {
		writeEnvelope(w, http.StatusNotFound, "User not found", nil)
		return
	}

	request, err := h.services.FriendService.SendFriendRequest(ctx, callerID, receiverID)
	if err != nil {
		log.Err(err).Int64("receiver_id", receiverID).Msg("friend request send failed")
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, request)
}

// acceptFriendRequest handles POST /friends/{id}/accept: the caller
// accepts the pending request from user {id}.
func (h *Handler) acceptFriendRequest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	callerID, ok := principal(r)
	if !ok {
		writeEnvelope(w, http.StatusUnauthorized, msgLoginFirst, nil)
		return
	}

	senderID, err := idParam(r)
	if err != nil {
		writeEnvelope(w, http.StatusNotFound, "Friend request not found", nil)
		return
	}

	friendship, err := h.services.FriendService.AcceptFriendRequest(ctx, callerID, senderID)
	if err != nil {
		log.Err(err).Int64("sender_id", senderID).Msg("friend request accept failed")
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, friendship)
}

// rejectFriendRequest handles POST /friends/{id}/reject: the caller drops
// the pending request from user {id}.
func (h *Handler) rejectFriendRequest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	callerID, ok := principal(r)
	if !ok {
		writeEnvelope(w, http.StatusUnauthorized, msgLoginFirst, nil)
		return
	}

	senderID, err := idParam(r)
	if err != nil {
		writeEnvelope(w, http.StatusNotFound, "Friend request not found", nil)
		return
	}

	if err := h.services.FriendService.RejectFriendRequest(ctx, callerID, senderID); err != nil {
		log.Err(err).Int64("sender_id", senderID).Msg("friend request reject failed")
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, nil)
}

// cancelFriendRequest handles POST /friends/{id}/cancel: the caller takes
// back the pending request they sent to user {id}.
func (h *Handler) cancelFriendRequest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	callerID, ok := principal(r)
	if !ok {
		writeEnvelope(w, http.StatusUnauthorized, msgLoginFirst, nil)
		return
	}

	receiverID, err := idParam(r)
	if err != nil {
		writeEnvelope(w, http.StatusNotFound, "Friend request not found", nil)
		return
	}

	if err := h.services.FriendService.CancelFriendRequest(ctx, callerID, receiverID); err != nil {
		log.Err(err).Int64("receiver_id", receiverID).Msg("friend request cancel failed")
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, nil)
}

// unfriend handles DELETE /friends/{id}: either party removes the
// established friendship.
func (h *Handler) unfriend(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	callerID, ok := principal(r)
	if !ok {
		writeEnvelope(w, http.StatusUnauthorized, msgLoginFirst, nil)
		return
	}

	friendID, err := idParam(r)
	if err != nil {
		writeEnvelope(w, http.StatusNotFound, "Friendship not found", nil)
		return
	}

	if err := h.services.FriendService.Unfriend(ctx, callerID, friendID); err != nil {
		log.Err(err).Int64("friend_id", friendID).Msg("unfriend failed")
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, nil)
}
