package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/akarpov/notelink/internal/service"
	"github.com/akarpov/notelink/internal/store"
	"github.com/akarpov/notelink/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendFriendRequest_Created(t *testing.T) {
	services := newTestServices()
	services.FriendService = &mockFriendService{
		sendFn: func(_ context.Context, senderID, receiverID int64) (models.FriendRequest, error) {
			assert.Equal(t, int64(1), senderID)
			assert.Equal(t, int64(2), receiverID)
			return models.FriendRequest{ID: 9, SenderID: senderID, ReceiverID: receiverID}, nil
		},
	}
	h := newTestHandler(t, services)

	rec := serve(t, h, http.MethodPost, "/friends/2", nil, true)

	require.Equal(t, http.StatusCreated, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Contains(t, string(env.Data), `"sender_id":1`)
	assert.Contains(t, string(env.Data), `"receiver_id":2`)
}

func TestSendFriendRequest_GateMessages(t *testing.T) {
	tests := []struct {
		name    string
		failure error
		status  int
		message string
	}{
		{"self", service.ErrSelfFriendRequest, http.StatusBadRequest, "You cannot send friend request to yourself"},
		{"already friends", service.ErrAlreadyFriends, http.StatusBadRequest, "You are already friends with this user"},
		{"already sent", service.ErrFriendRequestAlreadySent, http.StatusBadRequest, "You already sent a friend request to this user"},
		{"already received", service.ErrFriendRequestAlreadyReceived, http.StatusBadRequest, "You already received a friend request from this user"},
		{"unknown receiver", store.ErrNoUserWasFound, http.StatusNotFound, "User not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			services := newTestServices()
			services.FriendService = &mockFriendService{
				sendFn: func(_ context.Context, _, _ int64) (models.FriendRequest, error) {
					return models.FriendRequest{}, tt.failure
				},
			}
			h := newTestHandler(t, services)

			rec := serve(t, h, http.MethodPost, "/friends/2", nil, true)

			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.message)
		})
	}
}

func TestAcceptFriendRequest_ReturnsFriendship(t *testing.T) {
	services := newTestServices()
	services.FriendService = &mockFriendService{
		acceptFn: func(_ context.Context, receiverID, senderID int64) (models.Friendship, error) {
			assert.Equal(t, int64(1), receiverID)
			assert.Equal(t, int64(5), senderID)
			lo, hi := models.CanonicalPair(receiverID, senderID)
			return models.Friendship{UserLo: lo, UserHi: hi}, nil
		},
	}
	h := newTestHandler(t, services)

	rec := serve(t, h, http.MethodPost, "/friends/5/accept", nil, true)

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Contains(t, string(env.Data), `"user_lo":1`)
	assert.Contains(t, string(env.Data), `"user_hi":5`)
}

func TestAcceptFriendRequest_NothingPending(t *testing.T) {
	services := newTestServices()
	services.FriendService = &mockFriendService{
		acceptFn: func(_ context.Context, _, _ int64) (models.Friendship, error) {
			return models.Friendship{}, store.ErrFriendRequestNotFound
		},
	}
	h := newTestHandler(t, services)

	rec := serve(t, h, http.MethodPost, "/friends/5/accept", nil, true)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Friend request not found")
}

func TestRejectAndCancel_Routes(t *testing.T) {
	var rejected, cancelled bool
	services := newTestServices()
	services.FriendService = &mockFriendService{
		rejectFn: func(_ context.Context, receiverID, senderID int64) error {
			assert.Equal(t, int64(1), receiverID)
			assert.Equal(t, int64(5), senderID)
			rejected = true
			return nil
		},
		cancelFn: func(_ context.Context, senderID, receiverID int64) error {
			assert.Equal(t, int64(1), senderID)
			assert.Equal(t, int64(5), receiverID)
			cancelled = true
			return nil
		},
	}
	h := newTestHandler(t, services)

	rec := serve(t, h, http.MethodPost, "/friends/5/reject", nil, true)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = serve(t, h, http.MethodPost, "/friends/5/cancel", nil, true)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.True(t, rejected)
	assert.True(t, cancelled)
}

func TestUnfriend_NotFriends(t *testing.T) {
	services := newTestServices()
	services.FriendService = &mockFriendService{
		unfriendFn: func(_ context.Context, _, _ int64) error {
			return store.ErrFriendshipNotFound
		},
	}
	h := newTestHandler(t, services)

	rec := serve(t, h, http.MethodDelete, "/friends/5", nil, true)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Friendship not found")
}

func TestFriendsOverview_Envelope(t *testing.T) {
	services := newTestServices()
	services.FriendService = &mockFriendService{
		overviewFn: func(_ context.Context, userID int64) (models.FriendsOverview, error) {
			assert.Equal(t, int64(1), userID)
			return models.FriendsOverview{
				FriendList:        []models.User{{ID: 2, Username: "alice"}},
				FriendRequestList: []models.FriendRequest{},
				FriendSentList:    []models.FriendRequest{{ID: 11, SenderID: 1, ReceiverID: 5}},
			}, nil
		},
	}
	h := newTestHandler(t, services)

	rec := serve(t, h, http.MethodGet, "/friends", nil, true)

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Contains(t, string(env.Data), `"friendList"`)
	assert.Contains(t, string(env.Data), `"friendRequestList"`)
	assert.Contains(t, string(env.Data), `"friendSentList"`)
}
