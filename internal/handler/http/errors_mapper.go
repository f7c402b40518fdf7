package http

import (
	"errors"
	"net/http"

	"github.com/akarpov/notelink/internal/service"
	"github.com/akarpov/notelink/internal/store"
	"github.com/akarpov/notelink/internal/validators"
)

// msgLoginFirst is the message of every 401 response.
const msgLoginFirst = "Please login first"

// errorMapping binds a sentinel error to the status and message of the
// response envelope.
type errorMapping struct {
	target  error
	status  int
	message string
}

// errorMappings is checked in order with errors.Is; the first match wins.
// Field-level validation sentinels come before the generic
// ErrInvalidDataProvided they are wrapped into.
var errorMappings = []errorMapping{
	{validators.ErrInvalidName, http.StatusBadRequest, "Name must be between 3 and 100 characters"},
	{validators.ErrInvalidEmail, http.StatusBadRequest, "A valid email address is required"},
	{validators.ErrInvalidUsername, http.StatusBadRequest, "Username must be between 3 and 50 characters"},
	{validators.ErrInvalidPassword, http.StatusBadRequest, "Password must be at least 8 characters"},
	{validators.ErrNoLoginIdentifier, http.StatusBadRequest, "Email or username is required"},
	{validators.ErrEmptyEntityName, http.StatusBadRequest, "Name is required"},
	{validators.ErrEntityNameTooLong, http.StatusBadRequest, "Name must be at most 255 characters"},
	{validators.ErrEmptyTitle, http.StatusBadRequest, "Title is required"},
	{validators.ErrTitleTooLong, http.StatusBadRequest, "Title must be at most 255 characters"},
	{validators.ErrVisibilityClash, http.StatusBadRequest, "Cannot be both public and private"},
	{validators.ErrNoFieldsToUpdate, http.StatusBadRequest, "At least one field must be provided for update"},
	{validators.ErrEmptyIDs, http.StatusBadRequest, "Ids list cannot be empty"},
	{validators.ErrInvalidID, http.StatusBadRequest, "Invalid id"},
	{service.ErrInvalidDataProvided, http.StatusBadRequest, "Invalid data provided"},

	{service.ErrWrongPassword, http.StatusBadRequest, "Invalid credentials"},
	{service.ErrTokenCreationFailed, http.StatusInternalServerError, "Internal server error"},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, msgLoginFirst},
	{service.ErrForbidden, http.StatusForbidden, "You are not allowed to view this note"},

	{service.ErrSelfFriendRequest, http.StatusBadRequest, "You cannot send friend request to yourself"},
	{service.ErrAlreadyFriends, http.StatusBadRequest, "You are already friends with this user"},
	{service.ErrFriendRequestAlreadySent, http.StatusBadRequest, "You already sent a friend request to this user"},
	{service.ErrFriendRequestAlreadyReceived, http.StatusBadRequest, "You already received a friend request from this user"},

	{store.ErrEmailAlreadyExists, http.StatusBadRequest, "Email already taken"},
	{store.ErrUsernameAlreadyExists, http.StatusBadRequest, "Username already taken"},
	{store.ErrNoUserWasFound, http.StatusNotFound, "User not found"},
	{store.ErrSessionNotFound, http.StatusUnauthorized, msgLoginFirst},
	{store.ErrCategoryAlreadyExists, http.StatusBadRequest, "Category already exists"},
	{store.ErrCategoryNotFound, http.StatusNotFound, "Category not found"},
	{store.ErrFolderNotFound, http.StatusNotFound, "Folder not found"},
	{store.ErrNoteNotFound, http.StatusNotFound, "Note not found"},
	{store.ErrFriendRequestAlreadyExists, http.StatusBadRequest, "You already sent a friend request to this user"},
	{store.ErrFriendRequestNotFound, http.StatusNotFound, "Friend request not found"},
	{store.ErrFriendshipAlreadyExists, http.StatusBadRequest, "You are already friends with this user"},
	{store.ErrFriendshipNotFound, http.StatusNotFound, "Friendship not found"},
}

// mapError resolves a service or storage error into the envelope status
// and message. Unknown errors map to 500 without leaking details.
func mapError(err error) (int, string) {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return m.status, m.message
		}
	}
	return http.StatusInternalServerError, "Internal server error"
}

// writeError writes the envelope for a failed request.
func writeError(w http.ResponseWriter, err error) {
	status, message := mapError(err)
	writeEnvelope(w, status, message, nil)
}
