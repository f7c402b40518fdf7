// Package service implements the business logic of the application:
// account lifecycle, token issuance, content CRUD with soft-delete
// semantics, authorization gates, and the friendship state machine.
//
// Services sit between the HTTP handlers and the store: they validate
// input, enforce gates in a fixed order, and translate repository
// sentinels into domain outcomes. All types are safe for concurrent use;
// state is read-only after construction.
package service

import (
	"context"

	"github.com/akarpov/notelink/models"
)

// AuthService handles registration, credential verification, and the
// bearer-token lifecycle including server-side session revocation.
type AuthService interface {
	// RegisterUser creates a new account from a validated registration
	// payload. The password is hashed before persistence.
	RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error)

	// Login authenticates by email or username (email wins when both are
	// present), opens a session, and returns a signed bearer token.
	Login(ctx context.Context, request models.LoginRequest) (models.Token, error)

	// Logout revokes the session behind the presented token. Tokens bound
	// to the revoked session stop being accepted immediately.
	Logout(ctx context.Context, sessionID string) error

	// ParseToken validates a raw token string and checks that its backing
	// session is still alive. Any failure is normalised to
	// ErrTokenIsExpiredOrInvalid.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// UserService exposes account listings for the social surface.
type UserService interface {
	// ListOtherUsers returns every account except the caller's.
	ListOtherUsers(ctx context.Context, callerID int64) ([]models.User, error)

	// GetUser returns a single account by id.
	GetUser(ctx context.Context, id int64) (models.User, error)
}

// CategoryService manages the top level of the content hierarchy.
type CategoryService interface {
	CreateCategory(ctx context.Context, ownerID int64, request models.CategoryRequest) (models.Category, error)
	ListCategories(ctx context.Context, ownerID int64) ([]models.Category, error)
	ListDeletedCategories(ctx context.Context, ownerID int64) ([]models.Category, error)
	GetCategory(ctx context.Context, id, ownerID int64) (models.Category, error)
	UpdateCategory(ctx context.Context, id, ownerID int64, request models.CategoryRequest) (models.Category, error)
	DeleteCategory(ctx context.Context, id, ownerID int64) error
	RestoreCategory(ctx context.Context, id, ownerID int64) error
	PermanentlyDeleteCategory(ctx context.Context, id, ownerID int64) error

	// BulkDeleteCategories soft-deletes every listed id that resolves to an
	// Active category of the owner and reports the per-id outcome.
	BulkDeleteCategories(ctx context.Context, ownerID int64, ids []int64) (models.BulkDeleteResult, error)
}

// FolderService manages folders inside categories.
type FolderService interface {
	CreateFolder(ctx context.Context, ownerID int64, request models.FolderRequest) (models.Folder, error)
	ListFolders(ctx context.Context, ownerID int64) ([]models.Folder, error)
	GetFolder(ctx context.Context, id, ownerID int64) (models.Folder, error)
	UpdateFolder(ctx context.Context, id, ownerID int64, request models.FolderRequest) (models.Folder, error)
	DeleteFolder(ctx context.Context, id, ownerID int64) error
	RestoreFolder(ctx context.Context, id, ownerID int64) error
}

// NoteService manages notes and resolves shared access by slug.
type NoteService interface {
	CreateNote(ctx context.Context, ownerID int64, request models.NoteCreateRequest) (models.Note, error)
	ListNotes(ctx context.Context, ownerID int64) ([]models.Note, error)

	// ListAllNotes returns the owner's notes in every lifecycle state.
	ListAllNotes(ctx context.Context, ownerID int64) ([]models.Note, error)

	// GetNoteBySlug resolves a note for the requesting user under the
	// visibility rules. The returned note carries the fully qualified
	// locator in its Slug field.
	GetNoteBySlug(ctx context.Context, slug string, requesterID int64) (models.Note, error)

	UpdateNote(ctx context.Context, id, ownerID int64, request models.NoteUpdateRequest) (models.Note, error)
	DeleteNote(ctx context.Context, id, ownerID int64) error
	RestoreNote(ctx context.Context, id, ownerID int64) error
}

// FriendService drives the friendship state machine: pending requests in
// both directions and the established symmetric relation.
type FriendService interface {
	// Overview returns the caller's friends plus pending requests in both
	// directions.
	Overview(ctx context.Context, userID int64) (models.FriendsOverview, error)

	// SendFriendRequest applies the request gates in order (self, already
	// friends, reverse pending, forward pending) and creates the pending
	// request when all pass.
	SendFriendRequest(ctx context.Context, senderID, receiverID int64) (models.FriendRequest, error)

	// AcceptFriendRequest converts the pending (senderID -> receiverID)
	// request into a friendship. Only the receiver may accept.
	AcceptFriendRequest(ctx context.Context, receiverID, senderID int64) (models.Friendship, error)

	// RejectFriendRequest drops the pending request addressed to the
	// receiver.
	RejectFriendRequest(ctx context.Context, receiverID, senderID int64) error

	// CancelFriendRequest drops the pending request the sender issued.
	CancelFriendRequest(ctx context.Context, senderID, receiverID int64) error

	// Unfriend removes an established friendship. Either party may do it.
	Unfriend(ctx context.Context, userID, friendID int64) error
}
