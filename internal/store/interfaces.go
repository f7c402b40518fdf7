// Package store implements the persistence layer of the application:
// PostgreSQL-backed repositories for users, sessions, categories, folders,
// notes, and the friendship graph.
//
// Repositories return sentinel errors declared in errors.go; ownership is
// part of every scoped query so that "not found" and "not owned" are
// indistinguishable to callers.
package store

import (
	"context"

	"github.com/akarpov/notelink/models"
)

// UserRepository manages user accounts.
type UserRepository interface {
	// CreateUser persists a new account and returns it with server-assigned
	// fields populated. Duplicate e-mail or username yields
	// [ErrEmailAlreadyExists] or [ErrUsernameAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the account with the given e-mail or
	// [ErrNoUserWasFound].
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByUsername returns the account with the given username or
	// [ErrNoUserWasFound].
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// FindUserByID returns the account with the given id or
	// [ErrNoUserWasFound].
	FindUserByID(ctx context.Context, id int64) (models.User, error)

	// ListUsersExcept returns every account except the given one.
	ListUsersExcept(ctx context.Context, id int64) ([]models.User, error)

	// ListUsersByIDs returns the accounts with the given ids, in id order.
	ListUsersByIDs(ctx context.Context, ids []int64) ([]models.User, error)
}

// SessionRepository manages the server-side rows behind issued bearer tokens.
type SessionRepository interface {
	// CreateSession persists a new session row.
	CreateSession(ctx context.Context, session models.Session) error

	// GetActiveSession returns the session with the given id if it is
	// neither revoked nor expired; otherwise [ErrSessionNotFound].
	GetActiveSession(ctx context.Context, id string) (models.Session, error)

	// RevokeSession marks the session revoked. Revoking an unknown session
	// yields [ErrSessionNotFound].
	RevokeSession(ctx context.Context, id string) error

	// DeleteExpiredSessions removes sessions past their expiry and returns
	// the number of rows removed. Used by the background purger.
	DeleteExpiredSessions(ctx context.Context) (int64, error)
}

// CategoryRepository manages categories and their lifecycle transitions.
type CategoryRepository interface {
	CreateCategory(ctx context.Context, category models.Category) (models.Category, error)

	// ListCategories returns the owner's categories in the requested
	// lifecycle state.
	ListCategories(ctx context.Context, ownerID int64, state LifecycleState) ([]models.Category, error)

	// GetCategory returns the owner's category in the requested state or
	// [ErrCategoryNotFound].
	GetCategory(ctx context.Context, id, ownerID int64, state LifecycleState) (models.Category, error)

	// ActiveCategoryNameExists reports whether the owner already has an
	// Active category with the given name.
	ActiveCategoryNameExists(ctx context.Context, ownerID int64, name string) (bool, error)

	UpdateCategory(ctx context.Context, category models.Category) (models.Category, error)

	SoftDeleteCategory(ctx context.Context, id, ownerID int64) error
	RestoreCategory(ctx context.Context, id, ownerID int64) error
	PurgeCategory(ctx context.Context, id, ownerID int64) error

	// BulkSoftDeleteCategories applies the Active -> SoftDeleted transition
	// to every listed id that resolves to an Active category of the owner
	// and returns the ids that actually transitioned.
	BulkSoftDeleteCategories(ctx context.Context, ownerID int64, ids []int64) ([]int64, error)
}

// FolderRepository manages folders and their lifecycle transitions.
type FolderRepository interface {
	// CreateFolder verifies inside a single transaction that the target
	// category is an Active category of the folder's owner, then inserts
	// the folder. A failed check yields [ErrCategoryNotFound].
	CreateFolder(ctx context.Context, folder models.Folder) (models.Folder, error)

	ListFolders(ctx context.Context, ownerID int64, state LifecycleState) ([]models.Folder, error)
	GetFolder(ctx context.Context, id, ownerID int64, state LifecycleState) (models.Folder, error)
	UpdateFolder(ctx context.Context, folder models.Folder) (models.Folder, error)

	SoftDeleteFolder(ctx context.Context, id, ownerID int64) error
	RestoreFolder(ctx context.Context, id, ownerID int64) error
}

// NoteRepository manages notes and their lifecycle transitions.
type NoteRepository interface {
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)

	ListNotes(ctx context.Context, ownerID int64, state LifecycleState) ([]models.Note, error)

	// GetNoteBySlug returns the non-deleted note with the given slug,
	// regardless of owner. Soft-deleted notes yield [ErrNoteNotFound].
	GetNoteBySlug(ctx context.Context, slug string) (models.Note, error)

	GetNote(ctx context.Context, id, ownerID int64, state LifecycleState) (models.Note, error)

	// UpdateNote applies the non-nil fields of update to the owner's note
	// and returns the updated row or [ErrNoteNotFound].
	UpdateNote(ctx context.Context, id, ownerID int64, update models.NoteUpdateRequest) (models.Note, error)

	SoftDeleteNote(ctx context.Context, id, ownerID int64) error
	RestoreNote(ctx context.Context, id, ownerID int64) error
}

// FriendRepository manages the relationship graph: pending requests and
// established (canonicalized) friendships.
type FriendRepository interface {
	// CreateFriendRequest inserts a pending request. A duplicate ordered
	// pair yields [ErrFriendRequestAlreadyExists].
	CreateFriendRequest(ctx context.Context, senderID, receiverID int64) (models.FriendRequest, error)

	// FindFriendRequest returns the pending request for the ordered pair or
	// [ErrFriendRequestNotFound].
	FindFriendRequest(ctx context.Context, senderID, receiverID int64) (models.FriendRequest, error)

	// DeleteFriendRequest removes the pending request for the ordered pair;
	// [ErrFriendRequestNotFound] if none exists.
	DeleteFriendRequest(ctx context.Context, senderID, receiverID int64) error

	ListIncomingRequests(ctx context.Context, receiverID int64) ([]models.FriendRequest, error)
	ListOutgoingRequests(ctx context.Context, senderID int64) ([]models.FriendRequest, error)

	// AcceptFriendRequest deletes the pending (senderID -> receiverID) row
	// and inserts the canonical friendship inside one transaction, so no
	// pending request survives an accepted pair.
	AcceptFriendRequest(ctx context.Context, senderID, receiverID int64) (models.Friendship, error)

	// AreFriends reports symmetric friendship membership.
	AreFriends(ctx context.Context, a, b int64) (bool, error)

	// DeleteFriendship removes the canonical pair;
	// [ErrFriendshipNotFound] if the users are not friends.
	DeleteFriendship(ctx context.Context, a, b int64) error

	// ListFriendIDs returns the ids of every friend of the given user.
	ListFriendIDs(ctx context.Context, userID int64) ([]int64, error)
}
