package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when registration fails because the
	// e-mail address is already taken.
	ErrEmailAlreadyExists = errors.New("email has already been taken")

	// ErrUsernameAlreadyExists is returned when registration fails because
	// the username is already taken.
	ErrUsernameAlreadyExists = errors.New("username has already been taken")

	// ErrNoUserWasFound is returned when a query expected to match at least
	// one user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrSessionNotFound is returned when the session behind a presented
	// token does not exist, is revoked, or has expired.
	ErrSessionNotFound = errors.New("session was not found")

	// ErrCategoryAlreadyExists is returned when the caller already owns an
	// Active category with the same name.
	ErrCategoryAlreadyExists = errors.New("category already exists")

	// ErrCategoryNotFound is returned when a category does not resolve for
	// the caller. Non-existence and foreign ownership are deliberately not
	// distinguished.
	ErrCategoryNotFound = errors.New("category was not found")

	// ErrFolderNotFound is returned when a folder does not resolve for the
	// caller.
	ErrFolderNotFound = errors.New("folder was not found")

	// ErrNoteNotFound is returned when a note does not resolve for the
	// caller, including soft-deleted notes on by-slug lookups.
	ErrNoteNotFound = errors.New("note was not found")

	// ErrFriendRequestAlreadyExists is returned when a pending request for
	// the same ordered (sender, receiver) pair already exists.
	ErrFriendRequestAlreadyExists = errors.New("friend request already exists")

	// ErrFriendRequestNotFound is returned when accept/reject/cancel targets
	// a pending request that does not exist.
	ErrFriendRequestNotFound = errors.New("friend request was not found")

	// ErrFriendshipAlreadyExists is returned when the canonical pair is
	// already present in the friendships table.
	ErrFriendshipAlreadyExists = errors.New("friendship already exists")

	// ErrFriendshipNotFound is returned when unfriending a user the caller
	// is not friends with.
	ErrFriendshipNotFound = errors.New("friendship was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommittingTransaction is returned when committing an open
	// transaction fails. The transaction is considered rolled back at this
	// point.
	ErrCommittingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
