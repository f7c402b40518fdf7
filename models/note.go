package models

import "time"

// Note is the leaf of the content hierarchy and the only entity exposed to
// other users, subject to the visibility rules. The slug is a unique,
// public-ish locator derived from the title plus a random suffix.
type Note struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`

	// Slug is unique across all notes. Responses to by-slug lookups carry
	// the fully qualified locator (base URL + slug); the stored value is
	// the bare slug.
	Slug string `json:"slug"`

	// Tags is stored as a native text[] column.
	Tags TagList `json:"tags"`

	OwnerID int64 `json:"owner_id"`

	// FolderID is nil for notes that live outside any folder.
	FolderID *int64 `json:"folder_id"`

	IsPublic     bool       `json:"is_public"`
	IsPrivate    bool       `json:"is_private"`
	IsFriendOnly bool       `json:"is_friend_only"`
	IsDeleted    bool       `json:"is_deleted"`
	DeletedAt    *time.Time `json:"deleted_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Owner returns the owning user's identifier.
func (n Note) Owner() int64 {
	return n.OwnerID
}

// TableName returns the name of the database table
// associated with the Note model.
func (n Note) TableName() string {
	return "notes"
}
