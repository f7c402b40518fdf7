package models

import "time"

// Folder groups notes inside a category. It belongs to one owner and one
// category; the category must be owned by the same user, which is enforced
// by a gate at creation time rather than by a database constraint.
type Folder struct {
	ID           int64      `json:"id"`
	Name         string     `json:"name"`
	OwnerID      int64      `json:"owner_id"`
	CategoryID   int64      `json:"category_id"`
	IsPublic     bool       `json:"is_public"`
	IsPrivate    bool       `json:"is_private"`
	IsFriendOnly bool       `json:"is_friend_only"`
	IsDeleted    bool       `json:"is_deleted"`
	DeletedAt    *time.Time `json:"deleted_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Owner returns the owning user's identifier.
func (f Folder) Owner() int64 {
	return f.OwnerID
}

// TableName returns the name of the database table
// associated with the Folder model.
func (f Folder) TableName() string {
	return "folders"
}
