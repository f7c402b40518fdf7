package models

import "time"

// Category is the top level of the content hierarchy. It belongs to
// exactly one owner and carries the shared visibility flags and the
// soft-delete lifecycle columns.
type Category struct {
	ID           int64      `json:"id"`
	Name         string     `json:"name"`
	OwnerID      int64      `json:"owner_id"`
	IsPublic     bool       `json:"is_public"`
	IsPrivate    bool       `json:"is_private"`
	IsFriendOnly bool       `json:"is_friend_only"`
	IsDeleted    bool       `json:"is_deleted"`
	DeletedAt    *time.Time `json:"deleted_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Owner returns the owning user's identifier.
func (c Category) Owner() int64 {
	return c.OwnerID
}

// TableName returns the name of the database table
// associated with the Category model.
func (c Category) TableName() string {
	return "categories"
}
