package models

// RegisterRequest is the body of POST /register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /login. Either Email or Username
// identifies the account; Email wins when both are present.
type LoginRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// CategoryRequest is the body of category create and update calls.
// Flag fields follow the camelCase convention of the public API while
// stored entities serialize in snake_case.
type CategoryRequest struct {
	Name         string `json:"name"`
	IsPublic     bool   `json:"isPublic"`
	IsPrivate    bool   `json:"isPrivate"`
	IsFriendOnly bool   `json:"isFriendOnly"`
}

// FolderRequest is the body of folder create and update calls.
type FolderRequest struct {
	Name         string `json:"name"`
	CategoryID   int64  `json:"categoryId"`
	IsPublic     bool   `json:"isPublic"`
	IsPrivate    bool   `json:"isPrivate"`
	IsFriendOnly bool   `json:"isFriendOnly"`
}

// NoteCreateRequest is the body of POST /notes. The slug is always
// server-generated.
type NoteCreateRequest struct {
	Title        string  `json:"title"`
	Content      string  `json:"content"`
	Tags         TagList `json:"tags"`
	FolderID     *int64  `json:"folderId"`
	IsPublic     bool    `json:"isPublic"`
	IsPrivate    bool    `json:"isPrivate"`
	IsFriendOnly bool    `json:"isFriendOnly"`
}

// NoteUpdateRequest is the body of PUT /notes/{id}. Nil pointer fields are
// left untouched; IsPublic and IsPrivate must not both be set to true.
type NoteUpdateRequest struct {
	Title        *string  `json:"title"`
	Content      *string  `json:"content"`
	Tags         *TagList `json:"tags"`
	FolderID     *int64   `json:"folderId"`
	IsPublic     *bool    `json:"isPublic"`
	IsPrivate    *bool    `json:"isPrivate"`
	IsFriendOnly *bool    `json:"isFriendOnly"`
}

// BulkDeleteRequest is the body of DELETE /bulk-delete/categories.
type BulkDeleteRequest struct {
	ID []int64 `json:"id"`
}

// BulkDeleteResult reports the per-id outcome of a bulk soft delete:
// ids that transitioned and ids that were skipped because they did not
// resolve to an Active entity owned by the caller.
type BulkDeleteResult struct {
	Deleted []int64 `json:"deleted"`
	Skipped []int64 `json:"skipped"`
}
