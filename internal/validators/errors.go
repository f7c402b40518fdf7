package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidName       = errors.New("name must be between 3 and 100 characters")
	ErrInvalidEmail      = errors.New("a valid email address is required")
	ErrInvalidUsername   = errors.New("username must be between 3 and 50 characters")
	ErrInvalidPassword   = errors.New("password must be at least 8 characters")
	ErrNoLoginIdentifier = errors.New("email or username is required")

	ErrEmptyEntityName   = errors.New("name is required")
	ErrEntityNameTooLong = errors.New("name must be at most 255 characters")
	ErrEmptyTitle        = errors.New("title is required")
	ErrTitleTooLong      = errors.New("title must be at most 255 characters")
	ErrVisibilityClash   = errors.New("a note cannot be both public and private")
	ErrNoFieldsToUpdate  = errors.New("at least one field must be provided for update")
	ErrEmptyIDs          = errors.New("ids list cannot be empty")
	ErrInvalidID         = errors.New("invalid id")
)
