package validators

import (
	"context"
	"net/mail"
	"unicode/utf8"

	"github.com/akarpov/notelink/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate or internal validation methods
// to restrict validation to a subset of fields (field-level scoping).
const (
	// FieldName targets the display name of an account.
	FieldName = "name"

	// FieldEmail targets the email address of an account.
	FieldEmail = "email"

	// FieldUsername targets the unique handle of an account.
	FieldUsername = "username"

	// FieldPassword targets the plaintext password of a register or login request.
	FieldPassword = "password"

	// FieldLoginIdentifier enforces that a login request carries at least
	// one of email or username.
	FieldLoginIdentifier = "login identifier"

	// FieldEntityName targets the name of a category or folder.
	FieldEntityName = "entity name"

	// FieldTitle targets the title of a note.
	FieldTitle = "title"

	// FieldVisibility enforces that the public and private flags are not
	// both set on the same entity.
	FieldVisibility = "visibility"

	// FieldIDs targets the id list of a bulk delete request.
	FieldIDs = "ids"
)

// Account field length limits.
const (
	minNameLength     = 3
	maxNameLength     = 100
	minUsernameLength = 3
	maxUsernameLength = 50
	minPasswordLength = 8
	maxEntityNameLen  = 255
	maxTitleLength    = 255
)

// RequestValidator implements the Validator interface for every inbound
// request model: RegisterRequest, LoginRequest, CategoryRequest,
// FolderRequest, NoteCreateRequest, NoteUpdateRequest, and
// BulkDeleteRequest.
//
// It supports both value and pointer receivers for every model type
// and allows optional field-level scoping via variadic field name arguments.
type RequestValidator struct {
}

// NewRequestValidator constructs a new RequestValidator
// and returns it as the Validator interface.
func NewRequestValidator() Validator {
	return &RequestValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms of each
// supported model are accepted.
//
// Returns ErrUnsupportedType if obj does not match any known model.
// Optional fields restrict validation to the named subset; when omitted,
// a sensible default set of fields is validated.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegisterRequest(ctx, value, fields...)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(ctx, *value, fields...)

	case models.LoginRequest:
		return v.validateLoginRequest(ctx, value, fields...)
	case *models.LoginRequest:
		return v.validateLoginRequest(ctx, *value, fields...)

	case models.CategoryRequest:
		return v.validateNamedEntityRequest(ctx, value.Name, value.IsPublic, value.IsPrivate, fields...)
	case *models.CategoryRequest:
		return v.validateNamedEntityRequest(ctx, value.Name, value.IsPublic, value.IsPrivate, fields...)

	case models.FolderRequest:
		return v.validateNamedEntityRequest(ctx, value.Name, value.IsPublic, value.IsPrivate, fields...)
	case *models.FolderRequest:
		return v.validateNamedEntityRequest(ctx, value.Name, value.IsPublic, value.IsPrivate, fields...)

	case models.NoteCreateRequest:
		return v.validateNoteCreateRequest(ctx, value, fields...)
	case *models.NoteCreateRequest:
		return v.validateNoteCreateRequest(ctx, *value, fields...)

	case models.NoteUpdateRequest:
		return v.validateNoteUpdateRequest(ctx, value, fields...)
	case *models.NoteUpdateRequest:
		return v.validateNoteUpdateRequest(ctx, *value, fields...)

	case models.BulkDeleteRequest:
		return v.validateBulkDeleteRequest(ctx, value, fields...)
	case *models.BulkDeleteRequest:
		return v.validateBulkDeleteRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// isValidEmail reports whether s parses as a bare RFC 5322 address
// without a display name.
func isValidEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

// validateRegisterRequest validates a RegisterRequest.
//
// Default validated fields (when none specified):
// Name, Email, Username, Password.
//
// Returns the first encountered validation error or nil.
func (v *RequestValidator) validateRegisterRequest(ctx context.Context, request models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if n := utf8.RuneCountInString(request.Name); n < minNameLength || n > maxNameLength {
				return ErrInvalidName
			}
		case FieldEmail:
			if !isValidEmail(request.Email) {
				return ErrInvalidEmail
			}
		case FieldUsername:
			if n := utf8.RuneCountInString(request.Username); n < minUsernameLength || n > maxUsernameLength {
				return ErrInvalidUsername
			}
		case FieldPassword:
			if utf8.RuneCountInString(request.Password) < minPasswordLength {
				return ErrInvalidPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateLoginRequest validates a LoginRequest.
//
// Default validated fields: LoginIdentifier, Password. The identifier
// check only requires presence; existence is the service's concern.
func (v *RequestValidator) validateLoginRequest(ctx context.Context, request models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLoginIdentifier, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldLoginIdentifier:
			if request.Email == "" && request.Username == "" {
				return ErrNoLoginIdentifier
			}
		case FieldPassword:
			if request.Password == "" {
				return ErrInvalidPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateNamedEntityRequest validates the shared shape of category and
// folder requests: a mandatory bounded name and non-clashing visibility
// flags.
//
// Default validated fields: EntityName, Visibility.
func (v *RequestValidator) validateNamedEntityRequest(ctx context.Context, name string, isPublic, isPrivate bool, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEntityName, FieldVisibility}
	}

	for _, f := range fields {
		switch f {
		case FieldEntityName:
			if name == "" {
				return ErrEmptyEntityName
			}
			if utf8.RuneCountInString(name) > maxEntityNameLen {
				return ErrEntityNameTooLong
			}
		case FieldVisibility:
			if isPublic && isPrivate {
				return ErrVisibilityClash
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateNoteCreateRequest validates a NoteCreateRequest.
//
// Default validated fields: Title, Visibility.
func (v *RequestValidator) validateNoteCreateRequest(ctx context.Context, request models.NoteCreateRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldVisibility}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if request.Title == "" {
				return ErrEmptyTitle
			}
			if utf8.RuneCountInString(request.Title) > maxTitleLength {
				return ErrTitleTooLong
			}
		case FieldVisibility:
			if request.IsPublic && request.IsPrivate {
				return ErrVisibilityClash
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateNoteUpdateRequest validates a NoteUpdateRequest.
//
// Field-level checks for Title only trigger when the pointer is non-nil
// (partial update semantics: nil means "do not touch"). The visibility
// clash check applies to flags present in the request; flags resolved
// against the stored entity are the service's concern.
//
// After field-level checks, an additional structural rule is enforced:
// at least one field must be non-nil. Returns ErrNoFieldsToUpdate otherwise.
func (v *RequestValidator) validateNoteUpdateRequest(ctx context.Context, request models.NoteUpdateRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldVisibility}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if request.Title != nil {
				if *request.Title == "" {
					return ErrEmptyTitle
				}
				if utf8.RuneCountInString(*request.Title) > maxTitleLength {
					return ErrTitleTooLong
				}
			}
		case FieldVisibility:
			if request.IsPublic != nil && request.IsPrivate != nil && *request.IsPublic && *request.IsPrivate {
				return ErrVisibilityClash
			}
		default:
			return ErrUnknownField
		}
	}

	if request.Title == nil && request.Content == nil && request.Tags == nil && request.FolderID == nil &&
		request.IsPublic == nil && request.IsPrivate == nil && request.IsFriendOnly == nil {
		return ErrNoFieldsToUpdate
	}

	return nil
}

// validateBulkDeleteRequest validates a BulkDeleteRequest.
//
// Default validated fields: IDs. Every id must be positive.
func (v *RequestValidator) validateBulkDeleteRequest(ctx context.Context, request models.BulkDeleteRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldIDs}
	}

	for _, f := range fields {
		switch f {
		case FieldIDs:
			if len(request.ID) == 0 {
				return ErrEmptyIDs
			}
			for _, id := range request.ID {
				if id <= 0 {
					return ErrInvalidID
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
