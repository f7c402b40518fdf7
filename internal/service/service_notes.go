package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/akarpov/notelink/internal/logger"
	"github.com/akarpov/notelink/internal/store"
	"github.com/akarpov/notelink/internal/utils"
	"github.com/akarpov/notelink/internal/validators"
	"github.com/akarpov/notelink/models"
)

// noteService is the concrete implementation of NoteService.
// Owner-scoped operations mirror the category and folder services; the
// by-slug lookup is the one path where a note can cross user boundaries,
// guarded by the visibility resolver.
type noteService struct {
	noteRepository   store.NoteRepository
	folderRepository store.FolderRepository
	friendRepository store.FriendRepository
	validator        validators.Validator

	// baseURL is prepended to slugs when rendering the public locator of a
	// note resolved by slug.
	baseURL string

	logger *logger.Logger
}

// NewNoteService constructs a new NoteService. The friend repository is
// consulted by the visibility resolver for friend-only notes; the folder
// repository backs the folder-binding gate on create and update.
func NewNoteService(noteRepository store.NoteRepository, folderRepository store.FolderRepository, friendRepository store.FriendRepository, validator validators.Validator, baseURL string, logger *logger.Logger) NoteService {
	return &noteService{
		noteRepository:   noteRepository,
		folderRepository: folderRepository,
		friendRepository: friendRepository,
		validator:        validator,
		baseURL:          strings.TrimRight(baseURL, "/"),
		logger:           logger,
	}
}

// CreateNote creates a note for the owner.
//
// The slug is always server-generated from the title plus a random suffix.
// When FolderID is present it must resolve to an Active folder of the same
// owner; otherwise store.ErrFolderNotFound is returned.
func (n *noteService) CreateNote(ctx context.Context, ownerID int64, request models.NoteCreateRequest) (models.Note, error) {
	log := logger.FromContext(ctx)

	if err := n.validator.Validate(ctx, request); err != nil {
		log.Err(err).Int64("owner_id", ownerID).Msg("invalid note data provided")
		return models.Note{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if request.FolderID != nil {
		if _, err := n.folderRepository.GetFolder(ctx, *request.FolderID, ownerID, store.Active); err != nil {
			log.Err(err).Int64("owner_id", ownerID).Int64("folder_id", *request.FolderID).Msg("note folder check failed")
			return models.Note{}, fmt.Errorf("note folder check failed: %w", err)
		}
	}

	created, err := n.noteRepository.CreateNote(ctx, models.Note{
		Title:        request.Title,
		Content:      request.Content,
		Slug:         utils.GenerateSlug(request.Title),
		Tags:         request.Tags,
		OwnerID:      ownerID,
		FolderID:     request.FolderID,
		IsPublic:     request.IsPublic,
		IsPrivate:    request.IsPrivate,
		IsFriendOnly: request.IsFriendOnly,
	})
	if err != nil {
		log.Err(err).Int64("owner_id", ownerID).Str("title", request.Title).Msg("note creation failed")
		return models.Note{}, fmt.Errorf("note creation failed: %w", err)
	}

	return created, nil
}

// ListNotes returns the owner's Active notes.
func (n *noteService) ListNotes(ctx context.Context, ownerID int64) ([]models.Note, error) {
	return n.list(ctx, ownerID, store.Active)
}

// ListAllNotes returns the owner's notes in every lifecycle state,
// including soft-deleted ones.
func (n *noteService) ListAllNotes(ctx context.Context, ownerID int64) ([]models.Note, error) {
	return n.list(ctx, ownerID, store.AnyState)
}

func (n *noteService) list(ctx context.Context, ownerID int64, state store.LifecycleState) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	notes, err := n.noteRepository.ListNotes(ctx, ownerID, state)
	if err != nil {
		log.Err(err).Int64("owner_id", ownerID).Msg("note listing failed")
		return nil, fmt.Errorf("note listing failed: %w", err)
	}

	return notes, nil
}

// GetNoteBySlug resolves a note for the requesting user.
//
// Soft-deleted notes are invisible on this path regardless of who asks.
// For notes owned by someone else, the visibility resolver decides between
// access and ErrForbidden. On success the note's Slug field carries the
// fully qualified locator.
func (n *noteService) GetNoteBySlug(ctx context.Context, slug string, requesterID int64) (models.Note, error) {
	log := logger.FromContext(ctx)

	note, err := n.noteRepository.GetNoteBySlug(ctx, slug)
	if err != nil {
		log.Err(err).Str("slug", slug).Msg("note lookup by slug failed")
		return models.Note{}, fmt.Errorf("note lookup by slug failed: %w", err)
	}

	if err := n.resolveAccess(ctx, note, requesterID); err != nil {
		log.Err(err).Str("slug", slug).Int64("requester_id", requesterID).Int64("owner_id", note.OwnerID).Msg("note access denied")
		return models.Note{}, err
	}

	note.Slug = n.baseURL + "/notes/" + note.Slug
	return note, nil
}

// UpdateNote applies the non-nil fields of the request to the owner's
// note. A new folder binding must resolve to an Active folder of the same
// owner.
//
// Visibility flags are resolved against the stored note: the clash check
// covers the merged result, so a partial update cannot leave a note both
// public and private.
func (n *noteService) UpdateNote(ctx context.Context, id, ownerID int64, request models.NoteUpdateRequest) (models.Note, error) {
	log := logger.FromContext(ctx)

	if err := n.validator.Validate(ctx, request); err != nil {
		log.Err(err).Int64("id", id).Msg("invalid note data provided")
		return models.Note{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	note, err := n.noteRepository.GetNote(ctx, id, ownerID, store.Active)
	if err != nil {
		log.Err(err).Int64("id", id).Int64("owner_id", ownerID).Msg("note lookup failed")
		return models.Note{}, fmt.Errorf("note lookup failed: %w", err)
	}

	isPublic, isPrivate := note.IsPublic, note.IsPrivate
	if request.IsPublic != nil {
		isPublic = *request.IsPublic
	}
	if request.IsPrivate != nil {
		isPrivate = *request.IsPrivate
	}
	if isPublic && isPrivate {
		log.Err(validators.ErrVisibilityClash).Int64("id", id).Msg("invalid note data provided")
		return models.Note{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrVisibilityClash)
	}

	if request.FolderID != nil {
		if _, err := n.folderRepository.GetFolder(ctx, *request.FolderID, ownerID, store.Active); err != nil {
			log.Err(err).Int64("owner_id", ownerID).Int64("folder_id", *request.FolderID).Msg("note folder check failed")
			return models.Note{}, fmt.Errorf("note folder check failed: %w", err)
		}
	}

	updated, err := n.noteRepository.UpdateNote(ctx, id, ownerID, request)
	if err != nil {
		log.Err(err).Int64("id", id).Int64("owner_id", ownerID).Msg("note update failed")
		return models.Note{}, fmt.Errorf("note update failed: %w", err)
	}

	return updated, nil
}

// DeleteNote soft-deletes the owner's Active note.
func (n *noteService) DeleteNote(ctx context.Context, id, ownerID int64) error {
	log := logger.FromContext(ctx)

	if err := n.noteRepository.SoftDeleteNote(ctx, id, ownerID); err != nil {
		log.Err(err).Int64("id", id).Int64("owner_id", ownerID).Msg("note soft delete failed")
		return fmt.Errorf("note soft delete failed: %w", err)
	}

	return nil
}

// RestoreNote returns the owner's soft-deleted note to the Active state.
func (n *noteService) RestoreNote(ctx context.Context, id, ownerID int64) error {
	log := logger.FromContext(ctx)

	if err := n.noteRepository.RestoreNote(ctx, id, ownerID); err != nil {
		log.Err(err).Int64("id", id).Int64("owner_id", ownerID).Msg("note restore failed")
		return fmt.Errorf("note restore failed: %w", err)
	}

	return nil
}
