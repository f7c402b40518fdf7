package service

import (
	"context"
	"fmt"

	"github.com/akarpov/notelink/internal/logger"
	"github.com/akarpov/notelink/internal/store"
	"github.com/akarpov/notelink/internal/validators"
	"github.com/akarpov/notelink/models"
)

// folderService is the concrete implementation of FolderService.
// Ownership scoping mirrors categoryService: a folder belonging to someone
// else is indistinguishable from a missing one.
type folderService struct {
	folderRepository store.FolderRepository
	validator        validators.Validator
	logger           *logger.Logger
}

// NewFolderService constructs a new FolderService wired to the given
// FolderRepository.
func NewFolderService(folderRepository store.FolderRepository, validator validators.Validator, logger *logger.Logger) FolderService {
	return &folderService{
		folderRepository: folderRepository,
		validator:        validator,
		logger:           logger,
	}
}

// CreateFolder creates a folder inside one of the owner's categories.
//
// The target category must be an Active category of the same owner; the
// check and the insert run inside a single transaction in the repository,
// so a concurrently deleted category cannot admit a new folder. A failed
// check surfaces as store.ErrCategoryNotFound.
func (f *folderService) CreateFolder(ctx context.Context, ownerID int64, request models.FolderRequest) (models.Folder, error) {
	log := logger.FromContext(ctx)

	if err := f.validator.Validate(ctx, request); err != nil {
		log.Err(err).Int64("owner_id", ownerID).Msg("invalid folder data provided")
		return models.Folder{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	created, err := f.folderRepository.CreateFolder(ctx, models.Folder{
		Name:         request.Name,
		OwnerID:      ownerID,
		CategoryID:   request.CategoryID,
		IsPublic:     request.IsPublic,
		IsPrivate:    request.IsPrivate,
		IsFriendOnly: request.IsFriendOnly,
	})
	if err != nil {
		log.Err(err).Int64("owner_id", ownerID).Int64("category_id", request.CategoryID).Msg("folder creation failed")
		return models.Folder{}, fmt.Errorf("folder creation failed: %w", err)
	}

	return created, nil
}

// ListFolders returns the owner's Active folders.
func (f *folderService) ListFolders(ctx context.Context, ownerID int64) ([]models.Folder, error) {
	log := logger.FromContext(ctx)

	folders, err := f.folderRepository.ListFolders(ctx, ownerID, store.Active)
	if err != nil {
		log.Err(err).Int64("owner_id", ownerID).Msg("folder listing failed")
		return nil, fmt.Errorf("folder listing failed: %w", err)
	}

	return folders, nil
}

// GetFolder returns the owner's Active folder or a wrapped
// store.ErrFolderNotFound.
func (f *folderService) GetFolder(ctx context.Context, id, ownerID int64) (models.Folder, error) {
	log := logger.FromContext(ctx)

	folder, err := f.folderRepository.GetFolder(ctx, id, ownerID, store.Active)
	if err != nil {
		log.Err(err).Int64("id", id).Int64("owner_id", ownerID).Msg("folder lookup failed")
		return models.Folder{}, fmt.Errorf("folder lookup failed: %w", err)
	}

	return folder, nil
}

// UpdateFolder applies the request to the owner's folder in any lifecycle
// state. The category binding is immutable after creation; the request's
// CategoryID is ignored here.
func (f *folderService) UpdateFolder(ctx context.Context, id, ownerID int64, request models.FolderRequest) (models.Folder, error) {
	log := logger.FromContext(ctx)

	if err := f.validator.Validate(ctx, request); err != nil {
		log.Err(err).Int64("id", id).Msg("invalid folder data provided")
		return models.Folder{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	folder, err := f.folderRepository.GetFolder(ctx, id, ownerID, store.AnyState)
	if err != nil {
		log.Err(err).Int64("id", id).Int64("owner_id", ownerID).Msg("folder lookup failed")
		return models.Folder{}, fmt.Errorf("folder lookup failed: %w", err)
	}

	folder.Name = request.Name
	folder.IsPublic = request.IsPublic
	folder.IsPrivate = request.IsPrivate
	folder.IsFriendOnly = request.IsFriendOnly

	updated, err := f.folderRepository.UpdateFolder(ctx, folder)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("folder update failed")
		return models.Folder{}, fmt.Errorf("folder update failed: %w", err)
	}

	return updated, nil
}

// DeleteFolder soft-deletes the owner's Active folder.
func (f *folderService) DeleteFolder(ctx context.Context, id, ownerID int64) error {
	log := logger.FromContext(ctx)

	if err := f.folderRepository.SoftDeleteFolder(ctx, id, ownerID); err != nil {
		log.Err(err).Int64("id", id).Int64("owner_id", ownerID).Msg("folder soft delete failed")
		return fmt.Errorf("folder soft delete failed: %w", err)
	}

	return nil
}

// RestoreFolder returns the owner's soft-deleted folder to the Active state.
func (f *folderService) RestoreFolder(ctx context.Context, id, ownerID int64) error {
	log := logger.FromContext(ctx)

	if err := f.folderRepository.RestoreFolder(ctx, id, ownerID); err != nil {
		log.Err(err).Int64("id", id).Int64("owner_id", ownerID).Msg("folder restore failed")
		return fmt.Errorf("folder restore failed: %w", err)
	}

	return nil
}
