package service

import (
	"context"
	"fmt"

	"github.com/akarpov/notelink/internal/logger"
	"github.com/akarpov/notelink/internal/store"
	"github.com/akarpov/notelink/internal/validators"
	"github.com/akarpov/notelink/models"
)

// categoryService is the concrete implementation of CategoryService.
// Every operation is scoped to the owning user; a category belonging to
// someone else is indistinguishable from a missing one.
type categoryService struct {
	categoryRepository store.CategoryRepository
	validator          validators.Validator
	logger             *logger.Logger
}

// NewCategoryService constructs a new CategoryService wired to the given
// CategoryRepository.
func NewCategoryService(categoryRepository store.CategoryRepository, validator validators.Validator, logger *logger.Logger) CategoryService {
	return &categoryService{
		categoryRepository: categoryRepository,
		validator:          validator,
		logger:             logger,
	}
}

// CreateCategory creates a category for the owner.
//
// Gates, in order: payload validation, then per-owner uniqueness of the
// name among Active categories. The uniqueness gate is backed by a
// database constraint, so a concurrent duplicate insert still surfaces as
// store.ErrCategoryAlreadyExists.
func (c *categoryService) CreateCategory(ctx context.Context, ownerID int64, request models.CategoryRequest) (models.Category, error) {
	log := logger.FromContext(ctx)

	if err := c.validator.Validate(ctx, request); err != nil {
		log.Err(err).Int64("owner_id", ownerID).Msg("invalid category data provided")
		return models.Category{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	exists, err := c.categoryRepository.ActiveCategoryNameExists(ctx, ownerID, request.Name)
	if err != nil {
		log.Err(err).Int64("owner_id", ownerID).Msg("category name check failed")
		return models.Category{}, fmt.Errorf("category name check failed: %w", err)
	}
	if exists {
		return models.Category{}, store.ErrCategoryAlreadyExists
	}

	created, err := c.categoryRepository.CreateCategory(ctx, models.Category{
		Name:         request.Name,
		OwnerID:      ownerID,
		IsPublic:     request.IsPublic,
		IsPrivate:    request.IsPrivate,
		IsFriendOnly: request.IsFriendOnly,
	})
	if err != nil {
		log.Err(err).Int64("owner_id", ownerID).Str("name", request.Name).Msg("category creation failed")
		return models.Category{}, fmt.Errorf("category creation failed: %w", err)
	}

	return created, nil
}

// ListCategories returns the owner's Active categories.
func (c *categoryService) ListCategories(ctx context.Context, ownerID int64) ([]models.Category, error) {
	return c.list(ctx, ownerID, store.Active)
}

// ListDeletedCategories returns the owner's soft-deleted categories.
func (c *categoryService) ListDeletedCategories(ctx context.Context, ownerID int64) ([]models.Category, error) {
	return c.list(ctx, ownerID, store.SoftDeleted)
}

func (c *categoryService) list(ctx context.Context, ownerID int64, state store.LifecycleState) ([]models.Category, error) {
	log := logger.FromContext(ctx)

	categories, err := c.categoryRepository.ListCategories(ctx, ownerID, state)
	if err != nil {
		log.Err(err).Int64("owner_id", ownerID).Msg("category listing failed")
		return nil, fmt.Errorf("category listing failed: %w", err)
	}

	return categories, nil
}

// GetCategory returns the owner's Active category or a wrapped
// store.ErrCategoryNotFound.
func (c *categoryService) GetCategory(ctx context.Context, id, ownerID int64) (models.Category, error) {
	log := logger.FromContext(ctx)

	category, err := c.categoryRepository.GetCategory(ctx, id, ownerID, store.Active)
	if err != nil {
		log.Err(err).Int64("id", id).Int64("owner_id", ownerID).Msg("category lookup failed")
		return models.Category{}, fmt.Errorf("category lookup failed: %w", err)
	}

	return category, nil
}

// UpdateCategory applies the request to the owner's category in any
// lifecycle state. A renamed category is still subject to the per-owner
// uniqueness constraint.
func (c *categoryService) UpdateCategory(ctx context.Context, id, ownerID int64, request models.CategoryRequest) (models.Category, error) {
	log := logger.FromContext(ctx)

	if err := c.validator.Validate(ctx, request); err != nil {
		log.Err(err).Int64("id", id).Msg("invalid category data provided")
		return models.Category{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	category, err := c.categoryRepository.GetCategory(ctx, id, ownerID, store.AnyState)
	if err != nil {
		log.Err(err).Int64("id", id).Int64("owner_id", ownerID).Msg("category lookup failed")
		return models.Category{}, fmt.Errorf("category lookup failed: %w", err)
	}

	category.Name = request.Name
	category.IsPublic = request.IsPublic
	category.IsPrivate = request.IsPrivate
	category.IsFriendOnly = request.IsFriendOnly

	updated, err := c.categoryRepository.UpdateCategory(ctx, category)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("category update failed")
		return models.Category{}, fmt.Errorf("category update failed: %w", err)
	}

	return updated, nil
}

// DeleteCategory soft-deletes the owner's Active category.
func (c *categoryService) DeleteCategory(ctx context.Context, id, ownerID int64) error {
	log := logger.FromContext(ctx)

	if err := c.categoryRepository.SoftDeleteCategory(ctx, id, ownerID); err != nil {
		log.Err(err).Int64("id", id).Int64("owner_id", ownerID).Msg("category soft delete failed")
		return fmt.Errorf("category soft delete failed: %w", err)
	}

	return nil
}

// RestoreCategory returns the owner's soft-deleted category to the Active
// state.
func (c *categoryService) RestoreCategory(ctx context.Context, id, ownerID int64) error {
	log := logger.FromContext(ctx)

	if err := c.categoryRepository.RestoreCategory(ctx, id, ownerID); err != nil {
		log.Err(err).Int64("id", id).Int64("owner_id", ownerID).Msg("category restore failed")
		return fmt.Errorf("category restore failed: %w", err)
	}

	return nil
}

// PermanentlyDeleteCategory removes the owner's category row entirely.
// There is no way back from this transition.
func (c *categoryService) PermanentlyDeleteCategory(ctx context.Context, id, ownerID int64) error {
	log := logger.FromContext(ctx)

	if err := c.categoryRepository.PurgeCategory(ctx, id, ownerID); err != nil {
		log.Err(err).Int64("id", id).Int64("owner_id", ownerID).Msg("category permanent delete failed")
		return fmt.Errorf("category permanent delete failed: %w", err)
	}

	return nil
}

// BulkDeleteCategories soft-deletes every listed id that resolves to an
// Active category of the owner. Ids that do not resolve (missing, not
// owned, already deleted) are reported as skipped rather than failing the
// whole batch.
func (c *categoryService) BulkDeleteCategories(ctx context.Context, ownerID int64, ids []int64) (models.BulkDeleteResult, error) {
	log := logger.FromContext(ctx)

	if err := c.validator.Validate(ctx, models.BulkDeleteRequest{ID: ids}); err != nil {
		log.Err(err).Int64("owner_id", ownerID).Msg("invalid bulk delete data provided")
		return models.BulkDeleteResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	deleted, err := c.categoryRepository.BulkSoftDeleteCategories(ctx, ownerID, ids)
	if err != nil {
		log.Err(err).Int64("owner_id", ownerID).Ints64("ids", ids).Msg("bulk category delete failed")
		return models.BulkDeleteResult{}, fmt.Errorf("bulk category delete failed: %w", err)
	}

	deletedSet := make(map[int64]struct{}, len(deleted))
	for _, id := range deleted {
		deletedSet[id] = struct{}{}
	}

	result := models.BulkDeleteResult{
		Deleted: make([]int64, 0, len(deleted)),
		Skipped: make([]int64, 0, len(ids)-len(deleted)),
	}
	for _, id := range ids {
		if _, ok := deletedSet[id]; ok {
			result.Deleted = append(result.Deleted, id)
		} else {
			result.Skipped = append(result.Skipped, id)
		}
	}

	return result, nil
}
