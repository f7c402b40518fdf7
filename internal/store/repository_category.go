package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/akarpov/notelink/internal/logger"
	"github.com/akarpov/notelink/models"
	"github.com/jackc/pgerrcode"
)

// categoryColumns is the canonical column list of the categories table,
// matching the scan order of scanCategory.
var categoryColumns = []string{
	"id", "name", "owner_id",
	"is_public", "is_private", "is_friend_only",
	"is_deleted", "deleted_at", "created_at", "updated_at",
}

// categoryRepository is the PostgreSQL-backed implementation of
// [CategoryRepository].
type categoryRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCategoryRepository constructs a [CategoryRepository] backed by the
// provided database connection and logger.
func NewCategoryRepository(db *DB, logger *logger.Logger) CategoryRepository {
	logger.Debug().Msg("creating category repository")
	return &categoryRepository{
		db:     db,
		logger: logger,
	}
}

func scanCategory(row sq.RowScanner) (models.Category, error) {
	var c models.Category
	err := row.Scan(
		&c.ID, &c.Name, &c.OwnerID,
		&c.IsPublic, &c.IsPrivate, &c.IsFriendOnly,
		&c.IsDeleted, &c.DeletedAt, &c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}

// CreateCategory inserts a new category and returns the stored row.
// A unique violation on (owner_id, name) maps to [ErrCategoryAlreadyExists].
func (r *categoryRepository) CreateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Insert("categories").
		Columns("name", "owner_id", "is_public", "is_private", "is_friend_only").
		Values(category.Name, category.OwnerID, category.IsPublic, category.IsPrivate, category.IsFriendOnly).
		Suffix("RETURNING " + joinColumns(categoryColumns)).
		ToSql()
	if err != nil {
		return models.Category{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanCategory(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*categoryRepository.CreateCategory").Msg("error creating category")

		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.Category{}, ErrCategoryAlreadyExists
		}
		return models.Category{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// ListCategories returns the owner's categories in the requested lifecycle
// state, ordered by id.
func (r *categoryRepository) ListCategories(ctx context.Context, ownerID int64, state LifecycleState) ([]models.Category, error) {
	log := logger.FromContext(ctx)

	builder := applyState(
		psql.Select(categoryColumns...).
			From("categories").
			Where(sq.Eq{"owner_id": ownerID}),
		state,
	).OrderBy("id")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*categoryRepository.ListCategories").Msg("error listing categories")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	categories := make([]models.Category, 0)
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return categories, nil
}

// GetCategory returns the owner's category in the requested state or
// [ErrCategoryNotFound]. The owner filter is the authorization check.
func (r *categoryRepository) GetCategory(ctx context.Context, id, ownerID int64, state LifecycleState) (models.Category, error) {
	log := logger.FromContext(ctx)

	builder := applyState(
		psql.Select(categoryColumns...).
			From("categories").
			Where(sq.Eq{"id": id, "owner_id": ownerID}),
		state,
	)

	query, args, err := builder.ToSql()
	if err != nil {
		return models.Category{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	found, err := scanCategory(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Category{}, ErrCategoryNotFound
		}
		log.Err(err).Str("func", "*categoryRepository.GetCategory").Msg("error scanning category row")
		return models.Category{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}

// ActiveCategoryNameExists reports whether the owner already has an Active
// category with the given name. Backs the duplicate-category gate.
func (r *categoryRepository) ActiveCategoryNameExists(ctx context.Context, ownerID int64, name string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select("1").
		From("categories").
		Where(sq.Eq{"owner_id": ownerID, "name": name, "is_deleted": false}).
		Prefix("SELECT EXISTS (").Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		log.Err(err).Str("func", "*categoryRepository.ActiveCategoryNameExists").Msg("error checking category name")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return exists, nil
}

// UpdateCategory overwrites name and visibility flags of the owner's
// category and returns the updated row or [ErrCategoryNotFound].
func (r *categoryRepository) UpdateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Update("categories").
		Set("name", category.Name).
		Set("is_public", category.IsPublic).
		Set("is_private", category.IsPrivate).
		Set("is_friend_only", category.IsFriendOnly).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": category.ID, "owner_id": category.OwnerID}).
		Suffix("RETURNING " + joinColumns(categoryColumns)).
		ToSql()
	if err != nil {
		return models.Category{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanCategory(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Category{}, ErrCategoryNotFound
		}
		log.Err(err).Str("func", "*categoryRepository.UpdateCategory").Msg("error updating category")

		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.Category{}, ErrCategoryAlreadyExists
		}
		return models.Category{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

// SoftDeleteCategory performs the Active -> SoftDeleted transition.
func (r *categoryRepository) SoftDeleteCategory(ctx context.Context, id, ownerID int64) error {
	affected, err := r.db.softDeleteRow(ctx, "categories", id, ownerID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

// RestoreCategory performs the SoftDeleted -> Active transition.
func (r *categoryRepository) RestoreCategory(ctx context.Context, id, ownerID int64) error {
	affected, err := r.db.restoreRow(ctx, "categories", id, ownerID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

// PurgeCategory hard-deletes the owner's category in any lifecycle state.
func (r *categoryRepository) PurgeCategory(ctx context.Context, id, ownerID int64) error {
	affected, err := r.db.purgeRow(ctx, "categories", id, ownerID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

// BulkSoftDeleteCategories transitions every listed id that resolves to an
// Active category of the owner in one statement and returns the ids that
// actually transitioned. Ids that are missing, already deleted, or owned
// by someone else are left untouched for the caller to report.
func (r *categoryRepository) BulkSoftDeleteCategories(ctx context.Context, ownerID int64, ids []int64) ([]int64, error) {
	log := logger.FromContext(ctx)

	if len(ids) == 0 {
		return []int64{}, nil
	}

	query, args, err := psql.Update("categories").
		Set("is_deleted", true).
		Set("deleted_at", sq.Expr("now()")).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": ids, "owner_id": ownerID, "is_deleted": false}).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*categoryRepository.BulkSoftDeleteCategories").Msg("error bulk deleting categories")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	deleted := make([]int64, 0, len(ids))
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		deleted = append(deleted, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return deleted, nil
}
