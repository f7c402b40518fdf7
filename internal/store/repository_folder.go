package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/akarpov/notelink/internal/logger"
	"github.com/akarpov/notelink/models"
)

// folderColumns is the canonical column list of the folders table,
// matching the scan order of scanFolder.
var folderColumns = []string{
	"id", "name", "owner_id", "category_id",
	"is_public", "is_private", "is_friend_only",
	"is_deleted", "deleted_at", "created_at", "updated_at",
}

// folderRepository is the PostgreSQL-backed implementation of
// [FolderRepository].
type folderRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewFolderRepository constructs a [FolderRepository] backed by the
// provided database connection and logger.
func NewFolderRepository(db *DB, logger *logger.Logger) FolderRepository {
	logger.Debug().Msg("creating folder repository")
	return &folderRepository{
		db:     db,
		logger: logger,
	}
}

func scanFolder(row sq.RowScanner) (models.Folder, error) {
	var f models.Folder
	err := row.Scan(
		&f.ID, &f.Name, &f.OwnerID, &f.CategoryID,
		&f.IsPublic, &f.IsPrivate, &f.IsFriendOnly,
		&f.IsDeleted, &f.DeletedAt, &f.CreatedAt, &f.UpdatedAt,
	)
	return f, err
}

// CreateFolder verifies that the target category is an Active category of
// the folder's owner and inserts the folder. Check and insert run in one
// transaction so a concurrent category delete cannot slip between them.
// A failed check yields [ErrCategoryNotFound].
func (r *folderRepository) CreateFolder(ctx context.Context, folder models.Folder) (models.Folder, error) {
	log := logger.FromContext(ctx)

	var created models.Folder
	err := r.db.InTx(ctx, func(tx *sql.Tx) error {
		checkQuery, checkArgs, err := psql.Select("1").
			From("categories").
			Where(sq.Eq{"id": folder.CategoryID, "owner_id": folder.OwnerID, "is_deleted": false}).
			Suffix("FOR SHARE").
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		var one int
		if err := tx.QueryRowContext(ctx, checkQuery, checkArgs...).Scan(&one); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrCategoryNotFound
			}
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		insertQuery, insertArgs, err := psql.Insert("folders").
			Columns("name", "owner_id", "category_id", "is_public", "is_private", "is_friend_only").
			Values(folder.Name, folder.OwnerID, folder.CategoryID, folder.IsPublic, folder.IsPrivate, folder.IsFriendOnly).
			Suffix("RETURNING " + joinColumns(folderColumns)).
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		created, err = scanFolder(tx.QueryRowContext(ctx, insertQuery, insertArgs...))
		if err != nil {
			return fmt.Errorf("unexpected DB error: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*folderRepository.CreateFolder").Msg("error creating folder")
		return models.Folder{}, err
	}

	return created, nil
}

// ListFolders returns the owner's folders in the requested lifecycle
// state, ordered by id.
func (r *folderRepository) ListFolders(ctx context.Context, ownerID int64, state LifecycleState) ([]models.Folder, error) {
	log := logger.FromContext(ctx)

	builder := applyState(
		psql.Select(folderColumns...).
			From("folders").
			Where(sq.Eq{"owner_id": ownerID}),
		state,
	).OrderBy("id")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*folderRepository.ListFolders").Msg("error listing folders")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	folders := make([]models.Folder, 0)
	for rows.Next() {
		f, err := scanFolder(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		folders = append(folders, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return folders, nil
}

// GetFolder returns the owner's folder in the requested state or
// [ErrFolderNotFound].
func (r *folderRepository) GetFolder(ctx context.Context, id, ownerID int64, state LifecycleState) (models.Folder, error) {
	log := logger.FromContext(ctx)

	builder := applyState(
		psql.Select(folderColumns...).
			From("folders").
			Where(sq.Eq{"id": id, "owner_id": ownerID}),
		state,
	)

	query, args, err := builder.ToSql()
	if err != nil {
		return models.Folder{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	found, err := scanFolder(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Folder{}, ErrFolderNotFound
		}
		log.Err(err).Str("func", "*folderRepository.GetFolder").Msg("error scanning folder row")
		return models.Folder{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}

// UpdateFolder overwrites name and visibility flags of the owner's folder
// and returns the updated row or [ErrFolderNotFound]. The category binding
// is immutable after creation.
func (r *folderRepository) UpdateFolder(ctx context.Context, folder models.Folder) (models.Folder, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Update("folders").
		Set("name", folder.Name).
		Set("is_public", folder.IsPublic).
		Set("is_private", folder.IsPrivate).
		Set("is_friend_only", folder.IsFriendOnly).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": folder.ID, "owner_id": folder.OwnerID}).
		Suffix("RETURNING " + joinColumns(folderColumns)).
		ToSql()
	if err != nil {
		return models.Folder{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanFolder(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Folder{}, ErrFolderNotFound
		}
		log.Err(err).Str("func", "*folderRepository.UpdateFolder").Msg("error updating folder")
		return models.Folder{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

// SoftDeleteFolder performs the Active -> SoftDeleted transition.
func (r *folderRepository) SoftDeleteFolder(ctx context.Context, id, ownerID int64) error {
	affected, err := r.db.softDeleteRow(ctx, "folders", id, ownerID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrFolderNotFound
	}
	return nil
}

// RestoreFolder performs the SoftDeleted -> Active transition.
func (r *folderRepository) RestoreFolder(ctx context.Context, id, ownerID int64) error {
	affected, err := r.db.restoreRow(ctx, "folders", id, ownerID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrFolderNotFound
	}
	return nil
}
