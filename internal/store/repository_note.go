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

// noteColumns is the canonical column list of the notes table, matching
// the scan order of scanNote.
var noteColumns = []string{
	"id", "title", "content", "slug", "tags", "owner_id", "folder_id",
	"is_public", "is_private", "is_friend_only",
	"is_deleted", "deleted_at", "created_at", "updated_at",
}

// noteRepository is the PostgreSQL-backed implementation of
// [NoteRepository].
type noteRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewNoteRepository constructs a [NoteRepository] backed by the provided
// database connection and logger.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		db:     db,
		logger: logger,
	}
}

func scanNote(row sq.RowScanner) (models.Note, error) {
	var n models.Note
	err := row.Scan(
		&n.ID, &n.Title, &n.Content, &n.Slug, &n.Tags, &n.OwnerID, &n.FolderID,
		&n.IsPublic, &n.IsPrivate, &n.IsFriendOnly,
		&n.IsDeleted, &n.DeletedAt, &n.CreatedAt, &n.UpdatedAt,
	)
	return n, err
}

// CreateNote inserts a new note and returns the stored row. The slug is
// assumed to be pre-generated by the caller; a slug collision surfaces as
// an unexpected DB error since the random suffix makes it practically
// unreachable.
func (r *noteRepository) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Insert("notes").
		Columns("title", "content", "slug", "tags", "owner_id", "folder_id", "is_public", "is_private", "is_friend_only").
		Values(note.Title, note.Content, note.Slug, note.Tags, note.OwnerID, note.FolderID, note.IsPublic, note.IsPrivate, note.IsFriendOnly).
		Suffix("RETURNING " + joinColumns(noteColumns)).
		ToSql()
	if err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanNote(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.CreateNote").Msg("error creating note")

		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return models.Note{}, ErrFolderNotFound
		}
		return models.Note{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// ListNotes returns the owner's notes in the requested lifecycle state,
// ordered by id. AnyState backs the /notes/all index.
func (r *noteRepository) ListNotes(ctx context.Context, ownerID int64, state LifecycleState) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	builder := applyState(
		psql.Select(noteColumns...).
			From("notes").
			Where(sq.Eq{"owner_id": ownerID}),
		state,
	).OrderBy("id")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.ListNotes").Msg("error listing notes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0)
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		notes = append(notes, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return notes, nil
}

// GetNoteBySlug returns the non-deleted note with the given slug,
// regardless of owner; visibility is resolved by the service layer.
// Soft-deleted notes are never resolvable by slug.
func (r *noteRepository) GetNoteBySlug(ctx context.Context, slug string) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select(noteColumns...).
		From("notes").
		Where(sq.Eq{"slug": slug, "is_deleted": false}).
		ToSql()
	if err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	found, err := scanNote(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Note{}, ErrNoteNotFound
		}
		log.Err(err).Str("func", "*noteRepository.GetNoteBySlug").Msg("error scanning note row")
		return models.Note{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}

// GetNote returns the owner's note in the requested state or
// [ErrNoteNotFound].
func (r *noteRepository) GetNote(ctx context.Context, id, ownerID int64, state LifecycleState) (models.Note, error) {
	log := logger.FromContext(ctx)

	builder := applyState(
		psql.Select(noteColumns...).
			From("notes").
			Where(sq.Eq{"id": id, "owner_id": ownerID}),
		state,
	)

	query, args, err := builder.ToSql()
	if err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	found, err := scanNote(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Note{}, ErrNoteNotFound
		}
		log.Err(err).Str("func", "*noteRepository.GetNote").Msg("error scanning note row")
		return models.Note{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}

// UpdateNote applies the non-nil fields of update to the owner's Active
// note and returns the updated row or [ErrNoteNotFound]. The update query
// is built dynamically so that omitted fields stay untouched.
func (r *noteRepository) UpdateNote(ctx context.Context, id, ownerID int64, update models.NoteUpdateRequest) (models.Note, error) {
	log := logger.FromContext(ctx)

	builder := psql.Update("notes").
		Set("updated_at", sq.Expr("now()"))

	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
	}
	if update.Content != nil {
		builder = builder.Set("content", *update.Content)
	}
	if update.Tags != nil {
		builder = builder.Set("tags", *update.Tags)
	}
	if update.FolderID != nil {
		builder = builder.Set("folder_id", *update.FolderID)
	}
	if update.IsPublic != nil {
		builder = builder.Set("is_public", *update.IsPublic)
	}
	if update.IsPrivate != nil {
		builder = builder.Set("is_private", *update.IsPrivate)
	}
	if update.IsFriendOnly != nil {
		builder = builder.Set("is_friend_only", *update.IsFriendOnly)
	}

	query, args, err := builder.
		Where(sq.Eq{"id": id, "owner_id": ownerID, "is_deleted": false}).
		Suffix("RETURNING " + joinColumns(noteColumns)).
		ToSql()
	if err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanNote(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Note{}, ErrNoteNotFound
		}
		log.Err(err).Str("func", "*noteRepository.UpdateNote").Msg("error updating note")

		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return models.Note{}, ErrFolderNotFound
		}
		return models.Note{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

// SoftDeleteNote performs the Active -> SoftDeleted transition.
func (r *noteRepository) SoftDeleteNote(ctx context.Context, id, ownerID int64) error {
	affected, err := r.db.softDeleteRow(ctx, "notes", id, ownerID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNoteNotFound
	}
	return nil
}

// RestoreNote performs the SoftDeleted -> Active transition.
func (r *noteRepository) RestoreNote(ctx context.Context, id, ownerID int64) error {
	affected, err := r.db.restoreRow(ctx, "notes", id, ownerID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNoteNotFound
	}
	return nil
}
