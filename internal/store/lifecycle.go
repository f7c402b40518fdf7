package store

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/akarpov/notelink/internal/logger"
)

// psql is the squirrel statement builder shared by every repository,
// configured for PostgreSQL $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// LifecycleState selects which soft-delete state a read should match.
type LifecycleState int

const (
	// Active matches rows with is_deleted = false.
	Active LifecycleState = iota

	// SoftDeleted matches rows with is_deleted = true.
	SoftDeleted

	// AnyState matches rows regardless of the soft-delete flag.
	AnyState
)

// joinColumns renders a column list for RETURNING clauses.
func joinColumns(cols []string) string {
	return strings.Join(cols, ", ")
}

// applyState appends the is_deleted filter for the requested state.
func applyState(b sq.SelectBuilder, state LifecycleState) sq.SelectBuilder {
	switch state {
	case Active:
		return b.Where(sq.Eq{"is_deleted": false})
	case SoftDeleted:
		return b.Where(sq.Eq{"is_deleted": true})
	default:
		return b
	}
}

// softDeleteRow performs the Active -> SoftDeleted transition on the
// owner's row in the given table. The owner filter doubles as the
// authorization check: rows of other users are simply not matched.
// Returns the number of rows that transitioned.
func (db *DB) softDeleteRow(ctx context.Context, table string, id, ownerID int64) (int64, error) {
	query, args, err := psql.Update(table).
		Set("is_deleted", true).
		Set("deleted_at", sq.Expr("now()")).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "owner_id": ownerID, "is_deleted": false}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return db.execLifecycle(ctx, query, args)
}

// restoreRow performs the SoftDeleted -> Active transition on the owner's
// row in the given table. Returns the number of rows that transitioned.
func (db *DB) restoreRow(ctx context.Context, table string, id, ownerID int64) (int64, error) {
	query, args, err := psql.Update(table).
		Set("is_deleted", false).
		Set("deleted_at", nil).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "owner_id": ownerID, "is_deleted": true}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return db.execLifecycle(ctx, query, args)
}

// purgeRow hard-deletes the owner's row in the given table, bypassing the
// soft-delete state entirely. Returns the number of rows removed.
func (db *DB) purgeRow(ctx context.Context, table string, id, ownerID int64) (int64, error) {
	query, args, err := psql.Delete(table).
		Where(sq.Eq{"id": id, "owner_id": ownerID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return db.execLifecycle(ctx, query, args)
}

func (db *DB) execLifecycle(ctx context.Context, query string, args []any) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("query", query).Msg("error executing lifecycle transition")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return affected, nil
}
