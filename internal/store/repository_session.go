package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/akarpov/notelink/internal/logger"
	"github.com/akarpov/notelink/models"
)

// sessionRepository is the PostgreSQL-backed implementation of
// [SessionRepository]. Sessions back issued bearer tokens; a token is only
// honoured while its session row is unrevoked and unexpired.
type sessionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSessionRepository constructs a [SessionRepository] backed by the
// provided database connection and logger.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		db:     db,
		logger: logger,
	}
}

// CreateSession persists a new session row for a freshly issued token.
func (r *sessionRepository) CreateSession(ctx context.Context, session models.Session) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, createSession, session.ID, session.UserID, session.ExpiresAt); err != nil {
		log.Err(err).Str("func", "*sessionRepository.CreateSession").Msg("error creating session")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// GetActiveSession returns the session with the given id if it is neither
// revoked nor expired; otherwise [ErrSessionNotFound]. The expiry check
// lives in the query so that a stale-but-present row never authenticates.
func (r *sessionRepository) GetActiveSession(ctx context.Context, id string) (models.Session, error) {
	log := logger.FromContext(ctx)

	var found models.Session
	row := r.db.QueryRowContext(ctx, getActiveSession, id)
	if err := row.Scan(&found.ID, &found.UserID, &found.ExpiresAt, &found.Revoked, &found.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Session{}, ErrSessionNotFound
		}
		log.Err(err).Str("func", "*sessionRepository.GetActiveSession").Msg("error scanning session row")
		return models.Session{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}

// RevokeSession marks the session revoked; revoking an already-revoked or
// unknown session yields [ErrSessionNotFound].
func (r *sessionRepository) RevokeSession(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, revokeSession, id)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.RevokeSession").Msg("error revoking session")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrSessionNotFound
	}

	return nil
}

// DeleteExpiredSessions removes sessions past their expiry and returns the
// number of rows removed.
func (r *sessionRepository) DeleteExpiredSessions(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteExpiredSessions)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.DeleteExpiredSessions").Msg("error deleting expired sessions")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return result.RowsAffected()
}
