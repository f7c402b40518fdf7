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

// friendRepository is the PostgreSQL-backed implementation of
// [FriendRepository]. Friendships are stored once per pair in canonical
// (user_lo < user_hi) order, so symmetric checks need a single lookup.
type friendRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewFriendRepository constructs a [FriendRepository] backed by the
// provided database connection and logger.
func NewFriendRepository(db *DB, logger *logger.Logger) FriendRepository {
	logger.Debug().Msg("creating friend repository")
	return &friendRepository{
		db:     db,
		logger: logger,
	}
}

// CreateFriendRequest inserts a pending request for the ordered pair.
// The UNIQUE(sender_id, receiver_id) constraint maps to
// [ErrFriendRequestAlreadyExists].
func (r *friendRepository) CreateFriendRequest(ctx context.Context, senderID, receiverID int64) (models.FriendRequest, error) {
	log := logger.FromContext(ctx)

	var created models.FriendRequest
	row := r.db.QueryRowContext(ctx, createFriendRequest, senderID, receiverID)
	if err := row.Scan(&created.ID, &created.SenderID, &created.ReceiverID, &created.CreatedAt); err != nil {
		log.Err(err).Str("func", "*friendRepository.CreateFriendRequest").Msg("error creating friend request")

		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.FriendRequest{}, ErrFriendRequestAlreadyExists
		}
		return models.FriendRequest{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// FindFriendRequest returns the pending request for the ordered pair or
// [ErrFriendRequestNotFound].
func (r *friendRepository) FindFriendRequest(ctx context.Context, senderID, receiverID int64) (models.FriendRequest, error) {
	log := logger.FromContext(ctx)

	var found models.FriendRequest
	row := r.db.QueryRowContext(ctx, findFriendRequest, senderID, receiverID)
	if err := row.Scan(&found.ID, &found.SenderID, &found.ReceiverID, &found.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.FriendRequest{}, ErrFriendRequestNotFound
		}
		log.Err(err).Str("func", "*friendRepository.FindFriendRequest").Msg("error scanning friend request row")
		return models.FriendRequest{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}

// DeleteFriendRequest removes the pending request for the ordered pair;
// [ErrFriendRequestNotFound] when no such request exists.
func (r *friendRepository) DeleteFriendRequest(ctx context.Context, senderID, receiverID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteFriendRequest, senderID, receiverID)
	if err != nil {
		log.Err(err).Str("func", "*friendRepository.DeleteFriendRequest").Msg("error deleting friend request")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrFriendRequestNotFound
	}

	return nil
}

// ListIncomingRequests returns the pending requests addressed to the user.
func (r *friendRepository) ListIncomingRequests(ctx context.Context, receiverID int64) ([]models.FriendRequest, error) {
	return r.listRequests(ctx, sq.Eq{"receiver_id": receiverID})
}

// ListOutgoingRequests returns the pending requests the user has sent.
func (r *friendRepository) ListOutgoingRequests(ctx context.Context, senderID int64) ([]models.FriendRequest, error) {
	return r.listRequests(ctx, sq.Eq{"sender_id": senderID})
}

func (r *friendRepository) listRequests(ctx context.Context, where sq.Eq) ([]models.FriendRequest, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select("id", "sender_id", "receiver_id", "created_at").
		From("friend_requests").
		Where(where).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*friendRepository.listRequests").Msg("error listing friend requests")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	requests := make([]models.FriendRequest, 0)
	for rows.Next() {
		var fr models.FriendRequest
		if err := rows.Scan(&fr.ID, &fr.SenderID, &fr.ReceiverID, &fr.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		requests = append(requests, fr)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return requests, nil
}

// AcceptFriendRequest deletes the pending (senderID -> receiverID) row and
// inserts the canonical friendship inside one transaction. Post-condition:
// no pending request remains between the pair in that direction and
// exactly one friendship row exists.
func (r *friendRepository) AcceptFriendRequest(ctx context.Context, senderID, receiverID int64) (models.Friendship, error) {
	log := logger.FromContext(ctx)

	var friendship models.Friendship
	err := r.db.InTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, deleteFriendRequest, senderID, receiverID)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		if affected == 0 {
			return ErrFriendRequestNotFound
		}

		lo, hi := models.CanonicalPair(senderID, receiverID)
		row := tx.QueryRowContext(ctx, createFriendship, lo, hi)
		if err := row.Scan(&friendship.UserLo, &friendship.UserHi, &friendship.CreatedAt); err != nil {
			if postgresError(err) == pgerrcode.UniqueViolation {
				return ErrFriendshipAlreadyExists
			}
			return fmt.Errorf("unexpected DB error: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*friendRepository.AcceptFriendRequest").Msg("error accepting friend request")
		return models.Friendship{}, err
	}

	return friendship, nil
}

// AreFriends reports symmetric friendship membership with a single lookup
// on the canonical pair.
func (r *friendRepository) AreFriends(ctx context.Context, a, b int64) (bool, error) {
	log := logger.FromContext(ctx)

	lo, hi := models.CanonicalPair(a, b)

	var exists bool
	if err := r.db.QueryRowContext(ctx, friendshipExists, lo, hi).Scan(&exists); err != nil {
		log.Err(err).Str("func", "*friendRepository.AreFriends").Msg("error checking friendship")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return exists, nil
}

// DeleteFriendship removes the canonical pair; [ErrFriendshipNotFound]
// when the users are not friends.
func (r *friendRepository) DeleteFriendship(ctx context.Context, a, b int64) error {
	log := logger.FromContext(ctx)

	lo, hi := models.CanonicalPair(a, b)

	result, err := r.db.ExecContext(ctx, deleteFriendship, lo, hi)
	if err != nil {
		log.Err(err).Str("func", "*friendRepository.DeleteFriendship").Msg("error deleting friendship")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrFriendshipNotFound
	}

	return nil
}

// ListFriendIDs returns the ids of every friend of the given user,
// whichever side of the canonical pair they occupy.
func (r *friendRepository) ListFriendIDs(ctx context.Context, userID int64) ([]int64, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listFriendIDs, userID)
	if err != nil {
		log.Err(err).Str("func", "*friendRepository.ListFriendIDs").Msg("error listing friend ids")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return ids, nil
}
