package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/akarpov/notelink/internal/logger"
	"github.com/akarpov/notelink/internal/store"
	"github.com/akarpov/notelink/models"
)

// friendService is the concrete implementation of FriendService.
// It drives the two-state relationship machine: a directed pending request
// that either disappears (reject, cancel) or becomes a symmetric
// canonicalized friendship (accept).
type friendService struct {
	friendRepository store.FriendRepository
	userRepository   store.UserRepository
	logger           *logger.Logger
}

// NewFriendService constructs a new FriendService wired to the given
// repositories. The user repository resolves friend ids into full
// accounts for the overview.
func NewFriendService(friendRepository store.FriendRepository, userRepository store.UserRepository, logger *logger.Logger) FriendService {
	return &friendService{
		friendRepository: friendRepository,
		userRepository:   userRepository,
		logger:           logger,
	}
}

// Overview returns the caller's friends plus pending requests in both
// directions.
func (f *friendService) Overview(ctx context.Context, userID int64) (models.FriendsOverview, error) {
	log := logger.FromContext(ctx)

	friendIDs, err := f.friendRepository.ListFriendIDs(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("friend id listing failed")
		return models.FriendsOverview{}, fmt.Errorf("friend id listing failed: %w", err)
	}

	friends, err := f.userRepository.ListUsersByIDs(ctx, friendIDs)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("friend account listing failed")
		return models.FriendsOverview{}, fmt.Errorf("friend account listing failed: %w", err)
	}

	incoming, err := f.friendRepository.ListIncomingRequests(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("incoming request listing failed")
		return models.FriendsOverview{}, fmt.Errorf("incoming request listing failed: %w", err)
	}

	outgoing, err := f.friendRepository.ListOutgoingRequests(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("outgoing request listing failed")
		return models.FriendsOverview{}, fmt.Errorf("outgoing request listing failed: %w", err)
	}

	return models.FriendsOverview{
		FriendList:        friends,
		FriendRequestList: incoming,
		FriendSentList:    outgoing,
	}, nil
}

// SendFriendRequest creates a pending request from sender to receiver.
//
// Gates, applied in order, each short-circuiting:
//  1. sender == receiver -> ErrSelfFriendRequest.
//  2. receiver must exist -> wrapped store.ErrNoUserWasFound otherwise.
//  3. already friends -> ErrAlreadyFriends.
//  4. a pending request in the reverse direction -> ErrFriendRequestAlreadyReceived.
//  5. a pending request in the same direction -> ErrFriendRequestAlreadySent.
//
// The same-direction gate is additionally backed by a unique constraint,
// so a concurrent duplicate still surfaces as
// store.ErrFriendRequestAlreadyExists.
func (f *friendService) SendFriendRequest(ctx context.Context, senderID, receiverID int64) (models.FriendRequest, error) {
	log := logger.FromContext(ctx)

	if senderID == receiverID {
		return models.FriendRequest{}, ErrSelfFriendRequest
	}

	if _, err := f.userRepository.FindUserByID(ctx, receiverID); err != nil {
		log.Err(err).Int64("receiver_id", receiverID).Msg("friend request receiver lookup failed")
		return models.FriendRequest{}, fmt.Errorf("friend request receiver lookup failed: %w", err)
	}

	friends, err := f.friendRepository.AreFriends(ctx, senderID, receiverID)
	if err != nil {
		log.Err(err).Int64("sender_id", senderID).Int64("receiver_id", receiverID).Msg("friendship check failed")
		return models.FriendRequest{}, fmt.Errorf("friendship check failed: %w", err)
	}
	if friends {
		return models.FriendRequest{}, ErrAlreadyFriends
	}

	if _, err := f.friendRepository.FindFriendRequest(ctx, receiverID, senderID); err == nil {
		return models.FriendRequest{}, ErrFriendRequestAlreadyReceived
	} else if !errors.Is(err, store.ErrFriendRequestNotFound) {
		log.Err(err).Int64("sender_id", senderID).Int64("receiver_id", receiverID).Msg("reverse request check failed")
		return models.FriendRequest{}, fmt.Errorf("reverse request check failed: %w", err)
	}

	if _, err := f.friendRepository.FindFriendRequest(ctx, senderID, receiverID); err == nil {
		return models.FriendRequest{}, ErrFriendRequestAlreadySent
	} else if !errors.Is(err, store.ErrFriendRequestNotFound) {
		log.Err(err).Int64("sender_id", senderID).Int64("receiver_id", receiverID).Msg("forward request check failed")
		return models.FriendRequest{}, fmt.Errorf("forward request check failed: %w", err)
	}

	request, err := f.friendRepository.CreateFriendRequest(ctx, senderID, receiverID)
	if err != nil {
		log.Err(err).Int64("sender_id", senderID).Int64("receiver_id", receiverID).Msg("friend request creation failed")
		return models.FriendRequest{}, fmt.Errorf("friend request creation failed: %w", err)
	}

	return request, nil
}

// AcceptFriendRequest converts the pending (senderID -> receiverID)
// request into a friendship. The delete and the insert run in one
// transaction in the repository, so no pending request survives an
// accepted pair. A missing pending request surfaces as a wrapped
// store.ErrFriendRequestNotFound.
func (f *friendService) AcceptFriendRequest(ctx context.Context, receiverID, senderID int64) (models.Friendship, error) {
	log := logger.FromContext(ctx)

	friendship, err := f.friendRepository.AcceptFriendRequest(ctx, senderID, receiverID)
	if err != nil {
		log.Err(err).Int64("sender_id", senderID).Int64("receiver_id", receiverID).Msg("friend request accept failed")
		return models.Friendship{}, fmt.Errorf("friend request accept failed: %w", err)
	}

	return friendship, nil
}

// RejectFriendRequest drops the pending request addressed to the receiver.
func (f *friendService) RejectFriendRequest(ctx context.Context, receiverID, senderID int64) error {
	log := logger.FromContext(ctx)

	if err := f.friendRepository.DeleteFriendRequest(ctx, senderID, receiverID); err != nil {
		log.Err(err).Int64("sender_id", senderID).Int64("receiver_id", receiverID).Msg("friend request reject failed")
		return fmt.Errorf("friend request reject failed: %w", err)
	}

	return nil
}

// CancelFriendRequest drops the pending request the sender issued.
func (f *friendService) CancelFriendRequest(ctx context.Context, senderID, receiverID int64) error {
	log := logger.FromContext(ctx)

	if err := f.friendRepository.DeleteFriendRequest(ctx, senderID, receiverID); err != nil {
		log.Err(err).Int64("sender_id", senderID).Int64("receiver_id", receiverID).Msg("friend request cancel failed")
		return fmt.Errorf("friend request cancel failed: %w", err)
	}

	return nil
}

// Unfriend removes the established friendship between the two users.
// Either party may do it; a missing friendship surfaces as a wrapped
// store.ErrFriendshipNotFound.
func (f *friendService) Unfriend(ctx context.Context, userID, friendID int64) error {
	log := logger.FromContext(ctx)

	if err := f.friendRepository.DeleteFriendship(ctx, userID, friendID); err != nil {
		log.Err(err).Int64("user_id", userID).Int64("friend_id", friendID).Msg("unfriend failed")
		return fmt.Errorf("unfriend failed: %w", err)
	}

	return nil
}
