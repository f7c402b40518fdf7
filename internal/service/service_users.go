package service

import (
	"context"
	"fmt"

	"github.com/akarpov/notelink/internal/logger"
	"github.com/akarpov/notelink/internal/store"
	"github.com/akarpov/notelink/models"
)

// userService is the concrete implementation of UserService.
type userService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

// NewUserService constructs a new UserService wired to the given
// UserRepository.
func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// ListOtherUsers returns every account except the caller's, in id order.
// Password hashes never leave the models layer thanks to the `json:"-"` tag,
// but the rows themselves are returned as stored.
func (u *userService) ListOtherUsers(ctx context.Context, callerID int64) ([]models.User, error) {
	log := logger.FromContext(ctx)

	users, err := u.userRepository.ListUsersExcept(ctx, callerID)
	if err != nil {
		log.Err(err).Int64("caller_id", callerID).Msg("user listing failed")
		return nil, fmt.Errorf("user listing failed: %w", err)
	}

	return users, nil
}

// GetUser returns the account with the given id or a wrapped
// store.ErrNoUserWasFound.
func (u *userService) GetUser(ctx context.Context, id int64) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := u.userRepository.FindUserByID(ctx, id)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("user lookup failed")
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	return user, nil
}
