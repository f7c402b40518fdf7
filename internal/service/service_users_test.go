package service

import (
	"context"
	"testing"

	"github.com/akarpov/notelink/internal/logger"
	"github.com/akarpov/notelink/internal/store"
	"github.com/akarpov/notelink/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUserService(users *mockUserRepository) *userService {
	return &userService{
		userRepository: users,
		logger:         logger.Nop(),
	}
}

func TestUserService_ListOtherUsers(t *testing.T) {
	users := &mockUserRepository{
		listUsersExceptFn: func(_ context.Context, excludedID int64) ([]models.User, error) {
			assert.Equal(t, int64(1), excludedID)
			return []models.User{{ID: 2}, {ID: 3}}, nil
		},
	}
	svc := newTestUserService(users)

	listed, err := svc.ListOtherUsers(context.Background(), 1)

	require.NoError(t, err)
	assert.Len(t, listed, 2)
}

func TestUserService_ListOtherUsers_StorageFailure(t *testing.T) {
	users := &mockUserRepository{
		listUsersExceptFn: func(_ context.Context, _ int64) ([]models.User, error) {
			return nil, errStorage
		},
	}
	svc := newTestUserService(users)

	_, err := svc.ListOtherUsers(context.Background(), 1)

	require.ErrorIs(t, err, errStorage)
}

func TestUserService_GetUser(t *testing.T) {
	users := &mockUserRepository{
		findUserByIDFn: func(_ context.Context, id int64) (models.User, error) {
			return models.User{ID: id, Username: "john"}, nil
		},
	}
	svc := newTestUserService(users)

	user, err := svc.GetUser(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, "john", user.Username)
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	users := &mockUserRepository{
		findUserByIDFn: func(_ context.Context, _ int64) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}
	svc := newTestUserService(users)

	_, err := svc.GetUser(context.Background(), 404)

	require.ErrorIs(t, err, store.ErrNoUserWasFound)
}
