package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/akarpov/notelink/internal/logger"
	"github.com/akarpov/notelink/models"
)

type mockSessionRepository struct {
	deleteExpiredSessionsFn func(ctx context.Context) (int64, error)
}

func (m *mockSessionRepository) CreateSession(ctx context.Context, session models.Session) error {
	return nil
}

func (m *mockSessionRepository) GetActiveSession(ctx context.Context, id string) (models.Session, error) {
	return models.Session{}, nil
}

func (m *mockSessionRepository) RevokeSession(ctx context.Context, id string) error {
	return nil
}

func (m *mockSessionRepository) DeleteExpiredSessions(ctx context.Context) (int64, error) {
	if m.deleteExpiredSessionsFn != nil {
		return m.deleteExpiredSessionsFn(ctx)
	}
	return 0, nil
}

func TestSessionPurger_PurgeDelegates(t *testing.T) {
	var calls int
	sessions := &mockSessionRepository{
		deleteExpiredSessionsFn: func(_ context.Context) (int64, error) {
			calls++
			return 3, nil
		},
	}

	purger := NewSessionPurger(sessions, time.Hour, logger.Nop())
	purger.purge()

	if calls != 1 {
		t.Errorf("DeleteExpiredSessions called %d times, want 1", calls)
	}
}

func TestSessionPurger_PurgeSwallowsStorageError(t *testing.T) {
	sessions := &mockSessionRepository{
		deleteExpiredSessionsFn: func(_ context.Context) (int64, error) {
			return 0, errors.New("connection reset")
		},
	}

	purger := NewSessionPurger(sessions, time.Hour, logger.Nop())

	// A failed purge must not panic; the next tick simply retries.
	purger.purge()
}
