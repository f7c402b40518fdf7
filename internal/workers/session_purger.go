package workers

import (
	"context"
	"time"

	"github.com/akarpov/notelink/internal/logger"
	"github.com/akarpov/notelink/internal/store"
)

// SessionPurger periodically removes expired session rows. Expired
// sessions are already rejected at parse time, so the purger only keeps
// the table from growing without bound.
type SessionPurger struct {
	sessionRepository store.SessionRepository
	interval          time.Duration
	logger            *logger.Logger
}

// NewSessionPurger constructs a SessionPurger that fires every interval.
func NewSessionPurger(sessionRepository store.SessionRepository, interval time.Duration, logger *logger.Logger) *SessionPurger {
	return &SessionPurger{
		sessionRepository: sessionRepository,
		interval:          interval,
		logger:            logger,
	}
}

// Run starts the purge loop in a background goroutine and returns
// immediately.
func (p *SessionPurger) Run() {
	go p.loop()
}

func (p *SessionPurger) loop() {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for range ticker.C {
		p.purge()
	}
}

func (p *SessionPurger) purge() {
	ctx := p.logger.WithContext(context.Background())

	removed, err := p.sessionRepository.DeleteExpiredSessions(ctx)
	if err != nil {
		p.logger.Err(err).Msg("expired session purge failed")
		return
	}

	if removed > 0 {
		p.logger.Info().Int64("removed", removed).Msg("expired sessions purged")
	}
}
