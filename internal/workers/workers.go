package workers

import (
	"github.com/akarpov/notelink/internal/config"
	"github.com/akarpov/notelink/internal/logger"
	"github.com/akarpov/notelink/internal/store"
)

type Workers struct {
	workers []Worker
}

// NewWorkers assembles every background worker of the application.
func NewWorkers(storages store.Storages, cfg config.Workers, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			NewSessionPurger(storages.SessionRepository, cfg.SessionPurgeInterval, logger),
		},
	}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
