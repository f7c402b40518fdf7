package store

import (
	"context"

	"github.com/akarpov/notelink/internal/config"
	"github.com/akarpov/notelink/internal/logger"
)

// Storages aggregates every repository of the application behind one
// injection point for the service layer.
type Storages struct {
	UserRepository     UserRepository
	SessionRepository  SessionRepository
	CategoryRepository CategoryRepository
	FolderRepository   FolderRepository
	NoteRepository     NoteRepository
	FriendRepository   FriendRepository

	// DB is exposed so the entrypoint can run migrations and close the
	// pool on shutdown.
	DB *DB
}

// NewStorages connects to PostgreSQL and constructs every repository over
// the shared connection pool.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, err
	}

	return &Storages{
		UserRepository:     NewUserRepository(db, logger),
		SessionRepository:  NewSessionRepository(db, logger),
		CategoryRepository: NewCategoryRepository(db, logger),
		FolderRepository:   NewFolderRepository(db, logger),
		NoteRepository:     NewNoteRepository(db, logger),
		FriendRepository:   NewFriendRepository(db, logger),
		DB:                 db,
	}, nil
}
