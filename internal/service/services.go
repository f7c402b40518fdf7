package service

import (
	"github.com/akarpov/notelink/internal/config"
	"github.com/akarpov/notelink/internal/logger"
	"github.com/akarpov/notelink/internal/store"
	"github.com/akarpov/notelink/internal/validators"
)

// Services aggregates every business-logic service behind one handle for
// wiring into the HTTP layer.
type Services struct {
	AuthService     AuthService
	UserService     UserService
	CategoryService CategoryService
	FolderService   FolderService
	NoteService     NoteService
	FriendService   FriendService
}

// NewServices wires the full service layer on top of the given storages.
func NewServices(storages store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	validator := validators.NewRequestValidator()

	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, storages.SessionRepository, validator, cfg.Auth, logger),
		UserService:     NewUserService(storages.UserRepository, logger),
		CategoryService: NewCategoryService(storages.CategoryRepository, validator, logger),
		FolderService:   NewFolderService(storages.FolderRepository, validator, logger),
		NoteService:     NewNoteService(storages.NoteRepository, storages.FolderRepository, storages.FriendRepository, validator, cfg.Server.BaseURL, logger),
		FriendService:   NewFriendService(storages.FriendRepository, storages.UserRepository, logger),
	}
}
