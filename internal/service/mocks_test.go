package service

import (
	"context"
	"errors"

	"github.com/akarpov/notelink/internal/store"
	"github.com/akarpov/notelink/models"
)

// Hand-rolled fn-field mocks for the repository interfaces. Every method
// delegates to the corresponding fn when set and returns zero values
// otherwise, so each test configures only what it exercises.

var errStorage = errors.New("storage error")

type mockUserRepository struct {
	createUserFn         func(ctx context.Context, user models.User) (models.User, error)
	findUserByEmailFn    func(ctx context.Context, email string) (models.User, error)
	findUserByUsernameFn func(ctx context.Context, username string) (models.User, error)
	findUserByIDFn       func(ctx context.Context, id int64) (models.User, error)
	listUsersExceptFn    func(ctx context.Context, id int64) ([]models.User, error)
	listUsersByIDsFn     func(ctx context.Context, ids []int64) ([]models.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createUserFn != nil {
		return m.createUserFn(ctx, user)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	if m.findUserByEmailFn != nil {
		return m.findUserByEmailFn(ctx, email)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	if m.findUserByUsernameFn != nil {
		return m.findUserByUsernameFn(ctx, username)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	if m.findUserByIDFn != nil {
		return m.findUserByIDFn(ctx, id)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) ListUsersExcept(ctx context.Context, id int64) ([]models.User, error) {
	if m.listUsersExceptFn != nil {
		return m.listUsersExceptFn(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) ListUsersByIDs(ctx context.Context, ids []int64) ([]models.User, error) {
	if m.listUsersByIDsFn != nil {
		return m.listUsersByIDsFn(ctx, ids)
	}
	return nil, nil
}

type mockSessionRepository struct {
	createSessionFn         func(ctx context.Context, session models.Session) error
	getActiveSessionFn      func(ctx context.Context, id string) (models.Session, error)
	revokeSessionFn         func(ctx context.Context, id string) error
	deleteExpiredSessionsFn func(ctx context.Context) (int64, error)
}

func (m *mockSessionRepository) CreateSession(ctx context.Context, session models.Session) error {
	if m.createSessionFn != nil {
		return m.createSessionFn(ctx, session)
	}
	return nil
}

func (m *mockSessionRepository) GetActiveSession(ctx context.Context, id string) (models.Session, error) {
	if m.getActiveSessionFn != nil {
		return m.getActiveSessionFn(ctx, id)
	}
	return models.Session{}, nil
}

func (m *mockSessionRepository) RevokeSession(ctx context.Context, id string) error {
	if m.revokeSessionFn != nil {
		return m.revokeSessionFn(ctx, id)
	}
	return nil
}

func (m *mockSessionRepository) DeleteExpiredSessions(ctx context.Context) (int64, error) {
	if m.deleteExpiredSessionsFn != nil {
		return m.deleteExpiredSessionsFn(ctx)
	}
	return 0, nil
}

type mockCategoryRepository struct {
	createCategoryFn           func(ctx context.Context, category models.Category) (models.Category, error)
	listCategoriesFn           func(ctx context.Context, ownerID int64, state store.LifecycleState) ([]models.Category, error)
	getCategoryFn              func(ctx context.Context, id, ownerID int64, state store.LifecycleState) (models.Category, error)
	activeCategoryNameExistsFn func(ctx context.Context, ownerID int64, name string) (bool, error)
	updateCategoryFn           func(ctx context.Context, category models.Category) (models.Category, error)
	softDeleteCategoryFn       func(ctx context.Context, id, ownerID int64) error
	restoreCategoryFn          func(ctx context.Context, id, ownerID int64) error
	purgeCategoryFn            func(ctx context.Context, id, ownerID int64) error
	bulkSoftDeleteFn           func(ctx context.Context, ownerID int64, ids []int64) ([]int64, error)
}

func (m *mockCategoryRepository) CreateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	if m.createCategoryFn != nil {
		return m.createCategoryFn(ctx, category)
	}
	return models.Category{}, nil
}

func (m *mockCategoryRepository) ListCategories(ctx context.Context, ownerID int64, state store.LifecycleState) ([]models.Category, error) {
	if m.listCategoriesFn != nil {
		return m.listCategoriesFn(ctx, ownerID, state)
	}
	return nil, nil
}

func (m *mockCategoryRepository) GetCategory(ctx context.Context, id, ownerID int64, state store.LifecycleState) (models.Category, error) {
	if m.getCategoryFn != nil {
		return m.getCategoryFn(ctx, id, ownerID, state)
	}
	return models.Category{}, nil
}

func (m *mockCategoryRepository) ActiveCategoryNameExists(ctx context.Context, ownerID int64, name string) (bool, error) {
	if m.activeCategoryNameExistsFn != nil {
		return m.activeCategoryNameExistsFn(ctx, ownerID, name)
	}
	return false, nil
}

func (m *mockCategoryRepository) UpdateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	if m.updateCategoryFn != nil {
		return m.updateCategoryFn(ctx, category)
	}
	return models.Category{}, nil
}

func (m *mockCategoryRepository) SoftDeleteCategory(ctx context.Context, id, ownerID int64) error {
	if m.softDeleteCategoryFn != nil {
		return m.softDeleteCategoryFn(ctx, id, ownerID)
	}
	return nil
}

func (m *mockCategoryRepository) RestoreCategory(ctx context.Context, id, ownerID int64) error {
	if m.restoreCategoryFn != nil {
		return m.restoreCategoryFn(ctx, id, ownerID)
	}
	return nil
}

func (m *mockCategoryRepository) PurgeCategory(ctx context.Context, id, ownerID int64) error {
	if m.purgeCategoryFn != nil {
		return m.purgeCategoryFn(ctx, id, ownerID)
	}
	return nil
}

func (m *mockCategoryRepository) BulkSoftDeleteCategories(ctx context.Context, ownerID int64, ids []int64) ([]int64, error) {
	if m.bulkSoftDeleteFn != nil {
		return m.bulkSoftDeleteFn(ctx, ownerID, ids)
	}
	return nil, nil
}

type mockFolderRepository struct {
	createFolderFn     func(ctx context.Context, folder models.Folder) (models.Folder, error)
	listFoldersFn      func(ctx context.Context, ownerID int64, state store.LifecycleState) ([]models.Folder, error)
	getFolderFn        func(ctx context.Context, id, ownerID int64, state store.LifecycleState) (models.Folder, error)
	updateFolderFn     func(ctx context.Context, folder models.Folder) (models.Folder, error)
	softDeleteFolderFn func(ctx context.Context, id, ownerID int64) error
	restoreFolderFn    func(ctx context.Context, id, ownerID int64) error
}

func (m *mockFolderRepository) CreateFolder(ctx context.Context, folder models.Folder) (models.Folder, error) {
	if m.createFolderFn != nil {
		return m.createFolderFn(ctx, folder)
	}
	return models.Folder{}, nil
}

func (m *mockFolderRepository) ListFolders(ctx context.Context, ownerID int64, state store.LifecycleState) ([]models.Folder, error) {
	if m.listFoldersFn != nil {
		return m.listFoldersFn(ctx, ownerID, state)
	}
	return nil, nil
}

func (m *mockFolderRepository) GetFolder(ctx context.Context, id, ownerID int64, state store.LifecycleState) (models.Folder, error) {
	if m.getFolderFn != nil {
		return m.getFolderFn(ctx, id, ownerID, state)
	}
	return models.Folder{}, nil
}

func (m *mockFolderRepository) UpdateFolder(ctx context.Context, folder models.Folder) (models.Folder, error) {
	if m.updateFolderFn != nil {
		return m.updateFolderFn(ctx, folder)
	}
	return models.Folder{}, nil
}

func (m *mockFolderRepository) SoftDeleteFolder(ctx context.Context, id, ownerID int64) error {
	if m.softDeleteFolderFn != nil {
		return m.softDeleteFolderFn(ctx, id, ownerID)
	}
	return nil
}

func (m *mockFolderRepository) RestoreFolder(ctx context.Context, id, ownerID int64) error {
	if m.restoreFolderFn != nil {
		return m.restoreFolderFn(ctx, id, ownerID)
	}
	return nil
}

type mockNoteRepository struct {
	createNoteFn     func(ctx context.Context, note models.Note) (models.Note, error)
	listNotesFn      func(ctx context.Context, ownerID int64, state store.LifecycleState) ([]models.Note, error)
	getNoteBySlugFn  func(ctx context.Context, slug string) (models.Note, error)
	getNoteFn        func(ctx context.Context, id, ownerID int64, state store.LifecycleState) (models.Note, error)
	updateNoteFn     func(ctx context.Context, id, ownerID int64, update models.NoteUpdateRequest) (models.Note, error)
	softDeleteNoteFn func(ctx context.Context, id, ownerID int64) error
	restoreNoteFn    func(ctx context.Context, id, ownerID int64) error
}

func (m *mockNoteRepository) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	if m.createNoteFn != nil {
		return m.createNoteFn(ctx, note)
	}
	return models.Note{}, nil
}

func (m *mockNoteRepository) ListNotes(ctx context.Context, ownerID int64, state store.LifecycleState) ([]models.Note, error) {
	if m.listNotesFn != nil {
		return m.listNotesFn(ctx, ownerID, state)
	}
	return nil, nil
}

func (m *mockNoteRepository) GetNoteBySlug(ctx context.Context, slug string) (models.Note, error) {
	if m.getNoteBySlugFn != nil {
		return m.getNoteBySlugFn(ctx, slug)
	}
	return models.Note{}, nil
}

func (m *mockNoteRepository) GetNote(ctx context.Context, id, ownerID int64, state store.LifecycleState) (models.Note, error) {
	if m.getNoteFn != nil {
		return m.getNoteFn(ctx, id, ownerID, state)
	}
	return models.Note{}, nil
}

func (m *mockNoteRepository) UpdateNote(ctx context.Context, id, ownerID int64, update models.NoteUpdateRequest) (models.Note, error) {
	if m.updateNoteFn != nil {
		return m.updateNoteFn(ctx, id, ownerID, update)
	}
	return models.Note{}, nil
}

func (m *mockNoteRepository) SoftDeleteNote(ctx context.Context, id, ownerID int64) error {
	if m.softDeleteNoteFn != nil {
		return m.softDeleteNoteFn(ctx, id, ownerID)
	}
	return nil
}

func (m *mockNoteRepository) RestoreNote(ctx context.Context, id, ownerID int64) error {
	if m.restoreNoteFn != nil {
		return m.restoreNoteFn(ctx, id, ownerID)
	}
	return nil
}

type mockFriendRepository struct {
	createFriendRequestFn func(ctx context.Context, senderID, receiverID int64) (models.FriendRequest, error)
	findFriendRequestFn   func(ctx context.Context, senderID, receiverID int64) (models.FriendRequest, error)
	deleteFriendRequestFn func(ctx context.Context, senderID, receiverID int64) error
	listIncomingFn        func(ctx context.Context, receiverID int64) ([]models.FriendRequest, error)
	listOutgoingFn        func(ctx context.Context, senderID int64) ([]models.FriendRequest, error)
	acceptFriendRequestFn func(ctx context.Context, senderID, receiverID int64) (models.Friendship, error)
	areFriendsFn          func(ctx context.Context, a, b int64) (bool, error)
	deleteFriendshipFn    func(ctx context.Context, a, b int64) error
	listFriendIDsFn       func(ctx context.Context, userID int64) ([]int64, error)
}

func (m *mockFriendRepository) CreateFriendRequest(ctx context.Context, senderID, receiverID int64) (models.FriendRequest, error) {
	if m.createFriendRequestFn != nil {
		return m.createFriendRequestFn(ctx, senderID, receiverID)
	}
	return models.FriendRequest{}, nil
}

func (m *mockFriendRepository) FindFriendRequest(ctx context.Context, senderID, receiverID int64) (models.FriendRequest, error) {
	if m.findFriendRequestFn != nil {
		return m.findFriendRequestFn(ctx, senderID, receiverID)
	}
	return models.FriendRequest{}, store.ErrFriendRequestNotFound
}

func (m *mockFriendRepository) DeleteFriendRequest(ctx context.Context, senderID, receiverID int64) error {
	if m.deleteFriendRequestFn != nil {
		return m.deleteFriendRequestFn(ctx, senderID, receiverID)
	}
	return nil
}

func (m *mockFriendRepository) ListIncomingRequests(ctx context.Context, receiverID int64) ([]models.FriendRequest, error) {
	if m.listIncomingFn != nil {
		return m.listIncomingFn(ctx, receiverID)
	}
	return nil, nil
}

func (m *mockFriendRepository) ListOutgoingRequests(ctx context.Context, senderID int64) ([]models.FriendRequest, error) {
	if m.listOutgoingFn != nil {
		return m.listOutgoingFn(ctx, senderID)
	}
	return nil, nil
}

func (m *mockFriendRepository) AcceptFriendRequest(ctx context.Context, senderID, receiverID int64) (models.Friendship, error) {
	if m.acceptFriendRequestFn != nil {
		return m.acceptFriendRequestFn(ctx, senderID, receiverID)
	}
	return models.Friendship{}, nil
}

func (m *mockFriendRepository) AreFriends(ctx context.Context, a, b int64) (bool, error) {
	if m.areFriendsFn != nil {
		return m.areFriendsFn(ctx, a, b)
	}
	return false, nil
}

func (m *mockFriendRepository) DeleteFriendship(ctx context.Context, a, b int64) error {
	if m.deleteFriendshipFn != nil {
		return m.deleteFriendshipFn(ctx, a, b)
	}
	return nil
}

func (m *mockFriendRepository) ListFriendIDs(ctx context.Context, userID int64) ([]int64, error) {
	if m.listFriendIDsFn != nil {
		return m.listFriendIDsFn(ctx, userID)
	}
	return nil, nil
}

// stubValidator accepts everything unless primed with an error.
type stubValidator struct {
	err error
}

func (s *stubValidator) Validate(_ context.Context, _ any, _ ...string) error {
	return s.err
}
