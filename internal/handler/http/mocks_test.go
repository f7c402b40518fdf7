package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/akarpov/notelink/internal/logger"
	"github.com/akarpov/notelink/internal/service"
	"github.com/akarpov/notelink/models"
	"github.com/stretchr/testify/require"
)

// Fn-field mocks for the service interfaces. Methods without an fn return
// zero values, so each test wires only the calls it cares about.

type mockAuthService struct {
	registerUserFn func(ctx context.Context, request models.RegisterRequest) (models.User, error)
	loginFn        func(ctx context.Context, request models.LoginRequest) (models.Token, error)
	logoutFn       func(ctx context.Context, sessionID string) error
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	if m.registerUserFn != nil {
		return m.registerUserFn(ctx, request)
	}
	return models.User{}, nil
}

func (m *mockAuthService) Login(ctx context.Context, request models.LoginRequest) (models.Token, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, request)
	}
	return models.Token{}, nil
}

func (m *mockAuthService) Logout(ctx context.Context, sessionID string) error {
	if m.logoutFn != nil {
		return m.logoutFn(ctx, sessionID)
	}
	return nil
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn != nil {
		return m.parseTokenFn(ctx, tokenString)
	}
	return models.Token{UserID: 1, SessionID: "session-id"}, nil
}

type mockUserService struct {
	listOtherUsersFn func(ctx context.Context, callerID int64) ([]models.User, error)
	getUserFn        func(ctx context.Context, id int64) (models.User, error)
}

func (m *mockUserService) ListOtherUsers(ctx context.Context, callerID int64) ([]models.User, error) {
	if m.listOtherUsersFn != nil {
		return m.listOtherUsersFn(ctx, callerID)
	}
	return nil, nil
}

func (m *mockUserService) GetUser(ctx context.Context, id int64) (models.User, error) {
	if m.getUserFn != nil {
		return m.getUserFn(ctx, id)
	}
	return models.User{}, nil
}

type mockCategoryService struct {
	createFn      func(ctx context.Context, ownerID int64, request models.CategoryRequest) (models.Category, error)
	listFn        func(ctx context.Context, ownerID int64) ([]models.Category, error)
	listDeletedFn func(ctx context.Context, ownerID int64) ([]models.Category, error)
	getFn         func(ctx context.Context, id, ownerID int64) (models.Category, error)
	updateFn      func(ctx context.Context, id, ownerID int64, request models.CategoryRequest) (models.Category, error)
	deleteFn      func(ctx context.Context, id, ownerID int64) error
	restoreFn     func(ctx context.Context, id, ownerID int64) error
	permanentFn   func(ctx context.Context, id, ownerID int64) error
	bulkDeleteFn  func(ctx context.Context, ownerID int64, ids []int64) (models.BulkDeleteResult, error)
}

func (m *mockCategoryService) CreateCategory(ctx context.Context, ownerID int64, request models.CategoryRequest) (models.Category, error) {
	if m.createFn != nil {
		return m.createFn(ctx, ownerID, request)
	}
	return models.Category{}, nil
}

func (m *mockCategoryService) ListCategories(ctx context.Context, ownerID int64) ([]models.Category, error) {
	if m.listFn != nil {
		return m.listFn(ctx, ownerID)
	}
	return nil, nil
}

func (m *mockCategoryService) ListDeletedCategories(ctx context.Context, ownerID int64) ([]models.Category, error) {
	if m.listDeletedFn != nil {
		return m.listDeletedFn(ctx, ownerID)
	}
	return nil, nil
}

func (m *mockCategoryService) GetCategory(ctx context.Context, id, ownerID int64) (models.Category, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id, ownerID)
	}
	return models.Category{}, nil
}

func (m *mockCategoryService) UpdateCategory(ctx context.Context, id, ownerID int64, request models.CategoryRequest) (models.Category, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, ownerID, request)
	}
	return models.Category{}, nil
}

func (m *mockCategoryService) DeleteCategory(ctx context.Context, id, ownerID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id, ownerID)
	}
	return nil
}

func (m *mockCategoryService) RestoreCategory(ctx context.Context, id, ownerID int64) error {
	if m.restoreFn != nil {
		return m.restoreFn(ctx, id, ownerID)
	}
	return nil
}

func (m *mockCategoryService) PermanentlyDeleteCategory(ctx context.Context, id, ownerID int64) error {
	if m.permanentFn != nil {
		return m.permanentFn(ctx, id, ownerID)
	}
	return nil
}

func (m *mockCategoryService) BulkDeleteCategories(ctx context.Context, ownerID int64, ids []int64) (models.BulkDeleteResult, error) {
	if m.bulkDeleteFn != nil {
		return m.bulkDeleteFn(ctx, ownerID, ids)
	}
	return models.BulkDeleteResult{}, nil
}

type mockFolderService struct {
	createFn  func(ctx context.Context, ownerID int64, request models.FolderRequest) (models.Folder, error)
	listFn    func(ctx context.Context, ownerID int64) ([]models.Folder, error)
	getFn     func(ctx context.Context, id, ownerID int64) (models.Folder, error)
	updateFn  func(ctx context.Context, id, ownerID int64, request models.FolderRequest) (models.Folder, error)
	deleteFn  func(ctx context.Context, id, ownerID int64) error
	restoreFn func(ctx context.Context, id, ownerID int64) error
}

func (m *mockFolderService) CreateFolder(ctx context.Context, ownerID int64, request models.FolderRequest) (models.Folder, error) {
	if m.createFn != nil {
		return m.createFn(ctx, ownerID, request)
	}
	return models.Folder{}, nil
}

func (m *mockFolderService) ListFolders(ctx context.Context, ownerID int64) ([]models.Folder, error) {
	if m.listFn != nil {
		return m.listFn(ctx, ownerID)
	}
	return nil, nil
}

func (m *mockFolderService) GetFolder(ctx context.Context, id, ownerID int64) (models.Folder, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id, ownerID)
	}
	return models.Folder{}, nil
}

func (m *mockFolderService) UpdateFolder(ctx context.Context, id, ownerID int64, request models.FolderRequest) (models.Folder, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, ownerID, request)
	}
	return models.Folder{}, nil
}

func (m *mockFolderService) DeleteFolder(ctx context.Context, id, ownerID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id, ownerID)
	}
	return nil
}

func (m *mockFolderService) RestoreFolder(ctx context.Context, id, ownerID int64) error {
	if m.restoreFn != nil {
		return m.restoreFn(ctx, id, ownerID)
	}
	return nil
}

type mockNoteService struct {
	createFn        func(ctx context.Context, ownerID int64, request models.NoteCreateRequest) (models.Note, error)
	listFn          func(ctx context.Context, ownerID int64) ([]models.Note, error)
	listAllFn       func(ctx context.Context, ownerID int64) ([]models.Note, error)
	getNoteBySlugFn func(ctx context.Context, slug string, requesterID int64) (models.Note, error)
	updateFn        func(ctx context.Context, id, ownerID int64, request models.NoteUpdateRequest) (models.Note, error)
	deleteFn        func(ctx context.Context, id, ownerID int64) error
	restoreFn       func(ctx context.Context, id, ownerID int64) error
}

func (m *mockNoteService) CreateNote(ctx context.Context, ownerID int64, request models.NoteCreateRequest) (models.Note, error) {
	if m.createFn != nil {
		return m.createFn(ctx, ownerID, request)
	}
	return models.Note{}, nil
}

func (m *mockNoteService) ListNotes(ctx context.Context, ownerID int64) ([]models.Note, error) {
	if m.listFn != nil {
		return m.listFn(ctx, ownerID)
	}
	return nil, nil
}

func (m *mockNoteService) ListAllNotes(ctx context.Context, ownerID int64) ([]models.Note, error) {
	if m.listAllFn != nil {
		return m.listAllFn(ctx, ownerID)
	}
	return nil, nil
}

func (m *mockNoteService) GetNoteBySlug(ctx context.Context, slug string, requesterID int64) (models.Note, error) {
	if m.getNoteBySlugFn != nil {
		return m.getNoteBySlugFn(ctx, slug, requesterID)
	}
	return models.Note{}, nil
}

func (m *mockNoteService) UpdateNote(ctx context.Context, id, ownerID int64, request models.NoteUpdateRequest) (models.Note, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, ownerID, request)
	}
	return models.Note{}, nil
}

func (m *mockNoteService) DeleteNote(ctx context.Context, id, ownerID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id, ownerID)
	}
	return nil
}

func (m *mockNoteService) RestoreNote(ctx context.Context, id, ownerID int64) error {
	if m.restoreFn != nil {
		return m.restoreFn(ctx, id, ownerID)
	}
	return nil
}

type mockFriendService struct {
	overviewFn func(ctx context.Context, userID int64) (models.FriendsOverview, error)
	sendFn     func(ctx context.Context, senderID, receiverID int64) (models.FriendRequest, error)
	acceptFn   func(ctx context.Context, receiverID, senderID int64) (models.Friendship, error)
	rejectFn   func(ctx context.Context, receiverID, senderID int64) error
	cancelFn   func(ctx context.Context, senderID, receiverID int64) error
	unfriendFn func(ctx context.Context, userID, friendID int64) error
}

func (m *mockFriendService) Overview(ctx context.Context, userID int64) (models.FriendsOverview, error) {
	if m.overviewFn != nil {
		return m.overviewFn(ctx, userID)
	}
	return models.FriendsOverview{}, nil
}

func (m *mockFriendService) SendFriendRequest(ctx context.Context, senderID, receiverID int64) (models.FriendRequest, error) {
	if m.sendFn != nil {
		return m.sendFn(ctx, senderID, receiverID)
	}
	return models.FriendRequest{}, nil
}

func (m *mockFriendService) AcceptFriendRequest(ctx context.Context, receiverID, senderID int64) (models.Friendship, error) {
	if m.acceptFn != nil {
		return m.acceptFn(ctx, receiverID, senderID)
	}
	return models.Friendship{}, nil
}

func (m *mockFriendService) RejectFriendRequest(ctx context.Context, receiverID, senderID int64) error {
	if m.rejectFn != nil {
		return m.rejectFn(ctx, receiverID, senderID)
	}
	return nil
}

func (m *mockFriendService) CancelFriendRequest(ctx context.Context, senderID, receiverID int64) error {
	if m.cancelFn != nil {
		return m.cancelFn(ctx, senderID, receiverID)
	}
	return nil
}

func (m *mockFriendService) Unfriend(ctx context.Context, userID, friendID int64) error {
	if m.unfriendFn != nil {
		return m.unfriendFn(ctx, userID, friendID)
	}
	return nil
}

// newTestServices builds a service set where every dependency is a benign
// mock; tests override the ones they exercise.
func newTestServices() *service.Services {
	return &service.Services{
		AuthService:     &mockAuthService{},
		UserService:     &mockUserService{},
		CategoryService: &mockCategoryService{},
		FolderService:   &mockFolderService{},
		NoteService:     &mockNoteService{},
		FriendService:   &mockFriendService{},
	}
}

func newTestHandler(t *testing.T, services *service.Services) *Handler {
	t.Helper()
	return NewHandler(services, logger.Nop())
}

// serve runs a request through the full router, middleware included. When
// authed is true a bearer token accepted by the mock AuthService is
// attached.
func serve(t *testing.T, h *Handler, method, target string, body io.Reader, authed bool) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, body)
	if authed {
		req.Header.Set("Authorization", "Bearer test.jwt.token")
	}

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

// envelope is the decoded uniform response shape.
type envelope struct {
	Meta models.Meta     `json:"meta"`
	Data json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}
