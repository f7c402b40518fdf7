package http

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/akarpov/notelink/internal/store"
	"github.com/akarpov/notelink/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFolder_Created(t *testing.T) {
	services := newTestServices()
	services.FolderService = &mockFolderService{
		createFn: func(_ context.Context, ownerID int64, request models.FolderRequest) (models.Folder, error) {
			assert.Equal(t, int64(1), ownerID)
			assert.Equal(t, int64(10), request.CategoryID)
			return models.Folder{ID: 3, Name: request.Name, OwnerID: ownerID, CategoryID: request.CategoryID}, nil
		},
	}
	h := newTestHandler(t, services)

	body := `{"name":"Drafts","categoryId":10,"isPrivate":true}`
	rec := serve(t, h, http.MethodPost, "/folders", strings.NewReader(body), true)

	require.Equal(t, http.StatusCreated, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Contains(t, string(env.Data), `"name":"Drafts"`)
}

func TestCreateFolder_UnknownCategory(t *testing.T) {
	services := newTestServices()
	services.FolderService = &mockFolderService{
		createFn: func(_ context.Context, _ int64, _ models.FolderRequest) (models.Folder, error) {
			return models.Folder{}, store.ErrCategoryNotFound
		},
	}
	h := newTestHandler(t, services)

	rec := serve(t, h, http.MethodPost, "/folders", strings.NewReader(`{"name":"Drafts","categoryId":99}`), true)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Category not found")
}

func TestGetFolder_BadIDParam(t *testing.T) {
	h := newTestHandler(t, newTestServices())

	rec := serve(t, h, http.MethodGet, "/folders/not-a-number", nil, true)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Folder not found")
}

func TestUpdateFolder_OK(t *testing.T) {
	services := newTestServices()
	services.FolderService = &mockFolderService{
		updateFn: func(_ context.Context, id, ownerID int64, request models.FolderRequest) (models.Folder, error) {
			assert.Equal(t, int64(3), id)
			assert.Equal(t, int64(1), ownerID)
			return models.Folder{ID: id, Name: request.Name, OwnerID: ownerID}, nil
		},
	}
	h := newTestHandler(t, services)

	rec := serve(t, h, http.MethodPut, "/folders/3", strings.NewReader(`{"name":"Archive"}`), true)

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Contains(t, string(env.Data), `"name":"Archive"`)
}

func TestDeleteAndRestoreFolder_Transitions(t *testing.T) {
	var deleted, restored bool
	services := newTestServices()
	services.FolderService = &mockFolderService{
		deleteFn: func(_ context.Context, id, ownerID int64) error {
			assert.Equal(t, int64(3), id)
			assert.Equal(t, int64(1), ownerID)
			deleted = true
			return nil
		},
		restoreFn: func(_ context.Context, _, _ int64) error {
			restored = true
			return nil
		},
	}
	h := newTestHandler(t, services)

	rec := serve(t, h, http.MethodDelete, "/folders/3", nil, true)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = serve(t, h, http.MethodPost, "/folders/3/restore", nil, true)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.True(t, deleted)
	assert.True(t, restored)
}

func TestRestoreFolder_NotDeleted(t *testing.T) {
	services := newTestServices()
	services.FolderService = &mockFolderService{
		restoreFn: func(_ context.Context, _, _ int64) error {
			return store.ErrFolderNotFound
		},
	}
	h := newTestHandler(t, services)

	rec := serve(t, h, http.MethodPost, "/folders/3/restore", nil, true)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Folder not found")
}
