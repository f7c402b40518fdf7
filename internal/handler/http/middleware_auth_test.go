package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/akarpov/notelink/internal/service"
	"github.com/akarpov/notelink/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	h := newTestHandler(t, newTestServices())

	rec := serve(t, h, http.MethodGet, "/notes", nil, false)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), msgLoginFirst)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	h := newTestHandler(t, newTestServices())

	req := httptest.NewRequest(http.MethodGet, "/notes", nil)
	req.Header.Set("Authorization", "Bearer")
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), msgLoginFirst)
}

func TestAuthMiddleware_EmptyToken(t *testing.T) {
	h := newTestHandler(t, newTestServices())

	req := httptest.NewRequest(http.MethodGet, "/notes", nil)
	req.Header.Set("Authorization", "Bearer ")
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	services := newTestServices()
	services.AuthService = &mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{}, service.ErrTokenIsExpiredOrInvalid
		},
	}
	h := newTestHandler(t, services)

	rec := serve(t, h, http.MethodGet, "/notes", nil, true)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), msgLoginFirst)
}

func TestAuthMiddleware_PassesPrincipalDownstream(t *testing.T) {
	services := newTestServices()
	services.AuthService = &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			assert.Equal(t, "test.jwt.token", tokenString)
			return models.Token{UserID: 42, SessionID: "session-42"}, nil
		},
	}

	var gotCaller int64
	services.NoteService = &mockNoteService{
		listFn: func(_ context.Context, ownerID int64) ([]models.Note, error) {
			gotCaller = ownerID
			return []models.Note{}, nil
		},
	}
	h := newTestHandler(t, services)

	rec := serve(t, h, http.MethodGet, "/notes", nil, true)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(42), gotCaller)
}

func TestGetTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{name: "bearer token", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "scheme only", header: "Bearer", wantErr: ErrInvalidAuthorizationHeader},
		{name: "empty token part", header: "Bearer ", wantErr: ErrEmptyToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
