package http

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/akarpov/notelink/internal/service"
	"github.com/akarpov/notelink/internal/store"
	"github.com/akarpov/notelink/internal/validators"
	"github.com/akarpov/notelink/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// wrapInvalid mirrors how services wrap validator sentinels.
func wrapInvalid(err error) error {
	return fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err)
}

func TestRegister_Success(t *testing.T) {
	services := newTestServices()
	services.AuthService = &mockAuthService{
		registerUserFn: func(_ context.Context, request models.RegisterRequest) (models.User, error) {
			return models.User{ID: 1, Name: request.Name, Email: request.Email, Username: request.Username}, nil
		},
	}
	h := newTestHandler(t, services)

	body := `{"name":"John Doe","email":"john@example.com","username":"john","password":"secret-password"}`
	rec := serve(t, h, http.MethodPost, "/register", strings.NewReader(body), false)

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, http.StatusOK, env.Meta.Status)
	assert.Equal(t, "Success", env.Meta.Message)
	assert.Contains(t, string(env.Data), `"username":"john"`)
	assert.NotContains(t, rec.Body.String(), "password_hash")
}

func TestRegister_InvalidJSON(t *testing.T) {
	h := newTestHandler(t, newTestServices())

	rec := serve(t, h, http.MethodPost, "/register", strings.NewReader("{invalid json}"), false)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid JSON was passed")
}

func TestRegister_DuplicateEmail(t *testing.T) {
	services := newTestServices()
	services.AuthService = &mockAuthService{
		registerUserFn: func(_ context.Context, _ models.RegisterRequest) (models.User, error) {
			return models.User{}, store.ErrEmailAlreadyExists
		},
	}
	h := newTestHandler(t, services)

	rec := serve(t, h, http.MethodPost, "/register", strings.NewReader(`{}`), false)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Email already taken")
}

func TestRegister_FieldLevelValidationMessage(t *testing.T) {
	services := newTestServices()
	services.AuthService = &mockAuthService{
		registerUserFn: func(_ context.Context, _ models.RegisterRequest) (models.User, error) {
			// The service wraps validator sentinels into ErrInvalidDataProvided.
			return models.User{}, wrapInvalid(validators.ErrInvalidPassword)
		},
	}
	h := newTestHandler(t, services)

	rec := serve(t, h, http.MethodPost, "/register", strings.NewReader(`{}`), false)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Password must be at least 8 characters")
}

func TestLogin_Success(t *testing.T) {
	const signed = "signed.jwt.token"

	services := newTestServices()
	services.AuthService = &mockAuthService{
		loginFn: func(_ context.Context, request models.LoginRequest) (models.Token, error) {
			assert.Equal(t, "john@example.com", request.Email)
			return models.Token{SignedString: signed, UserID: 1}, nil
		},
	}
	h := newTestHandler(t, services)

	body := `{"email":"john@example.com","password":"secret-password"}`
	rec := serve(t, h, http.MethodPost, "/login", strings.NewReader(body), false)

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, `"`+signed+`"`, string(env.Data))
}

func TestLogin_CredentialFailuresAreUniform(t *testing.T) {
	// An unknown account and a wrong password must produce identical
	// responses so the endpoint does not leak which accounts exist.
	for _, failure := range []error{store.ErrNoUserWasFound, service.ErrWrongPassword} {
		services := newTestServices()
		services.AuthService = &mockAuthService{
			loginFn: func(_ context.Context, _ models.LoginRequest) (models.Token, error) {
				return models.Token{}, failure
			},
		}
		h := newTestHandler(t, services)

		rec := serve(t, h, http.MethodPost, "/login", strings.NewReader(`{"username":"john","password":"x"}`), false)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid credentials")
	}
}

func TestLogout_RevokesCurrentSession(t *testing.T) {
	var revoked string
	services := newTestServices()
	services.AuthService = &mockAuthService{
		logoutFn: func(_ context.Context, sessionID string) error {
			revoked = sessionID
			return nil
		},
	}
	h := newTestHandler(t, services)

	rec := serve(t, h, http.MethodPost, "/logout", nil, true)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "session-id", revoked)
}

func TestLogout_ExpiredToken(t *testing.T) {
	services := newTestServices()
	services.AuthService = &mockAuthService{
		logoutFn: func(_ context.Context, _ string) error {
			return service.ErrTokenIsExpiredOrInvalid
		},
	}
	h := newTestHandler(t, services)

	rec := serve(t, h, http.MethodPost, "/logout", nil, true)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), msgLoginFirst)
}
