package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/akarpov/notelink/internal/config"
	"github.com/akarpov/notelink/internal/logger"
	"github.com/akarpov/notelink/internal/store"
	"github.com/akarpov/notelink/internal/utils"
	"github.com/akarpov/notelink/internal/validators"
	"github.com/akarpov/notelink/models"
	"github.com/google/uuid"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and the bearer
// token lifecycle using a UserRepository and a SessionRepository for
// persistence and bcrypt for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// sessionRepository manages the server-side rows behind issued tokens.
	sessionRepository store.SessionRepository

	// validator enforces structural rules on register and login payloads.
	validator validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued token and its backing
	// session remain valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// repositories and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, sessionRepository store.SessionRepository, validator validators.Validator, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:    userRepository,
		sessionRepository: sessionRepository,
		validator:         validator,
		tokenSignKey:      cfg.TokenSignKey,
		tokenIssuer:       cfg.TokenIssuer,
		tokenDuration:     cfg.TokenDuration,
		logger:            logger,
	}
}

// RegisterUser creates a new user account.
//
// It validates the registration payload, hashes the password with bcrypt,
// and delegates persistence to the UserRepository.
//
// Returns the persisted user (with a server-assigned ID) or:
//   - A validation error wrapping ErrInvalidDataProvided if the payload
//     fails structural checks.
//   - A wrapped storage error if the repository call fails (e.g. email or
//     username already taken — see store.ErrEmailAlreadyExists and
//     store.ErrUsernameAlreadyExists).
func (a *authService) RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, request); err != nil {
		log.Err(err).Str("username", request.Username).Msg("invalid registration data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	passwordHash, err := utils.HashPassword(request.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Name:         request.Name,
		Email:        request.Email,
		Username:     request.Username,
		PasswordHash: passwordHash,
	})
	if err != nil {
		log.Err(err).Str("username", request.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user and opens a session.
//
// The account is looked up by email when present, by username otherwise.
// On success a session row is created and a signed token carrying the
// session id in its "jti" claim is returned.
//
// Returns the signed token or:
//   - A validation error wrapping ErrInvalidDataProvided.
//   - A wrapped storage error if the account lookup fails (see
//     store.ErrNoUserWasFound).
//   - ErrWrongPassword if the password does not match the stored hash.
//   - ErrTokenCreationFailed if session persistence or signing fails.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.Token, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, request); err != nil {
		log.Err(err).Msg("invalid login data provided")
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	var foundUser models.User
	var err error
	if request.Email != "" {
		foundUser, err = a.userRepository.FindUserByEmail(ctx, request.Email)
	} else {
		foundUser, err = a.userRepository.FindUserByUsername(ctx, request.Username)
	}
	if err != nil {
		log.Err(err).Str("email", request.Email).Str("username", request.Username).Msg("user lookup failed")
		return models.Token{}, fmt.Errorf("user lookup failed: %w", err)
	}

	if !utils.CheckPassword(foundUser.PasswordHash, request.Password) {
		log.Error().
			Int64("id", foundUser.ID).
			Str("username", foundUser.Username).
			Msg("wrong password")
		return models.Token{}, ErrWrongPassword
	}

	session := models.Session{
		ID:        uuid.NewString(),
		UserID:    foundUser.ID,
		ExpiresAt: time.Now().Add(a.tokenDuration),
	}
	if err := a.sessionRepository.CreateSession(ctx, session); err != nil {
		log.Err(err).Int64("user_id", foundUser.ID).Msg("session creation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, foundUser.ID, session.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Int64("user_id", foundUser.ID).Msg("token signing failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// Logout revokes the session identified by sessionID.
//
// A missing session is normalised to ErrTokenIsExpiredOrInvalid: the
// presented token no longer maps to anything revocable.
func (a *authService) Logout(ctx context.Context, sessionID string) error {
	log := logger.FromContext(ctx)

	if err := a.sessionRepository.RevokeSession(ctx, sessionID); err != nil {
		log.Err(err).Str("session_id", sessionID).Msg("session revocation failed")
		if errors.Is(err, store.ErrSessionNotFound) {
			return ErrTokenIsExpiredOrInvalid
		}
		return fmt.Errorf("session revocation failed: %w", err)
	}

	return nil
}

// ParseToken validates and parses a raw JWT string and checks the backing
// session.
//
// Signature, issuer, and expiry are verified first; then the session named
// by the "jti" claim must exist, be unrevoked, be unexpired, and belong to
// the same user as the "sub" claim. Any failure is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect
// low-level JWT or storage errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	session, err := a.sessionRepository.GetActiveSession(ctx, token.SessionID)
	if err != nil {
		log.Err(err).Str("session_id", token.SessionID).Msg("no live session behind token")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	if session.UserID != token.UserID {
		log.Error().
			Int64("token_user_id", token.UserID).
			Int64("session_user_id", session.UserID).
			Msg("token subject does not match session owner")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
