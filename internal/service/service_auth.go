// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-trade-desk/internal/config"
	"github.com/MKhiriev/go-trade-desk/internal/logger"
	"github.com/MKhiriev/go-trade-desk/internal/store"
	"github.com/MKhiriev/go-trade-desk/internal/utils"
	"github.com/MKhiriev/go-trade-desk/models"
)

// dummyPassword is hashed once at construction so that an unknown
// identifier costs one bcrypt comparison, like a known one.
const dummyPassword = "go-trade-desk-dummy-password"

// authService is the concrete implementation of AuthService.
// It handles registration and credential checks against a UserRepository and
// signs session tokens with HMAC-SHA256.
type authService struct {
	userRepository store.UserRepository

	hasher    passwordHasher
	dummyHash string

	// tokenSignKey is the HMAC secret used to sign and verify session tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued token remains valid.
	tokenDuration time.Duration

	now func() time.Time

	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to userRepository and
// populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.Auth, logger *logger.Logger) (AuthService, error) {
	hasher := newPasswordHasher(cfg.PasswordHashCost)
	dummyHash, err := hasher.hash(dummyPassword)
	if err != nil {
		return nil, err
	}

	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		dummyHash:      dummyHash,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		now:            time.Now,
		logger:         logger,
	}, nil
}

// Register creates a local account.
//
// Returns the persisted user or:
//   - ErrMissingSignupFields if any field is empty.
//   - ErrInvalidEmailFormat if the email is not of the form a@b.c.
//   - ErrPasswordTooShort / ErrPasswordTooLong on password length.
//   - ErrEmailTaken / ErrUsernameTaken on a unique collision.
func (a *authService) Register(ctx context.Context, req models.SignupRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	email := strings.TrimSpace(req.Email)
	username := strings.TrimSpace(req.Username)
	if email == "" || username == "" || req.Password == "" {
		return models.User{}, ErrMissingSignupFields
	}
	if !validEmail(email) {
		return models.User{}, ErrInvalidEmailFormat
	}
	if err := validatePassword(req.Password); err != nil {
		return models.User{}, err
	}

	hash, err := a.hasher.hash(req.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, upstream("Could not create user.", err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Email:        email,
		Username:     username,
		PasswordHash: hash,
	})
	switch {
	case errors.Is(err, store.ErrDuplicateEmail):
		return models.User{}, ErrEmailTaken
	case errors.Is(err, store.ErrDuplicateUsername):
		return models.User{}, ErrUsernameTaken
	case err != nil:
		log.Err(err).Str("email", email).Msg("user creation ended with error")
		return models.User{}, upstream("Could not create user.", err)
	}

	log.Info().Int64("user_id", user.ID).Msg("user registered")
	return user, nil
}

// Authenticate checks a password login.
//
// An unknown identifier, a federated-only account and a wrong password all
// return ErrInvalidCredentials.
func (a *authService) Authenticate(ctx context.Context, identifier, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	identifier = strings.TrimSpace(identifier)
	if identifier == "" || password == "" {
		return models.User{}, ErrMissingCredentials
	}

	user, err := a.userRepository.FindUserByIdentifier(ctx, identifier)
	if errors.Is(err, store.ErrNoUserWasFound) {
		a.hasher.compare(a.dummyHash, password)
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Msg("user search by identifier failed")
		return models.User{}, upstream("Database error during login.", err)
	}

	if !a.hasher.compare(user.PasswordHash, password) {
		log.Debug().Int64("user_id", user.ID).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return user, nil
}

// IssueToken signs a session token for userID valid for tokenDuration.
func (a *authService) IssueToken(ctx context.Context, userID int64) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, userID, a.tokenDuration, a.tokenSignKey, a.now())
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("token creation failed")
		return models.Token{}, upstream("Login failed.", fmt.Errorf("token creation failed: %w", err))
	}

	return token, nil
}

// ParseToken validates a raw session token. An empty value returns
// ErrUnauthenticated, every other failure ErrInvalidToken.
func (a *authService) ParseToken(ctx context.Context, raw string) (models.Token, error) {
	if raw == "" {
		return models.Token{}, ErrUnauthenticated
	}

	token, err := utils.ValidateAndParseJWTToken(raw, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("session token rejected")
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	return token, nil
}

func (a *authService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	user, err := a.userRepository.FindUserByID(ctx, userID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("user search by id failed")
		return models.User{}, upstream("Database error.", err)
	}

	return user, nil
}
