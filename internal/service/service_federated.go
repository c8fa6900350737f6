// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-trade-desk/internal/adapter"
	"github.com/MKhiriev/go-trade-desk/internal/logger"
	"github.com/MKhiriev/go-trade-desk/internal/store"
	"github.com/MKhiriev/go-trade-desk/models"
)

// federatedUsernamePrefix is prepended to the Google subject to build the
// username of an account created through Google sign-in.
const federatedUsernamePrefix = "google_"

type federatedAuthService struct {
	verifier       adapter.IdentityVerifier
	userRepository store.UserRepository

	logger *logger.Logger
}

func NewFederatedAuthService(verifier adapter.IdentityVerifier, userRepository store.UserRepository, logger *logger.Logger) (FederatedAuthService, error) {
	if verifier == nil {
		return nil, ErrMissingIdentityVerifier
	}

	return &federatedAuthService{
		verifier:       verifier,
		userRepository: userRepository,
		logger:         logger,
	}, nil
}

// VerifyToken returns the identity claims of raw. Every verification failure
// is reported as ErrGoogleVerificationFailed.
func (f *federatedAuthService) VerifyToken(ctx context.Context, raw string) (models.GoogleIdentity, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return models.GoogleIdentity{}, ErrMissingGoogleToken
	}

	identity, err := f.verifier.Verify(ctx, raw)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("google id token rejected")
		return models.GoogleIdentity{}, fmt.Errorf("%w: %w", ErrGoogleVerificationFailed, err)
	}

	return identity, nil
}

// LoginOrRegister maps a verified Google identity to a local account by
// email, creating a federated-only account on first sign-in.
func (f *federatedAuthService) LoginOrRegister(ctx context.Context, raw string) (models.User, models.GoogleIdentity, bool, error) {
	log := logger.FromContext(ctx)

	identity, err := f.VerifyToken(ctx, raw)
	if err != nil {
		return models.User{}, models.GoogleIdentity{}, false, err
	}
	if identity.Email == "" || identity.Name == "" || identity.Subject == "" {
		return models.User{}, models.GoogleIdentity{}, false, ErrGoogleProfileIncomplete
	}
	if !identity.EmailVerified {
		log.Info().Str("sub", identity.Subject).Msg("google email is not verified")
		return models.User{}, models.GoogleIdentity{}, false, ErrGoogleVerificationFailed
	}

	user, err := f.userRepository.FindUserByEmail(ctx, identity.Email)
	if err == nil {
		return user, identity, false, nil
	}
	if !errors.Is(err, store.ErrNoUserWasFound) {
		log.Err(err).Msg("user search by email failed")
		return models.User{}, models.GoogleIdentity{}, false, upstream("Database error.", err)
	}

	user, err = f.userRepository.CreateUser(ctx, models.User{
		Email:        identity.Email,
		Username:     federatedUsernamePrefix + identity.Subject,
		PasswordHash: FederatedPasswordSentinel,
	})
	switch {
	case err == nil:
		log.Info().Int64("user_id", user.ID).Msg("federated user registered")
		return user, identity, true, nil
	case errors.Is(err, store.ErrDuplicateEmail):
		// a concurrent sign-in created the account first
		user, err = f.userRepository.FindUserByEmail(ctx, identity.Email)
	case errors.Is(err, store.ErrDuplicateUsername):
		// the Google account changed its email since the first sign-in
		user, err = f.userRepository.FindUserByIdentifier(ctx, federatedUsernamePrefix+identity.Subject)
	}
	if err != nil {
		log.Err(err).Msg("federated user creation ended with error")
		return models.User{}, models.GoogleIdentity{}, false, upstream("Could not create user.", err)
	}

	return user, identity, false, nil
}
