// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-trade-desk/models"
)

// AuthService covers local accounts and session tokens.
type AuthService interface {
	// Register validates req, hashes the password and creates the account.
	Register(ctx context.Context, req models.SignupRequest) (models.User, error)
	// Authenticate resolves identifier as an email or a username and checks
	// password against the stored hash.
	Authenticate(ctx context.Context, identifier, password string) (models.User, error)
	// IssueToken signs a session token for userID.
	IssueToken(ctx context.Context, userID int64) (models.Token, error)
	// ParseToken verifies a raw session token.
	ParseToken(ctx context.Context, raw string) (models.Token, error)
	// GetUser loads the account behind a verified session.
	GetUser(ctx context.Context, userID int64) (models.User, error)
}

// FederatedAuthService signs users in with a Google ID token.
type FederatedAuthService interface {
	// VerifyToken checks raw and returns its identity claims.
	VerifyToken(ctx context.Context, raw string) (models.GoogleIdentity, error)
	// LoginOrRegister verifies raw and maps it to a local account, creating
	// one when none matches the token's email. isNew reports a creation.
	LoginOrRegister(ctx context.Context, raw string) (user models.User, identity models.GoogleIdentity, isNew bool, err error)
}

// PasswordResetService drives the emailed single-use reset link.
type PasswordResetService interface {
	// RequestReset issues a token and mails a link when email belongs to an
	// account. Unknown addresses succeed silently.
	RequestReset(ctx context.Context, email string) error
	// VerifyResetToken reports whether token is currently redeemable.
	VerifyResetToken(ctx context.Context, token string) (bool, error)
	// Redeem replaces the password of the token's owner and consumes token.
	Redeem(ctx context.Context, token, password string) error
	// PurgeExpired deletes every expired token.
	PurgeExpired(ctx context.Context) (int64, error)
}

type ActivationService interface {
	// Redeem accepts each configured code once.
	Redeem(ctx context.Context, code string) error
}

type CalculatorService interface {
	CalculateOrderValue(ctx context.Context, req models.OrderValueRequest) (models.OrderValueResponse, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
