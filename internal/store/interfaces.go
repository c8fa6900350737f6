// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-trade-desk/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists accounts.
type UserRepository interface {
	// CreateUser inserts user and returns it with its database id.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByIdentifier matches identifier against email or username.
	// An email match takes precedence over a username match.
	FindUserByIdentifier(ctx context.Context, identifier string) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, id int64) (models.User, error)
	UpdatePasswordHash(ctx context.Context, userID int64, passwordHash string) error
}

// ResetTokenRepository persists password reset tokens.
type ResetTokenRepository interface {
	CreateResetToken(ctx context.Context, token models.PasswordResetToken) error
	// FindValidResetToken returns the token only if it exists and expires
	// after now.
	FindValidResetToken(ctx context.Context, token string, now time.Time) (models.PasswordResetToken, error)
	DeleteResetToken(ctx context.Context, token string) error
	// DeleteExpiredResetTokens removes tokens expiring at or before now and
	// reports how many were removed.
	DeleteExpiredResetTokens(ctx context.Context, now time.Time) (int64, error)
}

// ErrorClassificator interprets driver errors.
type ErrorClassificator interface {
	// Classify reports whether err is worth retrying.
	Classify(err error) ErrorClassification
	// UniqueViolation reports whether err is a unique constraint violation
	// and returns the driver's description of the violated constraint.
	UniqueViolation(err error) (string, bool)
}
