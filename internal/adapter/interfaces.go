// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter connects go-trade-desk to the systems around it.
//
// Outbound dependencies of the server are [IdentityVerifier] (Google ID token
// checks, see [NewGoogleVerifier]) and [Mailer] (password reset delivery over
// SMTP, a Kafka topic or the log). [APIClient] is the reverse direction: a
// typed HTTP client for the go-trade-desk API used by cmd/client.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-trade-desk/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// IdentityVerifier checks a third-party ID token. Implementations fail
// closed: any doubt about the token is an error.
type IdentityVerifier interface {
	// Verify validates signature, audience, issuer and expiry of rawToken and
	// returns its identity claims.
	Verify(ctx context.Context, rawToken string) (models.GoogleIdentity, error)
}

// Mailer delivers transactional mail.
type Mailer interface {
	// SendPasswordReset delivers the reset link in mail to mail.To.
	SendPasswordReset(ctx context.Context, mail models.PasswordResetMail) error
}
