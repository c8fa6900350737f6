// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
)

// Kind classifies a service error for the transport layer.
type Kind int

const (
	// KindInternal is any error that is not a service [Error].
	KindInternal Kind = iota
	// KindValidation is malformed or incomplete input.
	KindValidation
	// KindDuplicate is a unique-constraint collision.
	KindDuplicate
	// KindUnauthenticated means no credential was presented.
	KindUnauthenticated
	// KindInvalidCredential means a password or federated token was rejected.
	KindInvalidCredential
	// KindInvalidToken means a session token was presented but rejected.
	KindInvalidToken
	// KindNotFound is a missing resource the caller is entitled to see.
	KindNotFound
	// KindUpstream is a storage or mail-transport failure.
	KindUpstream
)

// Error is a service failure with a message that is safe to show to API
// clients. The wrapped cause, if any, is for logs only.
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func newError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// upstream wraps a storage or transport failure under a public message.
func upstream(message string, cause error) error {
	return &Error{Kind: KindUpstream, Message: message, cause: cause}
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// KindOf returns the [Kind] of the first service [Error] in err's chain.
func KindOf(err error) Kind {
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return svcErr.Kind
	}
	return KindInternal
}

// PublicMessage returns the client-facing message of err.
func PublicMessage(err error) string {
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return svcErr.Message
	}
	return "Something went wrong. Please try again."
}

// Validation errors.
var (
	ErrMissingSignupFields     = newError(KindValidation, "Please provide email, password, and username.")
	ErrInvalidEmailFormat      = newError(KindValidation, "Invalid email format.")
	ErrPasswordTooShort        = newError(KindValidation, "Password must be at least 6 characters long.")
	ErrPasswordTooLong         = newError(KindValidation, "Password must be at most 72 bytes long.")
	ErrMissingCredentials      = newError(KindValidation, "Please provide both email and password.")
	ErrMissingGoogleToken      = newError(KindValidation, "No Google ID token provided.")
	ErrGoogleProfileIncomplete = newError(KindValidation, "Could not retrieve user information from Google.")
	ErrMissingEmail            = newError(KindValidation, "Please provide your email address.")
	ErrMissingResetToken       = newError(KindValidation, "No reset token provided.")
	ErrMissingResetFields      = newError(KindValidation, "Please provide the reset token and the new password.")
	ErrInvalidOrExpiredToken   = newError(KindValidation, "Invalid or expired reset link.")
	ErrMissingActivationCode   = newError(KindValidation, "No activation code provided.")
	ErrInvalidActivationCode   = newError(KindValidation, "Invalid or used activation code.")
	ErrMissingOrderParameters  = newError(KindValidation, "Missing required parameters.")
	ErrNonNumericParameter     = newError(KindValidation, "Invalid input: Parameters must be numbers.")
	ErrNonPositivePrice        = newError(KindValidation, "Invalid input: Prices must be greater than zero.")
	ErrEqualPrices             = newError(KindValidation, "Invalid input: Entry price and stop loss price cannot be the same.")
)

// Duplicate resource errors.
var (
	ErrEmailTaken    = newError(KindDuplicate, "Email already exists.")
	ErrUsernameTaken = newError(KindDuplicate, "Username already taken.")
)

// Authentication errors.
var (
	ErrInvalidCredentials       = newError(KindInvalidCredential, "Invalid email/username or password.")
	ErrGoogleVerificationFailed = newError(KindInvalidCredential, "Invalid Google ID token.")
	ErrUnauthenticated          = newError(KindUnauthenticated, "Access denied. No token provided.")
	ErrInvalidToken             = newError(KindInvalidToken, "Invalid or expired token.")
)

var (
	ErrUserNotFound = newError(KindNotFound, "User not found.")

	// ErrVersionIsNotSpecified is returned by NewAppInfoService when the
	// configured version is empty.
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrMissingIdentityVerifier is returned by NewFederatedAuthService
	// without a verifier.
	ErrMissingIdentityVerifier = errors.New("identity verifier is not configured")
)
