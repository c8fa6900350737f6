// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// API client errors, one per HTTP status the API answers with.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
)

// Identity verification errors.
var (
	ErrEmptyIDToken      = errors.New("id token is empty")
	ErrUntrustedIssuer   = errors.New("id token issuer is not trusted")
	ErrMissingAudience   = errors.New("google client id is not configured")
	ErrMalformedIDClaims = errors.New("id token claims are malformed")
)

// Mail transport errors.
var (
	ErrUnknownMailTransport = errors.New("unknown mail transport")
	ErrMailNotConfigured    = errors.New("mail transport is not configured")
)
