// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AuthResponse is returned by signup, login and google-login.
type AuthResponse struct {
	Message string   `json:"message,omitempty"`
	Token   string   `json:"token"`
	User    UserView `json:"user"`
}

// MessageResponse is a plain acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ResetTokenValidity is returned by POST /api/verify-reset-token.
type ResetTokenValidity struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

// GoogleTokenResponse is returned by POST /api/verify-google-token.
type GoogleTokenResponse struct {
	Message string         `json:"message"`
	Payload GoogleIdentity `json:"payload"`
}

// ProfileResponse is returned by GET /api/profile.
type ProfileResponse struct {
	User UserView `json:"user"`
}

// OrderValueResponse is returned by POST /api/calculate-order-value. Both
// values are rendered with two decimals.
type OrderValueResponse struct {
	OrderValue           string `json:"orderValue"`
	PercentageDifference string `json:"percentageDifference"`
}

// VersionResponse is returned by GET /api/version.
type VersionResponse struct {
	Version string `json:"version"`
}
