// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SignupRequest is the body of POST /api/signup.
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username"`
}

// LoginRequest is the body of POST /api/login. Identifier is either an email
// or a username.
type LoginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// TokenRequest carries a single opaque token: a Google ID token or a
// password reset token depending on the route.
type TokenRequest struct {
	Token string `json:"token"`
}

// ForgotPasswordRequest is the body of POST /api/forgot-password.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest is the body of POST /api/reset-password.
type ResetPasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

// ActivationCodeRequest is the body of POST /api/verify-activation-code.
type ActivationCodeRequest struct {
	Code string `json:"code"`
}

// OrderValueRequest is the body of POST /api/calculate-order-value. Browser
// forms send the values either as numbers or as numeric strings.
type OrderValueRequest struct {
	RiskAmount    Number `json:"riskAmount"`
	EntryPrice    Number `json:"entryPrice"`
	StopLossPrice Number `json:"stopLossPrice"`
}
