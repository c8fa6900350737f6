// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-trade-desk server handlers and the API client.
//
// Failure messages live next to the service errors that carry them; the
// Msg* constants here are the outcomes written into successful response
// bodies.
package app

const (
	// MsgSignupSuccessful acknowledges POST /api/signup.
	MsgSignupSuccessful = "Signup successful!"

	// MsgLoginSuccessful acknowledges POST /api/login.
	MsgLoginSuccessful = "Login successful!"

	// MsgLogoutSuccessful acknowledges POST /api/logout. Sessions are
	// stateless, the client is expected to discard its token.
	MsgLogoutSuccessful = "Logout successful"

	// MsgGoogleTokenVerified acknowledges POST /api/verify-google-token.
	MsgGoogleTokenVerified = "Google ID token verified successfully."

	// MsgResetLinkSent is the answer to every well-formed forgot-password
	// request, whether or not the address has an account.
	MsgResetLinkSent = "If an account with that email exists, a reset link has been sent."

	// MsgPasswordReset acknowledges POST /api/reset-password.
	MsgPasswordReset = "Password reset successfully!"

	// MsgActivationCodeVerified acknowledges POST /api/verify-activation-code.
	MsgActivationCodeVerified = "Activation code verified successfully."

	// MsgInvalidJSON is returned when the request body is not valid JSON.
	MsgInvalidJSON = "Invalid JSON was passed."
)
