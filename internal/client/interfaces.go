// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-trade-desk/models"
)

// API is the part of [adapter.APIClient] the commands use.
type API interface {
	Signup(ctx context.Context, req models.SignupRequest) (models.AuthResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)
	GoogleLogin(ctx context.Context, idToken string) (models.AuthResponse, error)
	Logout(ctx context.Context) (models.MessageResponse, error)

	ForgotPassword(ctx context.Context, email string) (models.MessageResponse, error)
	VerifyResetToken(ctx context.Context, token string) (bool, error)
	ResetPassword(ctx context.Context, token, password string) (models.MessageResponse, error)

	VerifyActivationCode(ctx context.Context, code string) (models.MessageResponse, error)
	CalculateOrderValue(ctx context.Context, req models.OrderValueRequest) (models.OrderValueResponse, error)

	Profile(ctx context.Context) (models.UserView, error)
	Version(ctx context.Context) (string, error)
}
