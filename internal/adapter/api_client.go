// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-trade-desk/models"
	"github.com/go-resty/resty/v2"
)

type APIClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

// APIClient is a typed client of the go-trade-desk HTTP API. The session
// token returned by Signup, Login and GoogleLogin is kept and sent with
// later requests.
type APIClient struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

func NewAPIClient(cfg APIClientConfig) *APIClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:5001"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json")

	return &APIClient{client: cli}
}

func (c *APIClient) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = strings.TrimSpace(token)
}

func (c *APIClient) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *APIClient) Signup(ctx context.Context, req models.SignupRequest) (models.AuthResponse, error) {
	return c.authenticate(ctx, "/api/signup", req)
}

func (c *APIClient) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	return c.authenticate(ctx, "/api/login", req)
}

func (c *APIClient) GoogleLogin(ctx context.Context, idToken string) (models.AuthResponse, error) {
	return c.authenticate(ctx, "/api/google-login", models.TokenRequest{Token: idToken})
}

// Logout forgets the session token. The server keeps no session state, so
// the call only acknowledges.
func (c *APIClient) Logout(ctx context.Context) (models.MessageResponse, error) {
	var out models.MessageResponse
	if err := c.do(ctx, c.authedRequest(ctx), "/api/logout", nil, &out); err != nil {
		return models.MessageResponse{}, fmt.Errorf("logout request: %w", err)
	}

	c.SetToken("")
	return out, nil
}

func (c *APIClient) ForgotPassword(ctx context.Context, email string) (models.MessageResponse, error) {
	var out models.MessageResponse
	if err := c.do(ctx, c.client.R(), "/api/forgot-password", models.ForgotPasswordRequest{Email: email}, &out); err != nil {
		return models.MessageResponse{}, fmt.Errorf("forgot password request: %w", err)
	}
	return out, nil
}

func (c *APIClient) VerifyResetToken(ctx context.Context, token string) (bool, error) {
	var out models.ResetTokenValidity
	if err := c.do(ctx, c.client.R(), "/api/verify-reset-token", models.TokenRequest{Token: token}, &out); err != nil {
		return false, fmt.Errorf("verify reset token request: %w", err)
	}
	return out.Valid, nil
}

func (c *APIClient) ResetPassword(ctx context.Context, token, password string) (models.MessageResponse, error) {
	var out models.MessageResponse
	body := models.ResetPasswordRequest{Token: token, Password: password}
	if err := c.do(ctx, c.client.R(), "/api/reset-password", body, &out); err != nil {
		return models.MessageResponse{}, fmt.Errorf("reset password request: %w", err)
	}
	return out, nil
}

func (c *APIClient) VerifyActivationCode(ctx context.Context, code string) (models.MessageResponse, error) {
	var out models.MessageResponse
	if err := c.do(ctx, c.client.R(), "/api/verify-activation-code", models.ActivationCodeRequest{Code: code}, &out); err != nil {
		return models.MessageResponse{}, fmt.Errorf("verify activation code request: %w", err)
	}
	return out, nil
}

func (c *APIClient) CalculateOrderValue(ctx context.Context, req models.OrderValueRequest) (models.OrderValueResponse, error) {
	var out models.OrderValueResponse
	if err := c.do(ctx, c.client.R(), "/api/calculate-order-value", req, &out); err != nil {
		return models.OrderValueResponse{}, fmt.Errorf("calculate order value request: %w", err)
	}
	return out, nil
}

func (c *APIClient) Profile(ctx context.Context) (models.UserView, error) {
	var out models.ProfileResponse
	resp, err := c.authedRequest(ctx).SetResult(&out).Get("/api/profile")
	if err != nil {
		return models.UserView{}, fmt.Errorf("profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserView{}, err
	}
	return out.User, nil
}

func (c *APIClient) Version(ctx context.Context) (string, error) {
	var out models.VersionResponse
	resp, err := c.client.R().SetContext(ctx).SetResult(&out).Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	return out.Version, nil
}

func (c *APIClient) authenticate(ctx context.Context, path string, body any) (models.AuthResponse, error) {
	var out models.AuthResponse
	if err := c.do(ctx, c.client.R(), path, body, &out); err != nil {
		return models.AuthResponse{}, fmt.Errorf("%s request: %w", strings.TrimPrefix(path, "/api/"), err)
	}

	c.SetToken(out.Token)
	return out, nil
}

// do POSTs body to path and decodes a 2xx response into out.
func (c *APIClient) do(ctx context.Context, req *resty.Request, path string, body, out any) error {
	req.SetContext(ctx).SetResult(out)
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Post(path)
	if err != nil {
		return err
	}

	return mapHTTPError(resp)
}

func (c *APIClient) authedRequest(ctx context.Context) *resty.Request {
	req := c.client.R().SetContext(ctx)
	if token := c.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
