// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-trade-desk/internal/config"
	"github.com/MKhiriev/go-trade-desk/internal/logger"
	"github.com/MKhiriev/go-trade-desk/internal/service"
	"github.com/MKhiriev/go-trade-desk/models"
	"github.com/stretchr/testify/require"
)

// ---- Fakes ----

type mockAuthService struct {
	registerFn     func(ctx context.Context, req models.SignupRequest) (models.User, error)
	authenticateFn func(ctx context.Context, identifier, password string) (models.User, error)
	issueTokenFn   func(ctx context.Context, userID int64) (models.Token, error)
	parseTokenFn   func(ctx context.Context, raw string) (models.Token, error)
	getUserFn      func(ctx context.Context, userID int64) (models.User, error)
}

func (m *mockAuthService) Register(ctx context.Context, req models.SignupRequest) (models.User, error) {
	return m.registerFn(ctx, req)
}

func (m *mockAuthService) Authenticate(ctx context.Context, identifier, password string) (models.User, error) {
	return m.authenticateFn(ctx, identifier, password)
}

func (m *mockAuthService) IssueToken(ctx context.Context, userID int64) (models.Token, error) {
	if m.issueTokenFn == nil {
		return models.Token{SignedString: "token-for-user"}, nil
	}
	return m.issueTokenFn(ctx, userID)
}

func (m *mockAuthService) ParseToken(ctx context.Context, raw string) (models.Token, error) {
	return m.parseTokenFn(ctx, raw)
}

func (m *mockAuthService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	return m.getUserFn(ctx, userID)
}

type mockFederatedAuthService struct {
	verifyTokenFn     func(ctx context.Context, raw string) (models.GoogleIdentity, error)
	loginOrRegisterFn func(ctx context.Context, raw string) (models.User, models.GoogleIdentity, bool, error)
}

func (m *mockFederatedAuthService) VerifyToken(ctx context.Context, raw string) (models.GoogleIdentity, error) {
	return m.verifyTokenFn(ctx, raw)
}

func (m *mockFederatedAuthService) LoginOrRegister(ctx context.Context, raw string) (models.User, models.GoogleIdentity, bool, error) {
	return m.loginOrRegisterFn(ctx, raw)
}

type mockPasswordResetService struct {
	requestResetFn     func(ctx context.Context, email string) error
	verifyResetTokenFn func(ctx context.Context, token string) (bool, error)
	redeemFn           func(ctx context.Context, token, password string) error
}

func (m *mockPasswordResetService) RequestReset(ctx context.Context, email string) error {
	return m.requestResetFn(ctx, email)
}

func (m *mockPasswordResetService) VerifyResetToken(ctx context.Context, token string) (bool, error) {
	return m.verifyResetTokenFn(ctx, token)
}

func (m *mockPasswordResetService) Redeem(ctx context.Context, token, password string) error {
	return m.redeemFn(ctx, token, password)
}

func (m *mockPasswordResetService) PurgeExpired(context.Context) (int64, error) {
	return 0, nil
}

type mockActivationService struct {
	redeemFn func(ctx context.Context, code string) error
}

func (m *mockActivationService) Redeem(ctx context.Context, code string) error {
	return m.redeemFn(ctx, code)
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(context.Context) string {
	return m.version
}

// ---- Helpers ----

func newTestHandler(services *service.Services) *Handler {
	return NewHandler(services, config.Server{AllowedOrigins: []string{"http://localhost:5173"}}, logger.Nop())
}

// serve sends a request through the full router.
func serve(t *testing.T, h *Handler, method, path, body string, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	require.Zero(t, len(headers)%2, "headers are key/value pairs")

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	for i := 0; i < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)
	return rr
}

func newRequest(method, path string) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	return req.WithContext(logger.Nop().WithContext(req.Context()))
}
