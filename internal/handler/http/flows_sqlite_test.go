// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-trade-desk/internal/app"
	"github.com/MKhiriev/go-trade-desk/internal/config"
	"github.com/MKhiriev/go-trade-desk/internal/logger"
	"github.com/MKhiriev/go-trade-desk/internal/service"
	"github.com/MKhiriev/go-trade-desk/internal/store"
	"github.com/MKhiriev/go-trade-desk/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const resetLinkBase = "http://localhost:5173/reset-password"

type outbox struct {
	mu    sync.Mutex
	mails []models.PasswordResetMail
}

func (o *outbox) SendPasswordReset(_ context.Context, mail models.PasswordResetMail) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.mails = append(o.mails, mail)
	return nil
}

func (o *outbox) sent() []models.PasswordResetMail {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]models.PasswordResetMail(nil), o.mails...)
}

type offlineVerifier struct{}

func (offlineVerifier) Verify(context.Context, string) (models.GoogleIdentity, error) {
	return models.GoogleIdentity{}, errors.New("no network in tests")
}

type sqliteDesk struct {
	handler  *Handler
	services *service.Services
	db       *store.DB
	mail     *outbox
}

func newSQLiteDesk(t *testing.T, name string) *sqliteDesk {
	t.Helper()
	ctx := context.Background()

	db, err := store.NewConnect(ctx, config.DB{
		DSN:          "file:" + name + "?mode=memory&cache=shared",
		MaxOpenConns: 1,
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.Migrate())

	mail := &outbox{}
	services, err := service.NewServices(store.NewStorages(db, logger.Nop()), service.Adapters{
		IdentityVerifier: offlineVerifier{},
		Mailer:           mail,
	}, &config.StructuredConfig{
		App: config.App{Version: "v1.4.0"},
		Auth: config.Auth{
			TokenSignKey:     "hmac-key",
			TokenIssuer:      "trade-desk",
			TokenDuration:    time.Hour,
			PasswordHashCost: 4,
			ResetTokenTTL:    time.Hour,
			ResetLinkBaseURL: resetLinkBase,
		},
	}, logger.Nop())
	require.NoError(t, err)

	return &sqliteDesk{
		handler:  newTestHandler(services),
		services: services,
		db:       db,
		mail:     mail,
	}
}

func (d *sqliteDesk) resetTokenRows(t *testing.T) int {
	t.Helper()
	var n int
	require.NoError(t, d.db.QueryRowContext(context.Background(), `SELECT COUNT(*) FROM password_reset_tokens`).Scan(&n))
	return n
}

func decodeBody[T any](t *testing.T, body string) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal([]byte(body), &v), body)
	return v
}

func TestSQLite_SignupThenLoginByUsername(t *testing.T) {
	desk := newSQLiteDesk(t, "signup_login")

	rr := serve(t, desk.handler, http.MethodPost, "/api/signup",
		`{"email":"alice@example.com","username":"alice","password":"secret1"}`)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	signup := decodeBody[models.AuthResponse](t, rr.Body.String())
	require.NotZero(t, signup.User.ID)

	rr = serve(t, desk.handler, http.MethodPost, "/api/login", `{"identifier":"alice","password":"secret1"}`)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	login := decodeBody[models.AuthResponse](t, rr.Body.String())
	assert.Equal(t, signup.User.ID, login.User.ID)

	token, err := desk.services.AuthService.ParseToken(context.Background(), login.Token)
	require.NoError(t, err)
	assert.Equal(t, signup.User.ID, token.UserID)

	rr = serve(t, desk.handler, http.MethodPost, "/api/login", `{"identifier":"alice@example.com","password":"secret1"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, signup.User.ID, decodeBody[models.AuthResponse](t, rr.Body.String()).User.ID)
}

func TestSQLite_ResetTokenRedeemsOnce(t *testing.T) {
	desk := newSQLiteDesk(t, "redeem_once")

	rr := serve(t, desk.handler, http.MethodPost, "/api/signup",
		`{"email":"bob@example.com","username":"bob","password":"secret1"}`)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	rr = serve(t, desk.handler, http.MethodPost, "/api/forgot-password", `{"email":"bob@example.com"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	sent := desk.mail.sent()
	require.Len(t, sent, 1)
	assert.Equal(t, "bob@example.com", sent[0].To)
	require.True(t, strings.HasPrefix(sent[0].ResetLink, resetLinkBase+"/"), sent[0].ResetLink)
	resetToken := strings.TrimPrefix(sent[0].ResetLink, resetLinkBase+"/")
	require.Len(t, resetToken, 64)

	body := `{"token":"` + resetToken + `","password":"newsecret"}`
	rr = serve(t, desk.handler, http.MethodPost, "/api/reset-password", body)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.JSONEq(t, `{"message":"`+app.MsgPasswordReset+`"}`, rr.Body.String())
	assert.Zero(t, desk.resetTokenRows(t))

	rr = serve(t, desk.handler, http.MethodPost, "/api/reset-password", body)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error":"Invalid or expired reset link."}`, rr.Body.String())

	err := desk.services.PasswordResetService.Redeem(context.Background(), resetToken, "another1")
	assert.ErrorIs(t, err, service.ErrInvalidOrExpiredToken)

	rr = serve(t, desk.handler, http.MethodPost, "/api/login", `{"identifier":"bob","password":"newsecret"}`)
	assert.Equal(t, http.StatusOK, rr.Code)
	rr = serve(t, desk.handler, http.MethodPost, "/api/login", `{"identifier":"bob","password":"secret1"}`)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestSQLite_ForgotPasswordUnknownEmail(t *testing.T) {
	desk := newSQLiteDesk(t, "forgot_unknown")

	rr := serve(t, desk.handler, http.MethodPost, "/api/forgot-password", `{"email":"nobody@example.com"}`)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"If an account with that email exists, a reset link has been sent."}`, rr.Body.String())
	assert.Empty(t, desk.mail.sent())
	assert.Zero(t, desk.resetTokenRows(t))
}
