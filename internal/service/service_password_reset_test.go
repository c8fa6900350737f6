// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-trade-desk/internal/config"
	"github.com/MKhiriev/go-trade-desk/internal/logger"
	"github.com/MKhiriev/go-trade-desk/internal/mock"
	"github.com/MKhiriev/go-trade-desk/internal/store"
	"github.com/MKhiriev/go-trade-desk/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

const testResetToken = "9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08"

var resetNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type resetMocks struct {
	users  *mock.MockUserRepository
	tokens *mock.MockResetTokenRepository
	mailer *mock.MockMailer
}

func newTestResetSvc(t *testing.T, ctrl *gomock.Controller) (*passwordResetService, resetMocks) {
	t.Helper()
	m := resetMocks{
		users:  mock.NewMockUserRepository(ctrl),
		tokens: mock.NewMockResetTokenRepository(ctrl),
		mailer: mock.NewMockMailer(ctrl),
	}
	storages := &store.Storages{UserRepository: m.users, ResetTokenRepository: m.tokens}
	cfg := config.Auth{
		PasswordHashCost: bcrypt.MinCost,
		ResetTokenTTL:    time.Hour,
		ResetLinkBaseURL: "https://desk.example.com/reset-password/",
	}

	svc := NewPasswordResetService(storages, m.mailer, cfg, logger.Nop()).(*passwordResetService)
	svc.now = func() time.Time { return resetNow }
	svc.generateHex = func(n int) (string, error) {
		require.Equal(t, 32, n)
		return testResetToken, nil
	}

	return svc, m
}

// ── RequestReset ─────────────────────────────────────────────────────────────

func TestPasswordResetService_RequestReset_SendsLink(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestResetSvc(t, ctrl)

	gomock.InOrder(
		m.users.EXPECT().FindUserByEmail(gomock.Any(), "alice@example.com").
			Return(models.User{ID: 3, Email: "alice@example.com"}, nil),
		m.tokens.EXPECT().CreateResetToken(gomock.Any(), models.PasswordResetToken{
			Token:     testResetToken,
			UserID:    3,
			ExpiresAt: resetNow.Add(time.Hour),
		}).Return(nil),
		m.mailer.EXPECT().SendPasswordReset(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, mail models.PasswordResetMail) error {
				assert.Equal(t, "alice@example.com", mail.To)
				assert.Equal(t, "https://desk.example.com/reset-password/"+testResetToken, mail.ResetLink)
				assert.Equal(t, models.PasswordResetMailType, mail.Type)
				assert.Equal(t, "1 hour", mail.ExpiresIn)
				return nil
			},
		),
	)

	require.NoError(t, svc.RequestReset(context.Background(), "alice@example.com"))
}

func TestPasswordResetService_RequestReset_UnknownEmailIsSilent(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestResetSvc(t, ctrl)

	m.users.EXPECT().FindUserByEmail(gomock.Any(), "ghost@example.com").Return(models.User{}, store.ErrNoUserWasFound)

	assert.NoError(t, svc.RequestReset(context.Background(), "ghost@example.com"))
}

func TestPasswordResetService_RequestReset_MissingEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestResetSvc(t, ctrl)

	assert.ErrorIs(t, svc.RequestReset(context.Background(), " "), ErrMissingEmail)
}

func TestPasswordResetService_RequestReset_Failures(t *testing.T) {
	user := models.User{ID: 3, Email: "alice@example.com"}
	boom := errors.New("boom")

	tests := []struct {
		name    string
		arrange func(m resetMocks)
		wantMsg string
	}{
		{
			name: "user lookup",
			arrange: func(m resetMocks) {
				m.users.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(models.User{}, boom)
			},
			wantMsg: "Database error.",
		},
		{
			name: "token insert",
			arrange: func(m resetMocks) {
				m.users.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(user, nil)
				m.tokens.EXPECT().CreateResetToken(gomock.Any(), gomock.Any()).Return(boom)
			},
			wantMsg: "Could not save reset token.",
		},
		{
			name: "mail delivery",
			arrange: func(m resetMocks) {
				m.users.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(user, nil)
				m.tokens.EXPECT().CreateResetToken(gomock.Any(), gomock.Any()).Return(nil)
				m.mailer.EXPECT().SendPasswordReset(gomock.Any(), gomock.Any()).Return(boom)
			},
			wantMsg: "Failed to send reset email.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, m := newTestResetSvc(t, ctrl)
			tt.arrange(m)

			err := svc.RequestReset(context.Background(), "alice@example.com")

			require.ErrorIs(t, err, boom)
			assert.Equal(t, KindUpstream, KindOf(err))
			assert.Equal(t, tt.wantMsg, PublicMessage(err))
		})
	}
}

// ── VerifyResetToken ─────────────────────────────────────────────────────────

func TestPasswordResetService_VerifyResetToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestResetSvc(t, ctrl)
	ctx := context.Background()

	m.tokens.EXPECT().FindValidResetToken(ctx, "good", resetNow).Return(models.PasswordResetToken{Token: "good"}, nil)
	m.tokens.EXPECT().FindValidResetToken(ctx, "stale", resetNow).Return(models.PasswordResetToken{}, store.ErrResetTokenNotFound)

	valid, err := svc.VerifyResetToken(ctx, "good")
	require.NoError(t, err)
	assert.True(t, valid)

	valid, err = svc.VerifyResetToken(ctx, "stale")
	require.NoError(t, err)
	assert.False(t, valid)

	_, err = svc.VerifyResetToken(ctx, "")
	assert.ErrorIs(t, err, ErrMissingResetToken)
}

// ── Redeem ───────────────────────────────────────────────────────────────────

func TestPasswordResetService_Redeem_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestResetSvc(t, ctrl)

	gomock.InOrder(
		m.tokens.EXPECT().FindValidResetToken(gomock.Any(), testResetToken, resetNow).
			Return(models.PasswordResetToken{Token: testResetToken, UserID: 3, ExpiresAt: resetNow.Add(time.Minute)}, nil),
		m.users.EXPECT().UpdatePasswordHash(gomock.Any(), int64(3), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ int64, hash string) error {
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("new-secret")))
				return nil
			},
		),
		m.tokens.EXPECT().DeleteResetToken(gomock.Any(), testResetToken).Return(nil),
	)

	require.NoError(t, svc.Redeem(context.Background(), testResetToken, "new-secret"))
}

func TestPasswordResetService_Redeem_DeleteFailureStillSucceeds(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestResetSvc(t, ctrl)

	m.tokens.EXPECT().FindValidResetToken(gomock.Any(), testResetToken, resetNow).
		Return(models.PasswordResetToken{Token: testResetToken, UserID: 3}, nil)
	m.users.EXPECT().UpdatePasswordHash(gomock.Any(), int64(3), gomock.Any()).Return(nil)
	m.tokens.EXPECT().DeleteResetToken(gomock.Any(), testResetToken).Return(errors.New("locked"))

	assert.NoError(t, svc.Redeem(context.Background(), testResetToken, "new-secret"))
}

func TestPasswordResetService_Redeem_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		password string
		arrange  func(m resetMocks)
		wantErr  error
	}{
		{name: "missing token", password: "new-secret", wantErr: ErrMissingResetFields},
		{name: "missing password", token: testResetToken, wantErr: ErrMissingResetFields},
		{name: "short password", token: testResetToken, password: "123", wantErr: ErrPasswordTooShort},
		{
			name: "unknown or expired token", token: testResetToken, password: "new-secret",
			arrange: func(m resetMocks) {
				m.tokens.EXPECT().FindValidResetToken(gomock.Any(), testResetToken, resetNow).
					Return(models.PasswordResetToken{}, store.ErrResetTokenNotFound)
			},
			wantErr: ErrInvalidOrExpiredToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, m := newTestResetSvc(t, ctrl)
			if tt.arrange != nil {
				tt.arrange(m)
			}

			err := svc.Redeem(context.Background(), tt.token, tt.password)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, KindValidation, KindOf(err))
		})
	}
}

func TestPasswordResetService_Redeem_UpdateFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestResetSvc(t, ctrl)

	m.tokens.EXPECT().FindValidResetToken(gomock.Any(), testResetToken, resetNow).
		Return(models.PasswordResetToken{Token: testResetToken, UserID: 3}, nil)
	m.users.EXPECT().UpdatePasswordHash(gomock.Any(), int64(3), gomock.Any()).Return(errors.New("disk full"))

	err := svc.Redeem(context.Background(), testResetToken, "new-secret")

	assert.Equal(t, "Could not update password.", PublicMessage(err))
}

// ── PurgeExpired ─────────────────────────────────────────────────────────────

func TestPasswordResetService_PurgeExpired(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestResetSvc(t, ctrl)

	m.tokens.EXPECT().DeleteExpiredResetTokens(gomock.Any(), resetNow).Return(int64(4), nil)

	n, err := svc.PurgeExpired(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
}

func TestTokenPrefix(t *testing.T) {
	assert.Equal(t, "9f86d081", tokenPrefix(testResetToken))
	assert.Empty(t, tokenPrefix("short"))
}

func TestHumanTTL(t *testing.T) {
	assert.Equal(t, "1 hour", humanTTL(time.Hour))
	assert.Equal(t, "2 hours", humanTTL(2*time.Hour))
	assert.Equal(t, "90 minutes", humanTTL(90*time.Minute))
	assert.Equal(t, "1 minute", humanTTL(time.Minute))
}
