// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-trade-desk/internal/adapter"
	"github.com/MKhiriev/go-trade-desk/internal/config"
	"github.com/MKhiriev/go-trade-desk/internal/logger"
	"github.com/MKhiriev/go-trade-desk/internal/store"
	"github.com/MKhiriev/go-trade-desk/internal/utils"
	"github.com/MKhiriev/go-trade-desk/models"
)

type passwordResetService struct {
	userRepository       store.UserRepository
	resetTokenRepository store.ResetTokenRepository
	mailer               adapter.Mailer

	hasher      passwordHasher
	tokenTTL    time.Duration
	linkBaseURL string
	now         func() time.Time
	generateHex func(n int) (string, error)

	logger *logger.Logger
}

func NewPasswordResetService(storages *store.Storages, mailer adapter.Mailer, cfg config.Auth, logger *logger.Logger) PasswordResetService {
	return &passwordResetService{
		userRepository:       storages.UserRepository,
		resetTokenRepository: storages.ResetTokenRepository,
		mailer:               mailer,
		hasher:               newPasswordHasher(cfg.PasswordHashCost),
		tokenTTL:             cfg.ResetTokenTTL,
		linkBaseURL:          strings.TrimRight(cfg.ResetLinkBaseURL, "/"),
		now:                  time.Now,
		generateHex:          utils.GenerateRandomHex,
		logger:               logger,
	}
}

// RequestReset answers the same way whether or not email has an account.
func (p *passwordResetService) RequestReset(ctx context.Context, email string) error {
	log := logger.FromContext(ctx)

	email = strings.TrimSpace(email)
	if email == "" {
		return ErrMissingEmail
	}

	user, err := p.userRepository.FindUserByEmail(ctx, email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Debug().Msg("password reset requested for unknown email")
		return nil
	}
	if err != nil {
		log.Err(err).Msg("user search by email failed")
		return upstream("Database error.", err)
	}

	token, err := p.generateHex(utils.ResetTokenBytes)
	if err != nil {
		log.Err(err).Msg("reset token generation failed")
		return upstream("Could not save reset token.", err)
	}

	now := p.now()
	resetToken := models.PasswordResetToken{
		Token:     token,
		UserID:    user.ID,
		ExpiresAt: now.Add(p.tokenTTL),
	}
	if err = p.resetTokenRepository.CreateResetToken(ctx, resetToken); err != nil {
		log.Err(err).Int64("user_id", user.ID).Msg("reset token saving failed")
		return upstream("Could not save reset token.", err)
	}

	mail := models.PasswordResetMail{
		Type:      models.PasswordResetMailType,
		To:        user.Email,
		ResetLink: p.linkBaseURL + "/" + token,
		ExpiresIn: humanTTL(p.tokenTTL),
		CreatedAt: now,
	}
	if err = p.mailer.SendPasswordReset(ctx, mail); err != nil {
		log.Err(err).Int64("user_id", user.ID).Msg("reset email sending failed")
		return upstream("Failed to send reset email.", err)
	}

	log.Info().Int64("user_id", user.ID).Str("token_prefix", tokenPrefix(token)).Msg("password reset link sent")
	return nil
}

func (p *passwordResetService) VerifyResetToken(ctx context.Context, token string) (bool, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return false, ErrMissingResetToken
	}

	_, err := p.resetTokenRepository.FindValidResetToken(ctx, token, p.now())
	if errors.Is(err, store.ErrResetTokenNotFound) {
		return false, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("reset token search failed")
		return false, upstream("Database error.", err)
	}

	return true, nil
}

// Redeem sets a new password for the token's owner. The token is deleted
// afterwards; a failed delete does not undo the reset.
func (p *passwordResetService) Redeem(ctx context.Context, token, password string) error {
	log := logger.FromContext(ctx)

	token = strings.TrimSpace(token)
	if token == "" || password == "" {
		return ErrMissingResetFields
	}
	if err := validatePassword(password); err != nil {
		return err
	}

	resetToken, err := p.resetTokenRepository.FindValidResetToken(ctx, token, p.now())
	if errors.Is(err, store.ErrResetTokenNotFound) {
		return ErrInvalidOrExpiredToken
	}
	if err != nil {
		log.Err(err).Msg("reset token search failed")
		return upstream("Database error.", err)
	}

	hash, err := p.hasher.hash(password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return upstream("Could not update password.", err)
	}

	err = p.userRepository.UpdatePasswordHash(ctx, resetToken.UserID, hash)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return ErrInvalidOrExpiredToken
	}
	if err != nil {
		log.Err(err).Int64("user_id", resetToken.UserID).Msg("password update failed")
		return upstream("Could not update password.", err)
	}

	if err = p.resetTokenRepository.DeleteResetToken(ctx, token); err != nil {
		log.Warn().Err(err).Str("token_prefix", tokenPrefix(token)).Msg("used reset token was not deleted")
	}

	log.Info().Int64("user_id", resetToken.UserID).Msg("password reset")
	return nil
}

func (p *passwordResetService) PurgeExpired(ctx context.Context) (int64, error) {
	n, err := p.resetTokenRepository.DeleteExpiredResetTokens(ctx, p.now())
	if err != nil {
		return 0, upstream("Database error.", err)
	}

	return n, nil
}

// tokenPrefix shortens a secret to something safe to log.
func tokenPrefix(token string) string {
	if len(token) <= 8 {
		return ""
	}
	return token[:8]
}

// humanTTL renders a token lifetime for the mail body.
func humanTTL(d time.Duration) string {
	if d >= time.Hour && d%time.Hour == 0 {
		if h := int(d / time.Hour); h != 1 {
			return fmt.Sprintf("%d hours", h)
		}
		return "1 hour"
	}
	if m := int(d.Round(time.Minute) / time.Minute); m != 1 {
		return fmt.Sprintf("%d minutes", m)
	}
	return "1 minute"
}
