// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-trade-desk/internal/logger"
	"github.com/MKhiriev/go-trade-desk/models"
)

// resetTokenRepository stores password reset tokens in the
// "password_reset_tokens" table. Expiry is kept as unix milliseconds.
type resetTokenRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewResetTokenRepository(db *DB, logger *logger.Logger) ResetTokenRepository {
	logger.Debug().Msg("creating reset token repository")
	return &resetTokenRepository{
		db:     db,
		logger: logger,
	}
}

func (r *resetTokenRepository) CreateResetToken(ctx context.Context, token models.PasswordResetToken) error {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateResetTokenQuery(r.db.builder(), token)
	if err != nil {
		return err
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Int64("user_id", token.UserID).Msg("error saving reset token")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *resetTokenRepository) FindValidResetToken(ctx context.Context, token string, now time.Time) (models.PasswordResetToken, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindValidResetTokenQuery(r.db.builder(), token, now)
	if err != nil {
		return models.PasswordResetToken{}, err
	}

	var (
		found     models.PasswordResetToken
		expiresAt int64
	)
	err = r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(&found.Token, &found.UserID, &expiresAt)
	})
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.PasswordResetToken{}, ErrResetTokenNotFound
	case err != nil:
		log.Err(err).Msg("error selecting reset token")
		return models.PasswordResetToken{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	found.ExpiresAt = time.UnixMilli(expiresAt)

	return found, nil
}

func (r *resetTokenRepository) DeleteResetToken(ctx context.Context, token string) error {
	query, args, err := buildDeleteResetTokenQuery(r.db.builder(), token)
	if err != nil {
		return err
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *resetTokenRepository) DeleteExpiredResetTokens(ctx context.Context, now time.Time) (int64, error) {
	query, args, err := buildDeleteExpiredResetTokensQuery(r.db.builder(), now)
	if err != nil {
		return 0, err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return deleted, nil
}
