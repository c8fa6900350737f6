// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-trade-desk/models"
)

const (
	usersTable       = "users"
	resetTokensTable = "password_reset_tokens"
)

var userColumns = []string{"id", "email", "username", "password"}

var resetTokenColumns = []string{"token", "user_id", "expires_at"}

func buildCreateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	query, args, err := b.Insert(usersTable).
		Columns("email", "username", "password").
		Values(user.Email, user.Username, user.PasswordHash).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildFindUserByIdentifierQuery matches either column and orders an email
// match first, so that an identifier equal to one account's email and another
// account's username resolves to the email owner.
func buildFindUserByIdentifierQuery(b sq.StatementBuilderType, identifier string) (string, []any, error) {
	query, args, err := b.Select(userColumns...).
		From(usersTable).
		Where(sq.Or{sq.Eq{"email": identifier}, sq.Eq{"username": identifier}}).
		OrderByClause("CASE WHEN email = ? THEN 0 ELSE 1 END", identifier).
		Limit(1).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildFindUserQuery(b sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	query, args, err := b.Select(userColumns...).
		From(usersTable).
		Where(where).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildUpdatePasswordHashQuery(b sq.StatementBuilderType, userID int64, passwordHash string) (string, []any, error) {
	query, args, err := b.Update(usersTable).
		Set("password", passwordHash).
		Where(sq.Eq{"id": userID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildCreateResetTokenQuery(b sq.StatementBuilderType, token models.PasswordResetToken) (string, []any, error) {
	query, args, err := b.Insert(resetTokensTable).
		Columns(resetTokenColumns...).
		Values(token.Token, token.UserID, token.ExpiresAt.UnixMilli()).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildFindValidResetTokenQuery(b sq.StatementBuilderType, token string, now time.Time) (string, []any, error) {
	query, args, err := b.Select(resetTokenColumns...).
		From(resetTokensTable).
		Where(sq.Eq{"token": token}).
		Where(sq.Gt{"expires_at": now.UnixMilli()}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildDeleteResetTokenQuery(b sq.StatementBuilderType, token string) (string, []any, error) {
	query, args, err := b.Delete(resetTokensTable).
		Where(sq.Eq{"token": token}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildDeleteExpiredResetTokensQuery(b sq.StatementBuilderType, now time.Time) (string, []any, error) {
	query, args, err := b.Delete(resetTokensTable).
		Where(sq.LtOrEq{"expires_at": now.UnixMilli()}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
