// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-trade-desk/internal/logger"
	"github.com/MKhiriev/go-trade-desk/models"
)

// userRepository is the database/sql implementation of [UserRepository].
// It handles account creation, lookup and password updates against the
// "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns it with the
// database-assigned ID.
//
// Error handling:
//   - unique violation on email    → [ErrDuplicateEmail].
//   - unique violation on username → [ErrDuplicateUsername].
//   - any other driver-level error → wrapped [ErrExecutingStatement].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateUserQuery(r.db.builder(), user)
	if err != nil {
		return models.User{}, err
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&user.ID); err != nil {
		if constraint, ok := r.db.errorClassificator.UniqueViolation(err); ok {
			log.Debug().Str("constraint", constraint).Msg("user already exists")
			return models.User{}, duplicateUserError(constraint)
		}

		log.Err(err).Msg("error inserting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return user, nil
}

// duplicateUserError maps a constraint description ("users_email_unique",
// "UNIQUE constraint failed: users.username", ...) to a sentinel.
func duplicateUserError(constraint string) error {
	switch {
	case strings.Contains(constraint, "username"):
		return ErrDuplicateUsername
	case strings.Contains(constraint, "email"):
		return ErrDuplicateEmail
	default:
		return fmt.Errorf("%w: unknown unique constraint %q", ErrExecutingStatement, constraint)
	}
}

// FindUserByIdentifier returns the user whose email or username equals
// identifier, preferring a match on email.
func (r *userRepository) FindUserByIdentifier(ctx context.Context, identifier string) (models.User, error) {
	query, args, err := buildFindUserByIdentifierQuery(r.db.builder(), identifier)
	if err != nil {
		return models.User{}, err
	}

	return r.findOne(ctx, query, args)
}

// FindUserByEmail returns the user registered with email.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	query, args, err := buildFindUserQuery(r.db.builder(), sq.Eq{"email": email})
	if err != nil {
		return models.User{}, err
	}

	return r.findOne(ctx, query, args)
}

// FindUserByID returns the user with the given id.
func (r *userRepository) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	query, args, err := buildFindUserQuery(r.db.builder(), sq.Eq{"id": id})
	if err != nil {
		return models.User{}, err
	}

	return r.findOne(ctx, query, args)
}

func (r *userRepository) findOne(ctx context.Context, query string, args []any) (models.User, error) {
	log := logger.FromContext(ctx)

	var user models.User
	err := r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, query, args...).
			Scan(&user.ID, &user.Email, &user.Username, &user.PasswordHash)
	})
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrNoUserWasFound
	case err != nil:
		log.Err(err).Msg("error selecting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

// UpdatePasswordHash replaces the stored hash of userID.
// Returns [ErrNoUserWasFound] when no row was updated.
func (r *userRepository) UpdatePasswordHash(ctx context.Context, userID int64, passwordHash string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdatePasswordHashQuery(r.db.builder(), userID, passwordHash)
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("error updating password hash")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}
