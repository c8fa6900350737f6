// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells the query loop in [DB] whether to try again.
type ErrorClassification int

const (
	NonRetryable ErrorClassification = iota
	Retryable
)

// transientPgCodes are SQLSTATEs after which the same statement can succeed:
// a dropped connection, a rolled back transaction or a server still starting.
var transientPgCodes = map[string]struct{}{
	pgerrcode.ConnectionException:    {},
	pgerrcode.ConnectionDoesNotExist: {},
	pgerrcode.ConnectionFailure:      {},
	pgerrcode.TransactionRollback:    {},
	pgerrcode.SerializationFailure:   {},
	pgerrcode.DeadlockDetected:       {},
	pgerrcode.CannotConnectNow:       {},
}

// PostgresErrorClassifier reads the SQLSTATE of errors returned through pgx.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	pgErr, ok := asPgError(err)
	if !ok {
		return NonRetryable
	}
	if _, transient := transientPgCodes[pgErr.Code]; transient {
		return Retryable
	}
	return NonRetryable
}

// UniqueViolation returns the name of the violated unique constraint.
func (c *PostgresErrorClassifier) UniqueViolation(err error) (string, bool) {
	pgErr, ok := asPgError(err)
	if !ok || pgErr.Code != pgerrcode.UniqueViolation {
		return "", false
	}
	return pgErr.ConstraintName, true
}

func asPgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr, true
	}
	return nil, false
}
