// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils holds small helpers shared by the server packages: the
// authenticated user in a request context, JSON bodies, session token
// signing and parsing, reset token generation and trace ids.
package utils

import "context"

type contextKey string

func (c contextKey) String() string {
	return "utils context key " + string(c)
}

const userIDKey = contextKey("userID")

// WithUserID returns a copy of ctx carrying the authenticated user id.
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// GetUserIDFromContext returns the id stored by WithUserID. ok is false when
// ctx carries none.
func GetUserIDFromContext(ctx context.Context) (userID int64, ok bool) {
	userID, ok = ctx.Value(userIDKey).(int64)
	return userID, ok
}
