// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// PasswordResetToken is a single-use credential allowing a password change
// without the old password. A token is valid while it exists and the current
// time is before ExpiresAt. It is deleted when redeemed.
type PasswordResetToken struct {
	// Token is 32 random bytes, hex encoded. Primary key.
	Token string

	// UserID is the account whose password the token may change.
	UserID int64

	// ExpiresAt is the absolute expiry instant.
	ExpiresAt time.Time
}

// IsExpired reports whether the token is no longer valid at now.
func (t PasswordResetToken) IsExpired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}
