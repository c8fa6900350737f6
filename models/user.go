// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User is a persisted account. Accounts are never deleted; the only mutation
// after creation is a password reset replacing PasswordHash.
type User struct {
	// ID is assigned by the database on creation and never changes.
	ID int64 `json:"id"`

	// Email is unique and is one of the two login identifiers.
	Email string `json:"email"`

	// Username is unique and is the alternate login identifier.
	Username string `json:"username"`

	// PasswordHash holds the bcrypt hash of the password. Federated-only
	// accounts hold a sentinel that no bcrypt comparison accepts.
	// It is never serialized.
	PasswordHash string `json:"-"`
}

// UserView is the public projection of a User returned to API clients.
type UserView struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username,omitempty"`
	Name     string `json:"name,omitempty"`
}

// View returns the public projection of u.
func (u User) View() UserView {
	return UserView{
		ID:       u.ID,
		Email:    u.Email,
		Username: u.Username,
	}
}
