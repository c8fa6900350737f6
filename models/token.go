// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the claim set of a bearer session token.
//
// UserID duplicates the "sub" claim as a number so that clients can read the
// owner without parsing the subject string.
type SessionClaims struct {
	jwt.RegisteredClaims

	UserID int64 `json:"userId"`
}

// Token is an issued or verified session token.
type Token struct {
	// SignedString is the compact JWS form sent as "Authorization: Bearer".
	SignedString string `json:"-"`

	// UserID is the authenticated account.
	UserID int64 `json:"-"`

	// IssuedAt and ExpiresAt mirror the "iat" and "exp" claims.
	IssuedAt  time.Time `json:"-"`
	ExpiresAt time.Time `json:"-"`
}

// String returns the compact JWS serialization of the token.
func (t Token) String() string {
	return t.SignedString
}
