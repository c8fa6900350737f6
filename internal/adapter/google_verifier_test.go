// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"testing"
	"time"

	"github.com/MKhiriev/go-trade-desk/internal/config"
	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testClientID = "client-123.apps.googleusercontent.com"

func newTestKey(t *testing.T) *rsa.PrivateKey {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	return key
}

func googleTokenClaims(now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"iss":            "https://accounts.google.com",
		"aud":            testClientID,
		"sub":            "1098765",
		"email":          "alice@gmail.com",
		"email_verified": true,
		"name":           "Alice",
		"picture":        "https://lh3.googleusercontent.com/a/alice",
		"iat":            now.Unix(),
		"exp":            now.Add(time.Hour).Unix(),
	}
}

func signRS256(t *testing.T, key *rsa.PrivateKey, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func newTestGoogleVerifier(key *rsa.PrivateKey) *googleVerifier {
	keySet := &oidc.StaticKeySet{PublicKeys: []crypto.PublicKey{&key.PublicKey}}
	return newGoogleVerifier(keySet, testClientID, time.Second, time.Now)
}

func TestNewGoogleVerifier_RequiresClientID(t *testing.T) {
	v, err := NewGoogleVerifier(config.Google{JWKSURL: "https://www.googleapis.com/oauth2/v3/certs"})

	assert.Nil(t, v)
	assert.ErrorIs(t, err, ErrMissingAudience)
}

func TestGoogleVerifier_Verify_Success(t *testing.T) {
	key := newTestKey(t)
	v := newTestGoogleVerifier(key)

	identity, err := v.Verify(context.Background(), signRS256(t, key, googleTokenClaims(time.Now())))

	require.NoError(t, err)
	assert.Equal(t, "1098765", identity.Subject)
	assert.Equal(t, "alice@gmail.com", identity.Email)
	assert.True(t, identity.EmailVerified)
	assert.Equal(t, "Alice", identity.Name)
	assert.Equal(t, "https://lh3.googleusercontent.com/a/alice", identity.Picture)
}

func TestGoogleVerifier_Verify_ShortIssuerAndStringFlag(t *testing.T) {
	key := newTestKey(t)
	v := newTestGoogleVerifier(key)

	claims := googleTokenClaims(time.Now())
	claims["iss"] = "accounts.google.com"
	claims["email_verified"] = "true"

	identity, err := v.Verify(context.Background(), signRS256(t, key, claims))

	require.NoError(t, err)
	assert.True(t, identity.EmailVerified)
}

func TestGoogleVerifier_Verify_Rejections(t *testing.T) {
	key := newTestKey(t)
	otherKey := newTestKey(t)
	v := newTestGoogleVerifier(key)
	now := time.Now()

	tests := []struct {
		name   string
		token  func() string
		target error
	}{
		{name: "empty", token: func() string { return " " }, target: ErrEmptyIDToken},
		{name: "garbage", token: func() string { return "not-a-token" }},
		{
			name: "expired",
			token: func() string {
				c := googleTokenClaims(now.Add(-2 * time.Hour))
				return signRS256(t, key, c)
			},
		},
		{
			name: "foreign audience",
			token: func() string {
				c := googleTokenClaims(now)
				c["aud"] = "someone-else"
				return signRS256(t, key, c)
			},
		},
		{
			name: "untrusted issuer",
			token: func() string {
				c := googleTokenClaims(now)
				c["iss"] = "https://accounts.evil.example"
				return signRS256(t, key, c)
			},
			target: ErrUntrustedIssuer,
		},
		{
			name:  "unknown signing key",
			token: func() string { return signRS256(t, otherKey, googleTokenClaims(now)) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identity, err := v.Verify(context.Background(), tt.token())

			require.Error(t, err)
			assert.Empty(t, identity.Email)
			if tt.target != nil {
				assert.ErrorIs(t, err, tt.target)
			}
		})
	}
}
