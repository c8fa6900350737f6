// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-trade-desk/internal/service"
	"github.com/MKhiriev/go-trade-desk/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var googleIdentity = models.GoogleIdentity{
	Subject:       "110169484474386276334",
	Email:         "bob@gmail.com",
	EmailVerified: true,
	Name:          "Bob Stone",
}

func TestGoogleLogin_OK(t *testing.T) {
	bob := models.User{ID: 8, Email: "bob@gmail.com", Username: "google_110169484474386276334"}
	federated := &mockFederatedAuthService{
		loginOrRegisterFn: func(_ context.Context, raw string) (models.User, models.GoogleIdentity, bool, error) {
			assert.Equal(t, "google-id-token", raw)
			return bob, googleIdentity, true, nil
		},
	}
	h := newTestHandler(&service.Services{
		AuthService:          &mockAuthService{},
		FederatedAuthService: federated,
	})

	rr := serve(t, h, http.MethodPost, "/api/google-login", `{"token":"google-id-token"}`)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{
		"token": "token-for-user",
		"user": {"id": 8, "email": "bob@gmail.com", "username": "google_110169484474386276334", "name": "Bob Stone"}
	}`, rr.Body.String())
}

func TestGoogleLogin_Failures(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{name: "no token", err: service.ErrMissingGoogleToken, wantStatus: http.StatusBadRequest, wantBody: `{"error":"No Google ID token provided."}`},
		{name: "incomplete profile", err: service.ErrGoogleProfileIncomplete, wantStatus: http.StatusBadRequest, wantBody: `{"error":"Could not retrieve user information from Google."}`},
		{name: "rejected token", err: service.ErrGoogleVerificationFailed, wantStatus: http.StatusUnauthorized, wantBody: `{"error":"Invalid Google ID token."}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			federated := &mockFederatedAuthService{
				loginOrRegisterFn: func(context.Context, string) (models.User, models.GoogleIdentity, bool, error) {
					return models.User{}, models.GoogleIdentity{}, false, tt.err
				},
			}
			h := newTestHandler(&service.Services{FederatedAuthService: federated})

			rr := serve(t, h, http.MethodPost, "/api/google-login", `{"token":"x"}`)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.JSONEq(t, tt.wantBody, rr.Body.String())
		})
	}
}

func TestVerifyGoogleToken(t *testing.T) {
	federated := &mockFederatedAuthService{
		verifyTokenFn: func(_ context.Context, raw string) (models.GoogleIdentity, error) {
			if raw == "good" {
				return googleIdentity, nil
			}
			return models.GoogleIdentity{}, service.ErrGoogleVerificationFailed
		},
	}
	h := newTestHandler(&service.Services{FederatedAuthService: federated})

	rr := serve(t, h, http.MethodPost, "/api/verify-google-token", `{"token":"good"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{
		"message": "Google ID token verified successfully.",
		"payload": {"sub": "110169484474386276334", "email": "bob@gmail.com", "email_verified": true, "name": "Bob Stone"}
	}`, rr.Body.String())

	rr = serve(t, h, http.MethodPost, "/api/verify-google-token", `{"token":"bad"}`)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
