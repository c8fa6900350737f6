// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/go-trade-desk/internal/config"
	"github.com/MKhiriev/go-trade-desk/models"
	"github.com/coreos/go-oidc/v3/oidc"
)

// googleIssuers are the two "iss" values Google signs ID tokens with.
var googleIssuers = []string{"https://accounts.google.com", "accounts.google.com"}

type googleVerifier struct {
	verifier *oidc.IDTokenVerifier
	timeout  time.Duration
}

// NewGoogleVerifier returns an IdentityVerifier for Google ID tokens. Signing
// keys are fetched from cfg.JWKSURL on demand and cached.
func NewGoogleVerifier(cfg config.Google) (IdentityVerifier, error) {
	if cfg.ClientID == "" {
		return nil, ErrMissingAudience
	}

	client := &http.Client{Timeout: cfg.VerifyTimeout}
	keySet := oidc.NewRemoteKeySet(oidc.ClientContext(context.Background(), client), cfg.JWKSURL)

	return newGoogleVerifier(keySet, cfg.ClientID, cfg.VerifyTimeout, time.Now), nil
}

func newGoogleVerifier(keySet oidc.KeySet, clientID string, timeout time.Duration, now func() time.Time) *googleVerifier {
	verifier := oidc.NewVerifier(googleIssuers[0], keySet, &oidc.Config{
		ClientID: clientID,
		// both issuer spellings are accepted, see checkIssuer
		SkipIssuerCheck: true,
		Now:             now,
	})

	return &googleVerifier{verifier: verifier, timeout: timeout}
}

// googleClaims are the profile claims of a Google ID token.
type googleClaims struct {
	Email         string     `json:"email"`
	EmailVerified googleBool `json:"email_verified"`
	Name          string     `json:"name"`
	Picture       string     `json:"picture"`
}

// Verify checks signature, expiry, audience and issuer of rawToken.
func (g *googleVerifier) Verify(ctx context.Context, rawToken string) (models.GoogleIdentity, error) {
	rawToken = strings.TrimSpace(rawToken)
	if rawToken == "" {
		return models.GoogleIdentity{}, ErrEmptyIDToken
	}

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	idToken, err := g.verifier.Verify(ctx, rawToken)
	if err != nil {
		return models.GoogleIdentity{}, fmt.Errorf("google id token verification failed: %w", err)
	}
	if err = checkIssuer(idToken.Issuer); err != nil {
		return models.GoogleIdentity{}, err
	}

	var claims googleClaims
	if err = idToken.Claims(&claims); err != nil {
		return models.GoogleIdentity{}, fmt.Errorf("%w: %w", ErrMalformedIDClaims, err)
	}

	return models.GoogleIdentity{
		Subject:       idToken.Subject,
		Email:         claims.Email,
		EmailVerified: bool(claims.EmailVerified),
		Name:          claims.Name,
		Picture:       claims.Picture,
	}, nil
}

func checkIssuer(issuer string) error {
	for _, trusted := range googleIssuers {
		if issuer == trusted {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUntrustedIssuer, issuer)
}

// googleBool accepts email_verified both as a JSON boolean and as the
// string "true"/"false" some Google endpoints emit.
type googleBool bool

func (b *googleBool) UnmarshalJSON(data []byte) error {
	var v bool
	if err := json.Unmarshal(data, &v); err == nil {
		*b = googleBool(v)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*b = googleBool(strings.EqualFold(s, "true"))
	return nil
}
