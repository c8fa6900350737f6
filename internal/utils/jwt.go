// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-trade-desk/models"
	"github.com/golang-jwt/jwt/v5"
)

// Errors returned by ParseBearerToken.
var (
	ErrEmptyAuthorizationHeader   = errors.New("authorization header is empty")
	ErrInvalidAuthorizationHeader = errors.New("authorization header is not a bearer token")
)

const bearerScheme = "Bearer"

// GenerateJWTToken creates a signed HMAC-SHA256 session token.
//
// The token carries the following claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the user ID encoded as a string
//   - userId         : the user ID as a number
//   - IssuedAt  (iat): now
//   - ExpiresAt (exp): now plus tokenDuration
//
// issuer and signKey must be non-empty and tokenDuration non-zero.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("go-trade-desk", 42, time.Hour, "secret", time.Now())
func GenerateJWTToken(issuer string, userID int64, tokenDuration time.Duration, signKey string, now time.Time) (models.Token, error) {
	if issuer == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	issuedAt := now.Truncate(time.Second)
	expiresAt := issuedAt.Add(tokenDuration)
	claims := &models.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(userID, 10),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
		},
		UserID: userID,
	}

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{
		SignedString: tokenString,
		UserID:       userID,
		IssuedAt:     issuedAt,
		ExpiresAt:    expiresAt,
	}, nil
}

// ValidateAndParseJWTToken validates the given session token and extracts
// its claims.
//
// Validation includes:
//   - the HS256 signature against tokenSignKey (other algorithms are refused)
//   - the issuer (iss) claim against tokenIssuer
//   - presence and freshness of the expiration (exp) claim
//   - agreement between the subject (sub) and userId claims
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	claims := &models.SessionClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Subject == "" {
		return models.Token{}, errors.New("empty subject error")
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during converting subject to user id: %w", err)
	}
	if userID != claims.UserID {
		return models.Token{}, errors.New("subject does not match userId claim")
	}

	token := models.Token{SignedString: tokenString, UserID: userID}
	if claims.IssuedAt != nil {
		token.IssuedAt = claims.IssuedAt.Time
	}
	token.ExpiresAt = claims.ExpiresAt.Time

	return token, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	header := strings.TrimSpace(authorizationHeader)
	if header == "" {
		return "", ErrEmptyAuthorizationHeader
	}

	scheme, token, found := strings.Cut(header, " ")
	token = strings.TrimSpace(token)
	if !found || !strings.EqualFold(scheme, bearerScheme) || token == "" {
		return "", ErrInvalidAuthorizationHeader
	}

	return token, nil
}
