// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
)

// FederatedPasswordSentinel is stored as the password hash of accounts
// created through Google sign-in. It is not a bcrypt hash, so no password
// can ever match it.
const FederatedPasswordSentinel = "!federated"

const (
	minPasswordLength = 6
	maxPasswordBytes  = 72
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func validEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// validatePassword enforces the length rules shared by signup and reset.
// bcrypt ignores everything after 72 bytes, longer input is refused.
func validatePassword(password string) error {
	if utf8.RuneCountInString(password) < minPasswordLength {
		return ErrPasswordTooShort
	}
	if len(password) > maxPasswordBytes {
		return ErrPasswordTooLong
	}
	return nil
}

type passwordHasher struct {
	cost int
}

func newPasswordHasher(cost int) passwordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return passwordHasher{cost: cost}
}

func (h passwordHasher) hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}
	return string(b), nil
}

// compare reports whether password matches hash. The sentinel and any
// malformed hash never match.
func (h passwordHasher) compare(hash, password string) bool {
	if hash == FederatedPasswordSentinel {
		return false
	}
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

