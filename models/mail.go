// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// PasswordResetMail is the event published to the mail broker when a reset
// link must be delivered by a separate mail service.
type PasswordResetMail struct {
	Type      string    `json:"type"`
	To        string    `json:"to"`
	ResetLink string    `json:"reset_link"`
	ExpiresIn string    `json:"expires_in"`
	CreatedAt time.Time `json:"created_at"`
}

// PasswordResetMailType is the Type of a PasswordResetMail event.
const PasswordResetMailType = "password_reset"
