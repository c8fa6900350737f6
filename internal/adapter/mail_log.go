// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"

	"github.com/MKhiriev/go-trade-desk/internal/logger"
	"github.com/MKhiriev/go-trade-desk/models"
)

// logMailer writes reset links to the log instead of sending them.
// For local development only: the link is a live credential.
type logMailer struct {
	logger *logger.Logger
}

func NewLogMailer(log *logger.Logger) Mailer {
	return &logMailer{logger: log}
}

func (l *logMailer) SendPasswordReset(_ context.Context, mail models.PasswordResetMail) error {
	l.logger.Warn().
		Str("to", mail.To).
		Str("reset_link", mail.ResetLink).
		Str("expires_in", mail.ExpiresIn).
		Msg("password reset mail not sent, log transport is active")
	return nil
}
