// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"

	"github.com/MKhiriev/go-trade-desk/internal/config"
	"github.com/MKhiriev/go-trade-desk/internal/logger"
)

// NewMailer builds the Mailer selected by cfg.Transport.
func NewMailer(cfg config.Mail, log *logger.Logger) (Mailer, error) {
	switch cfg.Transport {
	case config.MailTransportSMTP:
		return NewSMTPMailer(cfg)
	case config.MailTransportKafka:
		mailer, err := NewKafkaMailer(cfg)
		if err != nil {
			return nil, err
		}
		return mailer, nil
	case config.MailTransportLog, "":
		return NewLogMailer(log), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMailTransport, cfg.Transport)
	}
}
