// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// bcrypt accepts work factors in this closed range.
const (
	minPasswordHashCost = 4
	maxPasswordHashCost = 31
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Auth.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAuthConfigs)
	}

	if cfg.Auth.PasswordHashCost < minPasswordHashCost || cfg.Auth.PasswordHashCost > maxPasswordHashCost {
		return fmt.Errorf("%w: password hash cost %d is out of range", ErrInvalidAuthConfigs, cfg.Auth.PasswordHashCost)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}

	switch cfg.Mail.Transport {
	case MailTransportLog:
	case MailTransportSMTP:
		if cfg.Mail.SMTP.Host == "" {
			return fmt.Errorf("%w: smtp host is required", ErrInvalidMailConfigs)
		}
	case MailTransportKafka:
		if cfg.Mail.Kafka.Broker == "" {
			return fmt.Errorf("%w: kafka broker is required", ErrInvalidMailConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown transport %q", ErrInvalidMailConfigs, cfg.Mail.Transport)
	}

	return nil
}
