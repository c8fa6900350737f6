// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Default values applied to every field left empty by all sources.
const (
	DefaultVersion          = "dev"
	DefaultLogLevel         = "debug"
	DefaultTokenIssuer      = "go-trade-desk"
	DefaultTokenDuration    = time.Hour
	DefaultPasswordHashCost = 10
	DefaultResetTokenTTL    = time.Hour
	DefaultResetLinkBaseURL = "http://localhost:5173/reset-password"
	DefaultGoogleJWKSURL    = "https://www.googleapis.com/oauth2/v3/certs"
	DefaultVerifyTimeout    = 5 * time.Second
	DefaultMailTransport    = MailTransportLog
	DefaultMailFrom         = "no-reply@localhost"
	DefaultSMTPPort         = 587
	DefaultKafkaTopic       = "mail-events"
	DefaultKafkaTimeout     = 10 * time.Second
	DefaultMaxOpenConns     = 10
	DefaultHTTPAddress      = "localhost:5001"
	DefaultRequestTimeout   = 30 * time.Second
	DefaultShutdownTimeout  = 10 * time.Second
	DefaultAllowedOrigin    = "http://localhost:5173"
	DefaultSweepInterval    = 15 * time.Minute
)

// Mail transports accepted in Mail.Transport.
const (
	MailTransportLog   = "log"
	MailTransportSMTP  = "smtp"
	MailTransportKafka = "kafka"
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:  DefaultVersion,
			LogLevel: DefaultLogLevel,
		},
		Auth: Auth{
			TokenIssuer:      DefaultTokenIssuer,
			TokenDuration:    DefaultTokenDuration,
			PasswordHashCost: DefaultPasswordHashCost,
			ResetTokenTTL:    DefaultResetTokenTTL,
			ResetLinkBaseURL: DefaultResetLinkBaseURL,
		},
		Google: Google{
			JWKSURL:       DefaultGoogleJWKSURL,
			VerifyTimeout: DefaultVerifyTimeout,
		},
		Mail: Mail{
			Transport: DefaultMailTransport,
			From:      DefaultMailFrom,
			SMTP:      SMTP{Port: DefaultSMTPPort},
			Kafka: Kafka{
				Topic:        DefaultKafkaTopic,
				WriteTimeout: DefaultKafkaTimeout,
			},
		},
		Storage: Storage{
			DB: DB{MaxOpenConns: DefaultMaxOpenConns},
		},
		Server: Server{
			HTTPAddress:     DefaultHTTPAddress,
			RequestTimeout:  DefaultRequestTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
			AllowedOrigins:  []string{DefaultAllowedOrigin},
		},
		Workers: Workers{
			ResetTokenSweepInterval: DefaultSweepInterval,
		},
	}
}
