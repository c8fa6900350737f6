// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container of go-trade-desk.
// It is populated by merging an optional .env file, environment variables,
// command-line flags and an optional JSON file, in that order.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-wide settings: version, log level, activation codes.
	App App `envPrefix:"APP_"`

	// Auth holds session token and password reset settings.
	Auth Auth `envPrefix:"AUTH_"`

	// Google holds the federated login settings.
	Google Google `envPrefix:"GOOGLE_"`

	// Mail selects and configures the outbound mail transport.
	Mail Mail `envPrefix:"MAIL_"`

	// Storage holds the relational database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the HTTP listener settings.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds background worker settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration.
type App struct {
	// Version is exposed via GET /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// ActivationCodes is the set of one-time activation codes accepted by
	// POST /api/verify-activation-code.
	// Env: APP_ACTIVATION_CODES (comma separated)
	ActivationCodes []string `env:"ACTIVATION_CODES" envSeparator:","`
}

// Auth holds the secrets and lifetimes of the authentication subsystem.
type Auth struct {
	// TokenSignKey is the HMAC secret used to sign session tokens. Required.
	// Env: AUTH_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of issued session tokens.
	// Env: AUTH_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of a session token.
	// Env: AUTH_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// PasswordHashCost is the bcrypt work factor.
	// Env: AUTH_PASSWORD_HASH_COST
	PasswordHashCost int `env:"PASSWORD_HASH_COST"`

	// ResetTokenTTL is the lifetime of a password reset token.
	// Env: AUTH_RESET_TOKEN_TTL
	ResetTokenTTL time.Duration `env:"RESET_TOKEN_TTL"`

	// ResetLinkBaseURL is the front-end page the reset token is appended to.
	// Env: AUTH_RESET_LINK_BASE_URL
	ResetLinkBaseURL string `env:"RESET_LINK_BASE_URL"`
}

// Google holds the settings used to verify Google ID tokens.
type Google struct {
	// ClientID is the OAuth client identifier expected in the "aud" claim.
	// Env: GOOGLE_CLIENT_ID
	ClientID string `env:"CLIENT_ID"`

	// JWKSURL is where Google's signing keys are published.
	// Env: GOOGLE_JWKS_URL
	JWKSURL string `env:"JWKS_URL"`

	// VerifyTimeout bounds a single ID token verification, including a key
	// refresh against JWKSURL.
	// Env: GOOGLE_VERIFY_TIMEOUT
	VerifyTimeout time.Duration `env:"VERIFY_TIMEOUT"`
}

// Mail selects the outbound mail transport.
type Mail struct {
	// Transport is one of "log", "smtp" or "kafka".
	// Env: MAIL_TRANSPORT
	Transport string `env:"TRANSPORT"`

	// From is the sender address of outgoing mail.
	// Env: MAIL_FROM
	From string `env:"FROM"`

	SMTP  SMTP  `envPrefix:"SMTP_"`
	Kafka Kafka `envPrefix:"KAFKA_"`
}

// SMTP holds the credentials of the SMTP relay.
type SMTP struct {
	Host     string `env:"HOST"`
	Port     int    `env:"PORT"`
	Username string `env:"USERNAME"`
	Password string `env:"PASSWORD"`
}

// Kafka holds the settings of the broker that mail events are published to.
type Kafka struct {
	Broker       string        `env:"BROKER"`
	Topic        string        `env:"TOPIC"`
	Username     string        `env:"USERNAME"`
	Password     string        `env:"PASSWORD"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT"`
}

// Storage groups the configuration of the persistence backends.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database.
type DB struct {
	// DSN selects the driver by scheme: "postgres://..." uses pgx,
	// "sqlite://path" or "file:path" uses sqlite3.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// MaxOpenConns caps the connection pool.
	// Env: STORAGE_DB_MAX_OPEN_CONNS
	MaxOpenConns int `env:"MAX_OPEN_CONNS"`
}

// Server holds network and timeout settings of the HTTP listener.
type Server struct {
	// HTTPAddress is the "host:port" the server listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout cancels a request's context after the given duration.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`

	// AllowedOrigins lists the browser origins allowed by CORS.
	// Env: SERVER_ALLOWED_ORIGINS (comma separated)
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
}

// Workers holds background worker settings.
type Workers struct {
	// ResetTokenSweepInterval is how often expired reset tokens are deleted.
	// Unset means DefaultSweepInterval, a negative value disables the sweeper.
	// Env: WORKERS_RESET_TOKEN_SWEEP_INTERVAL
	ResetTokenSweepInterval time.Duration `env:"RESET_TOKEN_SWEEP_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (later sources override non-zero fields of earlier ones):
//  1. .env file (ENV_FILE or ./.env, optional)
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
//
// Defaults are applied to fields left empty by every source.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(os.Getenv(envFileVariable)).
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
