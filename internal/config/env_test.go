// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_ProductionLikeEnvironment(t *testing.T) {
	setEnvVars(t, map[string]string{
		"CONFIG":                             "/etc/trade-desk.json",
		"APP_VERSION":                        "v1.4.0",
		"APP_LOG_LEVEL":                      "info",
		"APP_ACTIVATION_CODES":               "TRADE-2026,VIP-42",
		"AUTH_TOKEN_SIGN_KEY":                "hmac-key",
		"AUTH_TOKEN_ISSUER":                  "trade-desk",
		"AUTH_TOKEN_DURATION":                "1h",
		"AUTH_PASSWORD_HASH_COST":            "12",
		"AUTH_RESET_TOKEN_TTL":               "30m",
		"AUTH_RESET_LINK_BASE_URL":           "https://desk.example/reset-password",
		"GOOGLE_CLIENT_ID":                   "1234.apps.googleusercontent.com",
		"GOOGLE_VERIFY_TIMEOUT":              "3s",
		"MAIL_TRANSPORT":                     "kafka",
		"MAIL_FROM":                          "no-reply@desk.example",
		"MAIL_SMTP_HOST":                     "smtp.desk.example",
		"MAIL_SMTP_PORT":                     "465",
		"MAIL_KAFKA_BROKER":                  "kafka:9092",
		"MAIL_KAFKA_TOPIC":                   "mail-events",
		"SERVER_ADDRESS":                     "0.0.0.0:5001",
		"SERVER_REQUEST_TIMEOUT":             "15s",
		"SERVER_SHUTDOWN_TIMEOUT":            "5s",
		"SERVER_ALLOWED_ORIGINS":             "https://desk.example,http://localhost:5173",
		"STORAGE_DB_DATABASE_URI":            "postgres://desk:desk@db:5432/desk",
		"STORAGE_DB_MAX_OPEN_CONNS":          "25",
		"WORKERS_RESET_TOKEN_SWEEP_INTERVAL": "5m",
	})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "/etc/trade-desk.json", cfg.JSONFilePath)
	assert.Equal(t, App{Version: "v1.4.0", LogLevel: "info", ActivationCodes: []string{"TRADE-2026", "VIP-42"}}, cfg.App)
	assert.Equal(t, Auth{
		TokenSignKey:     "hmac-key",
		TokenIssuer:      "trade-desk",
		TokenDuration:    time.Hour,
		PasswordHashCost: 12,
		ResetTokenTTL:    30 * time.Minute,
		ResetLinkBaseURL: "https://desk.example/reset-password",
	}, cfg.Auth)
	assert.Equal(t, Google{ClientID: "1234.apps.googleusercontent.com", VerifyTimeout: 3 * time.Second}, cfg.Google)
	assert.Equal(t, "kafka", cfg.Mail.Transport)
	assert.Equal(t, "no-reply@desk.example", cfg.Mail.From)
	assert.Equal(t, SMTP{Host: "smtp.desk.example", Port: 465}, cfg.Mail.SMTP)
	assert.Equal(t, Kafka{Broker: "kafka:9092", Topic: "mail-events"}, cfg.Mail.Kafka)
	assert.Equal(t, Server{
		HTTPAddress:     "0.0.0.0:5001",
		RequestTimeout:  15 * time.Second,
		ShutdownTimeout: 5 * time.Second,
		AllowedOrigins:  []string{"https://desk.example", "http://localhost:5173"},
	}, cfg.Server)
	assert.Equal(t, DB{DSN: "postgres://desk:desk@db:5432/desk", MaxOpenConns: 25}, cfg.Storage.DB)
	assert.Equal(t, 5*time.Minute, cfg.Workers.ResetTokenSweepInterval)
}

func TestParseEnv_NothingSet(t *testing.T) {
	clearEnvVars(t)

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_MalformedValues(t *testing.T) {
	for key, value := range map[string]string{
		"AUTH_TOKEN_DURATION":     "an hour",
		"AUTH_PASSWORD_HASH_COST": "ten",
		"MAIL_SMTP_PORT":          "smtp",
	} {
		t.Run(key, func(t *testing.T) {
			setEnvVars(t, map[string]string{key: value})

			err := parseEnv(&StructuredConfig{})

			require.Error(t, err)
			assert.Contains(t, err.Error(), "error getting env configs")
		})
	}
}

func TestParseEnv_NegativeSweepIntervalDisables(t *testing.T) {
	setEnvVars(t, map[string]string{"WORKERS_RESET_TOKEN_SWEEP_INTERVAL": "-1s"})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, -time.Second, cfg.Workers.ResetTokenSweepInterval)
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",

		"APP_VERSION",
		"APP_LOG_LEVEL",
		"APP_ACTIVATION_CODES",

		"AUTH_TOKEN_SIGN_KEY",
		"AUTH_TOKEN_ISSUER",
		"AUTH_TOKEN_DURATION",
		"AUTH_PASSWORD_HASH_COST",
		"AUTH_RESET_TOKEN_TTL",
		"AUTH_RESET_LINK_BASE_URL",

		"GOOGLE_CLIENT_ID",
		"GOOGLE_JWKS_URL",
		"GOOGLE_VERIFY_TIMEOUT",

		"MAIL_TRANSPORT",
		"MAIL_FROM",
		"MAIL_SMTP_HOST",
		"MAIL_SMTP_PORT",
		"MAIL_KAFKA_BROKER",
		"MAIL_KAFKA_TOPIC",

		"SERVER_ADDRESS",
		"SERVER_REQUEST_TIMEOUT",
		"SERVER_SHUTDOWN_TIMEOUT",
		"SERVER_ALLOWED_ORIGINS",

		"STORAGE_DB_DATABASE_URI",
		"STORAGE_DB_MAX_OPEN_CONNS",

		"WORKERS_RESET_TOKEN_SWEEP_INTERVAL",
	}
	for _, k := range keys {
		if _, ok := os.LookupEnv(k); ok {
			t.Setenv(k, "")
			require.NoError(t, os.Unsetenv(k))
		}
	}
}
