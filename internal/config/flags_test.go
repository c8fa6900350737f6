// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		input   string
		want    NetAddress
		wantErr error
	}{
		{input: "localhost:5001", want: NetAddress{Host: "localhost", Port: 5001}},
		{input: "127.0.0.1:5001", want: NetAddress{Host: "127.0.0.1", Port: 5001}},
		{input: "[::1]:5001", want: NetAddress{Host: "::1", Port: 5001}},
		{input: ":5001", want: NetAddress{Port: 5001}},
		{input: "localhost", wantErr: errAddressFormat},
		{input: "", wantErr: errAddressFormat},
		{input: "a:b:c", wantErr: errAddressFormat},
		{input: "localhost:http", wantErr: errAddressPort},
		{input: "localhost:0", wantErr: errAddressPort},
		{input: "localhost:70000", wantErr: errAddressPort},
		{input: "trade.example:5001", wantErr: errAddressHost},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, NetAddress{}, addr, "a rejected value must not be stored")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, addr)
			assert.Equal(t, tt.input, addr.String())
		})
	}
}

func TestNetAddress_StringUnset(t *testing.T) {
	assert.Empty(t, (&NetAddress{}).String())
}

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := ParseFlags([]string{
		"-a", "localhost:5001",
		"-d", "sqlite://trade-desk.db",
		"-c", "/etc/trade-desk.json",
		"-token-sign-key", "hmac-key",
		"-token-issuer", "trade-desk-test",
		"-token-duration", "2h",
		"-google-client-id", "1234.apps.googleusercontent.com",
		"-mail-transport", "smtp",
		"-reset-link-base", "https://desk.example/reset",
		"-origins", "https://desk.example, http://localhost:5173,",
		"-request-timeout", "20s",
		"-sweep-interval", "-1s",
		"-log-level", "info",
	})
	require.NoError(t, err)

	assert.Equal(t, "localhost:5001", cfg.Server.HTTPAddress)
	assert.Equal(t, "sqlite://trade-desk.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/etc/trade-desk.json", cfg.JSONFilePath)
	assert.Equal(t, "hmac-key", cfg.Auth.TokenSignKey)
	assert.Equal(t, "trade-desk-test", cfg.Auth.TokenIssuer)
	assert.Equal(t, 2*time.Hour, cfg.Auth.TokenDuration)
	assert.Equal(t, "1234.apps.googleusercontent.com", cfg.Google.ClientID)
	assert.Equal(t, MailTransportSMTP, cfg.Mail.Transport)
	assert.Equal(t, "https://desk.example/reset", cfg.Auth.ResetLinkBaseURL)
	assert.Equal(t, []string{"https://desk.example", "http://localhost:5173"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 20*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, -time.Second, cfg.Workers.ResetTokenSweepInterval)
	assert.Equal(t, "info", cfg.App.LogLevel)
}

func TestParseFlags_ConfigAlias(t *testing.T) {
	cfg, err := ParseFlags([]string{"-config", "/etc/trade-desk.json"})
	require.NoError(t, err)

	assert.Equal(t, "/etc/trade-desk.json", cfg.JSONFilePath)
}

// Unset flags stay zero so they do not override env or JSON values when
// merged.
func TestParseFlags_NoFlags(t *testing.T) {
	cfg, err := ParseFlags(nil)
	require.NoError(t, err)

	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_Rejections(t *testing.T) {
	for name, args := range map[string][]string{
		"bad address":   {"-a", "nowhere"},
		"bad port":      {"-a", "localhost:abc"},
		"bad duration":  {"-token-duration", "forever"},
		"unknown flag":  {"-metrics-address", "localhost:9090"},
		"missing value": {"-d"},
	} {
		t.Run(name, func(t *testing.T) {
			cfg, err := ParseFlags(args)

			require.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}
