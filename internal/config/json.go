// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly durations.
type StructuredJSONConfig struct {
	App struct {
		Version         string   `json:"version"`
		LogLevel        string   `json:"log_level"`
		ActivationCodes []string `json:"activation_codes"`
	} `json:"app,omitempty"`

	Auth struct {
		TokenSignKey     string   `json:"token_sign_key"`
		TokenIssuer      string   `json:"token_issuer"`
		TokenDuration    Duration `json:"token_duration"`
		PasswordHashCost int      `json:"password_hash_cost"`
		ResetTokenTTL    Duration `json:"reset_token_ttl"`
		ResetLinkBaseURL string   `json:"reset_link_base_url"`
	} `json:"auth,omitempty"`

	Google struct {
		ClientID      string   `json:"client_id"`
		JWKSURL       string   `json:"jwks_url"`
		VerifyTimeout Duration `json:"verify_timeout"`
	} `json:"google,omitempty"`

	Mail struct {
		Transport string `json:"transport"`
		From      string `json:"from"`
		SMTP      struct {
			Host     string `json:"host"`
			Port     int    `json:"port"`
			Username string `json:"username"`
			Password string `json:"password"`
		} `json:"smtp,omitempty"`
		Kafka struct {
			Broker       string   `json:"broker"`
			Topic        string   `json:"topic"`
			Username     string   `json:"username"`
			Password     string   `json:"password"`
			WriteTimeout Duration `json:"write_timeout"`
		} `json:"kafka,omitempty"`
	} `json:"mail,omitempty"`

	Storage struct {
		DB struct {
			DSN          string `json:"dsn"`
			MaxOpenConns int    `json:"max_open_conns"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
		AllowedOrigins  []string `json:"allowed_origins"`
	} `json:"server,omitempty"`

	Workers struct {
		ResetTokenSweepInterval Duration `json:"reset_token_sweep_interval"`
	} `json:"workers,omitempty"`
}

// parseJSON reads the file at jsonFilePath into a StructuredConfig. Keys
// missing from the file stay zero so that earlier sources keep their values.
func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	raw, err := os.ReadFile(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}

	var jsonCfg StructuredJSONConfig
	if err = json.Unmarshal(raw, &jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version:         jsonCfg.App.Version,
			LogLevel:        jsonCfg.App.LogLevel,
			ActivationCodes: jsonCfg.App.ActivationCodes,
		},
		Auth: Auth{
			TokenSignKey:     jsonCfg.Auth.TokenSignKey,
			TokenIssuer:      jsonCfg.Auth.TokenIssuer,
			TokenDuration:    time.Duration(jsonCfg.Auth.TokenDuration),
			PasswordHashCost: jsonCfg.Auth.PasswordHashCost,
			ResetTokenTTL:    time.Duration(jsonCfg.Auth.ResetTokenTTL),
			ResetLinkBaseURL: jsonCfg.Auth.ResetLinkBaseURL,
		},
		Google: Google{
			ClientID:      jsonCfg.Google.ClientID,
			JWKSURL:       jsonCfg.Google.JWKSURL,
			VerifyTimeout: time.Duration(jsonCfg.Google.VerifyTimeout),
		},
		Mail: Mail{
			Transport: jsonCfg.Mail.Transport,
			From:      jsonCfg.Mail.From,
			SMTP: SMTP{
				Host:     jsonCfg.Mail.SMTP.Host,
				Port:     jsonCfg.Mail.SMTP.Port,
				Username: jsonCfg.Mail.SMTP.Username,
				Password: jsonCfg.Mail.SMTP.Password,
			},
			Kafka: Kafka{
				Broker:       jsonCfg.Mail.Kafka.Broker,
				Topic:        jsonCfg.Mail.Kafka.Topic,
				Username:     jsonCfg.Mail.Kafka.Username,
				Password:     jsonCfg.Mail.Kafka.Password,
				WriteTimeout: time.Duration(jsonCfg.Mail.Kafka.WriteTimeout),
			},
		},
		Storage: Storage{
			DB: DB{
				DSN:          jsonCfg.Storage.DB.DSN,
				MaxOpenConns: jsonCfg.Storage.DB.MaxOpenConns,
			},
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
			AllowedOrigins:  jsonCfg.Server.AllowedOrigins,
		},
		Workers: Workers{
			ResetTokenSweepInterval: time.Duration(jsonCfg.Workers.ResetTokenSweepInterval),
		},
	}

	return cfg, nil
}

// Duration decodes either a Go duration string ("90s", "1h") or a number of
// nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		parsed, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", s, err)
		}
		*d = Duration(parsed)
		return nil
	}

	var nanos int64
	if err := json.Unmarshal(b, &nanos); err != nil {
		return fmt.Errorf("invalid duration %s: %w", b, err)
	}
	*d = Duration(nanos)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
