// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

var (
	errAddressFormat = errors.New("need address in a form `host:port`")
	errAddressPort   = errors.New("port must be in 1..65535")
	errAddressHost   = errors.New("host must be localhost or an IP address")
)

// NetAddress is a validated host:port. It implements flag.Value.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the configuration flags in args (without the program
// name). Flags left unset produce zero fields, which later layers fill.
//
//	-a                  listen address host:port
//	-d                  database DSN
//	-c, -config         JSON config file
//	-token-sign-key     session token HMAC key
//	-token-issuer       session token issuer
//	-token-duration     session token lifetime
//	-google-client-id   expected audience of Google ID tokens
//	-mail-transport     log, smtp or kafka
//	-reset-link-base    page the reset token is appended to
//	-origins            comma separated CORS origins
//	-request-timeout    per-request deadline
//	-sweep-interval     expired reset token sweep interval
//	-log-level          zerolog level
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("go-trade-desk", flag.ContinueOnError)

	var (
		address        NetAddress
		cfg            StructuredConfig
		origins        string
		requestTimeout time.Duration
	)

	fs.Var(&address, "a", "listen address host:port")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "database DSN")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias of -c)")
	fs.StringVar(&cfg.Auth.TokenSignKey, "token-sign-key", "", "session token signing key")
	fs.StringVar(&cfg.Auth.TokenIssuer, "token-issuer", "", "session token issuer")
	fs.DurationVar(&cfg.Auth.TokenDuration, "token-duration", 0, "session token lifetime, e.g. 1h")
	fs.StringVar(&cfg.Google.ClientID, "google-client-id", "", "Google OAuth client id")
	fs.StringVar(&cfg.Mail.Transport, "mail-transport", "", "mail transport: log, smtp or kafka")
	fs.StringVar(&cfg.Auth.ResetLinkBaseURL, "reset-link-base", "", "reset page URL the token is appended to")
	fs.StringVar(&origins, "origins", "", "comma separated CORS origins")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "request timeout, e.g. 30s")
	fs.DurationVar(&cfg.Workers.ResetTokenSweepInterval, "sweep-interval", 0, "reset token sweep interval, negative disables")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "log level")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.Server.HTTPAddress = address.String()
	cfg.Server.RequestTimeout = requestTimeout
	cfg.Server.AllowedOrigins = splitList(origins)

	return &cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// String returns host:port, or "" for an unset address.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses host:port. An empty host listens on every interface.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return fmt.Errorf("%w: %w", errAddressFormat, err)
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("%w: %q", errAddressPort, rawPort)
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return fmt.Errorf("%w: %q", errAddressHost, host)
	}

	a.Host = host
	a.Port = port
	return nil
}
