// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/MKhiriev/go-trade-desk/internal/adapter"
	"github.com/MKhiriev/go-trade-desk/internal/client"
	"github.com/MKhiriev/go-trade-desk/internal/logger"
)

// tokenVariable holds a session token printed by a previous login.
const tokenVariable = "TRADE_DESK_TOKEN"

func main() {
	log := logger.NewClientLogger("go-trade-desk-client")

	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	serverURL := fs.String("server", "http://localhost:5001", "API base URL")
	token := fs.String("token", os.Getenv(tokenVariable), "session token (default $"+tokenVariable+")")
	timeout := fs.Duration("timeout", 15*time.Second, "request timeout")
	logLevel := fs.String("log-level", "warn", "log level (debug, info, warn, error)")
	_ = fs.Parse(os.Args[1:])

	if err := logger.SetLevel(*logLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	api := adapter.NewAPIClient(adapter.APIClientConfig{BaseURL: *serverURL, Timeout: *timeout})
	api.SetToken(*token)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app := client.NewApp(api, os.Stdin, os.Stdout, os.Stderr, client.TerminalPasswordReader, log)
	if err := app.Run(ctx, fs.Args()); err != nil {
		stop()
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}
