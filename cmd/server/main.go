// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-trade-desk/internal/adapter"
	"github.com/MKhiriev/go-trade-desk/internal/config"
	"github.com/MKhiriev/go-trade-desk/internal/handler"
	"github.com/MKhiriev/go-trade-desk/internal/logger"
	"github.com/MKhiriev/go-trade-desk/internal/server"
	"github.com/MKhiriev/go-trade-desk/internal/service"
	"github.com/MKhiriev/go-trade-desk/internal/store"
	"github.com/MKhiriev/go-trade-desk/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-trade-desk-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err := logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("mail_transport", cfg.Mail.Transport).
		Strs("allowed_origins", cfg.Server.AllowedOrigins).
		Msg("received configs")

	db, err := store.NewConnect(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}
	storages := store.NewStorages(db, log)

	verifier, err := adapter.NewGoogleVerifier(cfg.Google)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating google verifier")
	}

	mailer, err := adapter.NewMailer(cfg.Mail, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating mailer")
	}
	if closer, ok := mailer.(io.Closer); ok {
		defer func() {
			if err := closer.Close(); err != nil {
				log.Err(err).Msg("error closing mailer")
			}
		}()
	}

	services, err := service.NewServices(storages, service.Adapters{
		IdentityVerifier: verifier,
		Mailer:           mailer,
	}, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, workers.NewWorkers(services, cfg.Workers, log), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
