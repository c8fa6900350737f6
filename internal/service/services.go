// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-trade-desk/internal/adapter"
	"github.com/MKhiriev/go-trade-desk/internal/config"
	"github.com/MKhiriev/go-trade-desk/internal/logger"
	"github.com/MKhiriev/go-trade-desk/internal/store"
)

type Services struct {
	AuthService          AuthService
	FederatedAuthService FederatedAuthService
	PasswordResetService PasswordResetService
	ActivationService    ActivationService
	CalculatorService    CalculatorService
	AppInfoService       AppInfoService
}

// Adapters are the outbound dependencies the services call.
type Adapters struct {
	IdentityVerifier adapter.IdentityVerifier
	Mailer           adapter.Mailer
}

func NewServices(storages *store.Storages, adapters Adapters, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	authService, err := NewAuthService(storages.UserRepository, cfg.Auth, logger)
	if err != nil {
		return nil, fmt.Errorf("auth service: %w", err)
	}

	federatedAuthService, err := NewFederatedAuthService(adapters.IdentityVerifier, storages.UserRepository, logger)
	if err != nil {
		return nil, fmt.Errorf("federated auth service: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	return &Services{
		AuthService:          authService,
		FederatedAuthService: federatedAuthService,
		PasswordResetService: NewPasswordResetService(storages, adapters.Mailer, cfg.Auth, logger),
		ActivationService:    NewActivationService(cfg.App, logger),
		CalculatorService:    NewCalculatorService(),
		AppInfoService:       appInfoService,
	}, nil
}
