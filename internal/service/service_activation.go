// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"
	"sync"

	"github.com/MKhiriev/go-trade-desk/internal/config"
	"github.com/MKhiriev/go-trade-desk/internal/logger"
)

// activationService accepts each configured code once per process lifetime.
type activationService struct {
	mu    sync.Mutex
	valid map[string]struct{}
	used  map[string]struct{}

	logger *logger.Logger
}

func NewActivationService(cfg config.App, logger *logger.Logger) ActivationService {
	valid := make(map[string]struct{}, len(cfg.ActivationCodes))
	for _, code := range cfg.ActivationCodes {
		if code = strings.TrimSpace(code); code != "" {
			valid[code] = struct{}{}
		}
	}

	return &activationService{
		valid:  valid,
		used:   make(map[string]struct{}),
		logger: logger,
	}
}

func (a *activationService) Redeem(ctx context.Context, code string) error {
	if code == "" {
		return ErrMissingActivationCode
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if _, ok := a.valid[code]; !ok {
		return ErrInvalidActivationCode
	}
	if _, ok := a.used[code]; ok {
		return ErrInvalidActivationCode
	}
	a.used[code] = struct{}{}

	logger.FromContext(ctx).Info().Msg("activation code redeemed")
	return nil
}
