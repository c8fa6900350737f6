// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-trade-desk/internal/logger"
	"github.com/MKhiriev/go-trade-desk/internal/service"
)

// ResetTokenSweeper deletes expired password reset tokens on a fixed
// interval. Expired tokens are already rejected on redemption, so the
// sweeper only keeps the table small.
type ResetTokenSweeper struct {
	resets   service.PasswordResetService
	interval time.Duration
	logger   *logger.Logger
}

func NewResetTokenSweeper(resets service.PasswordResetService, interval time.Duration, logger *logger.Logger) *ResetTokenSweeper {
	return &ResetTokenSweeper{
		resets:   resets,
		interval: interval,
		logger:   logger,
	}
}

// Run sweeps once immediately and then every interval until ctx is done.
func (s *ResetTokenSweeper) Run(ctx context.Context) {
	s.logger.Info().Dur("interval", s.interval).Msg("reset token sweeper started")

	t := time.NewTicker(s.interval)
	defer t.Stop()

	for {
		s.sweep(ctx)

		select {
		case <-ctx.Done():
			s.logger.Info().Msg("reset token sweeper stopped")
			return
		case <-t.C:
		}
	}
}

func (s *ResetTokenSweeper) sweep(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	deleted, err := s.resets.PurgeExpired(ctx)
	if err != nil {
		s.logger.Err(err).Msg("failed to delete expired reset tokens")
		return
	}
	if deleted > 0 {
		s.logger.Debug().Int64("deleted", deleted).Msg("expired reset tokens deleted")
	}
}
