// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-trade-desk/internal/config"
	"github.com/MKhiriev/go-trade-desk/internal/logger"
	"github.com/MKhiriev/go-trade-desk/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the enabled background workers. A disabled worker is
// simply left out.
func NewWorkers(services *service.Services, cfg config.Workers, logger *logger.Logger) *Workers {
	w := &Workers{}

	if cfg.ResetTokenSweepInterval > 0 {
		w.workers = append(w.workers, NewResetTokenSweeper(services.PasswordResetService, cfg.ResetTokenSweepInterval, logger))
	} else {
		logger.Info().Msg("reset token sweeper is disabled")
	}

	return w
}

// Len reports how many workers will be started by Run.
func (w *Workers) Len() int {
	return len(w.workers)
}

// Run starts every worker in its own goroutine and blocks until all of them
// have returned, which happens after ctx is cancelled.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Add(1)
		go func(worker Worker) {
			defer wg.Done()
			worker.Run(ctx)
		}(worker)
	}
	wg.Wait()
}
