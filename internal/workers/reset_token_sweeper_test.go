// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-trade-desk/internal/logger"
	"github.com/stretchr/testify/assert"
)

type fakeResetService struct {
	calls atomic.Int32
	err   error
	swept chan struct{}
}

func (f *fakeResetService) RequestReset(context.Context, string) error { return nil }

func (f *fakeResetService) VerifyResetToken(context.Context, string) (bool, error) {
	return false, nil
}

func (f *fakeResetService) Redeem(context.Context, string, string) error { return nil }

func (f *fakeResetService) PurgeExpired(context.Context) (int64, error) {
	f.calls.Add(1)
	if f.swept != nil {
		select {
		case f.swept <- struct{}{}:
		default:
		}
	}
	return 2, f.err
}

func TestResetTokenSweeper_SweepsUntilCancelled(t *testing.T) {
	for _, purgeErr := range []error{nil, errors.New("database is locked")} {
		resets := &fakeResetService{err: purgeErr, swept: make(chan struct{}, 1)}
		sweeper := NewResetTokenSweeper(resets, 5*time.Millisecond, logger.Nop())

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})
		go func() {
			sweeper.Run(ctx)
			close(done)
		}()

		// a failed sweep must not stop the worker
		for i := 0; i < 3; i++ {
			select {
			case <-resets.swept:
			case <-time.After(time.Second):
				t.Fatalf("sweep %d did not happen", i+1)
			}
		}

		cancel()
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("sweeper did not stop")
		}
		assert.GreaterOrEqual(t, resets.calls.Load(), int32(3))
	}
}

func TestResetTokenSweeper_CancelledBeforeStart(t *testing.T) {
	resets := &fakeResetService{}
	sweeper := NewResetTokenSweeper(resets, time.Hour, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	sweeper.Run(ctx)

	assert.Zero(t, resets.calls.Load())
}
