// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"k8s.io/utils/clock"

	"github.com/MKhiriev/go-device-sync/internal/config"
	"github.com/MKhiriev/go-device-sync/internal/logger"
	"github.com/MKhiriev/go-device-sync/internal/service"
)

// SyncWorker runs sync cycles on a fixed interval.
//
// All cycles, the first one included, run on a single loop goroutine, so two
// cycles never overlap. A tick or trigger that arrives while a cycle is
// running waits in a one-slot buffer and is handled right after it; further
// arrivals merge into the pending one.
type SyncWorker struct {
	coordinator service.SyncCoordinator
	interval    time.Duration
	clock       clock.WithTicker

	trigger chan struct{}

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}

	logger *logger.Logger
}

// NewSyncWorker creates a SyncWorker calling coordinator every
// cfg.SyncInterval(). The worker is idle until Start is called.
func NewSyncWorker(coordinator service.SyncCoordinator, cfg config.Workers, logger *logger.Logger) *SyncWorker {
	return newSyncWorker(coordinator, cfg.SyncInterval(), clock.RealClock{}, logger)
}

func newSyncWorker(coordinator service.SyncCoordinator, interval time.Duration, clk clock.WithTicker, logger *logger.Logger) *SyncWorker {
	if interval <= 0 {
		interval = config.DefaultSyncIntervalMinutes * time.Minute
	}

	return &SyncWorker{
		coordinator: coordinator,
		interval:    interval,
		clock:       clk,
		trigger:     make(chan struct{}, 1),
		logger:      logger,
	}
}

// Start implements Worker. It runs one cycle and returns when that cycle has
// finished; later cycles run in the background until ctx is cancelled or
// Stop is called. A failed cycle never fails Start. A stopped worker, or one
// whose context was cancelled, can be started again.
func (w *SyncWorker) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running() {
		w.mu.Unlock()
		return ErrWorkerAlreadyStarted
	}
	loopCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	w.cancel = cancel
	w.done = done
	w.mu.Unlock()

	ready := make(chan struct{})
	go w.loop(loopCtx, ready, done)
	<-ready

	w.logger.Info().Dur("interval", w.interval).Msg("sync worker started")
	return nil
}

// Trigger implements SyncTrigger.
func (w *SyncWorker) Trigger() bool {
	select {
	case w.trigger <- struct{}{}:
		return true
	default:
		return false
	}
}

// Stop implements Worker. It cancels the loop and blocks until a running
// cycle has returned. Safe to call when the worker is not running.
func (w *SyncWorker) Stop() {
	w.mu.Lock()
	cancel, done := w.cancel, w.done
	w.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done

	w.mu.Lock()
	// a concurrent Stop/Start pair may already have replaced the loop
	if w.done == done {
		w.cancel, w.done = nil, nil
	}
	w.mu.Unlock()

	w.logger.Info().Msg("sync worker stopped")
}

// running reports whether a loop is live. A loop that ended because the
// parent context was cancelled does not count. Callers hold mu.
func (w *SyncWorker) running() bool {
	if w.cancel == nil {
		return false
	}
	select {
	case <-w.done:
		w.cancel()
		w.cancel, w.done = nil, nil
		return false
	default:
		return true
	}
}

func (w *SyncWorker) loop(ctx context.Context, ready, done chan struct{}) {
	defer close(done)

	w.runCycle(ctx, "startup")
	close(ready)

	ticker := w.clock.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C():
			w.runCycle(ctx, "schedule")
		case <-w.trigger:
			w.runCycle(ctx, "trigger")
		}
	}
}

func (w *SyncWorker) runCycle(ctx context.Context, reason string) {
	// select picks at random among ready cases, so a tick can win over Done
	if ctx.Err() != nil {
		return
	}

	w.logger.Debug().Str("reason", reason).Msg("starting sync cycle")
	w.coordinator.SyncWithRetry(ctx)
}
