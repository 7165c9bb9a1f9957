// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"runtime/debug"

	"k8s.io/utils/clock"

	"github.com/MKhiriev/go-device-sync/internal/config"
	"github.com/MKhiriev/go-device-sync/internal/logger"
	"github.com/MKhiriev/go-device-sync/internal/metrics"
	"github.com/MKhiriev/go-device-sync/internal/store"
	"github.com/MKhiriev/go-device-sync/internal/utils"
	"github.com/MKhiriev/go-device-sync/models"
)

// syncCoordinator is the concrete implementation of SyncCoordinator.
//
// One cycle is a small state machine:
//
//	start   -> credential stored ? attempt : renew
//	attempt -> success: done | unauthorized: renew (once) | transport error: done
//	renew   -> login ok ? attempt : done
//
// A cycle therefore performs at most one Login and at most two Attempt calls.
type syncCoordinator struct {
	tokenStore    store.TokenStore
	authenticator Authenticator
	executor      SyncExecutor

	username string
	password string

	metrics *metrics.SyncMetrics
	clock   clock.PassiveClock

	logger *logger.Logger
}

// NewSyncCoordinator wires the cycle collaborators. Login uses the username
// and password from remote. m may be nil.
func NewSyncCoordinator(
	tokenStore store.TokenStore,
	authenticator Authenticator,
	executor SyncExecutor,
	remote config.Remote,
	m *metrics.SyncMetrics,
	logger *logger.Logger,
) SyncCoordinator {
	return &syncCoordinator{
		tokenStore:    tokenStore,
		authenticator: authenticator,
		executor:      executor,
		username:      remote.Username,
		password:      remote.Password,
		metrics:       m,
		clock:         clock.RealClock{},
		logger:        logger,
	}
}

// SyncWithRetry implements SyncCoordinator. Every failure, a panic from a
// collaborator included, is logged and recorded; nothing is returned.
func (c *syncCoordinator) SyncWithRetry(ctx context.Context) {
	startedAt := c.clock.Now()

	traceID := utils.NewTraceID()
	log := &logger.Logger{Logger: c.logger.With().Str("trace_id", traceID).Logger()}
	ctx = log.WithContext(utils.WithTraceID(ctx, traceID))

	outcome := models.CycleTransportError
	defer func() {
		if r := recover(); r != nil {
			log.Error().
				Any("panic", r).
				Bytes("stack", debug.Stack()).
				Msg("sync cycle panicked")
			outcome = models.CycleTransportError
		}

		elapsed := c.clock.Since(startedAt)
		c.metrics.ObserveCycle(outcome, elapsed, c.clock.Now())
		log.Info().
			Str("outcome", string(outcome)).
			Dur("duration", elapsed).
			Msg("sync cycle finished")
	}()

	outcome = c.runCycle(ctx, log)
}

func (c *syncCoordinator) runCycle(ctx context.Context, log *logger.Logger) models.CycleOutcome {
	renewed := false

	cred, ok := c.tokenStore.Load()
	if !ok {
		log.Info().Msg("no stored credential, logging in")
		var err error
		if cred, err = c.renew(ctx, log); err != nil {
			return models.CycleAuthFailed
		}
		renewed = true
	}

	for {
		result, err := c.executor.Attempt(ctx, cred)
		switch result {
		case models.SyncSuccess:
			return models.CycleSynced

		case models.SyncUnauthorized:
			if renewed {
				log.Error().Msg("freshly renewed credential was rejected, giving up until next cycle")
				return models.CycleUnauthorized
			}
			log.Info().Msg("stored credential rejected, renewing")
			if cred, err = c.renew(ctx, log); err != nil {
				return models.CycleAuthFailed
			}
			renewed = true

		default:
			log.Err(err).Msg("sync attempt failed")
			return models.CycleTransportError
		}
	}
}

func (c *syncCoordinator) renew(ctx context.Context, log *logger.Logger) (models.Credential, error) {
	cred, err := c.authenticator.Login(ctx, c.username, c.password)
	c.metrics.ObserveRenewal(err == nil)
	if err != nil {
		log.Err(err).Msg("credential renewal failed")
		return models.Credential{}, err
	}

	return cred, nil
}
