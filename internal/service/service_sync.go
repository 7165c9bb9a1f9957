package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-device-sync/internal/adapter"
	"github.com/MKhiriev/go-device-sync/internal/logger"
	"github.com/MKhiriev/go-device-sync/internal/metrics"
	"github.com/MKhiriev/go-device-sync/models"
)

// syncService is the concrete implementation of SyncExecutor.
type syncService struct {
	remoteAdapter adapter.RemoteAdapter
	deviceService DeviceService
	metrics       *metrics.SyncMetrics

	logger *logger.Logger
}

// NewSyncService constructs a SyncExecutor fetching through remoteAdapter and
// writing through deviceService. m may be nil.
func NewSyncService(remoteAdapter adapter.RemoteAdapter, deviceService DeviceService, m *metrics.SyncMetrics, logger *logger.Logger) SyncExecutor {
	return &syncService{
		remoteAdapter: remoteAdapter,
		deviceService: deviceService,
		metrics:       m,
		logger:        logger,
	}
}

// Attempt implements SyncExecutor.
//
// A 401 from the remote authority is expected control flow and is reported
// as models.SyncUnauthorized with a nil error. Everything else that goes
// wrong, including local storage failures during reconciliation, is reported
// as models.SyncTransportError; the returned error wraps ErrTransport and
// keeps the original cause in the chain.
func (s *syncService) Attempt(ctx context.Context, cred models.Credential) (models.SyncAttemptResult, error) {
	remote, err := s.remoteAdapter.GetDevices(ctx, cred.Token)
	if err != nil {
		if errors.Is(err, adapter.ErrUnauthorized) {
			s.logger.Warn().Msg("remote authority rejected the credential")
			return models.SyncUnauthorized, nil
		}
		return models.SyncTransportError, fmt.Errorf("%w: fetching remote devices: %w", ErrTransport, err)
	}

	report, err := s.Reconcile(ctx, remote)
	if err != nil {
		return models.SyncTransportError, fmt.Errorf("%w: reconciling devices: %w", ErrTransport, err)
	}

	s.logger.Info().
		Int("fetched", report.Fetched).
		Int("written", report.Written).
		Msg("remote devices reconciled")

	return models.SyncSuccess, nil
}

// Reconcile implements SyncExecutor.
//
// The complete local set is indexed by id once; remote devices are then
// walked in received order and written only when missing or different, so
// running it again with an unchanged remote set performs no writes. The
// report is filled in even when a write fails midway.
func (s *syncService) Reconcile(ctx context.Context, remote []models.Device) (report models.ReconcileReport, err error) {
	report.Fetched = len(remote)
	// report is a named result, so the deferred call sees the final count on
	// every return path
	defer func() { s.metrics.AddDeviceWrites(report.Written) }()

	local, err := s.deviceService.FindAllDevices(ctx)
	if err != nil {
		return report, err
	}

	localIndex := make(map[int64]models.Device, len(local))
	for _, device := range local {
		localIndex[device.ID] = device
	}

	for _, device := range remote {
		if err = ctx.Err(); err != nil {
			return report, err
		}

		existing, found := localIndex[device.ID]
		if found && existing.Equal(device) {
			continue
		}
		if found {
			s.logger.Debug().Int64("id", device.ID).Str("diff", existing.Diff(device)).Msg("device changed remotely")
		}

		if err = s.deviceService.UpsertDevice(ctx, device); err != nil {
			return report, err
		}
		// a repeated id later in the same payload compares against what was just written
		localIndex[device.ID] = device
		report.Written++
	}

	return report, nil
}
