// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the sync domain logic: credential renewal, the
// fetch-and-reconcile attempt, the per-cycle retry state machine, sale
// forwarding and the device pass-through used by the HTTP API.
package service

import (
	"context"

	"github.com/MKhiriev/go-device-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// Authenticator obtains a fresh credential from the remote authority.
type Authenticator interface {
	// Login exchanges username and password for a credential and persists it
	// before returning. A rejected or malformed login wraps [ErrAuth]; a
	// failed save wraps store.ErrPersistence.
	Login(ctx context.Context, username, password string) (models.Credential, error)
}

// SyncExecutor performs one authenticated fetch of the remote device set and
// reconciles it into local storage.
type SyncExecutor interface {
	// Attempt fetches the remote devices with cred and reconciles them.
	// A rejected credential yields [models.SyncUnauthorized] with a nil error;
	// any other failure yields [models.SyncTransportError] and an error
	// wrapping [ErrTransport].
	Attempt(ctx context.Context, cred models.Credential) (models.SyncAttemptResult, error)

	// Reconcile upserts every remote device that is missing locally or
	// differs from its local counterpart. Local-only devices are untouched.
	Reconcile(ctx context.Context, remote []models.Device) (models.ReconcileReport, error)
}

// SyncCoordinator runs one complete sync cycle with at most one credential
// renewal. It never returns an error: every failure is logged and recorded.
type SyncCoordinator interface {
	SyncWithRetry(ctx context.Context)
}

// DeviceService is the local device catalogue.
type DeviceService interface {
	FindAllDevices(ctx context.Context) ([]models.Device, error)
	FindDeviceByID(ctx context.Context, id int64) (models.Device, error)
	CreateDevice(ctx context.Context, device models.Device) error
	UpdateDevice(ctx context.Context, device models.Device) error
	UpsertDevice(ctx context.Context, device models.Device) error
	DeleteDevice(ctx context.Context, id int64) error
}

// SaleService forwards sales to the remote authority under the stored
// credential and keeps a local record of the ones it accepted.
type SaleService interface {
	// Sell validates sale, registers it remotely and records it locally
	// under the sale id the remote authority assigned. A rejected credential
	// is renewed once, as in a sync cycle.
	Sell(ctx context.Context, sale models.SaleRequest) (models.Sale, error)

	FindAllSales(ctx context.Context) ([]models.Sale, error)
	FindSaleByID(ctx context.Context, id int64) (models.Sale, error)

	GetRemoteSale(ctx context.Context, id int64) (models.RemoteSale, error)
	ListRemoteSales(ctx context.Context) ([]models.RemoteSale, error)
}

// AppInfoService reports what binary is running.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
