// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements local persistence: the credential file, the
// devices table and the record of forwarded sales.
package store

import (
	"context"

	"github.com/MKhiriev/go-device-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// TokenStore persists the single bearer credential of the service.
type TokenStore interface {
	// Load returns the stored credential. ok is false when nothing usable is
	// stored: the file is missing, unreadable, not JSON or has no token.
	Load() (cred models.Credential, ok bool)

	// Save atomically replaces the stored credential. Errors wrap
	// [ErrPersistence].
	Save(cred models.Credential) error
}

// DeviceRepository is the devices table. Every method is a single statement
// and therefore individually atomic.
type DeviceRepository interface {
	FindAll(ctx context.Context) ([]models.Device, error)
	FindByID(ctx context.Context, id int64) (models.Device, error)
	Create(ctx context.Context, device models.Device) error
	Update(ctx context.Context, device models.Device) error
	Upsert(ctx context.Context, device models.Device) error
	Delete(ctx context.Context, id int64) error
}

// SaleRepository is the local record of sales the remote authority accepted,
// keyed by the sale id it assigned.
type SaleRepository interface {
	Save(ctx context.Context, sale models.Sale) error
	FindAll(ctx context.Context) ([]models.Sale, error)
	FindByID(ctx context.Context, id int64) (models.Sale, error)
}

// ErrorClassificator decides whether a failed database operation may succeed
// when attempted again.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
