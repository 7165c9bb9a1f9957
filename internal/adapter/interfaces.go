// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer used to talk to the remote
// authoritative device API: authentication, the device catalogue and sales.
//
// The primary abstraction is [RemoteAdapter], which decouples the sync
// services from HTTP so tests can inject canned responses. The package ships
// a resty-based implementation ([NewHTTPRemoteAdapter]).
//
// HTTP outcomes are mapped by mapHTTPError to the sentinel values in
// errors.go, so callers can use [errors.Is] (e.g. [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-device-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_adapter_mock.go -package=mock

// RemoteAdapter defines communication with the remote authority.
type RemoteAdapter interface {
	// Authenticate exchanges username and password for a bearer token via
	// POST /authenticate. Returns [ErrUnauthorized] (wrapped) when the
	// credentials are rejected and [ErrEmptyResponse] when the response
	// carries no token.
	Authenticate(ctx context.Context, username, password string) (models.Credential, error)

	// GetDevices fetches the complete remote device list using token as the
	// bearer credential. Returns [ErrUnauthorized] (wrapped) on 401,
	// [ErrEmptyResponse] for a missing or null body and
	// [ErrMalformedResponse] when the body is not a JSON array of devices.
	GetDevices(ctx context.Context, token string) ([]models.Device, error)

	// Sell registers a sale via POST /vender and returns the remote record
	// carrying the assigned sale id. A rejected sale is [ErrBadRequest]
	// (wrapped); a response without a sale id is [ErrMalformedResponse].
	Sell(ctx context.Context, token string, sale models.SaleRequest) (models.RemoteSale, error)

	// GetSale fetches one sale via GET /venta/{id}. An unknown id is
	// [ErrNotFound] (wrapped).
	GetSale(ctx context.Context, token string, id int64) (models.RemoteSale, error)

	// ListSales fetches every sale known to the remote authority via
	// GET /ventas. An empty or null body is an empty list.
	ListSales(ctx context.Context, token string) ([]models.RemoteSale, error)
}
