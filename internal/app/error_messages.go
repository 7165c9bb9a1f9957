// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// device-sync HTTP handlers and middleware.
//
// All Msg* constants are human-readable message strings written into HTTP
// response bodies or log entries to describe the outcome of an operation.
package app

const (
	// MsgErrorGettingDevices is returned when the local device list cannot
	// be read.
	MsgErrorGettingDevices = "error getting devices"

	// MsgErrorGettingDevice is returned when a single device lookup fails,
	// including when no device has the requested id.
	MsgErrorGettingDevice = "error getting device"

	// MsgErrorDeletingDevice is returned when a device cannot be removed.
	MsgErrorDeletingDevice = "error deleting device"

	// MsgErrorGettingSales is returned when the local sale record cannot be
	// read.
	MsgErrorGettingSales = "error getting sales"

	// MsgErrorGettingSale is returned when a single local sale lookup fails.
	MsgErrorGettingSale = "error getting sale"

	// MsgErrorGettingRemoteSales is returned when the remote authority's
	// sale list cannot be fetched.
	MsgErrorGettingRemoteSales = "error getting remote sales"

	// MsgErrorGettingRemoteSale is returned when a sale cannot be fetched
	// from the remote authority.
	MsgErrorGettingRemoteSale = "error getting remote sale"

	// MsgSyncAlreadyPending is returned by POST /api/sync when a triggered
	// cycle is already waiting to run.
	MsgSyncAlreadyPending = "sync already pending"

	// MsgSyncQueued is the status reported when a sync cycle was queued.
	MsgSyncQueued = "queued"

	// MsgNotFound is returned for paths no route matches.
	MsgNotFound = "not found"

	// MsgMethodNotAllowed prefixes the 405 response for a known path.
	MsgMethodNotAllowed = "method is not allowed"
)
