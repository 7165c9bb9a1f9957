// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors for malformed requests. Callers can match against them
// with [errors.Is].
var (
	// ErrInvalidDeviceID is returned when the {id} path segment is not a
	// positive integer.
	ErrInvalidDeviceID = errors.New("invalid device id in path")

	// ErrInvalidSaleID is returned when the {id} path segment of a sale route
	// is not a positive integer.
	ErrInvalidSaleID = errors.New("invalid sale id in path")

	// ErrInvalidJSON is returned when the request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrDeviceIDMismatch is returned by PUT when the body carries an id
	// different from the one in the path.
	ErrDeviceIDMismatch = errors.New("device id in body does not match path")
)
