// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the business rules applied to devices submitted
// through the HTTP API.
//
// Records received from the remote authority are stored as-is and never
// pass through a Validator; only caller-supplied devices do.
package validators

import "context"

// Validator validates a value, optionally restricted to the named fields.
// With no fields every rule known for the value's type is applied.
//
// An unsupported value type yields ErrUnsupportedType and an unknown field
// name yields ErrUnknownField.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
