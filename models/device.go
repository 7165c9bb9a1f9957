// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// Device is a catalogue entry. The same shape is used for records fetched
// from the remote authority and for records held in local storage.
//
// JSON tags follow the remote API wire format, so a Device decoded from
// GET /devices can be written to local storage unchanged.
type Device struct {
	// ID is the identifier shared between the remote authority and local
	// storage. Reconciliation matches records by this value.
	ID int64 `json:"id"`

	// Code is the catalogue code of the device.
	Code string `json:"codigo"`

	// Name is the human-readable device name.
	Name string `json:"nombre"`

	// Description is a free-form description.
	Description string `json:"descripcion"`

	// BasePrice is the price of the device without customizations or extras.
	BasePrice float64 `json:"precioBase"`

	// Currency is the currency code BasePrice is expressed in.
	Currency string `json:"moneda"`

	// Characteristics lists fixed technical characteristics.
	Characteristics Characteristics `json:"caracteristicas,omitempty"`

	// Customizations lists customizable aspects with their selectable options.
	Customizations Customizations `json:"personalizaciones,omitempty"`

	// Extras lists optional add-ons.
	Extras Extras `json:"adicionales,omitempty"`
}

// Characteristic is a fixed technical characteristic of a device.
type Characteristic struct {
	ID          int64  `json:"id"`
	Name        string `json:"nombre"`
	Description string `json:"descripcion"`
}

// Customization is a customizable aspect of a device (e.g. CPU, memory).
type Customization struct {
	ID          int64    `json:"id"`
	Name        string   `json:"nombre"`
	Description string   `json:"descripcion"`
	Options     []Option `json:"opciones,omitempty"`
}

// Option is one selectable value of a [Customization].
type Option struct {
	ID              int64   `json:"id"`
	Code            string  `json:"codigo"`
	Name            string  `json:"nombre"`
	Description     string  `json:"descripcion"`
	AdditionalPrice float64 `json:"precioAdicional"`
}

// Extra is an optional add-on. FreeAbove, when set, is the sale total from
// which the extra is given away.
type Extra struct {
	ID          int64    `json:"id"`
	Name        string   `json:"nombre"`
	Description string   `json:"descripcion"`
	Price       float64  `json:"precio"`
	FreeAbove   *float64 `json:"precioGratis,omitempty"`
}

// deviceCmpOptions makes nil and empty nested collections compare equal:
// a storage round trip does not preserve the difference.
var deviceCmpOptions = cmp.Options{
	cmpopts.EquateEmpty(),
}

// deviceFields has the layout of Device without its methods; cmp would
// otherwise dispatch back into Device.Equal.
type deviceFields Device

// Equal reports whether d and other are structurally equal across every
// field, nested collections included.
func (d Device) Equal(other Device) bool {
	return cmp.Equal(deviceFields(d), deviceFields(other), deviceCmpOptions)
}

// Diff returns a human-readable description of the differences between d and
// other, or an empty string when they are equal. Intended for debug logging.
func (d Device) Diff(other Device) string {
	return cmp.Diff(deviceFields(d), deviceFields(other), deviceCmpOptions)
}

type (
	// Characteristics is stored as a JSON document in a single column.
	Characteristics []Characteristic
	// Customizations is stored as a JSON document in a single column.
	Customizations []Customization
	// Extras is stored as a JSON document in a single column.
	Extras []Extra
)

// Value implements [driver.Valuer].
func (c Characteristics) Value() (driver.Value, error) { return jsonValue(c) }

// Scan implements [sql.Scanner].
func (c *Characteristics) Scan(src any) error { return jsonScan(src, c) }

// Value implements [driver.Valuer].
func (c Customizations) Value() (driver.Value, error) { return jsonValue(c) }

// Scan implements [sql.Scanner].
func (c *Customizations) Scan(src any) error { return jsonScan(src, c) }

// Value implements [driver.Valuer].
func (e Extras) Value() (driver.Value, error) { return jsonValue(e) }

// Scan implements [sql.Scanner].
func (e *Extras) Scan(src any) error { return jsonScan(src, e) }

var errUnsupportedColumnType = errors.New("unsupported column type")

func jsonValue[T any](v []T) (driver.Value, error) {
	if len(v) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func jsonScan(src any, dst any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("%w: %T", errUnsupportedColumnType, src)
	}
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, dst)
}
