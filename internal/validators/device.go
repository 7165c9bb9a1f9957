package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-device-sync/models"
)

// Field name constants used to restrict Validate to a subset of checks.
const (
	// FieldID targets the shared device identifier.
	FieldID = "id"

	// FieldName requires at least one of code or name.
	FieldName = "name"

	// FieldBasePrice rejects negative base prices.
	FieldBasePrice = "base_price"

	// FieldCurrency accepts an empty currency or a three-letter code.
	FieldCurrency = "currency"

	// FieldNested checks characteristics, customizations with their options,
	// and extras: positive unique ids per collection, non-negative prices.
	FieldNested = "nested"
)

var allDeviceFields = []string{FieldID, FieldName, FieldBasePrice, FieldCurrency, FieldNested}

type DeviceValidator struct{}

func NewDeviceValidator() Validator {
	return &DeviceValidator{}
}

func (v *DeviceValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Device:
		return v.validateDevice(ctx, value, fields...)
	case *models.Device:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateDevice(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *DeviceValidator) validateDevice(_ context.Context, device models.Device, fields ...string) error {
	if len(fields) == 0 {
		fields = allDeviceFields
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if device.ID <= 0 {
				return ErrInvalidID
			}
		case FieldName:
			if device.Code == "" && device.Name == "" {
				return ErrEmptyName
			}
		case FieldBasePrice:
			if device.BasePrice < 0 {
				return ErrNegativePrice
			}
		case FieldCurrency:
			if !isValidCurrency(device.Currency) {
				return ErrInvalidCurrency
			}
		case FieldNested:
			if err := validateNested(device); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isValidCurrency(c string) bool {
	if c == "" {
		return true
	}
	if len(c) != 3 {
		return false
	}
	for _, r := range c {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

func validateNested(device models.Device) error {
	ids := make(map[int64]struct{}, len(device.Characteristics))
	for i, c := range device.Characteristics {
		if err := checkNestedID(ids, c.ID); err != nil {
			return fmt.Errorf("characteristic at index %d: %w", i, err)
		}
	}

	ids = make(map[int64]struct{}, len(device.Customizations))
	for i, c := range device.Customizations {
		if err := checkNestedID(ids, c.ID); err != nil {
			return fmt.Errorf("customization at index %d: %w", i, err)
		}
		optionIDs := make(map[int64]struct{}, len(c.Options))
		for j, o := range c.Options {
			if err := checkNestedID(optionIDs, o.ID); err != nil {
				return fmt.Errorf("customization %d option at index %d: %w", c.ID, j, err)
			}
			if o.AdditionalPrice < 0 {
				return fmt.Errorf("customization %d option %d: %w", c.ID, o.ID, ErrNegativePrice)
			}
		}
	}

	ids = make(map[int64]struct{}, len(device.Extras))
	for i, e := range device.Extras {
		if err := checkNestedID(ids, e.ID); err != nil {
			return fmt.Errorf("extra at index %d: %w", i, err)
		}
		if e.Price < 0 || (e.FreeAbove != nil && *e.FreeAbove < 0) {
			return fmt.Errorf("extra %d: %w", e.ID, ErrNegativePrice)
		}
	}

	return nil
}

func checkNestedID(seen map[int64]struct{}, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: id must be positive", ErrInvalidNestedEntry)
	}
	if _, dup := seen[id]; dup {
		return fmt.Errorf("%w: %d", ErrDuplicateNestedID, id)
	}
	seen[id] = struct{}{}
	return nil
}
