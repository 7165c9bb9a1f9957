package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-device-sync/models"
)

// Sale field names accepted by [SaleValidator].
const (
	FieldDeviceID   = "device_id"
	FieldFinalPrice = "final_price"

	// FieldSaleItems checks the chosen options and extras: positive unique
	// ids per collection and non-negative prices.
	FieldSaleItems = "items"
)

var allSaleFields = []string{FieldDeviceID, FieldFinalPrice, FieldSaleItems}

// SaleValidator checks a [models.SaleRequest] before it is forwarded.
type SaleValidator struct{}

func NewSaleValidator() Validator {
	return &SaleValidator{}
}

func (v *SaleValidator) Validate(_ context.Context, obj any, fields ...string) error {
	var sale models.SaleRequest
	switch value := obj.(type) {
	case models.SaleRequest:
		sale = value
	case *models.SaleRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		sale = *value
	default:
		return ErrUnsupportedType
	}

	if len(fields) == 0 {
		fields = allSaleFields
	}

	for _, f := range fields {
		switch f {
		case FieldDeviceID:
			if sale.DeviceID <= 0 {
				return fmt.Errorf("device: %w", ErrInvalidID)
			}
		case FieldFinalPrice:
			if sale.FinalPrice < 0 {
				return fmt.Errorf("final price: %w", ErrNegativePrice)
			}
		case FieldSaleItems:
			if err := validateSaleItems(sale); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateSaleItems(sale models.SaleRequest) error {
	ids := make(map[int64]struct{}, len(sale.Customizations))
	for i, c := range sale.Customizations {
		if err := checkNestedID(ids, c.ID); err != nil {
			return fmt.Errorf("customization at index %d: %w", i, err)
		}
		if c.AdditionalPrice < 0 {
			return fmt.Errorf("customization %d: %w", c.ID, ErrNegativePrice)
		}
	}

	ids = make(map[int64]struct{}, len(sale.Extras))
	for i, e := range sale.Extras {
		if err := checkNestedID(ids, e.ID); err != nil {
			return fmt.Errorf("extra at index %d: %w", i, err)
		}
		if e.Price < 0 {
			return fmt.Errorf("extra %d: %w", e.ID, ErrNegativePrice)
		}
	}

	return nil
}
