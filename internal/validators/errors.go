package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidID          = errors.New("id must be positive")
	ErrEmptyName          = errors.New("code or name is required")
	ErrNegativePrice      = errors.New("price cannot be negative")
	ErrInvalidCurrency    = errors.New("currency must be a three-letter code")
	ErrDuplicateNestedID  = errors.New("duplicate id in nested collection")
	ErrInvalidNestedEntry = errors.New("invalid nested entry")
)
