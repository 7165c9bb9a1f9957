package models

import "time"

// SaleRequest is a sale to be registered with the remote authority. It is
// both the body of POST /api/sales and the body forwarded to the remote
// sell endpoint, so the JSON tags follow the remote wire format.
type SaleRequest struct {
	DeviceID       int64               `json:"idDispositivo"`
	Customizations []SaleCustomization `json:"personalizaciones"`
	Extras         []SaleExtra         `json:"adicionales"`
	FinalPrice     float64             `json:"precioFinal"`

	// SoldAt defaults to the current time when left zero.
	SoldAt time.Time `json:"fechaVenta"`
}

// SaleCustomization is the option chosen for one customization, identified
// by the option id, with the price charged for it.
type SaleCustomization struct {
	ID              int64   `json:"id"`
	AdditionalPrice float64 `json:"precioAdicional"`
}

// SaleExtra is an extra included in a sale with the price charged for it.
type SaleExtra struct {
	ID    int64   `json:"id"`
	Price float64 `json:"precio"`
}

// RemoteSale is a sale as reported by the remote authority: the sale id
// together with the device that was sold and the options applied to it.
type RemoteSale struct {
	ID          int64   `json:"idVenta"`
	DeviceID    int64   `json:"idDispositivo"`
	Code        string  `json:"codigo,omitempty"`
	Name        string  `json:"nombre,omitempty"`
	Description string  `json:"descripcion,omitempty"`
	BasePrice   float64 `json:"precioBase,omitempty"`
	Currency    string  `json:"moneda,omitempty"`
	FinalPrice  float64 `json:"precioFinal,omitempty"`

	SoldAt *time.Time `json:"fechaVenta,omitempty"`

	Characteristics Characteristics     `json:"caracteristicas,omitempty"`
	Customizations  []SoldCustomization `json:"personalizaciones,omitempty"`
	Extras          Extras              `json:"adicionales,omitempty"`
}

// SoldCustomization is a customization of a sold device with the single
// option that was picked.
type SoldCustomization struct {
	ID          int64   `json:"id"`
	Name        string  `json:"nombre"`
	Description string  `json:"descripcion"`
	Option      *Option `json:"opcion,omitempty"`
}

// Sale is the local record of a sale accepted by the remote authority. ID is
// the id the remote authority assigned.
type Sale struct {
	ID         int64     `json:"id"`
	DeviceID   int64     `json:"idDispositivo"`
	FinalPrice float64   `json:"precioFinal"`
	SoldAt     time.Time `json:"fechaVenta"`
}
