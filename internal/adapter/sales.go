package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-device-sync/models"
)

const (
	sellPath  = "/vender"
	salePath  = "/venta/{id}"
	salesPath = "/ventas"
)

// Sell implements [RemoteAdapter].
func (h *httpRemoteAdapter) Sell(ctx context.Context, token string, sale models.SaleRequest) (models.RemoteSale, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetHeader("Content-Type", "application/json").
		SetBody(sale).
		Post(sellPath)
	if err != nil {
		return models.RemoteSale{}, fmt.Errorf("sell request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RemoteSale{}, err
	}

	remote, err := decodeSale(resp.Body())
	if err != nil {
		return models.RemoteSale{}, fmt.Errorf("sell: %w", err)
	}
	if remote.ID <= 0 {
		return models.RemoteSale{}, fmt.Errorf("%w: sell response has no idVenta", ErrMalformedResponse)
	}

	h.logger.Debug().
		Int64("sale_id", remote.ID).
		Int64("device_id", sale.DeviceID).
		Msg("sale registered remotely")

	return remote, nil
}

// GetSale implements [RemoteAdapter].
func (h *httpRemoteAdapter) GetSale(ctx context.Context, token string, id int64) (models.RemoteSale, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Get(salePath)
	if err != nil {
		return models.RemoteSale{}, fmt.Errorf("get sale request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RemoteSale{}, err
	}

	remote, err := decodeSale(resp.Body())
	if err != nil {
		return models.RemoteSale{}, fmt.Errorf("get sale %d: %w", id, err)
	}

	return remote, nil
}

// ListSales implements [RemoteAdapter].
func (h *httpRemoteAdapter) ListSales(ctx context.Context, token string) ([]models.RemoteSale, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		Get(salesPath)
	if err != nil {
		return nil, fmt.Errorf("list sales request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	sales := []models.RemoteSale{}
	body := bytes.TrimSpace(resp.Body())
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		return sales, nil
	}
	if err = json.Unmarshal(body, &sales); err != nil {
		return nil, fmt.Errorf("%w: decode sales: %v", ErrMalformedResponse, err)
	}
	if sales == nil {
		sales = []models.RemoteSale{}
	}

	return sales, nil
}

func decodeSale(raw []byte) (models.RemoteSale, error) {
	body := bytes.TrimSpace(raw)
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		return models.RemoteSale{}, ErrEmptyResponse
	}

	var sale models.RemoteSale
	if err := json.Unmarshal(body, &sale); err != nil {
		return models.RemoteSale{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	return sale, nil
}
