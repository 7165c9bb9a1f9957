package http

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-device-sync/internal/service"
	"github.com/MKhiriev/go-device-sync/internal/store"
	"github.com/MKhiriev/go-device-sync/internal/utils"
	"github.com/MKhiriev/go-device-sync/models"
)

var laptop = models.Device{ID: 1, Code: "LAP-1", Name: "Laptop", BasePrice: 999.5, Currency: "EUR"}

const laptopJSON = `{"id":1,"codigo":"LAP-1","nombre":"Laptop","descripcion":"","precioBase":999.5,"moneda":"EUR"}`

// ─────────────────────────────────────────────
// GET /api/devices
// ─────────────────────────────────────────────

func TestListDevices(t *testing.T) {
	router, deps := newTestRouter(t)
	deps.devices.EXPECT().FindAllDevices(gomock.Any()).Return([]models.Device{laptop}, nil)

	rr := doRequest(router, http.MethodGet, "/api/devices", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.Equal(t, []models.Device{laptop}, decodeJSON[[]models.Device](t, rr))
}

func TestListDevices_EmptyIsArray(t *testing.T) {
	router, deps := newTestRouter(t)
	deps.devices.EXPECT().FindAllDevices(gomock.Any()).Return(nil, nil)

	rr := doRequest(router, http.MethodGet, "/api/devices", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestListDevices_StorageError(t *testing.T) {
	router, deps := newTestRouter(t)
	deps.devices.EXPECT().FindAllDevices(gomock.Any()).Return(nil, store.ErrExecutingQuery)

	rr := doRequest(router, http.MethodGet, "/api/devices", "")

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "error getting devices", decodeJSON[utils.ErrorResponse](t, rr).Error)
}

// ─────────────────────────────────────────────
// GET /api/devices/{id}
// ─────────────────────────────────────────────

func TestGetDevice(t *testing.T) {
	router, deps := newTestRouter(t)
	deps.devices.EXPECT().FindDeviceByID(gomock.Any(), int64(1)).Return(laptop, nil)

	rr := doRequest(router, http.MethodGet, "/api/devices/1", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, laptopJSON, rr.Body.String())
}

func TestGetDevice_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "not found", err: fmt.Errorf("error getting device 1: %w", store.ErrDeviceNotFound), wantStatus: http.StatusNotFound},
		{name: "scan failure", err: store.ErrScanningRow, wantStatus: http.StatusInternalServerError},
		{name: "unclassified", err: assert.AnError, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, deps := newTestRouter(t)
			deps.devices.EXPECT().FindDeviceByID(gomock.Any(), int64(1)).Return(models.Device{}, tt.err)

			rr := doRequest(router, http.MethodGet, "/api/devices/1", "")

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestGetDevice_InvalidID(t *testing.T) {
	for _, id := range []string{"abc", "0", "-4", "1.5"} {
		t.Run(id, func(t *testing.T) {
			router, _ := newTestRouter(t)

			rr := doRequest(router, http.MethodGet, "/api/devices/"+id, "")

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Equal(t, ErrInvalidDeviceID.Error(), decodeJSON[utils.ErrorResponse](t, rr).Error)
		})
	}
}

// ─────────────────────────────────────────────
// POST /api/devices
// ─────────────────────────────────────────────

func TestCreateDevice(t *testing.T) {
	router, deps := newTestRouter(t)
	deps.devices.EXPECT().CreateDevice(gomock.Any(), laptop).Return(nil)

	rr := doRequest(router, http.MethodPost, "/api/devices", laptopJSON)

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "/api/devices/1", rr.Header().Get("Location"))
	assert.JSONEq(t, laptopJSON, rr.Body.String())
}

func TestCreateDevice_InvalidJSON(t *testing.T) {
	router, _ := newTestRouter(t)

	rr := doRequest(router, http.MethodPost, "/api/devices", `{"id":`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCreateDevice_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "duplicate id", err: store.ErrDeviceAlreadyExists, wantStatus: http.StatusConflict},
		{name: "invalid device", err: fmt.Errorf("%w: id must be positive", service.ErrInvalidDevice), wantStatus: http.StatusBadRequest},
		{name: "statement failure", err: store.ErrExecutingStatement, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, deps := newTestRouter(t)
			deps.devices.EXPECT().CreateDevice(gomock.Any(), gomock.Any()).Return(tt.err)

			rr := doRequest(router, http.MethodPost, "/api/devices", laptopJSON)

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

// ─────────────────────────────────────────────
// PUT /api/devices/{id}
// ─────────────────────────────────────────────

func TestUpdateDevice(t *testing.T) {
	router, deps := newTestRouter(t)
	deps.devices.EXPECT().UpdateDevice(gomock.Any(), laptop).Return(nil)

	rr := doRequest(router, http.MethodPut, "/api/devices/1", laptopJSON)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, laptopJSON, rr.Body.String())
}

func TestUpdateDevice_IDTakenFromPath(t *testing.T) {
	router, deps := newTestRouter(t)
	deps.devices.EXPECT().UpdateDevice(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, d models.Device) error {
			assert.Equal(t, int64(7), d.ID)
			return nil
		},
	)

	rr := doRequest(router, http.MethodPut, "/api/devices/7", `{"nombre":"Switch"}`)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestUpdateDevice_IDMismatch(t *testing.T) {
	router, _ := newTestRouter(t)

	rr := doRequest(router, http.MethodPut, "/api/devices/2", laptopJSON)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, ErrDeviceIDMismatch.Error(), decodeJSON[utils.ErrorResponse](t, rr).Error)
}

func TestUpdateDevice_NotFound(t *testing.T) {
	router, deps := newTestRouter(t)
	deps.devices.EXPECT().UpdateDevice(gomock.Any(), gomock.Any()).Return(store.ErrDeviceNotFound)

	rr := doRequest(router, http.MethodPut, "/api/devices/1", laptopJSON)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

// ─────────────────────────────────────────────
// DELETE /api/devices/{id}
// ─────────────────────────────────────────────

func TestDeleteDevice(t *testing.T) {
	router, deps := newTestRouter(t)
	deps.devices.EXPECT().DeleteDevice(gomock.Any(), int64(3)).Return(nil)

	rr := doRequest(router, http.MethodDelete, "/api/devices/3", "")

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())
}

func TestDeleteDevice_NotFound(t *testing.T) {
	router, deps := newTestRouter(t)
	deps.devices.EXPECT().DeleteDevice(gomock.Any(), int64(3)).Return(store.ErrDeviceNotFound)

	rr := doRequest(router, http.MethodDelete, "/api/devices/3", "")

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
