package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-device-sync/internal/service"
	"github.com/MKhiriev/go-device-sync/internal/store"
)

var errorStatusMap = map[error]int{
	ErrInvalidDeviceID:  http.StatusBadRequest,
	ErrInvalidJSON:      http.StatusBadRequest,
	ErrDeviceIDMismatch: http.StatusBadRequest,
	ErrInvalidSaleID:    http.StatusBadRequest,

	service.ErrInvalidDevice:      http.StatusBadRequest,
	service.ErrInvalidSale:        http.StatusBadRequest,
	service.ErrSaleRejected:       http.StatusUnprocessableEntity,
	service.ErrRemoteSaleNotFound: http.StatusNotFound,
	service.ErrAuth:               http.StatusBadGateway,
	service.ErrTransport:          http.StatusBadGateway,

	store.ErrDeviceNotFound:      http.StatusNotFound,
	store.ErrSaleNotFound:        http.StatusNotFound,
	store.ErrDeviceAlreadyExists: http.StatusConflict,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
