package handler

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-device-sync/internal/config"
	"github.com/MKhiriev/go-device-sync/internal/logger"
	"github.com/MKhiriev/go-device-sync/internal/mock"
	"github.com/MKhiriev/go-device-sync/internal/service"
)

// TestNewHandlers_HTTPAddress verifies that a configured HTTP address yields
// an initialised HTTP handler.
func TestNewHandlers_HTTPAddress(t *testing.T) {
	trigger := mock.NewMockSyncTrigger(gomock.NewController(t))

	h, err := NewHandlers(&service.Services{}, trigger, prometheus.NewRegistry(), config.Server{HTTPAddress: ":8080"}, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP, "expected HTTP handler to be initialised")
}

// TestNewHandlers_NoAddress verifies that without an HTTP address no
// handlers are created and errNoHandlersAreCreated is returned.
func TestNewHandlers_NoAddress(t *testing.T) {
	trigger := mock.NewMockSyncTrigger(gomock.NewController(t))

	h, err := NewHandlers(&service.Services{}, trigger, prometheus.NewRegistry(), config.Server{}, logger.Nop())

	assert.Nil(t, h)
	assert.ErrorIs(t, err, errNoHandlersAreCreated)
}
