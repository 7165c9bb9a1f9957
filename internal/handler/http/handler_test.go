package http

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-device-sync/internal/logger"
	"github.com/MKhiriev/go-device-sync/internal/mock"
	"github.com/MKhiriev/go-device-sync/internal/service"
	"github.com/MKhiriev/go-device-sync/models"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

type testDeps struct {
	devices *mock.MockDeviceService
	sales   *mock.MockSaleService
	appInfo *mock.MockAppInfoService
	trigger *mock.MockSyncTrigger
	reg     *prometheus.Registry
}

// newTestRouter builds the full router over gomock services.
func newTestRouter(t *testing.T) (http.Handler, testDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)

	deps := testDeps{
		devices: mock.NewMockDeviceService(ctrl),
		sales:   mock.NewMockSaleService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
		trigger: mock.NewMockSyncTrigger(ctrl),
		reg:     prometheus.NewRegistry(),
	}
	services := &service.Services{
		DeviceService:  deps.devices,
		SaleService:    deps.sales,
		AppInfoService: deps.appInfo,
	}

	return NewHandler(services, deps.trigger, deps.reg, logger.Nop()).Init(), deps
}

func doRequest(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeJSON[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), "body: %s", rr.Body.String())
	return v
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_StoresDependencies(t *testing.T) {
	svc := &service.Services{}
	trigger := mock.NewMockSyncTrigger(gomock.NewController(t))
	log := logger.Nop()

	h := NewHandler(svc, trigger, prometheus.NewRegistry(), log)

	require.NotNil(t, h)
	assert.Equal(t, svc, h.services)
	assert.Equal(t, trigger, h.syncTrigger)
	assert.Equal(t, log, h.logger)
	assert.NotNil(t, h.metrics)
}

// ─────────────────────────────────────────────
// Init - cross-cutting behaviour
// ─────────────────────────────────────────────

func TestInit_SetsTraceIDHeader(t *testing.T) {
	router, deps := newTestRouter(t)
	deps.devices.EXPECT().FindAllDevices(gomock.Any()).Return(nil, nil)

	rr := doRequest(router, http.MethodGet, "/api/devices", "")

	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
}

func TestInit_RecoversFromPanic(t *testing.T) {
	router, deps := newTestRouter(t)
	deps.devices.EXPECT().FindAllDevices(gomock.Any()).DoAndReturn(
		func(context.Context) ([]models.Device, error) { panic("boom") },
	)

	rr := doRequest(router, http.MethodGet, "/api/devices", "")

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestInit_CompressesDeviceListing(t *testing.T) {
	router, deps := newTestRouter(t)
	deps.devices.EXPECT().FindAllDevices(gomock.Any()).Return([]models.Device{{ID: 1, Name: "router"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/devices", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))

	zr, err := gzip.NewReader(rr.Body)
	require.NoError(t, err)
	body, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"nombre":"router"`)
}

func TestInit_UnsupportedMethod(t *testing.T) {
	router, _ := newTestRouter(t)

	rr := doRequest(router, http.MethodPatch, "/api/devices/1", "{}")

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

// ─────────────────────────────────────────────
// GET /metrics
// ─────────────────────────────────────────────

func TestMetricsEndpoint_ExposesRegistry(t *testing.T) {
	router, deps := newTestRouter(t)
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "device_sync_test_total", Help: "test"})
	deps.reg.MustRegister(counter)
	counter.Add(3)

	rr := doRequest(router, http.MethodGet, "/metrics", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "device_sync_test_total 3")
}
