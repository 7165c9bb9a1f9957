package metrics

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-device-sync/models"
)

func newTestMetrics(t *testing.T) (*SyncMetrics, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	m, err := NewSyncMetrics(reg)
	require.NoError(t, err)
	return m, reg
}

func TestNewSyncMetrics_DoubleRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewSyncMetrics(reg)
	require.NoError(t, err)

	_, err = NewSyncMetrics(reg)
	assert.Error(t, err)
}

func TestObserveCycle(t *testing.T) {
	m, _ := newTestMetrics(t)
	finished := time.Unix(1_700_000_000, 0)

	m.ObserveCycle(models.CycleSynced, 2*time.Second, finished)
	m.ObserveCycle(models.CycleSynced, time.Second, finished)
	m.ObserveCycle(models.CycleAuthFailed, time.Second, finished.Add(time.Hour))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.cycles.WithLabelValues("synced")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.cycles.WithLabelValues("auth_failed")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.cycles.WithLabelValues("transport_error")))
	assert.Equal(t, float64(finished.Unix()), testutil.ToFloat64(m.lastSuccess))
	assert.Equal(t, 1, testutil.CollectAndCount(m.cycleDuration))
}

func TestObserveRenewal(t *testing.T) {
	m, _ := newTestMetrics(t)

	m.ObserveRenewal(true)
	m.ObserveRenewal(false)
	m.ObserveRenewal(false)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.renewals.WithLabelValues(RenewalSuccess)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.renewals.WithLabelValues(RenewalFailure)))
}

func TestAddDeviceWrites(t *testing.T) {
	m, reg := newTestMetrics(t)

	m.AddDeviceWrites(3)
	m.AddDeviceWrites(0)
	m.AddDeviceWrites(-1)

	expected := `
# HELP device_sync_device_writes_total Total number of local device upserts performed by reconciliation.
# TYPE device_sync_device_writes_total counter
device_sync_device_writes_total 3
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "device_sync_device_writes_total"))
}

func TestObserveSale(t *testing.T) {
	m, _ := newTestMetrics(t)

	m.ObserveSale(SaleAccepted)
	m.ObserveSale(SaleAccepted)
	m.ObserveSale(SaleRejected)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.sales.WithLabelValues(SaleAccepted)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.sales.WithLabelValues(SaleRejected)))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.sales.WithLabelValues(SaleFailed)))
}

func TestNilSyncMetrics_IsNoop(t *testing.T) {
	var m *SyncMetrics

	assert.NotPanics(t, func() {
		m.ObserveCycle(models.CycleSynced, time.Second, time.Now())
		m.ObserveRenewal(true)
		m.AddDeviceWrites(5)
		m.ObserveSale(SaleAccepted)
	})
}
