// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics exposes prometheus instrumentation of the sync job and
// of sale forwarding.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/go-device-sync/models"
)

const namespace = "device_sync"

// Renewal results recorded by [SyncMetrics.ObserveRenewal].
const (
	RenewalSuccess = "success"
	RenewalFailure = "failure"
)

// Sale results recorded by [SyncMetrics.ObserveSale].
const (
	SaleAccepted = "accepted"
	SaleRejected = "rejected"
	SaleFailed   = "failed"
)

// SyncMetrics records the outcome of sync cycles. A nil *SyncMetrics is a
// valid no-op recorder.
type SyncMetrics struct {
	cycles        *prometheus.CounterVec
	cycleDuration prometheus.Histogram
	renewals      *prometheus.CounterVec
	deviceWrites  prometheus.Counter
	lastSuccess   prometheus.Gauge
	sales         *prometheus.CounterVec
}

// NewSyncMetrics creates the collectors and registers them with reg.
func NewSyncMetrics(reg prometheus.Registerer) (*SyncMetrics, error) {
	m := &SyncMetrics{
		cycles: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cycles_total",
				Help:      "Total number of sync cycles by terminal outcome.",
			},
			[]string{"outcome"},
		),
		cycleDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "cycle_duration_seconds",
				Help:      "Wall time of a sync cycle, renewal included.",
				Buckets:   prometheus.ExponentialBuckets(0.05, 2, 12),
			},
		),
		renewals: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "token_renewals_total",
				Help:      "Total number of credential renewals by result.",
			},
			[]string{"result"},
		),
		deviceWrites: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "device_writes_total",
				Help:      "Total number of local device upserts performed by reconciliation.",
			},
		),
		lastSuccess: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "last_success_timestamp_seconds",
				Help:      "Unix time of the last cycle that ended synced.",
			},
		),
		sales: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "sales_forwarded_total",
				Help:      "Total number of sales forwarded to the remote authority by result.",
			},
			[]string{"result"},
		),
	}

	for _, c := range []prometheus.Collector{m.cycles, m.cycleDuration, m.renewals, m.deviceWrites, m.lastSuccess, m.sales} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// ObserveCycle records one finished cycle.
func (m *SyncMetrics) ObserveCycle(outcome models.CycleOutcome, duration time.Duration, finishedAt time.Time) {
	if m == nil {
		return
	}
	m.cycles.WithLabelValues(string(outcome)).Inc()
	m.cycleDuration.Observe(duration.Seconds())
	if outcome == models.CycleSynced {
		m.lastSuccess.Set(float64(finishedAt.Unix()))
	}
}

// ObserveRenewal records one login attempt made to renew the credential.
func (m *SyncMetrics) ObserveRenewal(ok bool) {
	if m == nil {
		return
	}
	result := RenewalSuccess
	if !ok {
		result = RenewalFailure
	}
	m.renewals.WithLabelValues(result).Inc()
}

// AddDeviceWrites records n reconciliation upserts.
func (m *SyncMetrics) AddDeviceWrites(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.deviceWrites.Add(float64(n))
}

// ObserveSale records one forwarded sale. result is one of SaleAccepted,
// SaleRejected or SaleFailed.
func (m *SyncMetrics) ObserveSale(result string) {
	if m == nil {
		return
	}
	m.sales.WithLabelValues(result).Inc()
}
