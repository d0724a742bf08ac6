package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

func init() {
	register(
		validationsTotal,
		validationsSkipped,
		voucherLatencyMs,
		activationsPersisted,
		activeSessions,
	)
}

var (
	validationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "funnel_key_validations_total",
			Help: "Completed golden key validations by outcome.",
		},
		[]string{"outcome"},
	)

	validationsSkipped = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "funnel_key_validations_skipped_total",
			Help: "Validation requests dropped by the single-flight guard, by reason.",
		},
		[]string{"reason"},
	)

	voucherLatencyMs = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "funnel_voucher_latency_ms",
			Help:    "Voucher-validation round-trip latency in milliseconds.",
			Buckets: []float64{25, 50, 100, 200, 400, 800, 1600, 3000, 5000, 10000},
		},
		[]string{"success"},
	)

	activationsPersisted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "funnel_activations_persisted_total",
			Help: "Approved activations written to the result store, by status.",
		},
		[]string{"status"},
	)

	activeSessions = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "funnel_active_sessions",
			Help: "Activation sessions currently held in memory.",
		},
	)
)

func IncValidation(outcome string) {
	validationsTotal.WithLabelValues(norm(outcome)).Inc()
}

func IncValidationSkipped(reason string) {
	validationsSkipped.WithLabelValues(norm(reason)).Inc()
}

func ObserveVoucherLatency(d time.Duration, success bool) {
	voucherLatencyMs.WithLabelValues(strconv.FormatBool(success)).Observe(float64(d.Milliseconds()))
}

func IncPersisted(ok bool) {
	status := "succeeded"
	if !ok {
		status = "failed"
	}
	activationsPersisted.WithLabelValues(status).Inc()
}

func SetActiveSessions(n int) {
	activeSessions.Set(float64(n))
}
