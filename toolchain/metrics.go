package toolchain

import (
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metricsEnabled controls whether Prometheus metrics are recorded.
var metricsEnabled atomic.Bool

var (
	resolutionTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "xpm_toolchain_resolutions_total",
			Help: "Total number of toolchain path resolutions by outcome",
		},
		[]string{"tool", "operation", "outcome"},
	)

	versionScanDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "xpm_toolchain_version_scan_duration_seconds",
			Help:    "Duration of version directory scans in seconds",
			Buckets: []float64{.0005, .001, .005, .01, .025, .05, .1, .25},
		},
		[]string{"tool"},
	)
)

// EnableMetrics turns Prometheus metric recording on or off. Recording is
// off by default so library consumers without a metrics endpoint pay
// nothing beyond the registration.
func EnableMetrics(enabled bool) {
	metricsEnabled.Store(enabled)
}

// recordResolution records the outcome of a single path operation.
func recordResolution(tool, operation string, outcome Outcome) {
	if !metricsEnabled.Load() {
		return
	}
	resolutionTotal.With(prometheus.Labels{
		"tool":      tool,
		"operation": operation,
		"outcome":   outcome.String(),
	}).Inc()
}

// observeVersionScan records the duration of one store directory scan.
func observeVersionScan(tool string, d time.Duration) {
	if !metricsEnabled.Load() {
		return
	}
	versionScanDuration.With(prometheus.Labels{"tool": tool}).Observe(d.Seconds())
}
