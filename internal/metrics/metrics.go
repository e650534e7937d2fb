// Package metrics exposes Prometheus collectors for watch mode.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/certwatch-app/certprobe/internal/inspect"
)

func init() {
	prometheus.MustRegister(
		ProbeTotal,
		ProbeDuration,
		DaysUntilExpiry,
		EndpointProblem,
		EndpointsConfigured,
		ScansTotal,
	)
}

var (
	// ProbeTotal counts probes by outcome
	ProbeTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "certprobe",
		Name:      "probe_total",
		Help:      "Total number of certificate probes",
	}, []string{"result"})

	// ProbeDuration tracks scan cycle duration
	ProbeDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "certprobe",
		Name:      "scan_duration_seconds",
		Help:      "Duration of a full scan cycle in seconds",
		Buckets:   prometheus.DefBuckets,
	})

	// DaysUntilExpiry tracks time left per endpoint
	DaysUntilExpiry = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "certprobe",
		Name:      "days_until_expiry",
		Help:      "Days until the endpoint's certificate expires",
	}, []string{"domain", "port"})

	// EndpointProblem tracks problem flags per endpoint
	EndpointProblem = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "certprobe",
		Name:      "endpoint_problem",
		Help:      "Whether the endpoint carries the given problem flag (1=present)",
	}, []string{"domain", "port", "problem"})

	// EndpointsConfigured tracks the number of probed endpoints
	EndpointsConfigured = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "certprobe",
		Name:      "endpoints_configured",
		Help:      "Number of endpoints in the current inventory",
	})

	// ScansTotal counts completed scan cycles
	ScansTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "certprobe",
		Name:      "scans_total",
		Help:      "Total number of completed scan cycles",
	})
)

// Problem flag label values, kept stable so absent flags can be zeroed.
var problemFlags = []inspect.Problem{
	inspect.ProblemNoCertificate,
	inspect.ProblemNameMismatch,
	inspect.ProblemNearRenewal,
}

// Observe updates the per-endpoint gauges from a finished report.
func Observe(report *inspect.Report, now time.Time) {
	EndpointsConfigured.Set(float64(report.Len()))

	for _, v := range report.All() {
		port := portLabel(v.Port)

		if !v.ValidUntil.IsZero() {
			DaysUntilExpiry.WithLabelValues(v.Domain, port).
				Set(v.ValidUntil.Sub(now).Hours() / 24)
		}

		for _, flag := range problemFlags {
			val := 0.0
			if v.HasProblem(flag) {
				val = 1.0
			}
			EndpointProblem.WithLabelValues(v.Domain, port, string(flag)).Set(val)
		}

		if v.HasProblem(inspect.ProblemNoCertificate) {
			ProbeTotal.WithLabelValues("failure").Inc()
		} else {
			ProbeTotal.WithLabelValues("success").Inc()
		}
	}

	ScansTotal.Inc()
}

func portLabel(port int) string {
	return strconv.Itoa(port)
}
