package linkprobe

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	metricsOnce sync.Once

	scanDurationSummary  prometheus.Summary
	probeDurationSummary prometheus.Summary
	probeCounterVec      *prometheus.CounterVec
	statusCounterVec     *prometheus.CounterVec
	progressGaugeDone    prometheus.Gauge
	progressGaugeTotal   prometheus.Gauge
)

func setupMetrics() {
	metricsOnce.Do(func() {
		const labelVerdict = "verdict"
		const labelStatus = "status"

		scanDurationSummary = prometheus.NewSummary(prometheus.SummaryOpts{
			Name:       "linkprobe_scan_duration_seconds",
			Help:       "duration of one complete scan cycle",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		})

		probeDurationSummary = prometheus.NewSummary(prometheus.SummaryOpts{
			Name:       "linkprobe_probe_duration_seconds",
			Help:       "duration of a single url probe",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		})

		probeCounterVec = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "linkprobe_probes_total",
			Help: "number of probes by verdict",
		}, []string{labelVerdict})

		statusCounterVec = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "linkprobe_probe_status_code_total",
			Help: "http status codes seen while probing",
		}, []string{labelStatus})

		progressGaugeDone = prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "linkprobe_progress_gauge_done",
			Help: "probes completed in the running scan",
		})

		progressGaugeTotal = prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "linkprobe_progress_gauge_total",
			Help: "probes submitted to the running scan",
		})

		prometheus.MustRegister(
			scanDurationSummary,
			probeDurationSummary,
			probeCounterVec,
			statusCounterVec,
			progressGaugeDone,
			progressGaugeTotal,
		)
	})
}
