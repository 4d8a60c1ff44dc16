// Package metrics provides Prometheus metrics for catalog synchronization.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcomes for SyncRunsTotal.
const (
	OutcomeOK     = "ok"
	OutcomeFailed = "failed"
)

var (
	// SyncRunsTotal counts per-source synchronization runs by outcome.
	SyncRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vidcat_sync_runs_total",
		Help: "Total number of per-source synchronization runs, by source and outcome.",
	}, []string{"source", "outcome"})

	// VideosAddedTotal counts videos inserted into the catalog.
	VideosAddedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vidcat_videos_added_total",
		Help: "Total number of videos added to the catalog, by source.",
	}, []string{"source"})

	// ProbeFailuresTotal counts files skipped because metadata could not be read.
	ProbeFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vidcat_probe_failures_total",
		Help: "Total number of files whose metadata probe failed, by source.",
	}, []string{"source"})

	// SyncDuration observes how long a per-source run took.
	SyncDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "vidcat_sync_duration_seconds",
		Help:    "Duration of per-source synchronization runs.",
		Buckets: []float64{0.1, 0.5, 1, 5, 15, 60, 300, 900},
	}, []string{"source"})
)

// RecordSync records the outcome of one per-source run.
func RecordSync(source string, added, probeFailures int, d time.Duration, err error) {
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeFailed
	}
	SyncRunsTotal.WithLabelValues(source, outcome).Inc()
	VideosAddedTotal.WithLabelValues(source).Add(float64(added))
	ProbeFailuresTotal.WithLabelValues(source).Add(float64(probeFailures))
	SyncDuration.WithLabelValues(source).Observe(d.Seconds())
}
