package shell

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var histogramResponseTime = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: "currconv",
		Subsystem: "shell",
		Name:      "histogram_response_time_seconds",
		Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2},
	},
	[]string{"command", "outcome"},
)

func observeResponse(elapsed time.Duration, kind Kind, outcome Outcome) {
	histogramResponseTime.
		WithLabelValues(kind.String(), outcome.String()).
		Observe(elapsed.Seconds())
}
