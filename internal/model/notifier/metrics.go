package notifier

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var alertsRaised = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "currconv",
		Subsystem: "notifier",
		Name:      "alerts_total",
		Help:      "Threshold alerts raised, by pair.",
	},
	[]string{"pair"},
)

var sinkFailures = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "currconv",
		Subsystem: "notifier",
		Name:      "sink_failures_total",
		Help:      "Alert deliveries that failed, by sink.",
	},
	[]string{"sink"},
)
