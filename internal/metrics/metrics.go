package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// QueriesTotal counts completion queries, labeled by mode and status.
	QueriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "calculator_queries_total",
		Help: "The total number of completion queries issued",
	}, []string{"mode", "status"}) // mode: evaluate, explain; status: success, error

	// QueryDuration measures the round-trip time of a completion query.
	QueryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "calculator_query_duration_seconds",
		Help:    "Time taken by a completion query",
		Buckets: prometheus.DefBuckets,
	}, []string{"mode"})

	// ActionsTotal counts calculator actions, labeled by outcome.
	ActionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "calculator_actions_total",
		Help: "The total number of calculator actions",
	}, []string{"action", "outcome"}) // outcome: applied, busy, rejected, empty
)
