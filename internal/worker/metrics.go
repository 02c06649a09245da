package worker

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	QueriesProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistant_queries_processed_total",
			Help: "Total number of queries processed by the worker",
		},
		[]string{"query_type"},
	)

	QueriesFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistant_queries_failed_total",
			Help: "Total number of queries whose result reported an error",
		},
		[]string{"query_type"},
	)

	QueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "assistant_query_duration_seconds",
			Help: "Duration of query processing in seconds",
		},
		[]string{"query_type"},
	)

	MalformedMessages = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "assistant_malformed_messages_total",
			Help: "Total number of stream messages that could not be parsed",
		},
	)
)
