package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Upstream request metrics, recorded by the HTTP transport of the resource clients
var (
	UpstreamRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "upstream_requests_total",
			Help: "Total number of requests sent to upstream resources.",
		},
		[]string{"resource", "code"},
	)

	UpstreamRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "upstream_request_duration_seconds",
			Help:    "Latency of upstream resource requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"resource"},
	)
)

// Aggregation metrics
var (
	AggregationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aggregations_total",
			Help: "Total number of combine operations.",
		},
		[]string{"status"},
	)

	AggregationDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "aggregation_duration_seconds",
			Help:    "Wall time of a combine operation, both upstream fetches included.",
			Buckets: prometheus.DefBuckets,
		},
	)

	StreamsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "streams_total",
			Help: "Total number of finished result streams.",
		},
		[]string{"status"},
	)

	StreamEventsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "stream_events_total",
			Help: "Total number of combined results delivered on streams.",
		},
	)
)

// HTTP API metrics, fed by promhttp handler instrumentation
var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests served.",
		},
		[]string{"code", "method"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Latency of HTTP requests, streams included.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"code", "method"},
	)
)

// Status label values
const (
	StatusSuccess   = "success"
	StatusError     = "error"
	StatusCancelled = "cancelled"
)

func init() {
	prometheus.MustRegister(
		UpstreamRequestsTotal,
		UpstreamRequestDuration,
		AggregationsTotal,
		AggregationDuration,
		StreamsTotal,
		StreamEventsTotal,
		HTTPRequestsTotal,
		HTTPRequestDuration,
	)
}
