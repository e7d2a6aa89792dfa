package obs

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "delivery_analytics",
		Name:      "http_requests_total",
		Help:      "HTTP requests by route pattern, method and status code.",
	}, []string{"route", "method", "status"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "delivery_analytics",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by route pattern.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route"})

	OperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "delivery_analytics",
		Name:      "operation_duration_seconds",
		Help:      "Duration of timed internal operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"op", "outcome"})

	DatasetRecords = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "delivery_analytics",
		Name:      "dataset_records",
		Help:      "Number of records in the loaded dataset.",
	})

	DatasetLoadFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "delivery_analytics",
		Name:      "dataset_load_failures_total",
		Help:      "Dataset loads that ended in an error.",
	})
)
