package papi

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "papi_client_requests_total",
		Help: "PAPI requests by operation, method and status class",
	}, []string{"operation", "method", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "papi_client_request_duration_seconds",
		Help:    "PAPI request latency by operation",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})
)

func statusClass(code int) string {
	return strconv.Itoa(code/100) + "xx"
}
