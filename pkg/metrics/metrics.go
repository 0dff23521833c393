package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collectors are registered with the default registry when the package is
// loaded, so they are usable from any caller without setup.
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)

var (
	CrawlsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crawls_total",
			Help: "Total number of crawl requests by outcome.",
		},
		[]string{"status", "error_type"}, // status: success, failure
	)

	CrawlDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "crawl_duration_seconds",
			Help:    "Duration of crawl operations against the remote API.",
			Buckets: []float64{1, 5, 10, 15, 30, 60, 120, 300},
		},
		[]string{"domain"},
	)

	CredentialTests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "credential_tests_total",
			Help: "Total number of API key verifications by result.",
		},
		[]string{"result"}, // valid, invalid
	)
)

var QuoteCacheLookups = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "quote_cache_lookups_total",
		Help: "Quote cache lookups by record kind and result.",
	},
	[]string{"kind", "result"}, // kind: stock, fund; result: hit, miss
)
