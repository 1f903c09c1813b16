package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wildcam_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wildcam_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// result: accepted, invalid, not_found, error
	TagSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wildcam_tag_submissions_total",
			Help: "Tag submissions by outcome",
		},
		[]string{"result"},
	)

	OrphanedTagsSkipped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "wildcam_orphaned_tags_skipped_total",
			Help: "Ledger rows skipped during merge because their video index no longer exists",
		},
	)
)

// RecordSubmission 记录一次标签提交的结果
func RecordSubmission(result string) {
	TagSubmissions.WithLabelValues(result).Inc()
}
