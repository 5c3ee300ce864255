// Package metrics registers the site's prometheus collectors and the helpers
// that record into them.
package metrics

import (
	"regexp"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	uuidRegex = regexp.MustCompile(`[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`)
	slugRegex = regexp.MustCompile(`^(/api/lp/slug|/lp)/[^/]+$`)
)

const (
	PipelineImage = "image"
	PipelineVideo = "video"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "site_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "site_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 120},
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestsInFlight = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "site_http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
		[]string{"method"},
	)

	AuthOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "site_auth_operations_total",
			Help: "Total number of admin login operations",
		},
		[]string{"operation", "status"},
	)

	// Transcodes run for minutes, so the buckets go well past the HTTP ones.
	MediaTransformDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "site_media_transform_duration_seconds",
			Help:    "Duration of image normalization and video transcoding",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60, 120, 300, 600},
		},
		[]string{"pipeline", "result"},
	)

	MediaUploadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "site_media_uploads_total",
			Help: "Total number of media objects written through the asset store",
		},
		[]string{"kind", "result"},
	)

	MediaUploadBytes = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "site_media_upload_bytes",
			Help:    "Size of transformed media objects in bytes",
			Buckets: prometheus.ExponentialBuckets(16*1024, 4, 9),
		},
		[]string{"kind"},
	)

	MediaDeletionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "site_media_deletions_total",
			Help: "Total number of durable media deletions",
		},
		[]string{"kind", "result"},
	)

	StorageOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "site_storage_operations_total",
			Help: "Total number of storage operations",
		},
		[]string{"operation", "status"},
	)

	StorageOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "site_storage_operation_duration_seconds",
			Help:    "Duration of storage operations in seconds",
			Buckets: []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
		[]string{"operation"},
	)

	StorageBytesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "site_storage_bytes_total",
			Help: "Total bytes transferred to/from storage",
		},
		[]string{"operation"},
	)

	MailSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "site_mail_sent_total",
			Help: "Total number of outbound mails by template",
		},
		[]string{"template", "status"},
	)

	SweepObjectsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "site_sweep_objects_total",
			Help: "Objects examined by the storage reconciliation sweep",
		},
		[]string{"outcome"},
	)

	RateLimitedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "site_rate_limited_total",
			Help: "Requests rejected by the per-client rate limiter",
		},
		[]string{"path"},
	)

	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "site_app_info",
			Help: "Application information",
		},
		[]string{"version", "environment", "service"},
	)

	AppUp = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "site_app_up",
			Help: "Application is up and running",
		},
	)
)

// NormalizePath collapses ids and slugs so label cardinality stays bounded.
func NormalizePath(path string) string {
	path = uuidRegex.ReplaceAllString(path, ":id")
	if m := slugRegex.FindStringSubmatch(path); m != nil {
		return m[1] + "/:slug"
	}
	return path
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

func RecordAuthOperation(operation string, err error) {
	AuthOperationsTotal.WithLabelValues(operation, status(err)).Inc()
}

func RecordTransform(pipeline string, err error, durationSeconds float64) {
	MediaTransformDuration.WithLabelValues(pipeline, status(err)).Observe(durationSeconds)
}

func RecordMediaUpload(kind string, sizeBytes int64, err error) {
	MediaUploadsTotal.WithLabelValues(kind, status(err)).Inc()
	if err == nil {
		MediaUploadBytes.WithLabelValues(kind).Observe(float64(sizeBytes))
	}
}

func RecordMediaDeletion(kind string, err error) {
	MediaDeletionsTotal.WithLabelValues(kind, status(err)).Inc()
}

func RecordMail(template string, err error) {
	MailSentTotal.WithLabelValues(template, status(err)).Inc()
}

// RecordSweep counts one reconciliation outcome: referenced, orphaned,
// deleted, failed or young.
func RecordSweep(outcome string) {
	SweepObjectsTotal.WithLabelValues(outcome).Inc()
}

func RecordRateLimited(path string) {
	RateLimitedTotal.WithLabelValues(NormalizePath(path)).Inc()
}

func SetAppInfo(version, environment, service string) {
	AppInfo.WithLabelValues(version, environment, service).Set(1)
	AppUp.Set(1)
}
