// Package metrics provides Prometheus metrics for the folio server.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP request metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "folio_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "folio_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// Scan metrics
	scansTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "folio_scans_total",
			Help: "Total number of directory scans",
		},
	)

	scanDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "folio_scan_duration_seconds",
			Help:    "Directory scan duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// Index metrics
	indexBuildsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "folio_index_builds_total",
			Help: "Total number of metadata index builds",
		},
	)

	indexBuildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "folio_index_build_duration_seconds",
			Help:    "Metadata index build duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	indexFolderRecords = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "folio_index_folder_records",
			Help: "Number of folder records in the last built index",
		},
	)

	indexFileRecords = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "folio_index_file_records",
			Help: "Number of file records in the last built index",
		},
	)

	// Search metrics
	searchesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "folio_searches_total",
			Help: "Total number of search queries",
		},
	)

	// Download metrics
	downloadBytesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "folio_download_bytes_total",
			Help: "Total bytes served from the download endpoint",
		},
	)

	downloadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "folio_downloads_total",
			Help: "Total number of file downloads",
		},
		[]string{"status"},
	)
)

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// RecordHTTPRequest records an HTTP request metric.
func RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordScan records a completed directory scan.
func RecordScan(duration time.Duration) {
	scansTotal.Inc()
	scanDuration.Observe(duration.Seconds())
}

// RecordIndexBuild records a completed index build and the record counts it produced.
func RecordIndexBuild(duration time.Duration, folders, files int) {
	indexBuildsTotal.Inc()
	indexBuildDuration.Observe(duration.Seconds())
	indexFolderRecords.Set(float64(folders))
	indexFileRecords.Set(float64(files))
}

// RecordSearch records a search query.
func RecordSearch() {
	searchesTotal.Inc()
}

// RecordDownload records a file download.
func RecordDownload(bytes int64, success bool) {
	downloadBytesTotal.Add(float64(bytes))
	status := "success"
	if !success {
		status = "error"
	}
	downloadsTotal.WithLabelValues(status).Inc()
}
