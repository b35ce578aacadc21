package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const Prefix = "arcadia"

// Registry holds every arcadia collector; the server exposes it at /metrics.
var Registry = prometheus.NewRegistry()

var (
	GeneratedRowsTotal = promauto.With(Registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: Prefix + "_generated_rows_total",
			Help: "Total number of synthetic rows generated",
		},
		[]string{"dataset"},
	)

	GenerationDuration = promauto.With(Registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    Prefix + "_generation_duration_seconds",
			Help:    "Duration of dataset generation in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"dataset"},
	)

	DataSourceTotal = promauto.With(Registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: Prefix + "_data_source_total",
			Help: "Total number of bundle loads by source",
		},
		[]string{"source"},
	)

	UploadsTotal = promauto.With(Registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: Prefix + "_uploads_total",
			Help: "Total number of ingested files",
		},
		[]string{"data_type", "result"},
	)

	HTTPRequestsTotal = promauto.With(Registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: Prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.With(Registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    Prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// ObserveGeneration records one generated table.
func ObserveGeneration(dataset string, rows int, elapsed time.Duration) {
	GeneratedRowsTotal.WithLabelValues(dataset).Add(float64(rows))
	GenerationDuration.WithLabelValues(dataset).Observe(elapsed.Seconds())
}

func ObserveSource(source string) {
	DataSourceTotal.WithLabelValues(source).Inc()
}

func ObserveUpload(dataType string, success bool) {
	result := "failure"
	if success {
		result = "success"
	}
	UploadsTotal.WithLabelValues(dataType, result).Inc()
}
