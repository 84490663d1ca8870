// Package metrics provides Prometheus metrics for the contacts service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns every Prometheus collector exported by the contacts service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	customLabels     map[string]string
	registry         prometheus.Registerer

	// Business metrics
	contactsCreated prometheus.Counter
	contactsTotal   prometheus.Gauge

	// Use case metrics
	useCaseExecutions *prometheus.CounterVec
	useCaseFailures   *prometheus.CounterVec
	useCaseLatency    *prometheus.HistogramVec

	// Repository metrics
	repositoryLatency *prometheus.HistogramVec
	repositoryErrors  *prometheus.CounterVec

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Error metrics
	errorRateByType     *prometheus.CounterVec
	errorRateByEndpoint *prometheus.CounterVec
	errorLatency        *prometheus.HistogramVec

	// System metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
	systemGCPauseTime    prometheus.Histogram
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // process-wide registry

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "contacts",
		subsystem:        "api",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		customLabels:     make(map[string]string),
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// Enabled reports whether the manager records observations.
func (m *Manager) Enabled() bool {
	return m.enabled
}

func (m *Manager) opts(name, help string) (string, string, string, string, prometheus.Labels) {
	return m.namespace, m.subsystem, name, help, prometheus.Labels(m.customLabels)
}

func (m *Manager) counter(name, help string) prometheus.CounterOpts {
	ns, sub, n, h, l := m.opts(name, help)
	return prometheus.CounterOpts{Namespace: ns, Subsystem: sub, Name: n, Help: h, ConstLabels: l}
}

func (m *Manager) gauge(name, help string) prometheus.GaugeOpts {
	ns, sub, n, h, l := m.opts(name, help)
	return prometheus.GaugeOpts{Namespace: ns, Subsystem: sub, Name: n, Help: h, ConstLabels: l}
}

func (m *Manager) histogram(name, help string) prometheus.HistogramOpts {
	ns, sub, n, h, l := m.opts(name, help)
	return prometheus.HistogramOpts{Namespace: ns, Subsystem: sub, Name: n, Help: h, ConstLabels: l, Buckets: m.histogramBuckets}
}

// initializeMetrics creates and registers all collectors.
func (m *Manager) initializeMetrics() { //nolint:funlen // one place for every collector
	auto := promauto.With(m.registry)

	m.contactsCreated = auto.NewCounter(m.counter(
		"contacts_created_total",
		"Total number of contacts successfully created",
	))
	m.contactsTotal = auto.NewGauge(m.gauge(
		"contacts_total",
		"Number of contacts currently stored",
	))

	m.useCaseExecutions = auto.NewCounterVec(m.counter(
		"usecase_executions_total",
		"Total number of use case executions",
	), []string{"usecase"})
	m.useCaseFailures = auto.NewCounterVec(m.counter(
		"usecase_failures_total",
		"Total number of failed use case executions",
	), []string{"usecase"})
	m.useCaseLatency = auto.NewHistogramVec(m.histogram(
		"usecase_latency_milliseconds",
		"Use case execution latency in milliseconds",
	), []string{"usecase"})

	m.repositoryLatency = auto.NewHistogramVec(m.histogram(
		"repository_operation_latency_milliseconds",
		"Repository operation latency in milliseconds",
	), []string{"store", "operation"})
	m.repositoryErrors = auto.NewCounterVec(m.counter(
		"repository_errors_total",
		"Total number of repository operation errors",
	), []string{"store", "operation"})

	m.httpRequests = auto.NewCounterVec(m.counter(
		"http_requests_total",
		"Total number of HTTP requests by endpoint and method",
	), []string{"endpoint", "method", "status_code"})
	m.httpRequestDuration = auto.NewHistogramVec(m.histogram(
		"http_request_duration_milliseconds",
		"HTTP request duration in milliseconds",
	), []string{"endpoint", "method", "status_code"})

	m.errorRateByType = auto.NewCounterVec(m.counter(
		"errors_by_type_total",
		"Total number of errors by type and severity",
	), []string{"error_type", "severity"})
	m.errorRateByEndpoint = auto.NewCounterVec(m.counter(
		"errors_by_endpoint_total",
		"Total number of errors by endpoint, method and type",
	), []string{"endpoint", "method", "error_type"})
	m.errorLatency = auto.NewHistogramVec(m.histogram(
		"error_latency_milliseconds",
		"Latency of operations that resulted in an error",
	), []string{"component", "error_type"})

	m.systemMemoryUsage = auto.NewGauge(m.gauge(
		"system_memory_bytes",
		"Heap memory currently allocated in bytes",
	))
	m.systemGoroutineCount = auto.NewGauge(m.gauge(
		"system_goroutines",
		"Number of running goroutines",
	))
	m.systemGCPauseTime = auto.NewHistogram(m.histogram(
		"system_gc_pause_milliseconds",
		"Average GC pause time in milliseconds",
	))
}

// Business Metrics Functions.

// RecordContactCreated increments the created contacts counter.
func RecordContactCreated() {
	if !globalManager.enabled {
		return
	}
	globalManager.contactsCreated.Inc()
}

// UpdateContactsTotal sets the stored contacts gauge.
func UpdateContactsTotal(count int) {
	if !globalManager.enabled {
		return
	}
	globalManager.contactsTotal.Set(float64(count))
}

// Use Case Metrics Functions.

// RecordUseCaseExecution records one execution of the named use case.
// A non-nil err also counts as a failure.
func RecordUseCaseExecution(useCase string, latencyMs float64, err error) {
	if !globalManager.enabled {
		return
	}
	globalManager.useCaseExecutions.WithLabelValues(useCase).Inc()
	globalManager.useCaseLatency.WithLabelValues(useCase).Observe(latencyMs)
	if err != nil {
		globalManager.useCaseFailures.WithLabelValues(useCase).Inc()
	}
}

// Repository Metrics Functions.

// RecordRepositoryOperation records latency for a store operation, and an error if err is non-nil.
func RecordRepositoryOperation(store, operation string, latencyMs float64, err error) {
	if !globalManager.enabled {
		return
	}
	globalManager.repositoryLatency.WithLabelValues(store, operation).Observe(latencyMs)
	if err != nil {
		globalManager.repositoryErrors.WithLabelValues(store, operation).Inc()
	}
}

// HTTP Metrics Functions.

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	if !globalManager.enabled {
		return
	}
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	if !globalManager.enabled {
		return
	}
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
}

// Error Metrics Functions.

// RecordErrorByType records an error with type and severity labels.
func RecordErrorByType(errorType, severity string) {
	if !globalManager.enabled {
		return
	}
	globalManager.errorRateByType.WithLabelValues(errorType, severity).Inc()
}

// RecordErrorByEndpoint records an error with endpoint, method, and error type labels.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	if !globalManager.enabled {
		return
	}
	globalManager.errorRateByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
}

// RecordErrorLatency records the latency of an operation that resulted in an error.
func RecordErrorLatency(component, errorType string, latencyMs float64) {
	if !globalManager.enabled {
		return
	}
	globalManager.errorLatency.WithLabelValues(component, errorType).Observe(latencyMs)
}

// System Performance Metrics Functions.

// UpdateSystemMemoryUsage sets the system memory usage in bytes.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the number of goroutines.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

// RecordSystemGCPauseTime records GC pause time in milliseconds.
func RecordSystemGCPauseTime(pauseMs float64) {
	globalManager.systemGCPauseTime.Observe(pauseMs)
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
