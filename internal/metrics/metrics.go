package metrics

import (
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	// HTTP Metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// Business Metrics
	TransactionsCreated *prometheus.CounterVec
	TransactionErrors   *prometheus.CounterVec
	SessionsIssued      prometheus.Counter
	SummaryRetrievals   *prometheus.CounterVec

	// Database Metrics
	DBConnectionsInUse prometheus.Gauge
	DBConnectionsIdle  prometheus.Gauge
	DBConnectionErrors prometheus.Counter

	// System Metrics
	ServiceUptime    prometheus.Gauge
	Goroutines       prometheus.Gauge
	MemoryUsageBytes *prometheus.GaugeVec

	// Validation Metrics
	ValidationErrors   *prometheus.CounterVec
	ValidationDuration *prometheus.HistogramVec
}

func NewMetrics() *Metrics {
	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledgerservice_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status_code"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ledgerservice_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status_code"},
		),
		HTTPRequestsInFlight: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "ledgerservice_http_requests_in_flight",
				Help: "Number of HTTP requests currently being served",
			},
		),

		TransactionsCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledgerservice_transactions_created_total",
				Help: "Total number of ledger transactions created",
			},
			[]string{"tx_type"},
		),
		TransactionErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledgerservice_transaction_errors_total",
				Help: "Total number of failed ledger operations",
			},
			[]string{"operation", "error_code"},
		),
		SessionsIssued: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "ledgerservice_sessions_issued_total",
				Help: "Total number of session tokens minted",
			},
		),
		SummaryRetrievals: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledgerservice_summary_retrievals_total",
				Help: "Total number of balance summary retrievals",
			},
			[]string{"status"},
		),

		DBConnectionsInUse: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "ledgerservice_db_connections_in_use",
				Help: "Number of database connections currently in use",
			},
		),
		DBConnectionsIdle: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "ledgerservice_db_connections_idle",
				Help: "Number of idle database connections",
			},
		),
		DBConnectionErrors: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "ledgerservice_db_connection_errors_total",
				Help: "Total number of database connection errors",
			},
		),

		ServiceUptime: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "ledgerservice_uptime_seconds",
				Help: "Service uptime in seconds",
			},
		),
		Goroutines: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "ledgerservice_goroutines",
				Help: "Number of running goroutines",
			},
		),
		MemoryUsageBytes: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "ledgerservice_memory_usage_bytes",
				Help: "Memory usage by type",
			},
			[]string{"type"},
		),

		ValidationErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledgerservice_validation_errors_total",
				Help: "Total number of request validation errors",
			},
			[]string{"field", "tag"},
		),
		ValidationDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ledgerservice_validation_duration_seconds",
				Help:    "Duration of request validation in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"endpoint"},
		),
	}
}

func (m *Metrics) RecordHTTPRequest(method, path, statusCode string, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, statusCode).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration.Seconds())
}

func (m *Metrics) RecordTransactionCreated(txType string) {
	m.TransactionsCreated.WithLabelValues(txType).Inc()
}

func (m *Metrics) RecordTransactionError(operation, errorCode string) {
	m.TransactionErrors.WithLabelValues(operation, errorCode).Inc()
}

func (m *Metrics) RecordSessionIssued() {
	m.SessionsIssued.Inc()
}

func (m *Metrics) RecordSummaryRetrieval(status string) {
	m.SummaryRetrievals.WithLabelValues(status).Inc()
}

func (m *Metrics) RecordDBConnectionError() {
	m.DBConnectionErrors.Inc()
}

func (m *Metrics) RecordValidationError(field, tag string) {
	m.ValidationErrors.WithLabelValues(field, tag).Inc()
}

func (m *Metrics) RecordValidationDuration(endpoint string, duration time.Duration) {
	m.ValidationDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *Metrics) UpdateDBPoolStats(inUse, idle int) {
	m.DBConnectionsInUse.Set(float64(inUse))
	m.DBConnectionsIdle.Set(float64(idle))
}

func (m *Metrics) UpdateSystemMetrics(uptime time.Duration, memStats *runtime.MemStats) {
	m.ServiceUptime.Set(uptime.Seconds())
	m.Goroutines.Set(float64(runtime.NumGoroutine()))
	m.MemoryUsageBytes.WithLabelValues("alloc").Set(float64(memStats.Alloc))
	m.MemoryUsageBytes.WithLabelValues("sys").Set(float64(memStats.Sys))
	m.MemoryUsageBytes.WithLabelValues("heap_inuse").Set(float64(memStats.HeapInuse))
}
