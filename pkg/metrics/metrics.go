package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds all Prometheus metrics for the service.
// All methods are safe to call on a nil *Metrics (metrics disabled).
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration    *prometheus.HistogramVec
	DBOpenConnections  prometheus.Gauge
	DBInUseConnections prometheus.Gauge
	DBIdleConnections  prometheus.Gauge

	VerdictsTotal        *prometheus.CounterVec
	SlotFallbacksTotal   prometheus.Counter
	HistoryDegradedTotal prometheus.Counter
	DraftsSubmittedTotal prometheus.Counter
	StepAdvancesTotal    *prometheus.CounterVec
}

// New creates and registers metrics in the default Prometheus registry
func New(serviceName string) *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer, serviceName)
}

// NewWithRegisterer creates metrics and registers them in reg
func NewWithRegisterer(reg prometheus.Registerer, serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency in seconds",
			ConstLabels: constLabels,
			Buckets:     []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"operation"}),
		DBOpenConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established database connections",
			ConstLabels: constLabels,
		}),
		DBInUseConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of database connections currently in use",
			ConstLabels: constLabels,
		}),
		DBIdleConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle database connections",
			ConstLabels: constLabels,
		}),
		VerdictsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "eligibility_verdicts_total",
			Help:        "Eligibility evaluations by outcome",
			ConstLabels: constLabels,
		}, []string{"outcome"}),
		SlotFallbacksTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "timeslot_fallbacks_total",
			Help:        "Slot lists served from the default fallback because operating hours could not be parsed",
			ConstLabels: constLabels,
		}),
		HistoryDegradedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "appointment_history_degraded_total",
			Help:        "Appointment history fetches that failed and were treated as no prior appointment",
			ConstLabels: constLabels,
		}),
		DraftsSubmittedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "appointment_drafts_submitted_total",
			Help:        "Appointment drafts handed to persistence",
			ConstLabels: constLabels,
		}),
		StepAdvancesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "step_gate_advances_total",
			Help:        "Step gate advances by target step",
			ConstLabels: constLabels,
		}, []string{"step"}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueryDuration,
		m.DBOpenConnections,
		m.DBInUseConnections,
		m.DBIdleConnections,
		m.VerdictsTotal,
		m.SlotFallbacksTotal,
		m.HistoryDegradedTotal,
		m.DraftsSubmittedTotal,
		m.StepAdvancesTotal,
	)

	return m
}

// ObserveHTTPRequest records a finished HTTP request
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveDBQuery records a database call
func (m *Metrics) ObserveDBQuery(operation string, duration time.Duration) {
	if m == nil {
		return
	}
	m.DBQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// SetDBPoolStats updates connection pool gauges
func (m *Metrics) SetDBPoolStats(open, inUse, idle int) {
	if m == nil {
		return
	}
	m.DBOpenConnections.Set(float64(open))
	m.DBInUseConnections.Set(float64(inUse))
	m.DBIdleConnections.Set(float64(idle))
}

// IncVerdict counts an eligibility evaluation ("eligible", "not_eligible", "incomplete")
func (m *Metrics) IncVerdict(outcome string) {
	if m == nil {
		return
	}
	m.VerdictsTotal.WithLabelValues(outcome).Inc()
}

// IncSlotFallback counts a fallback slot list
func (m *Metrics) IncSlotFallback() {
	if m == nil {
		return
	}
	m.SlotFallbacksTotal.Inc()
}

// IncHistoryDegraded counts a degraded history fetch
func (m *Metrics) IncHistoryDegraded() {
	if m == nil {
		return
	}
	m.HistoryDegradedTotal.Inc()
}

// IncDraftSubmitted counts a persisted appointment draft
func (m *Metrics) IncDraftSubmitted() {
	if m == nil {
		return
	}
	m.DraftsSubmittedTotal.Inc()
}

// IncStepAdvance counts a step gate advance
func (m *Metrics) IncStepAdvance(step string) {
	if m == nil {
		return
	}
	m.StepAdvancesTotal.WithLabelValues(step).Inc()
}
