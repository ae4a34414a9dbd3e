package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор Prometheus-метрик сервиса.
// Методы Observe* безопасно вызывать на nil (метрики выключены).
type Metrics struct {
	// HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// База данных
	DBQueriesTotal     *prometheus.CounterVec
	DBQueryDuration    *prometheus.HistogramVec
	DBOpenConnections  prometheus.Gauge
	DBInUseConnections prometheus.Gauge
	DBIdleConnections  prometheus.Gauge
	DBWaitCount        prometheus.Gauge

	// Планирование
	PlacementRejections *prometheus.CounterVec
	MalformedBookings   prometheus.Counter
	BookingConflicts    prometheus.Counter
	GridBuildDuration   prometheus.Histogram
}

// New создает метрики и регистрирует их в глобальном реестре (его отдаёт promhttp.Handler)
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики в указанном реестре
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	labels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		DBQueriesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_queries_total",
			Help:        "Total number of database queries",
			ConstLabels: labels,
		}, []string{"operation", "status"}),
		DBQueryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: labels,
			Buckets:     []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),
		DBOpenConnections: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established connections",
			ConstLabels: labels,
		}),
		DBInUseConnections: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of connections currently in use",
			ConstLabels: labels,
		}),
		DBIdleConnections: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle connections",
			ConstLabels: labels,
		}),
		DBWaitCount: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "db_wait_count",
			Help:        "Total number of connections waited for",
			ConstLabels: labels,
		}),

		PlacementRejections: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "planning_placement_rejections_total",
			Help:        "Booking placements rejected by validation",
			ConstLabels: labels,
		}, []string{"reason"}),
		MalformedBookings: factory.NewCounter(prometheus.CounterOpts{
			Name:        "planning_malformed_bookings_total",
			Help:        "Booking records left out of the grid because of unparseable dates",
			ConstLabels: labels,
		}),
		BookingConflicts: factory.NewCounter(prometheus.CounterOpts{
			Name:        "planning_booking_conflicts_total",
			Help:        "Overlapping booking pairs found in stored data",
			ConstLabels: labels,
		}),
		GridBuildDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:        "planning_grid_build_duration_seconds",
			Help:        "Time spent building the planning grid",
			ConstLabels: labels,
			Buckets:     []float64{.0001, .0005, .001, .005, .01, .05, .1},
		}),
	}
}

// ObserveHTTP фиксирует завершённый HTTP запрос
func (m *Metrics) ObserveHTTP(method, route, status string, started time.Time) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(time.Since(started).Seconds())
}

// ObserveDB фиксирует выполненный запрос к БД
func (m *Metrics) ObserveDB(operation string, err error, started time.Time) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.DBQueriesTotal.WithLabelValues(operation, status).Inc()
	m.DBQueryDuration.WithLabelValues(operation).Observe(time.Since(started).Seconds())
}

// ObservePlacementRejection фиксирует отклонённое размещение бронирования (reason: invalid_range, conflict)
func (m *Metrics) ObservePlacementRejection(reason string) {
	if m == nil {
		return
	}
	m.PlacementRejections.WithLabelValues(reason).Inc()
}

// ObserveGrid фиксирует построение сетки и найденные в данных проблемы
func (m *Metrics) ObserveGrid(started time.Time, malformed, conflicts int) {
	if m == nil {
		return
	}
	m.GridBuildDuration.Observe(time.Since(started).Seconds())
	m.MalformedBookings.Add(float64(malformed))
	m.BookingConflicts.Add(float64(conflicts))
}
