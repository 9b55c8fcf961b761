// Package metrics содержит prometheus-коллекторы сервиса
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор коллекторов сервиса
// Все методы безопасны для nil-получателя: при выключенных метриках передается nil
type Metrics struct {
	service string

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	dbQueryDuration *prometheus.HistogramVec
	dbQueryErrors   *prometheus.CounterVec
	dbConnections   *prometheus.GaugeVec

	bookingsCreated  *prometheus.CounterVec
	bookingDecisions *prometheus.CounterVec
	bookingsExpired  *prometheus.CounterVec
	slotsOffered     *prometheus.HistogramVec
}

// New создает метрики и регистрирует их в DefaultRegisterer
func New(service string) *Metrics {
	return NewWithRegistry(service, prometheus.DefaultRegisterer)
}

// NewWithRegistry создает метрики и регистрирует их в указанном реестре
func NewWithRegistry(service string, reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		service: service,
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"service", "method", "path", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "path"}),
		dbQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query latency",
			Buckets: []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"service", "operation"}),
		dbQueryErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "db_query_errors_total",
			Help: "Total number of failed database queries",
		}, []string{"service", "operation"}),
		dbConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_connections",
			Help: "Database connection pool state",
		}, []string{"service", "state"}),
		bookingsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bookings_created_total",
			Help: "Total number of bookings created",
		}, []string{"service", "status"}),
		bookingDecisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "booking_status_changes_total",
			Help: "Total number of booking status changes made by staff",
		}, []string{"service", "status"}),
		bookingsExpired: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bookings_expired_total",
			Help: "Total number of pending requests declined by the expiry sweep",
		}, []string{"service"}),
		slotsOffered: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "available_slots_offered",
			Help:    "Number of slots offered per availability request",
			Buckets: []float64{0, 1, 2, 4, 8, 16, 32, 48},
		}, []string{"service"}),
	}

	reg.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.dbQueryDuration,
		m.dbQueryErrors,
		m.dbConnections,
		m.bookingsCreated,
		m.bookingDecisions,
		m.bookingsExpired,
		m.slotsOffered,
	)

	return m
}

// ObserveHTTPRequest фиксирует завершенный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(m.service, method, path, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(m.service, method, path).Observe(duration.Seconds())
}

// ObserveDBQuery фиксирует выполненный запрос к БД
func (m *Metrics) ObserveDBQuery(operation string, duration time.Duration, err error) {
	if m == nil {
		return
	}
	m.dbQueryDuration.WithLabelValues(m.service, operation).Observe(duration.Seconds())
	if err != nil {
		m.dbQueryErrors.WithLabelValues(m.service, operation).Inc()
	}
}

// SetDBConnections обновляет состояние пула соединений
func (m *Metrics) SetDBConnections(open, inUse, idle int) {
	if m == nil {
		return
	}
	m.dbConnections.WithLabelValues(m.service, "open").Set(float64(open))
	m.dbConnections.WithLabelValues(m.service, "in_use").Set(float64(inUse))
	m.dbConnections.WithLabelValues(m.service, "idle").Set(float64(idle))
}

// BookingCreated фиксирует созданное бронирование с начальным статусом
func (m *Metrics) BookingCreated(status string) {
	if m == nil {
		return
	}
	m.bookingsCreated.WithLabelValues(m.service, status).Inc()
}

// BookingStatusChanged фиксирует смену статуса персоналом
func (m *Metrics) BookingStatusChanged(status string) {
	if m == nil {
		return
	}
	m.bookingDecisions.WithLabelValues(m.service, status).Inc()
}

// BookingsExpired фиксирует автоматически отклоненные заявки
func (m *Metrics) BookingsExpired(count int64) {
	if m == nil || count <= 0 {
		return
	}
	m.bookingsExpired.WithLabelValues(m.service).Add(float64(count))
}

// SlotsOffered фиксирует количество предложенных слотов
func (m *Metrics) SlotsOffered(count int) {
	if m == nil {
		return
	}
	m.slotsOffered.WithLabelValues(m.service).Observe(float64(count))
}
