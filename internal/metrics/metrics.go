// Package metrics содержит коллекторы Prometheus для HTTP-слоя, канала
// реального времени и ретрансляции вебхуков.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Общие HTTP-метрики
var (
	httpInFlight = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "http_in_flight_requests",
		Help: "In-flight HTTP requests.",
	})

	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latencies in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)

// Метрики канала реального времени
var (
	WSConnections = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "realtime_connections",
		Help: "Open real-time socket connections.",
	})

	EventsDelivered = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "realtime_events_delivered_total",
			Help: "Events enqueued to connected clients.",
		},
		[]string{"event"},
	)

	EventsDropped = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "realtime_events_dropped_total",
			Help: "Events dropped because a client buffer was full.",
		},
		[]string{"event"},
	)
)

// WebhookDeliveries считает попытки доставки вебхуков по результату (delivered, failed, skipped)
var WebhookDeliveries = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "webhook_deliveries_total",
		Help: "Outbound webhook deliveries by result.",
	},
	[]string{"event", "result"},
)

// Register регистрирует все коллекторы в переданном регистре
func Register(reg prometheus.Registerer) error {
	collectors := []prometheus.Collector{
		httpInFlight,
		httpRequestsTotal,
		httpRequestDuration,
		WSConnections,
		EventsDelivered,
		EventsDropped,
		WebhookDeliveries,
	}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// Handler отдает метрики default-регистра
func Handler() http.Handler {
	return promhttp.Handler()
}

// Middleware измеряет RPS, задержку и запросы в полете.
// Путь берется из шаблона маршрута gin, чтобы идентификаторы не раздували кардинальность.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		httpInFlight.Inc()
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		httpRequestDuration.WithLabelValues(method, path, status).Observe(time.Since(start).Seconds())
		httpRequestsTotal.WithLabelValues(method, path, status).Inc()
		httpInFlight.Dec()
	}
}
