package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Number of HTTP requests handled",
		},
		[]string{"method", "path", "status"},
	)
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
	DBQueryDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query latency by query name",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"query"},
	)
)

// MustRegister — регистрирует коллекторы; повторная регистрация — не ошибка
// (удобно в тестах), любая другая проблема — panic.
func MustRegister() {
	for _, c := range []prometheus.Collector{HTTPRequestsTotal, HTTPRequestDuration, DBQueryDuration} {
		if err := prometheus.Register(c); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
				panic(err)
			}
		}
	}
}

// ObserveDBQuery — фиксирует длительность запроса к БД от start до вызова.
// Использование: defer metrics.ObserveDBQuery("customers_list", time.Now()).
func ObserveDBQuery(query string, start time.Time) {
	DBQueryDuration.WithLabelValues(query).Observe(time.Since(start).Seconds())
}
