package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Options configura el recorder de Prometheus.
type Options struct {
	Namespace string
}

// Option modifica Options.
type Option func(*Options)

// WithNamespace fija el namespace de las métricas (por defecto "conversor").
func WithNamespace(ns string) Option {
	return func(o *Options) {
		if ns != "" {
			o.Namespace = ns
		}
	}
}

// Recorder agrupa las métricas del servicio. Implementa ports.ConversionRecorder.
type Recorder struct {
	conversions  *prometheus.CounterVec
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

// NewRecorder registra las métricas en reg (usar prometheus.NewRegistry() en tests).
func NewRecorder(reg prometheus.Registerer, opts ...Option) *Recorder {
	o := Options{Namespace: "conversor"}
	for _, opt := range opts {
		opt(&o)
	}
	factory := promauto.With(reg)

	return &Recorder{
		conversions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: o.Namespace,
			Name:      "conversions_total",
			Help:      "Total de conversiones por categoría y resultado",
		}, []string{"category", "outcome"}),

		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: o.Namespace,
			Name:      "http_requests_total",
			Help:      "Total de peticiones HTTP",
		}, []string{"method", "route", "status"}),

		httpDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: o.Namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duración de las peticiones HTTP en segundos",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}

// ObserveConversion incrementa conversions_total{category, outcome}.
func (r *Recorder) ObserveConversion(category, outcome string) {
	r.conversions.WithLabelValues(category, outcome).Inc()
}

// ObserveHTTP registra una petición HTTP terminada.
func (r *Recorder) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	r.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	r.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// Handler expone las métricas de g en formato Prometheus.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
