package metrics

import (
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const DefaultNamespace = "reposcout"

type Metrics struct {
	SearchRequestsTotal    *prometheus.CounterVec
	SearchRequestDuration  *prometheus.HistogramVec
	SearchRequestsInFlight prometheus.Gauge
}

// New регистрирует коллекторы в reg. Повторная регистрация в том же reg
// не паникует, а переиспользует уже зарегистрированные коллекторы.
func New(namespace string, reg prometheus.Registerer) *Metrics {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		SearchRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "search_requests_total",
				Help:      "Total number of repository search API requests",
			},
			[]string{"kind", "status"},
		),
		SearchRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "search_request_duration_seconds",
				Help:      "Repository search request duration in seconds",
				Buckets:   []float64{0.1, 0.25, 0.5, 1, 2, 5, 10},
			},
			[]string{"kind"},
		),
		SearchRequestsInFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "search_requests_in_flight",
				Help:      "Number of repository search requests currently waiting on the API",
			},
		),
	}

	m.SearchRequestsTotal = register(reg, m.SearchRequestsTotal)
	m.SearchRequestDuration = register(reg, m.SearchRequestDuration)
	m.SearchRequestsInFlight = register(reg, m.SearchRequestsInFlight)

	return m
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) C {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing
			}
		}
		panic(err)
	}
	return c
}

// Handler serves g in the prometheus exposition format. A nil g means the
// default registry.
func Handler(g prometheus.Gatherer) http.Handler {
	if g == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

// RecordSearchRequest is safe to call on a nil *Metrics.
func (m *Metrics) RecordSearchRequest(kind, status string, duration time.Duration) {
	if m == nil {
		return
	}
	m.SearchRequestsTotal.WithLabelValues(kind, status).Inc()
	m.SearchRequestDuration.WithLabelValues(kind).Observe(duration.Seconds())
}

func (m *Metrics) IncRequestsInFlight() {
	if m == nil {
		return
	}
	m.SearchRequestsInFlight.Inc()
}

func (m *Metrics) DecRequestsInFlight() {
	if m == nil {
		return
	}
	m.SearchRequestsInFlight.Dec()
}
