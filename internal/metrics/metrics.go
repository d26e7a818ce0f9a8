// Package metrics holds the Prometheus collectors exported by the organizer.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "family"

type Metrics struct {
	registry        *prometheus.Registry
	storeWrites     *prometheus.CounterVec
	storeFallbacks  *prometheus.CounterVec
	mealGenerations *prometheus.CounterVec
	loginAttempts   *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		storeWrites: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_writes_total",
			Help:      "Collection writes to the persistent store by key and result.",
		}, []string{"key", "result"}),
		storeFallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_fallbacks_total",
			Help:      "Reads that fell back to the default value by key and reason.",
		}, []string{"key", "reason"}),
		mealGenerations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "meal_generation_total",
			Help:      "Meal generation requests by result.",
		}, []string{"result"}),
		loginAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "login_attempts_total",
			Help:      "Login attempts by result.",
		}, []string{"result"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.storeWrites,
		m.storeFallbacks,
		m.mealGenerations,
		m.loginAttempts,
	)
	return m
}

func (m *Metrics) StoreWrite(key, result string) {
	if m == nil {
		return
	}
	m.storeWrites.WithLabelValues(key, result).Inc()
}

func (m *Metrics) StoreFallback(key, reason string) {
	if m == nil {
		return
	}
	m.storeFallbacks.WithLabelValues(key, reason).Inc()
}

func (m *Metrics) MealGeneration(result string) {
	if m == nil {
		return
	}
	m.mealGenerations.WithLabelValues(result).Inc()
}

func (m *Metrics) LoginAttempt(result string) {
	if m == nil {
		return
	}
	m.loginAttempts.WithLabelValues(result).Inc()
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry is exposed for tests that gather values directly.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
