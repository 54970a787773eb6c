package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/alexisbeaulieu97/workflowdeck/internal/render"
)

// Metrics holds the Prometheus collectors exported on /metrics. A nil
// *Metrics records nothing.
type Metrics struct {
	registry      *prometheus.Registry
	requests      *prometheus.CounterVec
	renderSeconds *prometheus.HistogramVec
	badges        *prometheus.CounterVec
	catalogItems  prometheus.Gauge
	catalogLoads  *prometheus.CounterVec
}

// NewMetrics registers the workflowdeck collectors on a private registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "workflowdeck",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status code.",
		}, []string{"route", "code"}),
		renderSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "workflowdeck",
			Name:      "render_duration_seconds",
			Help:      "Time spent rendering HTML views.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"view"}),
		badges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "workflowdeck",
			Name:      "icon_badges_total",
			Help:      "Integration badges by resolution outcome.",
		}, []string{"outcome"}),
		catalogItems: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "workflowdeck",
			Name:      "catalog_items",
			Help:      "Items in the loaded catalog.",
		}),
		catalogLoads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "workflowdeck",
			Name:      "catalog_loads_total",
			Help:      "Catalog loads by result.",
		}, []string{"result"}),
	}
	m.registry.MustRegister(
		m.requests,
		m.renderSeconds,
		m.badges,
		m.catalogItems,
		m.catalogLoads,
		collectors.NewGoCollector(),
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveBadge counts one badge outcome. It matches render.Options.OnBadge.
func (m *Metrics) ObserveBadge(outcome render.BadgeOutcome) {
	if m == nil {
		return
	}
	m.badges.WithLabelValues(string(outcome)).Inc()
}

// ObserveCatalog records a catalog load.
func (m *Metrics) ObserveCatalog(items int, err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.catalogLoads.WithLabelValues("error").Inc()
		m.catalogItems.Set(0)
		return
	}
	m.catalogLoads.WithLabelValues("ok").Inc()
	m.catalogItems.Set(float64(items))
}

func (m *Metrics) observeRequest(route string, code int) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(route, strconv.Itoa(code)).Inc()
}

func (m *Metrics) observeRender(view string, started time.Time) {
	if m == nil {
		return
	}
	m.renderSeconds.WithLabelValues(view).Observe(time.Since(started).Seconds())
}
