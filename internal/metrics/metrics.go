package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the closet service collectors on a private registry.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	WashPlansTotal      *prometheus.CounterVec
	PlanTemperature     prometheus.Histogram
	BinSuggestionsTotal *prometheus.CounterVec
	CareLabelsTotal     *prometheus.CounterVec
	ApplianceCycles     *prometheus.CounterVec
}

// Config holds metrics configuration.
type Config struct {
	Namespace string
}

// DefaultConfig returns the default metrics configuration.
func DefaultConfig() Config {
	return Config{Namespace: "atelier"}
}

// New creates and registers all collectors.
func New(cfg Config) *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	m := &Metrics{registry: registry}

	m.HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	m.HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: cfg.Namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{"method", "path"},
	)

	m.WashPlansTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Name:      "wash_plans_total",
			Help:      "Wash plans computed, by bin and suggested program",
		},
		[]string{"bin", "program"},
	)

	m.PlanTemperature = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: cfg.Namespace,
			Name:      "wash_plan_temperature_celsius",
			Help:      "Target temperature of computed wash plans",
			Buckets:   []float64{0, 20, 30, 40, 50, 60, 90},
		},
	)

	m.BinSuggestionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Name:      "bin_suggestions_total",
			Help:      "Laundry bin suggestions, by bin",
		},
		[]string{"bin"},
	)

	m.CareLabelsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Name:      "care_labels_normalized_total",
			Help:      "Recognizer care labels processed, by outcome (mapped or unmapped)",
		},
		[]string{"outcome"},
	)

	m.ApplianceCycles = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Name:      "appliance_cycles_total",
			Help:      "Washing machine cycles registered and resets performed",
		},
		[]string{"event"},
	)

	registry.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.WashPlansTotal,
		m.PlanTemperature,
		m.BinSuggestionsTotal,
		m.CareLabelsTotal,
		m.ApplianceCycles,
	)

	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// RecordHTTPRequest records a completed HTTP request.
func (m *Metrics) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordPlan records a computed wash plan.
func (m *Metrics) RecordPlan(bin, program string, temperatureC int) {
	if m == nil {
		return
	}
	m.WashPlansTotal.WithLabelValues(bin, program).Inc()
	m.PlanTemperature.Observe(float64(temperatureC))
}

// RecordBinSuggestion records a per-garment bin suggestion.
func (m *Metrics) RecordBinSuggestion(bin string) {
	if m == nil {
		return
	}
	m.BinSuggestionsTotal.WithLabelValues(bin).Inc()
}

// RecordCareLabels records the outcome of a label normalization batch.
func (m *Metrics) RecordCareLabels(mapped, unmapped int) {
	if m == nil {
		return
	}
	m.CareLabelsTotal.WithLabelValues("mapped").Add(float64(mapped))
	m.CareLabelsTotal.WithLabelValues("unmapped").Add(float64(unmapped))
}

// RecordApplianceEvent records a cycle ("cycle") or a cleaning reset ("reset").
func (m *Metrics) RecordApplianceEvent(event string) {
	if m == nil {
		return
	}
	m.ApplianceCycles.WithLabelValues(event).Inc()
}
