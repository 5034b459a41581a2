package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the prometheus collectors of the chart server.
type Metrics struct {
	Requests     *prometheus.CounterVec
	RenderDur    prometheus.Histogram
	Resizes      prometheus.Counter
	CursorMoves  *prometheus.CounterVec
	Divisions    *prometheus.GaugeVec
	Subdivisions *prometheus.GaugeVec

	registry *prometheus.Registry
}

func NewMetrics() *Metrics {
	m := &Metrics{
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "graph_http_requests_total",
			Help: "Total HTTP requests handled by route",
		}, []string{"route"}),
		RenderDur: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "graph_render_duration_seconds",
			Help:    "Time spent rendering the chart as SVG",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 12),
		}),
		Resizes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "graph_resizes_total",
			Help: "Total resize events applied to the chart",
		}),
		CursorMoves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "graph_pointer_events_total",
			Help: "Total pointer events by resulting cursor state",
		}, []string{"state"}),
		Divisions: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "graph_axis_divisions",
			Help: "Number of major divisions of the last layout",
		}, []string{"axis"}),
		Subdivisions: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "graph_axis_subdivisions",
			Help: "Number of subdivisions of the last layout",
		}, []string{"axis"}),
		registry: prometheus.NewRegistry(),
	}
	m.registry.MustRegister(
		m.Requests,
		m.RenderDur,
		m.Resizes,
		m.CursorMoves,
		m.Divisions,
		m.Subdivisions,
	)
	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) observeLayout(axis string, divisions, subdivisions int) {
	m.Divisions.WithLabelValues(axis).Set(float64(divisions))
	m.Subdivisions.WithLabelValues(axis).Set(float64(subdivisions))
}
