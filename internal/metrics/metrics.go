package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "ads"

// Metrics holds every collector the engine reports.
type Metrics struct {
	// Delivery
	Served        *prometheus.CounterVec
	NoFill        *prometheus.CounterVec
	Clicks        prometheus.Counter
	ServeDuration prometheus.Histogram

	// Lifecycle
	Transitions *prometheus.CounterVec

	// Events
	EventsDropped   prometheus.Counter
	EventsPublished *prometheus.CounterVec

	// HTTP
	Requests        *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

// New creates the collectors and registers them with reg. Passing a fresh
// prometheus.NewRegistry keeps tests isolated from the default registry.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Served: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "served_total",
			Help:      "Impressions served, by zone.",
		}, []string{"zone"}),
		NoFill: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "no_fill_total",
			Help:      "Serve requests that returned no ad, by zone and reason.",
		}, []string{"zone", "reason"}),
		Clicks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ad",
			Name:      "clicks_total",
			Help:      "Recorded ad clicks.",
		}),
		ServeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "ad",
			Name:      "serve_duration_seconds",
			Help:      "Latency of the serve operation.",
			Buckets:   []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5},
		}),
		Transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "campaign",
			Name:      "transitions_total",
			Help:      "Campaign status transitions.",
		}, []string{"from", "to"}),
		EventsDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_dropped_total",
			Help:      "Events discarded because the sink buffer was full.",
		}),
		EventsPublished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_published_total",
			Help:      "Events handed to the downstream sink, by outcome.",
		}, []string{"outcome"}),
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route pattern and status code.",
		}, []string{"route", "code"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
	}

	reg.MustRegister(
		m.Served,
		m.NoFill,
		m.Clicks,
		m.ServeDuration,
		m.Transitions,
		m.EventsDropped,
		m.EventsPublished,
		m.Requests,
		m.RequestDuration,
	)
	return m
}

// NewNop returns collectors registered nowhere. Used by tests and tools
// that do not expose /metrics.
func NewNop() *Metrics {
	return New(prometheus.NewRegistry())
}
