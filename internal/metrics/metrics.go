// Package metrics defines the Prometheus collectors used by tabula and
// exposes an HTTP handler for scraping.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/custodia-labs/tabula/internal/core/domain"
	"github.com/custodia-labs/tabula/internal/core/ports/driven"
)

// Fetch outcomes.
const (
	OutcomeOK        = "ok"
	OutcomeNotFound  = "not_found"
	OutcomeError     = "error"
	OutcomeRejected  = "rejected"
	OutcomeMalformed = "malformed"
)

// Ensure Metrics implements the interface.
var _ driven.UsageRecorder = (*Metrics)(nil)

// Metrics holds all Prometheus collectors. A nil *Metrics is valid and
// records nothing.
type Metrics struct {
	registry *prometheus.Registry

	FetchesTotal          *prometheus.CounterVec
	FetchDuration         *prometheus.HistogramVec
	CacheHitsTotal        prometheus.Counter
	CacheMissesTotal      prometheus.Counter
	BrowseSessionsTotal   *prometheus.CounterVec
	TranspositionsTotal   prometheus.Counter
	UnresolvedChordsTotal prometheus.Counter
}

// New creates all collectors and registers them on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		FetchesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tabula_fetches_total",
				Help: "Page fetches by kind (tab, search, explore, artist) and outcome.",
			},
			[]string{"kind", "outcome"},
		),
		FetchDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "tabula_fetch_duration_seconds",
				Help:    "Page fetch latency in seconds, including throttling.",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"kind"},
		),
		CacheHitsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "tabula_cache_hits_total",
				Help: "Total number of page cache hits.",
			},
		),
		CacheMissesTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "tabula_cache_misses_total",
				Help: "Total number of page cache misses.",
			},
		),
		BrowseSessionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tabula_browse_sessions_total",
				Help: "Browse sessions by terminal state.",
			},
			[]string{"state"},
		),
		TranspositionsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "tabula_transpositions_total",
				Help: "Total chord sheet transpositions.",
			},
		),
		UnresolvedChordsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "tabula_unresolved_chords_total",
				Help: "Chord tokens left untransposed because no note name matched.",
			},
		),
	}

	m.registry.MustRegister(
		m.FetchesTotal,
		m.FetchDuration,
		m.CacheHitsTotal,
		m.CacheMissesTotal,
		m.BrowseSessionsTotal,
		m.TranspositionsTotal,
		m.UnresolvedChordsTotal,
	)

	return m
}

// Registry returns the registry the collectors are registered on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler returns the Prometheus scrape HTTP handler.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveFetch records one fetch.
func (m *Metrics) ObserveFetch(kind, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.FetchesTotal.WithLabelValues(kind, outcome).Inc()
	m.FetchDuration.WithLabelValues(kind).Observe(elapsed.Seconds())
}

// CacheHit records a cache hit.
func (m *Metrics) CacheHit() {
	if m == nil {
		return
	}
	m.CacheHitsTotal.Inc()
}

// CacheMiss records a cache miss.
func (m *Metrics) CacheMiss() {
	if m == nil {
		return
	}
	m.CacheMissesTotal.Inc()
}

// BrowseFinished records the terminal state of a browse session.
func (m *Metrics) BrowseFinished(state domain.BrowseState) {
	if m == nil {
		return
	}
	m.BrowseSessionsTotal.WithLabelValues(state.String()).Inc()
}

// Transposed records one transposition.
func (m *Metrics) Transposed(result domain.TransposeResult) {
	if m == nil {
		return
	}
	m.TranspositionsTotal.Inc()
	m.UnresolvedChordsTotal.Add(float64(result.Unresolved))
}
