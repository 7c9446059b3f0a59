package metrics

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/tabula/internal/core/domain"
)

func TestMetrics_Counters(t *testing.T) {
	m := New()

	m.ObserveFetch("tab", OutcomeOK, 10*time.Millisecond)
	m.ObserveFetch("tab", OutcomeOK, 20*time.Millisecond)
	m.ObserveFetch("search", OutcomeNotFound, time.Millisecond)
	m.CacheHit()
	m.CacheMiss()
	m.CacheMiss()
	m.BrowseFinished(domain.BrowseExpired)
	m.Transposed(domain.TransposeResult{Transposition: 2, Unresolved: 3})

	assert.Equal(t, 2.0, testutil.ToFloat64(m.FetchesTotal.WithLabelValues("tab", OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.FetchesTotal.WithLabelValues("search", OutcomeNotFound)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheHitsTotal))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.CacheMissesTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BrowseSessionsTotal.WithLabelValues("expired")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.TranspositionsTotal))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.UnresolvedChordsTotal))
}

func TestMetrics_NilIsNoOp(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveFetch("tab", OutcomeOK, time.Second)
		m.CacheHit()
		m.CacheMiss()
		m.BrowseFinished(domain.BrowseResolved)
		m.Transposed(domain.TransposeResult{})
	})
}

func TestMetrics_IndependentRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		New()
		New()
	})
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.CacheHit()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, string(body), "tabula_cache_hits_total 1")
}
