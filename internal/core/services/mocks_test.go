package services

import (
	"context"
	"errors"
	"time"

	"github.com/custodia-labs/tabula/internal/core/domain"
)

// --- Mock implementations ---

// mockFetcher implements driven.PageFetcher for testing.
type mockFetcher struct {
	tabFunc     func(url string) ([]byte, error)
	searchFunc  func(artist, song string) ([]byte, error)
	exploreFunc func(order domain.ExploreOrder) ([]byte, error)
	artistFunc  func(path string) ([]byte, error)
	calls       int
}

func (m *mockFetcher) FetchTab(_ context.Context, url string) ([]byte, error) {
	m.calls++
	if m.tabFunc == nil {
		return nil, errors.New("unexpected FetchTab")
	}
	return m.tabFunc(url)
}

func (m *mockFetcher) FetchSearch(_ context.Context, artist, song string) ([]byte, error) {
	m.calls++
	if m.searchFunc == nil {
		return nil, errors.New("unexpected FetchSearch")
	}
	return m.searchFunc(artist, song)
}

func (m *mockFetcher) FetchExplore(_ context.Context, order domain.ExploreOrder) ([]byte, error) {
	m.calls++
	if m.exploreFunc == nil {
		return nil, errors.New("unexpected FetchExplore")
	}
	return m.exploreFunc(order)
}

func (m *mockFetcher) FetchArtist(_ context.Context, path string) ([]byte, error) {
	m.calls++
	if m.artistFunc == nil {
		return nil, errors.New("unexpected FetchArtist")
	}
	return m.artistFunc(path)
}

// mockParser implements driven.PageParser. Payloads are keys into the
// fixture maps.
type mockParser struct {
	tabs    map[string]*domain.TabDocument
	results map[string]*domain.TabResults
	artists map[string]*domain.ArtistResults
}

func (m *mockParser) ParseTab(payload []byte) (*domain.TabDocument, error) {
	if doc, ok := m.tabs[string(payload)]; ok {
		return doc, nil
	}
	return nil, domain.ErrMalformedDocument
}

func (m *mockParser) ParseSearch(payload []byte) (*domain.TabResults, error) {
	if r, ok := m.results[string(payload)]; ok {
		return r, nil
	}
	return nil, domain.ErrMalformedDocument
}

func (m *mockParser) ParseExplore(payload []byte) (*domain.TabResults, error) {
	return m.ParseSearch(payload)
}

func (m *mockParser) ParseArtistSearch(payload []byte) (*domain.ArtistResults, error) {
	if r, ok := m.artists[string(payload)]; ok {
		return r, nil
	}
	return nil, domain.ErrMalformedDocument
}

// mockRecorder implements driven.UsageRecorder.
type mockRecorder struct {
	finished   []domain.BrowseState
	transposed []domain.TransposeResult
}

func (m *mockRecorder) BrowseFinished(state domain.BrowseState) {
	m.finished = append(m.finished, state)
}

func (m *mockRecorder) Transposed(result domain.TransposeResult) {
	m.transposed = append(m.transposed, result)
}

// sessionCall records one call on scriptedSession.
type sessionCall struct {
	op   string
	view domain.PageView
}

// scriptedSession implements driven.InteractiveSession. It replays
// activations in order; once the script is exhausted it reports the
// session as closed.
type scriptedSession struct {
	script   []domain.Activation
	calls    []sessionCall
	valid    [][]domain.ActivationID
	timeouts []time.Duration
	sendErr  error
}

func (s *scriptedSession) Send(_ context.Context, view domain.PageView) error {
	if s.sendErr != nil {
		return s.sendErr
	}
	s.calls = append(s.calls, sessionCall{op: "send", view: view})
	return nil
}

func (s *scriptedSession) Edit(_ context.Context, view domain.PageView) error {
	s.calls = append(s.calls, sessionCall{op: "edit", view: view})
	return nil
}

func (s *scriptedSession) AwaitActivation(
	_ context.Context, valid []domain.ActivationID, timeout time.Duration,
) (domain.Activation, error) {
	s.valid = append(s.valid, valid)
	s.timeouts = append(s.timeouts, timeout)
	if len(s.script) == 0 {
		return domain.Activation{}, domain.ErrSessionClosed
	}
	next := s.script[0]
	s.script = s.script[1:]
	return next, nil
}

func (s *scriptedSession) last() sessionCall {
	return s.calls[len(s.calls)-1]
}

func payload(s string) func(string) ([]byte, error) {
	return func(string) ([]byte, error) { return []byte(s), nil }
}

func intPtr(i int) *int { return &i }
