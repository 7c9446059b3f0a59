package mcp

import (
	"context"

	"github.com/custodia-labs/tabula/internal/core/domain"
)

// mockTabService is a mock implementation of driving.TabService.
type mockTabService struct {
	doc           *domain.TabDocument
	err           error
	lastURL       string
	lastTranspose int
}

func (m *mockTabService) Get(_ context.Context, url string, transpose int) (*domain.TabDocument, error) {
	m.lastURL, m.lastTranspose = url, transpose
	if m.err != nil {
		return nil, m.err
	}
	if sheet, ok := m.doc.Chords(); ok && transpose != 0 {
		sheet.Transpose(transpose)
	}
	return m.doc, nil
}

func (m *mockTabService) TopChords(ctx context.Context, _, _ string, transpose int) (*domain.TabDocument, error) {
	return m.Get(ctx, "", transpose)
}

// mockSearchService is a mock implementation of driving.SearchService.
type mockSearchService struct {
	tabs       []domain.TabSummary
	artists    []domain.ArtistSummary
	err        error
	lastFilter domain.ResultFilter
	lastLimit  int
	lastOrder  domain.ExploreOrder
}

func (m *mockSearchService) SearchTabs(
	_ context.Context, _, _ string, filter domain.ResultFilter, limit int,
) ([]domain.TabSummary, error) {
	m.lastFilter, m.lastLimit = filter, limit
	return m.tabs, m.err
}

func (m *mockSearchService) SearchArtists(_ context.Context, _ string, limit int) ([]domain.ArtistSummary, error) {
	m.lastLimit = limit
	return m.artists, m.err
}

func (m *mockSearchService) Explore(
	_ context.Context, order domain.ExploreOrder, filter domain.ResultFilter, limit int,
) ([]domain.TabSummary, error) {
	m.lastOrder, m.lastFilter, m.lastLimit = order, filter, limit
	return m.tabs, m.err
}

func (m *mockSearchService) ArtistTabs(
	_ context.Context, _ string, filter domain.ResultFilter, limit int,
) ([]domain.TabSummary, error) {
	m.lastFilter, m.lastLimit = filter, limit
	return m.tabs, m.err
}

func newTestServer(tab *mockTabService, search *mockSearchService) *Server {
	s, err := NewServer(&Ports{Tab: tab, Search: search})
	if err != nil {
		panic(err)
	}
	return s
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
