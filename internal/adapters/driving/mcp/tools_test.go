package mcp

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/tabula/internal/core/domain"
)

func TestServer_handleGetTab(t *testing.T) {
	ctx := context.Background()

	t.Run("chords sheet", func(t *testing.T) {
		info := domain.TabInfo{
			ID: 1, Type: domain.TabTypeChords, URL: "https://tabs.ultimate-guitar.com/tab/x",
			Artist: "Beach Weather", Song: "Chit Chat", Key: strPtr("A"), Capo: intPtr(2),
		}
		tab := &mockTabService{doc: domain.NewChordDocument(info, "[ch]A[/ch] la", []string{"A"})}
		server := newTestServer(tab, &mockSearchService{})

		_, output, err := server.handleGetTab(ctx, nil, GetTabInput{URL: info.URL, Transpose: 2})

		require.NoError(t, err)
		assert.Equal(t, info.URL, tab.lastURL)
		assert.Equal(t, 2, tab.lastTranspose)
		assert.Equal(t, "Chords", output.Type)
		assert.Equal(t, "A", output.Key)
		assert.Empty(t, output.Tuning)
		assert.Equal(t, intPtr(2), output.Capo)
		require.NotNil(t, output.Transposition)
		assert.Equal(t, 2, *output.Transposition)
		assert.Equal(t, "B la", output.Content)
		assert.Contains(t, output.Metadata, "Transposition: 2")
	})

	t.Run("plain tab has no transposition", func(t *testing.T) {
		info := domain.TabInfo{ID: 2, Type: domain.TabTypeTabs, Tuning: strPtr("D A D G B E")}
		server := newTestServer(&mockTabService{doc: domain.NewTabDocument(info, "e|-0-|")}, &mockSearchService{})

		_, output, err := server.handleGetTab(ctx, nil, GetTabInput{URL: "u"})

		require.NoError(t, err)
		assert.Nil(t, output.Transposition)
		assert.Equal(t, "D A D G B E", output.Tuning)
		assert.Equal(t, "e|-0-|", output.Content)
	})

	t.Run("errors carry a hint", func(t *testing.T) {
		tab := &mockTabService{err: fmt.Errorf("fetch tab: %w", domain.ErrInvalidSource)}
		server := newTestServer(tab, &mockSearchService{})

		_, _, err := server.handleGetTab(ctx, nil, GetTabInput{URL: "https://example.com"})

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidSource)
		assert.Contains(t, err.Error(), "only tabs.ultimate-guitar.com")
	})
}

func TestServer_handleSearchTabs(t *testing.T) {
	ctx := context.Background()
	search := &mockSearchService{tabs: []domain.TabSummary{
		{ID: intPtr(7), Artist: "Oasis", Song: "Wonderwall", Type: domain.TabTypeChords, URL: "u", Votes: 12, Rating: 4.5},
	}}
	server := newTestServer(&mockTabService{}, search)

	_, output, err := server.handleSearchTabs(ctx, nil, SearchTabsInput{Artist: "Oasis", Song: "Wonderwall"})

	require.NoError(t, err)
	assert.Equal(t, domain.FilterAll, search.lastFilter, "default type")
	assert.Equal(t, DefaultLimit, search.lastLimit, "default limit")
	require.Equal(t, 1, output.Count)
	assert.Equal(t, TabResultOutput{
		ID: intPtr(7), Artist: "Oasis", Song: "Wonderwall", Type: "Chords", URL: "u", Votes: 12, Rating: 4.5,
	}, output.Results[0])

	_, _, err = server.handleSearchTabs(ctx, nil, SearchTabsInput{Type: "chords", Limit: 3})
	require.NoError(t, err)
	assert.Equal(t, domain.FilterChords, search.lastFilter)
	assert.Equal(t, 3, search.lastLimit)
}

func TestServer_handleSearchArtists(t *testing.T) {
	search := &mockSearchService{artists: []domain.ArtistSummary{{Artist: "Oasis", ArtistURL: "/artist/oasis_6916"}}}
	server := newTestServer(&mockTabService{}, search)

	_, output, err := server.handleSearchArtists(context.Background(), nil, SearchArtistsInput{Artist: "oasis"})

	require.NoError(t, err)
	require.Equal(t, 1, output.Count)
	assert.Equal(t, "/artist/oasis_6916", output.Results[0].Path)
	assert.Equal(t, "https://www.ultimate-guitar.com/artist/oasis_6916", output.Results[0].URL)
}

func TestServer_handleExploreTabs(t *testing.T) {
	search := &mockSearchService{}
	server := newTestServer(&mockTabService{}, search)

	_, output, err := server.handleExploreTabs(context.Background(), nil, ExploreTabsInput{})
	require.NoError(t, err)
	assert.Equal(t, domain.ExplorePopular, search.lastOrder)
	assert.Equal(t, 0, output.Count)
	assert.NotNil(t, output.Results)

	_, _, err = server.handleExploreTabs(context.Background(), nil, ExploreTabsInput{Order: "rating"})
	require.NoError(t, err)
	assert.Equal(t, domain.ExploreRating, search.lastOrder)
}

func TestToolError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		hint string
	}{
		{"not found", domain.NewTransportError("u", 404), "do not retry"},
		{"server error", domain.NewTransportError("u", 502), "try again later"},
		{"bad argument", domain.ErrInvalidArgument, "check the tool arguments"},
		{"malformed", domain.ErrMalformedDocument, "layout not understood"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := toolError(tt.err)
			assert.Contains(t, err.Error(), tt.hint)
			assert.ErrorIs(t, err, tt.err)
		})
	}

	plain := fmt.Errorf("boom")
	assert.Equal(t, plain, toolError(plain))
}
