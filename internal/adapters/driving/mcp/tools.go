package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/tabula/internal/core/domain"
)

// GetTabInput is the input schema for the get_tab tool.
type GetTabInput struct {
	URL       string `json:"url" jsonschema:"a tabs.ultimate-guitar.com tab link"`
	Transpose int    `json:"transpose,omitempty" jsonschema:"semitones to shift a chords sheet (may be negative)"`
}

// GetTabOutput is the output schema for the get_tab tool.
type GetTabOutput struct {
	ID            int    `json:"id"`
	Type          string `json:"type"`
	Artist        string `json:"artist"`
	Song          string `json:"song"`
	URL           string `json:"url"`
	Tuning        string `json:"tuning,omitempty"`
	Key           string `json:"key,omitempty"`
	Capo          *int   `json:"capo,omitempty"`
	Transposition *int   `json:"transposition,omitempty"`
	Metadata      string `json:"metadata"`
	Content       string `json:"content"`
}

// SearchTabsInput is the input schema for the search_tabs tool.
type SearchTabsInput struct {
	Artist string `json:"artist" jsonschema:"artist name"`
	Song   string `json:"song" jsonschema:"song title"`
	Type   string `json:"type,omitempty" jsonschema:"chords, tabs or all (default all)"`
	Limit  int    `json:"limit,omitempty" jsonschema:"maximum number of results to return (default 10)"`
}

// SearchArtistsInput is the input schema for the search_artists tool.
type SearchArtistsInput struct {
	Artist string `json:"artist" jsonschema:"artist name to look up"`
	Limit  int    `json:"limit,omitempty" jsonschema:"maximum number of results to return (default 10)"`
}

// ExploreTabsInput is the input schema for the explore_tabs tool.
type ExploreTabsInput struct {
	Order string `json:"order,omitempty" jsonschema:"today, popular, recent or rating (default popular)"`
	Type  string `json:"type,omitempty" jsonschema:"chords, tabs or all (default all)"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of results to return (default 10)"`
}

// TabListOutput is the output schema for tools returning tab results.
type TabListOutput struct {
	Results []TabResultOutput `json:"results"`
	Count   int               `json:"count"`
}

// TabResultOutput represents a single tab result.
type TabResultOutput struct {
	ID     *int    `json:"id,omitempty"`
	Artist string  `json:"artist"`
	Song   string  `json:"song"`
	Type   string  `json:"type"`
	URL    string  `json:"url"`
	Votes  int     `json:"votes"`
	Rating float64 `json:"rating"`
}

// ArtistListOutput is the output schema for the search_artists tool.
type ArtistListOutput struct {
	Results []ArtistResultOutput `json:"results"`
	Count   int                  `json:"count"`
}

// ArtistResultOutput represents a single artist result.
type ArtistResultOutput struct {
	Artist string `json:"artist"`
	Path   string `json:"path"`
	URL    string `json:"url"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_tab",
		Description: "Fetch a guitar tab or chords sheet by link, optionally transposed",
	}, s.handleGetTab)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_tabs",
		Description: "Search tabs and chords by artist and song title, ordered by votes",
	}, s.handleSearchTabs)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_artists",
		Description: "Search artists by name",
	}, s.handleSearchArtists)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "explore_tabs",
		Description: "List trending, popular, recent or top rated tabs",
	}, s.handleExploreTabs)
}

func (s *Server) handleGetTab(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetTabInput,
) (*mcp.CallToolResult, GetTabOutput, error) {
	doc, err := s.ports.Tab.Get(ctx, input.URL, input.Transpose)
	if err != nil {
		return nil, GetTabOutput{}, toolError(err)
	}

	info := doc.Info()
	output := GetTabOutput{
		ID:       info.ID,
		Type:     string(info.Type),
		Artist:   info.Artist,
		Song:     info.Song,
		URL:      info.URL,
		Capo:     info.Capo,
		Metadata: doc.FormattedMetadata(),
		Content:  doc.Content(),
	}
	if info.Tuning != nil {
		output.Tuning = *info.Tuning
	}
	if info.Key != nil {
		output.Key = *info.Key
	}
	if sheet, ok := doc.Chords(); ok {
		n := sheet.Transposition()
		output.Transposition = &n
	}

	return nil, output, nil
}

func (s *Server) handleSearchTabs(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchTabsInput,
) (*mcp.CallToolResult, TabListOutput, error) {
	tabs, err := s.ports.Search.SearchTabs(ctx, input.Artist, input.Song, filterOrAll(input.Type), limitOrDefault(input.Limit))
	if err != nil {
		return nil, TabListOutput{}, toolError(err)
	}
	return nil, tabList(tabs), nil
}

func (s *Server) handleSearchArtists(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchArtistsInput,
) (*mcp.CallToolResult, ArtistListOutput, error) {
	artists, err := s.ports.Search.SearchArtists(ctx, input.Artist, limitOrDefault(input.Limit))
	if err != nil {
		return nil, ArtistListOutput{}, toolError(err)
	}

	output := ArtistListOutput{
		Results: make([]ArtistResultOutput, len(artists)),
		Count:   len(artists),
	}
	for i, a := range artists {
		output.Results[i] = ArtistResultOutput{
			Artist: a.Artist,
			Path:   a.ArtistURL,
			URL:    a.Link(),
		}
	}
	return nil, output, nil
}

func (s *Server) handleExploreTabs(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ExploreTabsInput,
) (*mcp.CallToolResult, TabListOutput, error) {
	order := domain.ExplorePopular
	if input.Order != "" {
		order = domain.ExploreOrder(input.Order)
	}

	tabs, err := s.ports.Search.Explore(ctx, order, filterOrAll(input.Type), limitOrDefault(input.Limit))
	if err != nil {
		return nil, TabListOutput{}, toolError(err)
	}
	return nil, tabList(tabs), nil
}

func tabList(tabs []domain.TabSummary) TabListOutput {
	output := TabListOutput{
		Results: make([]TabResultOutput, len(tabs)),
		Count:   len(tabs),
	}
	for i, t := range tabs {
		output.Results[i] = TabResultOutput{
			ID:     t.ID,
			Artist: t.Artist,
			Song:   t.Song,
			Type:   string(t.Type),
			URL:    t.URL,
			Votes:  t.Votes,
			Rating: t.Rating,
		}
	}
	return output
}

func filterOrAll(s string) domain.ResultFilter {
	if s == "" {
		return domain.FilterAll
	}
	return domain.ResultFilter(s)
}

func limitOrDefault(n int) int {
	if n <= 0 {
		return DefaultLimit
	}
	return n
}
