package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/tabula/internal/core/domain"
	"github.com/custodia-labs/tabula/internal/core/ports/driven"
	"github.com/custodia-labs/tabula/internal/core/ports/driving"
	"github.com/custodia-labs/tabula/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// SearchService runs title, artist and explore searches.
type SearchService struct {
	fetcher driven.PageFetcher
	parser  driven.PageParser
}

// NewSearchService creates a new search service.
func NewSearchService(fetcher driven.PageFetcher, parser driven.PageParser) *SearchService {
	return &SearchService{
		fetcher: fetcher,
		parser:  parser,
	}
}

// SearchTabs runs a title search for artist and song.
func (s *SearchService) SearchTabs(
	ctx context.Context, artist, song string, filter domain.ResultFilter, limit int,
) ([]domain.TabSummary, error) {
	logger.Section("Search Tabs")
	logger.Debug("Artist: %q, song: %q, filter: %s, limit: %d", artist, song, filter, limit)

	if err := checkSelection(filter, limit); err != nil {
		return nil, err
	}
	artist, song = strings.TrimSpace(artist), strings.TrimSpace(song)
	if artist == "" || song == "" {
		return nil, fmt.Errorf("%w: artist and song are required", domain.ErrInvalidArgument)
	}

	payload, err := s.fetcher.FetchSearch(ctx, artist, song)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	results, err := s.parser.ParseSearch(payload)
	if err != nil {
		return nil, fmt.Errorf("parse search: %w", err)
	}
	return selectTabs(results, filter, limit)
}

// SearchArtists runs an artist search.
func (s *SearchService) SearchArtists(ctx context.Context, artist string, limit int) ([]domain.ArtistSummary, error) {
	logger.Section("Search Artists")
	logger.Debug("Artist: %q, limit: %d", artist, limit)

	if limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be positive, got %d", domain.ErrInvalidArgument, limit)
	}
	artist = strings.TrimSpace(artist)
	if artist == "" {
		return nil, fmt.Errorf("%w: artist is required", domain.ErrInvalidArgument)
	}

	payload, err := s.fetcher.FetchSearch(ctx, artist, "")
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	results, err := s.parser.ParseArtistSearch(payload)
	if err != nil {
		return nil, fmt.Errorf("parse artist search: %w", err)
	}

	artists, err := results.Top(limit)
	if err != nil {
		return nil, err
	}
	logger.Info("Artists: %d of %d", len(artists), results.Len())
	return artists, nil
}

// Explore lists tabs from the explore page.
func (s *SearchService) Explore(
	ctx context.Context, order domain.ExploreOrder, filter domain.ResultFilter, limit int,
) ([]domain.TabSummary, error) {
	logger.Section("Explore")
	logger.Debug("Order: %s, filter: %s, limit: %d", order, filter, limit)

	if !order.IsValid() {
		return nil, fmt.Errorf("%w: unknown explore order %q", domain.ErrInvalidArgument, order)
	}
	if err := checkSelection(filter, limit); err != nil {
		return nil, err
	}

	payload, err := s.fetcher.FetchExplore(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("explore: %w", err)
	}
	results, err := s.parser.ParseExplore(payload)
	if err != nil {
		return nil, fmt.Errorf("parse explore: %w", err)
	}
	return selectTabs(results, filter, limit)
}

// ArtistTabs lists tabs from an artist page.
func (s *SearchService) ArtistTabs(
	ctx context.Context, artistPath string, filter domain.ResultFilter, limit int,
) ([]domain.TabSummary, error) {
	logger.Section("Artist Tabs")
	logger.Debug("Path: %q, filter: %s, limit: %d", artistPath, filter, limit)

	if err := checkSelection(filter, limit); err != nil {
		return nil, err
	}
	if strings.TrimSpace(artistPath) == "" {
		return nil, fmt.Errorf("%w: artist path is required", domain.ErrInvalidArgument)
	}

	payload, err := s.fetcher.FetchArtist(ctx, artistPath)
	if err != nil {
		return nil, fmt.Errorf("artist: %w", err)
	}
	// Artist pages embed the same result layout as search pages.
	results, err := s.parser.ParseSearch(payload)
	if err != nil {
		return nil, fmt.Errorf("parse artist page: %w", err)
	}
	return selectTabs(results, filter, limit)
}

// checkSelection rejects bad arguments before any network call.
func checkSelection(filter domain.ResultFilter, limit int) error {
	if !filter.IsValid() {
		return fmt.Errorf("%w: unknown result type %q", domain.ErrInvalidArgument, filter)
	}
	if limit <= 0 {
		return fmt.Errorf("%w: limit must be positive, got %d", domain.ErrInvalidArgument, limit)
	}
	return nil
}

func selectTabs(results *domain.TabResults, filter domain.ResultFilter, limit int) ([]domain.TabSummary, error) {
	tabs, err := results.Select(filter, limit)
	if err != nil {
		return nil, err
	}
	logger.Info("Results: %d of %d", len(tabs), results.Len())
	return tabs, nil
}
