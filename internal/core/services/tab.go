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

// Ensure TabService implements the interface.
var _ driving.TabService = (*TabService)(nil)

// TabService fetches and parses tab pages.
type TabService struct {
	fetcher  driven.PageFetcher
	parser   driven.PageParser
	recorder driven.UsageRecorder
}

// NewTabService creates a new tab service. recorder may be nil.
func NewTabService(fetcher driven.PageFetcher, parser driven.PageParser, recorder driven.UsageRecorder) *TabService {
	return &TabService{
		fetcher:  fetcher,
		parser:   parser,
		recorder: recorderOrNop(recorder),
	}
}

// Get fetches the tab at url and applies transpose to chord sheets.
func (s *TabService) Get(ctx context.Context, url string, transpose int) (*domain.TabDocument, error) {
	logger.Section("Tab")
	logger.Debug("URL: %s, transpose: %d", url, transpose)

	done := logger.Timed("fetch tab")
	payload, err := s.fetcher.FetchTab(ctx, url)
	done()
	if err != nil {
		return nil, fmt.Errorf("fetch tab: %w", err)
	}

	doc, err := s.parser.ParseTab(payload)
	if err != nil {
		return nil, fmt.Errorf("parse tab %s: %w", url, err)
	}
	logger.Debug("Parsed %s %q (%d bytes)", doc.Info().Type, doc.Info().Title(), len(doc.RawContent()))

	if transpose != 0 {
		if _, ok := transposeDocument(doc, transpose, s.recorder); !ok {
			logger.Debug("Transpose ignored for %s document", doc.Info().Type)
		}
	}

	return doc, nil
}

// TopChords searches by title and fetches the highest-voted chords entry.
func (s *TabService) TopChords(ctx context.Context, artist, song string, transpose int) (*domain.TabDocument, error) {
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

	top, err := results.ChordsOnly(1)
	if err != nil {
		return nil, err
	}
	if len(top) == 0 {
		return nil, fmt.Errorf("chords for %s - %s: %w", artist, song, domain.ErrNotFound)
	}
	logger.Debug("Top chords: %s (%d votes)", top[0].URL, top[0].Votes)

	return s.Get(ctx, top[0].URL, transpose)
}

// transposeDocument shifts a chord document by shift semitones and records
// the result. It reports false for plain tab documents.
func transposeDocument(doc *domain.TabDocument, shift int, recorder driven.UsageRecorder) (domain.TransposeResult, bool) {
	sheet, ok := doc.Chords()
	if !ok {
		return domain.TransposeResult{}, false
	}

	result := sheet.Transpose(shift)
	recorder.Transposed(result)
	if result.Unresolved > 0 {
		logger.Debug("Unresolved chords: %v", result.UnresolvedTokens)
	}
	return result, true
}
