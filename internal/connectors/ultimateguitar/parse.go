package ultimateguitar

import (
	"encoding/json"
	"fmt"

	"github.com/custodia-labs/tabula/internal/core/domain"
	"github.com/custodia-labs/tabula/internal/core/ports/driven"
	"github.com/custodia-labs/tabula/internal/logger"
)

// Ensure Parser implements the interface.
var _ driven.PageParser = (*Parser)(nil)

// Parser turns js-store payloads into domain values.
type Parser struct{}

// NewParser creates a new parser.
func NewParser() *Parser {
	return &Parser{}
}

// ParseTab parses a tab page. The tab id, type, URL, artist, song and
// content are required; chords pages also require the applicature map,
// whose keys form the chord vocabulary.
func (p *Parser) ParseTab(payload []byte) (*domain.TabDocument, error) {
	var data tabPageData
	if err := decodePageData(payload, &data); err != nil {
		return nil, err
	}

	tab := data.Tab
	if tab == nil {
		return nil, missingField("store.page.data.tab")
	}
	switch {
	case tab.ID == nil:
		return nil, missingField("tab.id")
	case tab.Type == nil:
		return nil, missingField("tab.type")
	case tab.TabURL == nil:
		return nil, missingField("tab.tab_url")
	case tab.ArtistName == nil:
		return nil, missingField("tab.artist_name")
	case tab.SongName == nil:
		return nil, missingField("tab.song_name")
	}

	view := data.TabView
	if view == nil || view.WikiTab == nil || view.WikiTab.Content == nil {
		return nil, missingField("tab_view.wiki_tab.content")
	}

	info := domain.TabInfo{
		ID:     *tab.ID,
		Type:   domain.TabType(*tab.Type),
		URL:    *tab.TabURL,
		Artist: *tab.ArtistName,
		Song:   *tab.SongName,
	}
	info.Tuning, info.Key, info.Capo = parseMeta(view.Meta)

	if info.Type != domain.TabTypeChords {
		return domain.NewTabDocument(info, *view.WikiTab.Content), nil
	}

	if isNull(view.Applicature) {
		return nil, missingField("tab_view.applicature")
	}
	var vocabulary []string
	if isObject(view.Applicature) {
		keys, err := objectKeys(view.Applicature)
		if err != nil {
			return nil, fmt.Errorf("%w: applicature: %v", domain.ErrMalformedDocument, err)
		}
		vocabulary = keys
	}
	logger.Debug("Parsed chords %d with %d chord shapes", info.ID, len(vocabulary))

	return domain.NewChordDocument(info, *view.WikiTab.Content, vocabulary), nil
}

// ParseSearch parses a title search or artist page. Entries are read
// from results, falling back to other_tabs.
func (p *Parser) ParseSearch(payload []byte) (*domain.TabResults, error) {
	var data searchPageData
	if err := decodePageData(payload, &data); err != nil {
		return nil, err
	}

	raw := data.Results
	if isNull(raw) {
		raw = data.OtherTabs
	}
	if isNull(raw) {
		return nil, missingField("store.page.data.results")
	}
	return parseEntries(raw)
}

// ParseExplore parses an explore page.
func (p *Parser) ParseExplore(payload []byte) (*domain.TabResults, error) {
	var data explorePageData
	if err := decodePageData(payload, &data); err != nil {
		return nil, err
	}
	if data.Data == nil || isNull(data.Data.Tabs) {
		return nil, missingField("store.page.data.data.tabs")
	}
	return parseEntries(data.Data.Tabs)
}

// ParseArtistSearch parses an artist search. Entries without a name or
// link are skipped.
func (p *Parser) ParseArtistSearch(payload []byte) (*domain.ArtistResults, error) {
	var data searchPageData
	if err := decodePageData(payload, &data); err != nil {
		return nil, err
	}
	if isNull(data.Results) {
		return nil, missingField("store.page.data.results")
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(data.Results, &entries); err != nil {
		return nil, fmt.Errorf("%w: results: %v", domain.ErrMalformedDocument, err)
	}

	artists := make([]domain.ArtistSummary, 0, len(entries))
	for _, raw := range entries {
		var a artistJSON
		if err := json.Unmarshal(raw, &a); err != nil || a.ArtistName == nil || a.ArtistURL == nil {
			continue
		}
		artists = append(artists, domain.ArtistSummary{Artist: *a.ArtistName, ArtistURL: *a.ArtistURL})
	}
	logger.Debug("Parsed %d of %d artist entries", len(artists), len(entries))
	return domain.NewArtistResults(artists), nil
}

// parseEntries keeps entries of a recognised type that carry a link,
// artist, song, votes and rating. Anything else (ads, pro-only items) is
// skipped.
func parseEntries(raw json.RawMessage) (*domain.TabResults, error) {
	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("%w: results: %v", domain.ErrMalformedDocument, err)
	}

	tabs := make([]domain.TabSummary, 0, len(entries))
	for _, r := range entries {
		var e entryJSON
		if err := json.Unmarshal(r, &e); err != nil {
			continue
		}
		if e.Type == nil || !domain.TabType(*e.Type).IsValid() {
			continue
		}
		if e.TabURL == nil || e.ArtistName == nil || e.SongName == nil {
			continue
		}
		if e.Votes == nil || e.Rating == nil {
			continue
		}
		tabs = append(tabs, domain.TabSummary{
			ID:     e.ID,
			URL:    *e.TabURL,
			Artist: *e.ArtistName,
			Song:   *e.SongName,
			Type:   domain.TabType(*e.Type),
			Votes:  *e.Votes,
			Rating: *e.Rating,
		})
	}
	logger.Debug("Parsed %d of %d result entries", len(tabs), len(entries))
	return domain.NewTabResults(tabs), nil
}

// decodePageData unmarshals store.page.data into v.
func decodePageData(payload []byte, v any) error {
	var pg page
	if err := json.Unmarshal(payload, &pg); err != nil {
		return fmt.Errorf("%w: %v", ErrBadPayload, err)
	}
	if pg.Store == nil || pg.Store.Page == nil || isNull(pg.Store.Page.Data) {
		return missingField("store.page.data")
	}
	if err := json.Unmarshal(pg.Store.Page.Data, v); err != nil {
		return fmt.Errorf("%w: store.page.data: %v", domain.ErrMalformedDocument, err)
	}
	return nil
}

// parseMeta reads the optional tuning, key and capo. A meta value that is
// not an object, or a field of the wrong type, counts as absent. Empty
// strings count as absent too.
func parseMeta(raw json.RawMessage) (tuning, key *string, capo *int) {
	if !isObject(raw) {
		return nil, nil, nil
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, nil, nil
	}

	if t, ok := fields["tuning"]; ok && isObject(t) {
		var v struct {
			Value *string `json:"value"`
		}
		if json.Unmarshal(t, &v) == nil && v.Value != nil && *v.Value != "" {
			tuning = v.Value
		}
	}
	if k, ok := fields["tonality"]; ok {
		var v string
		if json.Unmarshal(k, &v) == nil && v != "" {
			key = &v
		}
	}
	if c, ok := fields["capo"]; ok && !isNull(c) {
		var v int
		if json.Unmarshal(c, &v) == nil {
			capo = &v
		}
	}
	return tuning, key, capo
}
