package domain

import (
	"fmt"
	"sort"
	"strconv"
)

// SiteURL is the ultimate-guitar origin used to build absolute links.
const SiteURL = "https://www.ultimate-guitar.com"

// ListItem is a single entry a browse session can page through.
type ListItem interface {
	// Heading is the page title.
	Heading() string

	// Link is the absolute URL of the entry.
	Link() string

	// Description is a short markdown summary.
	Description() string
}

// TabSummary is one tab entry of a search or explore page.
type TabSummary struct {
	// ID is nil when the entry carries no id.
	ID     *int
	URL    string
	Artist string
	Song   string
	Type   TabType
	Votes  int
	Rating float64
}

// Heading returns "Artist - Song".
func (s TabSummary) Heading() string {
	return s.Artist + " - " + s.Song
}

// Link returns the tab URL.
func (s TabSummary) Link() string {
	return s.URL
}

// Description renders rating, votes, ID and link as markdown.
func (s TabSummary) Description() string {
	id := "-"
	if s.ID != nil {
		id = strconv.Itoa(*s.ID)
	}
	return fmt.Sprintf("**Rating:** `%s`\n**Votes:** `%d`\n\n**ID:** `%s`\n**Link**\n%s",
		strconv.FormatFloat(s.Rating, 'f', -1, 64), s.Votes, id, s.URL)
}

// ArtistSummary is one entry of an artist search.
type ArtistSummary struct {
	Artist string

	// ArtistURL is the site-relative path, e.g. "/artist/oasis_6916".
	ArtistURL string
}

// Heading returns the artist name.
func (a ArtistSummary) Heading() string {
	return a.Artist
}

// Link returns the absolute artist page URL.
func (a ArtistSummary) Link() string {
	return SiteURL + a.ArtistURL
}

// Description returns the artist link.
func (a ArtistSummary) Description() string {
	return "**Link**\n" + a.Link()
}

// ResultFilter selects entries by tab type.
type ResultFilter string

// Result filters.
const (
	FilterAll    ResultFilter = "all"
	FilterChords ResultFilter = "chords"
	FilterTabs   ResultFilter = "tabs"
)

// IsValid returns true if the filter is recognised.
func (f ResultFilter) IsValid() bool {
	switch f {
	case FilterAll, FilterChords, FilterTabs:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (f ResultFilter) String() string {
	return string(f)
}

func (f ResultFilter) matches(t TabType) bool {
	switch f {
	case FilterChords:
		return t == TabTypeChords
	case FilterTabs:
		return t == TabTypeTabs
	default:
		return true
	}
}

// AllResultFilters returns every filter.
func AllResultFilters() []ResultFilter {
	return []ResultFilter{FilterAll, FilterChords, FilterTabs}
}

// TabResults is the set of tab entries from one search or explore page,
// in source order.
type TabResults struct {
	entries []TabSummary
}

// NewTabResults creates a result set. Entries are copied.
func NewTabResults(entries []TabSummary) *TabResults {
	out := make([]TabSummary, len(entries))
	copy(out, entries)
	return &TabResults{entries: out}
}

// Len returns the number of entries.
func (r *TabResults) Len() int {
	return len(r.entries)
}

// Entries returns the entries in source order.
func (r *TabResults) Entries() []TabSummary {
	out := make([]TabSummary, len(r.entries))
	copy(out, r.entries)
	return out
}

// ChordsOnly returns the top n chords entries by votes.
func (r *TabResults) ChordsOnly(n int) ([]TabSummary, error) {
	return r.Select(FilterChords, n)
}

// TabsOnly returns the top n tabs entries by votes.
func (r *TabResults) TabsOnly(n int) ([]TabSummary, error) {
	return r.Select(FilterTabs, n)
}

// All returns the top n entries by votes.
func (r *TabResults) All(n int) ([]TabSummary, error) {
	return r.Select(FilterAll, n)
}

// Select filters by type, orders by descending votes keeping source
// order for ties, and truncates to n.
func (r *TabResults) Select(filter ResultFilter, n int) ([]TabSummary, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: result count must be positive, got %d", ErrInvalidArgument, n)
	}
	if !filter.IsValid() {
		return nil, fmt.Errorf("%w: unknown result filter %q", ErrInvalidArgument, filter)
	}

	selected := make([]TabSummary, 0, len(r.entries))
	for _, e := range r.entries {
		if filter.matches(e.Type) {
			selected = append(selected, e)
		}
	}
	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].Votes > selected[j].Votes
	})
	if len(selected) > n {
		selected = selected[:n]
	}
	return selected, nil
}

// ArtistResults is the set of artists from a band search, in source order.
type ArtistResults struct {
	entries []ArtistSummary
}

// NewArtistResults creates an artist result set. Entries are copied.
func NewArtistResults(entries []ArtistSummary) *ArtistResults {
	out := make([]ArtistSummary, len(entries))
	copy(out, entries)
	return &ArtistResults{entries: out}
}

// Len returns the number of artists.
func (r *ArtistResults) Len() int {
	return len(r.entries)
}

// Top returns the first n artists in source order.
func (r *ArtistResults) Top(n int) ([]ArtistSummary, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: result count must be positive, got %d", ErrInvalidArgument, n)
	}
	if n > len(r.entries) {
		n = len(r.entries)
	}
	out := make([]ArtistSummary, n)
	copy(out, r.entries[:n])
	return out, nil
}

// TabItems converts tab summaries to browse items.
func TabItems(tabs []TabSummary) []ListItem {
	items := make([]ListItem, len(tabs))
	for i, t := range tabs {
		items[i] = t
	}
	return items
}

// ArtistItems converts artist summaries to browse items.
func ArtistItems(artists []ArtistSummary) []ListItem {
	items := make([]ListItem, len(artists))
	for i, a := range artists {
		items[i] = a
	}
	return items
}
