package driven

import "github.com/custodia-labs/tabula/internal/core/domain"

// PageParser turns fetched payloads into domain values.
// Missing required fields fail with domain.ErrMalformedDocument.
type PageParser interface {
	// ParseTab parses a tab page payload.
	ParseTab(payload []byte) (*domain.TabDocument, error)

	// ParseSearch parses a title search or artist page payload.
	ParseSearch(payload []byte) (*domain.TabResults, error)

	// ParseExplore parses an explore page payload.
	ParseExplore(payload []byte) (*domain.TabResults, error)

	// ParseArtistSearch parses an artist search payload.
	ParseArtistSearch(payload []byte) (*domain.ArtistResults, error)
}
