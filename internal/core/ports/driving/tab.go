package driving

import (
	"context"

	"github.com/custodia-labs/tabula/internal/core/domain"
)

// TabService retrieves single tab pages.
type TabService interface {
	// Get fetches and parses the tab at url. Chords documents are
	// transposed by transpose semitones before they are returned.
	Get(ctx context.Context, url string, transpose int) (*domain.TabDocument, error)

	// TopChords fetches the highest-voted chords result of a title search.
	// Fails with domain.ErrNotFound when the search has no chords entry.
	TopChords(ctx context.Context, artist, song string, transpose int) (*domain.TabDocument, error)
}
