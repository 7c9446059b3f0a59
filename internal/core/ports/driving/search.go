package driving

import (
	"context"

	"github.com/custodia-labs/tabula/internal/core/domain"
)

// SearchService provides search and explore capabilities to external actors.
// Every method fails with domain.ErrInvalidArgument when limit is not positive.
type SearchService interface {
	// SearchTabs runs a title search and returns the top entries by votes.
	SearchTabs(ctx context.Context, artist, song string, filter domain.ResultFilter, limit int) ([]domain.TabSummary, error)

	// SearchArtists runs an artist search and returns artists in site order.
	SearchArtists(ctx context.Context, artist string, limit int) ([]domain.ArtistSummary, error)

	// Explore lists tabs from the explore page in the given order.
	Explore(ctx context.Context, order domain.ExploreOrder, filter domain.ResultFilter, limit int) ([]domain.TabSummary, error)

	// ArtistTabs lists tabs from an artist page.
	ArtistTabs(ctx context.Context, artistPath string, filter domain.ResultFilter, limit int) ([]domain.TabSummary, error)
}
