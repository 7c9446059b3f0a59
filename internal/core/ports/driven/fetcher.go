package driven

import (
	"context"

	"github.com/custodia-labs/tabula/internal/core/domain"
)

// PageFetcher retrieves the JSON payload a site page embeds.
//
// Every method fails with domain.ErrInvalidSource, before any network
// call, when the target URL is outside the recognised tab, search and
// explore locations, and with *domain.TransportError on a non-2xx
// response. Implementations do not retry.
type PageFetcher interface {
	// FetchTab returns the payload of a single tab page.
	FetchTab(ctx context.Context, url string) ([]byte, error)

	// FetchSearch returns the payload of a search page. An empty song
	// searches artists by name instead of titles.
	FetchSearch(ctx context.Context, artist, song string) ([]byte, error)

	// FetchExplore returns the payload of the explore page in the given order.
	FetchExplore(ctx context.Context, order domain.ExploreOrder) ([]byte, error)

	// FetchArtist returns the payload of an artist page, addressed by its
	// site-relative path such as "/artist/oasis_6916".
	FetchArtist(ctx context.Context, path string) ([]byte, error)
}
