package ultimateguitar

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/custodia-labs/tabula/internal/core/domain"
)

const (
	// TabPrefix is the location of every tab page.
	TabPrefix = "https://tabs.ultimate-guitar.com/tab/"

	// SitePrefix is the location of search, explore and artist pages.
	SitePrefix = domain.SiteURL + "/"
)

// Endpoints holds the recognised URL prefixes.
type Endpoints struct {
	Tab  string
	Site string
}

// DefaultEndpoints returns the live site prefixes.
func DefaultEndpoints() Endpoints {
	return Endpoints{Tab: TabPrefix, Site: SitePrefix}
}

// Validate fails with domain.ErrInvalidSource unless rawURL starts with
// the tab or site prefix.
func (e Endpoints) Validate(rawURL string) error {
	if strings.HasPrefix(rawURL, e.Tab) || strings.HasPrefix(rawURL, e.Site) {
		return nil
	}
	return fmt.Errorf("%w: %q is not an ultimate-guitar link", domain.ErrInvalidSource, rawURL)
}

// SearchURL builds a title search when song is set, else an artist search.
func (e Endpoints) SearchURL(artist, song string) string {
	artist = strings.TrimSpace(artist)
	song = strings.TrimSpace(song)
	if song == "" {
		return e.Site + "search.php?search_type=band&value=" + quote(artist)
	}
	return e.Site + "search.php?search_type=title&value=" + quote(artist+" "+song)
}

// ExploreURL builds the explore page URL for order.
func (e Endpoints) ExploreURL(order domain.ExploreOrder) (string, error) {
	if !order.IsValid() {
		return "", fmt.Errorf("%w: unknown explore order %q", domain.ErrInvalidArgument, order)
	}
	return e.Site + "explore?order=" + quote(order.SortKey()), nil
}

// ArtistURL builds an artist page URL from its site-relative path.
// Absolute artist links on the site are accepted as well.
func (e Endpoints) ArtistURL(path string) string {
	path = strings.TrimSpace(path)
	if strings.HasPrefix(path, e.Site) {
		return path
	}
	path = strings.TrimPrefix(path, "/")
	segments := strings.Split(path, "/")
	for i, s := range segments {
		segments[i] = quote(s)
	}
	return e.Site + strings.Join(segments, "/")
}

// quote percent-encodes s with spaces as %20.
func quote(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
