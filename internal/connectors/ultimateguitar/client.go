package ultimateguitar

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/custodia-labs/tabula/internal/core/domain"
	"github.com/custodia-labs/tabula/internal/core/ports/driven"
	"github.com/custodia-labs/tabula/internal/logger"
	"github.com/custodia-labs/tabula/internal/metrics"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 15 * time.Second

// Fetch kinds used for logging and metrics.
const (
	KindTab     = "tab"
	KindSearch  = "search"
	KindExplore = "explore"
	KindArtist  = "artist"
)

// Ensure Client implements the interface.
var _ driven.PageFetcher = (*Client)(nil)

// Client fetches page payloads from ultimate-guitar.com.
// It never retries; a 429 response only delays later requests.
type Client struct {
	http      *http.Client
	userAgent string
	limiter   *RateLimiter
	endpoints Endpoints
	metrics   *metrics.Metrics
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithRateLimiter sets the request throttle.
func WithRateLimiter(rl *RateLimiter) Option {
	return func(c *Client) { c.limiter = rl }
}

// WithEndpoints overrides the recognised URL prefixes.
func WithEndpoints(e Endpoints) Option {
	return func(c *Client) { c.endpoints = e }
}

// WithMetrics records fetch counts and latency.
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// NewClient creates a new ultimate-guitar client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		http:      &http.Client{Timeout: DefaultTimeout},
		userAgent: domain.DefaultUserAgent,
		limiter:   NewRateLimiter(DefaultRequestsPerSecond, DefaultBurst),
		endpoints: DefaultEndpoints(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Endpoints returns the URL prefixes the client accepts.
func (c *Client) Endpoints() Endpoints {
	return c.endpoints
}

// ValidateURL fails with domain.ErrInvalidSource for links outside the
// site.
func (c *Client) ValidateURL(url string) error {
	return c.endpoints.Validate(url)
}

// FetchTab returns the payload of a tab page.
func (c *Client) FetchTab(ctx context.Context, url string) ([]byte, error) {
	return c.fetch(ctx, KindTab, url)
}

// FetchSearch returns the payload of a title or artist search page.
func (c *Client) FetchSearch(ctx context.Context, artist, song string) ([]byte, error) {
	return c.fetch(ctx, KindSearch, c.endpoints.SearchURL(artist, song))
}

// FetchExplore returns the payload of the explore page.
func (c *Client) FetchExplore(ctx context.Context, order domain.ExploreOrder) ([]byte, error) {
	url, err := c.endpoints.ExploreURL(order)
	if err != nil {
		return nil, err
	}
	return c.fetch(ctx, KindExplore, url)
}

// FetchArtist returns the payload of an artist page.
func (c *Client) FetchArtist(ctx context.Context, path string) ([]byte, error) {
	return c.fetch(ctx, KindArtist, c.endpoints.ArtistURL(path))
}

func (c *Client) fetch(ctx context.Context, kind, url string) ([]byte, error) {
	if err := c.endpoints.Validate(url); err != nil {
		c.metrics.ObserveFetch(kind, metrics.OutcomeRejected, 0)
		return nil, err
	}

	start := time.Now()
	payload, err := c.get(ctx, url)
	elapsed := time.Since(start)

	switch {
	case err == nil:
		c.metrics.ObserveFetch(kind, metrics.OutcomeOK, elapsed)
		logger.Debug("Fetched %s page %s (%d bytes, %s)", kind, url, len(payload), elapsed.Round(time.Millisecond))
	case domain.IsNotFound(err):
		c.metrics.ObserveFetch(kind, metrics.OutcomeNotFound, elapsed)
	case errors.Is(err, domain.ErrMalformedDocument):
		c.metrics.ObserveFetch(kind, metrics.OutcomeMalformed, elapsed)
	default:
		c.metrics.ObserveFetch(kind, metrics.OutcomeError, elapsed)
	}
	return payload, err
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/html")

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &domain.TransportError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	c.limiter.Observe(resp)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.Warn("GET %s returned %d", url, resp.StatusCode)
		return nil, domain.NewTransportError(url, resp.StatusCode)
	}

	payload, err := ExtractPayload(resp.Body)
	if err != nil {
		if errors.Is(err, domain.ErrMalformedDocument) {
			return nil, fmt.Errorf("%s: %w", url, err)
		}
		return nil, &domain.TransportError{URL: url, Err: fmt.Errorf("read body: %w", err)}
	}
	return payload, nil
}
