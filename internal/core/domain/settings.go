package domain

import (
	"fmt"
	"time"
)

const unknownDescription = "Unknown"

// CacheBackend selects where fetched pages are cached.
type CacheBackend string

// Available cache backends.
const (
	// CacheBackendNone disables caching.
	CacheBackendNone CacheBackend = "none"

	// CacheBackendMemory keeps pages in process memory.
	CacheBackendMemory CacheBackend = "memory"

	// CacheBackendSQLite persists pages in a local SQLite database.
	CacheBackendSQLite CacheBackend = "sqlite"

	// CacheBackendRedis stores pages in a Redis server.
	CacheBackendRedis CacheBackend = "redis"
)

// IsValid returns true if the backend is recognised.
func (b CacheBackend) IsValid() bool {
	switch b {
	case CacheBackendNone, CacheBackendMemory, CacheBackendSQLite, CacheBackendRedis:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (b CacheBackend) String() string {
	return string(b)
}

// Description returns a human-readable description of the backend.
func (b CacheBackend) Description() string {
	switch b {
	case CacheBackendNone:
		return "None (always fetch)"
	case CacheBackendMemory:
		return "Memory (per process)"
	case CacheBackendSQLite:
		return "SQLite (local file)"
	case CacheBackendRedis:
		return "Redis (shared server)"
	default:
		return unknownDescription
	}
}

// AllCacheBackends returns all cache backends.
func AllCacheBackends() []CacheBackend {
	return []CacheBackend{CacheBackendNone, CacheBackendMemory, CacheBackendSQLite, CacheBackendRedis}
}

// BrowseUI selects the interactive session used by --browse.
type BrowseUI string

// Available browse UIs.
const (
	// BrowseUIAuto uses the terminal UI when stdout is a terminal.
	BrowseUIAuto BrowseUI = "auto"

	// BrowseUITUI is the full-screen terminal UI.
	BrowseUITUI BrowseUI = "tui"

	// BrowseUIConsole is a line-based prompt.
	BrowseUIConsole BrowseUI = "console"
)

// IsValid returns true if the UI is recognised.
func (u BrowseUI) IsValid() bool {
	switch u {
	case BrowseUIAuto, BrowseUITUI, BrowseUIConsole:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (u BrowseUI) String() string {
	return string(u)
}

// AllBrowseUIs returns all browse UIs.
func AllBrowseUIs() []BrowseUI {
	return []BrowseUI{BrowseUIAuto, BrowseUITUI, BrowseUIConsole}
}

// FetchSettings configures page fetching.
type FetchSettings struct {
	// UserAgent is sent with every request.
	UserAgent string

	// RequestsPerSecond throttles requests to the site.
	RequestsPerSecond float64

	// Burst is the number of requests allowed at once.
	Burst int

	// Timeout bounds a single request.
	Timeout time.Duration
}

// CacheSettings configures the page cache.
type CacheSettings struct {
	Backend CacheBackend

	// TTL is how long a cached page stays valid.
	TTL time.Duration

	// SQLiteDir holds the cache database. Empty means ~/.tabula.
	SQLiteDir string

	RedisAddr string
	RedisDB   int
}

// BrowseSettings configures interactive browsing.
type BrowseSettings struct {
	// PageTimeout ends a session when no control is activated in time.
	PageTimeout time.Duration

	// DefaultLimit is the result count when none is given.
	DefaultLimit int

	UI BrowseUI
}

// AppSettings holds all application settings.
type AppSettings struct {
	Fetch  FetchSettings
	Cache  CacheSettings
	Browse BrowseSettings
}

// DefaultUserAgent is sent when no user agent is configured.
const DefaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Fetch: FetchSettings{
			UserAgent:         DefaultUserAgent,
			RequestsPerSecond: 2,
			Burst:             2,
			Timeout:           15 * time.Second,
		},
		Cache: CacheSettings{
			Backend:   CacheBackendMemory,
			TTL:       30 * time.Minute,
			RedisAddr: "localhost:6379",
		},
		Browse: BrowseSettings{
			PageTimeout:  60 * time.Second,
			DefaultLimit: 10,
			UI:           BrowseUIAuto,
		},
	}
}

// Validate checks that every setting is usable.
func (s AppSettings) Validate() error {
	if s.Fetch.RequestsPerSecond <= 0 {
		return fmt.Errorf("%w: fetch.requests_per_second must be positive", ErrInvalidArgument)
	}
	if s.Fetch.Burst < 1 {
		return fmt.Errorf("%w: fetch.burst must be at least 1", ErrInvalidArgument)
	}
	if s.Fetch.Timeout <= 0 {
		return fmt.Errorf("%w: fetch.timeout_seconds must be positive", ErrInvalidArgument)
	}
	if !s.Cache.Backend.IsValid() {
		return fmt.Errorf("%w: unknown cache backend %q", ErrInvalidArgument, s.Cache.Backend)
	}
	if s.Cache.TTL < 0 {
		return fmt.Errorf("%w: cache.ttl_minutes must not be negative", ErrInvalidArgument)
	}
	if s.Browse.PageTimeout <= 0 {
		return fmt.Errorf("%w: browse.page_timeout_seconds must be positive", ErrInvalidArgument)
	}
	if s.Browse.DefaultLimit < 1 {
		return fmt.Errorf("%w: browse.default_limit must be at least 1", ErrInvalidArgument)
	}
	if !s.Browse.UI.IsValid() {
		return fmt.Errorf("%w: unknown browse ui %q", ErrInvalidArgument, s.Browse.UI)
	}
	return nil
}
