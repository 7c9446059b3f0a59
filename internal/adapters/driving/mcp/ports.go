package mcp

import (
	"net/http"

	"github.com/custodia-labs/tabula/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Tab fetches single tab pages.
	Tab driving.TabService

	// Search provides search and explore capabilities.
	Search driving.SearchService

	// Metrics, when set, is served at /metrics in HTTP mode.
	Metrics http.Handler
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Tab == nil {
		return ErrMissingTabService
	}
	if p.Search == nil {
		return ErrMissingSearchService
	}
	return nil
}
