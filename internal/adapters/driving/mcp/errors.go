// Package mcp provides an MCP (Model Context Protocol) server adapter for tabula.
// It lets AI assistants look up tabs, search the site and transpose chord sheets.
package mcp

import (
	"errors"
	"fmt"

	"github.com/custodia-labs/tabula/internal/core/domain"
)

// ErrMissingTabService is returned when the tab service is not provided.
var ErrMissingTabService = errors.New("mcp: tab service is required")

// ErrMissingSearchService is returned when the search service is not provided.
var ErrMissingSearchService = errors.New("mcp: search service is required")

// toolError prefixes err with a hint the calling model can act on.
func toolError(err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidSource):
		return fmt.Errorf("only tabs.ultimate-guitar.com tab links are supported: %w", err)
	case domain.IsNotFound(err):
		return fmt.Errorf("page does not exist, do not retry: %w", err)
	case errors.Is(err, domain.ErrInvalidArgument):
		return fmt.Errorf("check the tool arguments: %w", err)
	case errors.Is(err, domain.ErrMalformedDocument):
		return fmt.Errorf("page layout not understood: %w", err)
	case errors.Is(err, domain.ErrTransport):
		return fmt.Errorf("site unavailable, try again later: %w", err)
	default:
		return err
	}
}
