// Package messages defines Bubbletea message types for the TUI.
package messages

import (
	"github.com/custodia-labs/tabula/internal/core/domain"
)

// ViewShown carries a view to display.
type ViewShown struct {
	View domain.PageView

	// Replace keeps the scroll position because the view edits the one
	// already on screen.
	Replace bool
}

// LinkCopied reports the outcome of copying a page link.
type LinkCopied struct {
	URL string
	Err error
}
