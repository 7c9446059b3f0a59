package driving

import (
	"context"
	"time"

	"github.com/custodia-labs/tabula/internal/core/domain"
	"github.com/custodia-labs/tabula/internal/core/ports/driven"
)

// BrowseOptions configures one browse session.
type BrowseOptions struct {
	// PageTimeout ends the session when no list control is activated in
	// time. Zero uses the configured default.
	PageTimeout time.Duration

	// Transpose is the initial shift applied to a chosen chord sheet.
	Transpose int
}

// BrowseOutcome describes how a browse session ended.
type BrowseOutcome struct {
	// SessionID identifies the session in logs.
	SessionID string

	State domain.BrowseState

	// Chosen is the selected entry when State is BrowseResolved.
	Chosen domain.ListItem

	// Page is the zero-based page the session ended on.
	Page int
}

// BrowseService runs interactive browse sessions.
type BrowseService interface {
	// Browse pages through items on session until the user chooses an
	// entry, closes the session or the page timeout elapses.
	Browse(ctx context.Context, session driven.InteractiveSession, items []domain.ListItem, opts BrowseOptions) (*BrowseOutcome, error)
}
