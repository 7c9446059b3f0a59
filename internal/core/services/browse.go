package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/tabula/internal/core/domain"
	"github.com/custodia-labs/tabula/internal/core/ports/driven"
	"github.com/custodia-labs/tabula/internal/core/ports/driving"
	"github.com/custodia-labs/tabula/internal/logger"
)

// DefaultPageTimeout bounds the wait for a list control.
const DefaultPageTimeout = 60 * time.Second

// artistDetailLimit caps the tabs listed in an artist detail view.
const artistDetailLimit = 25

// Ensure BrowseService implements the interface.
var _ driving.BrowseService = (*BrowseService)(nil)

// BrowseService runs interactive browse sessions.
type BrowseService struct {
	tabs        driving.TabService
	search      driving.SearchService
	recorder    driven.UsageRecorder
	pageTimeout time.Duration
}

// NewBrowseService creates a browse service. A non-positive pageTimeout
// uses DefaultPageTimeout; recorder may be nil.
func NewBrowseService(
	tabs driving.TabService,
	search driving.SearchService,
	recorder driven.UsageRecorder,
	pageTimeout time.Duration,
) *BrowseService {
	if pageTimeout <= 0 {
		pageTimeout = DefaultPageTimeout
	}
	return &BrowseService{
		tabs:        tabs,
		search:      search,
		recorder:    recorderOrNop(recorder),
		pageTimeout: pageTimeout,
	}
}

// Browse pages through items until one is chosen, the session is closed or
// the page timeout elapses. A chosen entry is shown in a detail view that
// stays open, without timeout, until it is closed.
func (s *BrowseService) Browse(
	ctx context.Context, session driven.InteractiveSession, items []domain.ListItem, opts driving.BrowseOptions,
) (*driving.BrowseOutcome, error) {
	browser, err := domain.NewBrowser(items)
	if err != nil {
		return nil, err
	}

	timeout := opts.PageTimeout
	if timeout <= 0 {
		timeout = s.pageTimeout
	}

	outcome := &driving.BrowseOutcome{SessionID: uuid.NewString()}
	logger.Section("Browse")
	logger.Debug("Session %s: %d items, page timeout %s", outcome.SessionID, browser.Len(), timeout)

	if err := session.Send(ctx, browser.View()); err != nil {
		return nil, fmt.Errorf("send page: %w", err)
	}

	for browser.State() == domain.BrowseBrowsing {
		act, err := session.AwaitActivation(ctx, browser.View().EnabledControls(), timeout)
		switch {
		case errors.Is(err, domain.ErrSessionClosed):
			act = domain.Activated(domain.ActivationClose)
		case err != nil:
			return nil, fmt.Errorf("await activation: %w", err)
		}

		if !browser.Apply(act) {
			continue
		}
		logger.Debug("Session %s: %s, page %d, state %s",
			outcome.SessionID, activationName(act), browser.Page()+1, browser.State())

		// Every transition re-renders the list; terminal states drop the controls.
		if err := session.Edit(ctx, browser.View()); err != nil {
			return nil, fmt.Errorf("edit page: %w", err)
		}
	}

	if browser.State() == domain.BrowseResolved {
		item, _, _ := browser.Chosen()
		outcome.Chosen = item
		if err := s.showDetail(ctx, session, browser, item, opts); err != nil {
			return nil, err
		}
	}

	outcome.State = browser.State()
	outcome.Page = browser.Page()
	s.recorder.BrowseFinished(outcome.State)
	logger.Info("Browse session %s ended %s on page %d", outcome.SessionID, outcome.State, outcome.Page+1)
	return outcome, nil
}

// showDetail sends the detail view of item and serves its controls until
// close, then collapses it back to the list view.
func (s *BrowseService) showDetail(
	ctx context.Context,
	session driven.InteractiveSession,
	browser *domain.Browser,
	item domain.ListItem,
	opts driving.BrowseOptions,
) error {
	var doc *domain.TabDocument
	var view domain.PageView

	switch it := item.(type) {
	case domain.TabSummary:
		d, err := s.tabs.Get(ctx, it.URL, opts.Transpose)
		if err != nil {
			return s.detailFailed(ctx, session, it.Heading(), err)
		}
		doc, view = d, TabDetailView(d)
	case domain.ArtistSummary:
		tabs, err := s.search.ArtistTabs(ctx, it.ArtistURL, domain.FilterAll, artistDetailLimit)
		if err != nil {
			return s.detailFailed(ctx, session, it.Heading(), err)
		}
		view = ArtistDetailView(it, tabs)
	default:
		return fmt.Errorf("%w: cannot show %T", domain.ErrInvalidArgument, item)
	}

	if err := session.Send(ctx, view); err != nil {
		return fmt.Errorf("send detail: %w", err)
	}

	for {
		act, err := session.AwaitActivation(ctx, view.EnabledControls(), 0)
		if errors.Is(err, domain.ErrSessionClosed) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("await detail activation: %w", err)
		}

		switch act.ID {
		case domain.ActivationTransposeUp, domain.ActivationTransposeDown:
			if doc == nil {
				continue
			}
			shift := 1
			if act.ID == domain.ActivationTransposeDown {
				shift = -1
			}
			transposeDocument(doc, shift, s.recorder)
			view = TabDetailView(doc)
			if err := session.Edit(ctx, view); err != nil {
				return fmt.Errorf("edit detail: %w", err)
			}
		case domain.ActivationClose:
			if err := session.Edit(ctx, browser.View()); err != nil {
				return fmt.Errorf("collapse detail: %w", err)
			}
			return nil
		}
	}
}

// detailFailed reports a missing page to the user; any other error is returned.
func (s *BrowseService) detailFailed(ctx context.Context, session driven.InteractiveSession, heading string, err error) error {
	if !domain.IsNotFound(err) {
		return fmt.Errorf("load %s: %w", heading, err)
	}
	logger.Warn("Chosen entry not found: %v", err)
	notice := NoticeView("Not found", fmt.Sprintf("Couldn't find **%s**. It may have been removed.", heading))
	if sendErr := session.Send(ctx, notice); sendErr != nil {
		return fmt.Errorf("send notice: %w", sendErr)
	}
	return nil
}

func activationName(a domain.Activation) string {
	if a.TimedOut {
		return "timeout"
	}
	return string(a.ID)
}
