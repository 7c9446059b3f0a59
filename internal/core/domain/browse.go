package domain

import "fmt"

// BrowseState is the state of a browse session.
type BrowseState int

// Browse states. Every state other than BrowseBrowsing is terminal.
const (
	BrowseBrowsing BrowseState = iota
	BrowseResolved
	BrowseExpired
	BrowseClosed
)

// String returns the state name.
func (s BrowseState) String() string {
	switch s {
	case BrowseBrowsing:
		return "browsing"
	case BrowseResolved:
		return "resolved"
	case BrowseExpired:
		return "expired"
	case BrowseClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// ActivationID names a control the user can activate.
type ActivationID string

// Activation IDs.
const (
	ActivationPrev          ActivationID = "prev"
	ActivationNext          ActivationID = "next"
	ActivationChoose        ActivationID = "choose"
	ActivationClose         ActivationID = "close"
	ActivationTransposeUp   ActivationID = "transpose_up"
	ActivationTransposeDown ActivationID = "transpose_down"
)

// Activation is the outcome of waiting for user input: either a control
// was activated or the wait timed out.
type Activation struct {
	ID       ActivationID
	TimedOut bool
}

// Activated returns an activation of id.
func Activated(id ActivationID) Activation {
	return Activation{ID: id}
}

// ActivationTimeout returns a timed-out activation.
func ActivationTimeout() Activation {
	return Activation{TimedOut: true}
}

// Control is a button shown with a view.
type Control struct {
	ID       ActivationID
	Label    string
	Disabled bool
}

// PageView is an immutable description of what a session displays.
type PageView struct {
	Title string
	URL   string

	// Description is markdown shown under the title.
	Description string

	// Body is preformatted text, such as tab content.
	Body string

	Footer   string
	Controls []Control
}

// EnabledControls returns the IDs of controls that can be activated.
func (v PageView) EnabledControls() []ActivationID {
	ids := make([]ActivationID, 0, len(v.Controls))
	for _, c := range v.Controls {
		if !c.Disabled {
			ids = append(ids, c.ID)
		}
	}
	return ids
}

// WithoutControls returns a copy of the view with no controls.
func (v PageView) WithoutControls() PageView {
	v.Controls = nil
	return v
}

// Browser is the state machine of one browse session over a fixed list.
// It starts in BrowseBrowsing on the first page.
type Browser struct {
	items  []ListItem
	page   int
	state  BrowseState
	chosen int
}

// NewBrowser creates a browser over items.
func NewBrowser(items []ListItem) (*Browser, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: nothing to browse", ErrInvalidArgument)
	}
	list := make([]ListItem, len(items))
	copy(list, items)
	return &Browser{items: list, chosen: -1}, nil
}

// Len returns the number of pages.
func (b *Browser) Len() int {
	return len(b.items)
}

// Page returns the zero-based current page.
func (b *Browser) Page() int {
	return b.page
}

// State returns the current state.
func (b *Browser) State() BrowseState {
	return b.state
}

// Current returns the item on the current page.
func (b *Browser) Current() ListItem {
	return b.items[b.page]
}

// Chosen returns the chosen item and its index once resolved.
func (b *Browser) Chosen() (ListItem, int, bool) {
	if b.state != BrowseResolved {
		return nil, -1, false
	}
	return b.items[b.chosen], b.chosen, true
}

// Next advances one page. It reports whether the page changed.
func (b *Browser) Next() bool {
	if b.state != BrowseBrowsing || b.page >= len(b.items)-1 {
		return false
	}
	b.page++
	return true
}

// Prev goes back one page. It reports whether the page changed.
func (b *Browser) Prev() bool {
	if b.state != BrowseBrowsing || b.page == 0 {
		return false
	}
	b.page--
	return true
}

// Choose resolves the session on the current page.
func (b *Browser) Choose() bool {
	if b.state != BrowseBrowsing {
		return false
	}
	b.state = BrowseResolved
	b.chosen = b.page
	return true
}

// Expire ends the session after a timeout.
func (b *Browser) Expire() bool {
	if b.state != BrowseBrowsing {
		return false
	}
	b.state = BrowseExpired
	return true
}

// Close ends the session at the user's request.
func (b *Browser) Close() bool {
	if b.state != BrowseBrowsing {
		return false
	}
	b.state = BrowseClosed
	return true
}

// Apply dispatches an activation. It reports whether the browser changed.
// Activations received in a terminal state are ignored.
func (b *Browser) Apply(a Activation) bool {
	if a.TimedOut {
		return b.Expire()
	}
	switch a.ID {
	case ActivationNext:
		return b.Next()
	case ActivationPrev:
		return b.Prev()
	case ActivationChoose:
		return b.Choose()
	case ActivationClose:
		return b.Close()
	default:
		return false
	}
}

// View builds the list view for the current page. Controls are only
// present while browsing; prev and next are disabled at the edges.
func (b *Browser) View() PageView {
	item := b.items[b.page]
	v := PageView{
		Title:       item.Heading(),
		URL:         item.Link(),
		Description: item.Description(),
		Footer:      fmt.Sprintf("Page %d of %d", b.page+1, len(b.items)),
	}
	if b.state != BrowseBrowsing {
		return v
	}
	v.Controls = []Control{
		{ID: ActivationPrev, Label: "Prev", Disabled: b.page == 0},
		{ID: ActivationNext, Label: "Next", Disabled: b.page >= len(b.items)-1},
		{ID: ActivationChoose, Label: "Choose"},
		{ID: ActivationClose, Label: "Close"},
	}
	return v
}

// DetailControls returns the controls of a detail view. Transpose
// controls are only offered for chord sheets.
func DetailControls(transposable bool) []Control {
	if !transposable {
		return []Control{{ID: ActivationClose, Label: "Close"}}
	}
	return []Control{
		{ID: ActivationTransposeDown, Label: "-1"},
		{ID: ActivationTransposeUp, Label: "+1"},
		{ID: ActivationClose, Label: "Close"},
	}
}
