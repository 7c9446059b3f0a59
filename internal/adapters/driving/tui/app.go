package tui

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/tabula/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/tabula/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/tabula/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/tabula/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/tabula/internal/adapters/driving/tui/views/page"
	"github.com/custodia-labs/tabula/internal/core/domain"
)

// clipboardWrite is replaced in tests.
var clipboardWrite = clipboard.WriteAll

// App is the TUI model following the Elm architecture. It renders the
// views a browse session sends and reports activated controls.
type App struct {
	styles *styles.Styles
	keymap *keymap.KeyMap
	page   *page.View
	status *status.Bar

	// activations receives the IDs of activated controls.
	activations chan<- domain.ActivationID

	width  int
	height int
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates the TUI model. Activated controls are delivered on
// activations without blocking; a press is dropped when nobody is waiting
// and the buffer is full.
func NewApp(s *styles.Styles, activations chan<- domain.ActivationID) *App {
	if s == nil {
		s = styles.DefaultStyles()
	}
	km := keymap.DefaultKeyMap()

	return &App{
		styles:      s,
		keymap:      km,
		page:        page.NewView(s),
		status:      status.NewBar(s, km),
		activations: activations,
	}
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.SetWindowTitle("tabula")
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case messages.ViewShown:
		a.page.SetPage(msg.View, msg.Replace)
		a.status.SetView(msg.View)
		return a, nil

	case messages.LinkCopied:
		if msg.Err != nil {
			a.status.SetMessage("Copy failed: "+msg.Err.Error(), true)
		} else {
			a.status.SetMessage("Link copied", false)
		}
		return a, nil
	}

	var cmd tea.Cmd
	a.page, cmd = a.page.Update(msg)
	return a, cmd
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, a.keymap.Quit) {
		return a, tea.Quit
	}
	if key.Matches(msg, a.keymap.Copy) {
		return a, copyLink(a.page.Page().URL)
	}
	if id, ok := a.keymap.Activation(msg); ok && a.page.Enabled(id) {
		a.emit(id)
		return a, nil
	}

	var cmd tea.Cmd
	a.page, cmd = a.page.Update(msg)
	return a, cmd
}

func (a *App) emit(id domain.ActivationID) {
	select {
	case a.activations <- id:
	default:
	}
}

// View implements tea.Model.
func (a *App) View() string {
	return a.page.View() + "\n" + a.status.View()
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.page.SetDimensions(width, height)
	a.status.SetWidth(width)
}

// Page returns the view on screen.
func (a *App) Page() domain.PageView {
	return a.page.Page()
}

func copyLink(url string) tea.Cmd {
	return func() tea.Msg {
		if url == "" {
			return messages.LinkCopied{Err: ErrNoLink}
		}
		return messages.LinkCopied{URL: url, Err: clipboardWrite(url)}
	}
}
