// Package page provides the view component that renders one page of a
// browse session: a title, a markdown description and scrollable tab content.
package page

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/tabula/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/tabula/internal/core/domain"
)

// statusHeight is the number of rows reserved for the status bar.
const statusHeight = 1

// View is the page view.
type View struct {
	styles   *styles.Styles
	page     domain.PageView
	header   string
	viewport viewport.Model
	width    int
	height   int
	ready    bool
}

// NewView creates a new page view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	vp := viewport.New(80, 20)
	// left and right page through the list
	vp.KeyMap.Left.SetEnabled(false)
	vp.KeyMap.Right.SetEnabled(false)

	return &View{
		styles:   s,
		viewport: vp,
		width:    80,
		height:   24,
	}
}

// SetPage displays p. When replace is set the scroll position is kept.
func (v *View) SetPage(p domain.PageView, replace bool) {
	v.page = p
	v.ready = true
	v.layout()
	if !replace {
		v.viewport.GotoTop()
	}
}

// Page returns the page on screen.
func (v *View) Page() domain.PageView {
	return v.page
}

// Enabled reports whether id is an enabled control of the page on screen.
func (v *View) Enabled(id domain.ActivationID) bool {
	for _, enabled := range v.page.EnabledControls() {
		if enabled == id {
			return true
		}
	}
	return false
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.layout()
}

// Update forwards scrolling input to the content viewport.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

// View renders the page view.
func (v *View) View() string {
	if !v.ready {
		return v.styles.Muted.Render("Loading...")
	}
	if v.page.Body == "" {
		return v.header
	}
	return v.header + "\n" + v.styles.Body.Render(v.viewport.View())
}

// layout renders the header and sizes the viewport to the space left.
func (v *View) layout() {
	v.header = v.renderHeader()

	height := v.height - lipgloss.Height(v.header) - statusHeight - 1
	if height < 1 {
		height = 1
	}
	v.viewport.Width = max(v.width-2, 1)
	v.viewport.Height = height
	v.viewport.SetContent(v.page.Body)
}

func (v *View) renderHeader() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render(v.page.Title))
	if v.page.URL != "" {
		b.WriteString("\n")
		b.WriteString(v.styles.Link.Render(v.page.URL))
	}
	if v.page.Description != "" {
		b.WriteString("\n")
		b.WriteString(strings.TrimRight(v.markdown(v.page.Description), "\n"))
	}

	return b.String()
}

// markdown renders md for the terminal, falling back to the raw text.
func (v *View) markdown(md string) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(v.styles.Markdown),
		glamour.WithWordWrap(max(v.width-4, 20)),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}
