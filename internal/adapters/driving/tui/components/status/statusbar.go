// Package status provides the status bar component for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/tabula/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/tabula/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/tabula/internal/core/domain"
)

// Bar shows the page footer, a transient message and the keys of the
// controls that can be activated.
type Bar struct {
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	footer   string
	message  string
	isError  bool
	controls []domain.Control
	copyable bool
	width    int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		width:  80,
	}
}

// SetView takes the footer and controls from view and clears any message.
func (s *Bar) SetView(view domain.PageView) {
	s.footer = view.Footer
	s.controls = view.Controls
	s.copyable = view.URL != ""
	s.message = ""
	s.isError = false
}

// SetMessage shows a message in place of the footer.
func (s *Bar) SetMessage(message string, isError bool) {
	s.message = message
	s.isError = isError
}

// Message returns the current message.
func (s *Bar) Message() string {
	return s.message
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	padding := s.width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

func (s *Bar) renderLeft() string {
	switch {
	case s.message != "" && s.isError:
		return s.styles.Error.Render(s.message)
	case s.message != "":
		return s.styles.Success.Render(s.message)
	default:
		return s.styles.Muted.Render(s.footer)
	}
}

// renderRight renders hints for enabled controls only.
func (s *Bar) renderRight() string {
	hints := make([]string, 0, len(s.controls)+1)
	for _, c := range s.controls {
		if c.Disabled {
			continue
		}
		b, ok := s.keymap.Binding(c.ID)
		if !ok {
			continue
		}
		hints = append(hints, fmt.Sprintf("%s %s", s.styles.Control.Render(b.Help().Key), c.Label))
	}
	if s.copyable {
		h := s.keymap.Copy.Help()
		hints = append(hints, fmt.Sprintf("%s %s", s.styles.Control.Render(h.Key), h.Desc))
	}
	if len(hints) == 0 {
		h := s.keymap.Quit.Help()
		return s.styles.Muted.Render(fmt.Sprintf("%s %s", h.Key, h.Desc))
	}
	return strings.Join(hints, s.styles.Muted.Render(" | "))
}
