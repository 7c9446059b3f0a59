// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/tabula/internal/core/domain"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Prev shows the previous page.
	Prev key.Binding

	// Next shows the next page.
	Next key.Binding

	// Choose opens the current entry.
	Choose key.Binding

	// Close ends the list or closes a detail view.
	Close key.Binding

	// TransposeUp shifts a chord sheet up a semitone.
	TransposeUp key.Binding

	// TransposeDown shifts a chord sheet down a semitone.
	TransposeDown key.Binding

	// Copy copies the page link to the clipboard.
	Copy key.Binding

	// Quit exits immediately.
	Quit key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Prev: key.NewBinding(
			key.WithKeys("left", "h", "p"),
			key.WithHelp("←/p", "prev"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l", "n"),
			key.WithHelp("→/n", "next"),
		),
		Choose: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "choose"),
		),
		Close: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q", "close"),
		),
		TransposeUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "up"),
		),
		TransposeDown: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "down"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy link"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// Binding returns the binding that activates id.
func (k *KeyMap) Binding(id domain.ActivationID) (key.Binding, bool) {
	switch id {
	case domain.ActivationPrev:
		return k.Prev, true
	case domain.ActivationNext:
		return k.Next, true
	case domain.ActivationChoose:
		return k.Choose, true
	case domain.ActivationClose:
		return k.Close, true
	case domain.ActivationTransposeUp:
		return k.TransposeUp, true
	case domain.ActivationTransposeDown:
		return k.TransposeDown, true
	default:
		return key.Binding{}, false
	}
}

// Activation maps a key press to the control it activates.
func (k *KeyMap) Activation(msg tea.KeyMsg) (domain.ActivationID, bool) {
	for _, id := range []domain.ActivationID{
		domain.ActivationPrev,
		domain.ActivationNext,
		domain.ActivationChoose,
		domain.ActivationClose,
		domain.ActivationTransposeUp,
		domain.ActivationTransposeDown,
	} {
		b, _ := k.Binding(id)
		if key.Matches(msg, b) {
			return id, true
		}
	}
	return "", false
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
