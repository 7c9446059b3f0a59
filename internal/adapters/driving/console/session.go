// Package console provides a line-oriented browse session for output that
// cannot host the full-screen interface, such as pipes and dumb terminals.
// Views are printed in full and controls are typed as short commands.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/glamour"

	"github.com/custodia-labs/tabula/internal/core/domain"
	"github.com/custodia-labs/tabula/internal/core/ports/driven"
)

// Markdown style names understood by glamour.
const (
	StyleDark  = "dark"
	StylePlain = "notty"
)

// commands maps typed input to the control it activates.
var commands = map[string]domain.ActivationID{
	"p":      domain.ActivationPrev,
	"prev":   domain.ActivationPrev,
	"n":      domain.ActivationNext,
	"next":   domain.ActivationNext,
	"c":      domain.ActivationChoose,
	"choose": domain.ActivationChoose,
	"q":      domain.ActivationClose,
	"close":  domain.ActivationClose,
	"+":      domain.ActivationTransposeUp,
	"-":      domain.ActivationTransposeDown,
}

// shortcut returns the shortest command for id.
func shortcut(id domain.ActivationID) string {
	switch id {
	case domain.ActivationPrev:
		return "p"
	case domain.ActivationNext:
		return "n"
	case domain.ActivationChoose:
		return "c"
	case domain.ActivationClose:
		return "q"
	case domain.ActivationTransposeUp:
		return "+"
	case domain.ActivationTransposeDown:
		return "-"
	default:
		return string(id)
	}
}

// Session prints views to out and reads commands from in.
type Session struct {
	in    io.Reader
	out   io.Writer
	style string
	width int

	readOnce sync.Once
	lines    chan string
}

// Ensure Session implements driven.InteractiveSession.
var _ driven.InteractiveSession = (*Session)(nil)

// Option configures a Session.
type Option func(*Session)

// WithMarkdownStyle sets the glamour style used for descriptions.
func WithMarkdownStyle(style string) Option {
	return func(s *Session) {
		s.style = style
	}
}

// WithWidth sets the wrap width of descriptions.
func WithWidth(width int) Option {
	return func(s *Session) {
		if width > 0 {
			s.width = width
		}
	}
}

// NewSession creates a console session.
func NewSession(in io.Reader, out io.Writer, opts ...Option) *Session {
	s := &Session{
		in:    in,
		out:   out,
		style: StylePlain,
		width: 80,
		lines: make(chan string),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Send prints a new view.
func (s *Session) Send(_ context.Context, view domain.PageView) error {
	return s.print(view)
}

// Edit prints the replacement view. A console cannot rewrite earlier
// output, so the view is printed again below a separator.
func (s *Session) Edit(_ context.Context, view domain.PageView) error {
	if _, err := fmt.Fprintln(s.out, strings.Repeat("─", min(s.width, 40))); err != nil {
		return err
	}
	return s.print(view)
}

func (s *Session) print(view domain.PageView) error {
	var b strings.Builder

	b.WriteString(view.Title)
	b.WriteString("\n")
	if view.URL != "" {
		b.WriteString(view.URL)
		b.WriteString("\n")
	}
	if view.Description != "" {
		b.WriteString(strings.Trim(s.markdown(view.Description), "\n"))
		b.WriteString("\n")
	}
	if view.Body != "" {
		b.WriteString("\n")
		b.WriteString(view.Body)
		b.WriteString("\n")
	}
	if view.Footer != "" {
		b.WriteString("\n")
		b.WriteString(view.Footer)
		b.WriteString("\n")
	}
	if hints := controlHints(view.Controls); hints != "" {
		b.WriteString(hints)
		b.WriteString("\n")
	}

	_, err := io.WriteString(s.out, b.String())
	return err
}

// controlHints lists enabled controls as "[n] Next  [q] Close".
func controlHints(controls []domain.Control) string {
	hints := make([]string, 0, len(controls))
	for _, c := range controls {
		if c.Disabled {
			continue
		}
		hints = append(hints, fmt.Sprintf("[%s] %s", shortcut(c.ID), c.Label))
	}
	return strings.Join(hints, "  ")
}

// markdown renders md with glamour, falling back to the raw text.
func (s *Session) markdown(md string) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(s.style),
		glamour.WithWordWrap(s.width),
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

// AwaitActivation reads commands until one in valid is typed, the timeout
// elapses or input ends. End of input reports domain.ErrSessionClosed.
func (s *Session) AwaitActivation(
	ctx context.Context,
	valid []domain.ActivationID,
	timeout time.Duration,
) (domain.Activation, error) {
	s.readOnce.Do(s.startReader)

	var expired <-chan time.Time
	if timeout > 0 {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		expired = timer.C
	}

	for {
		select {
		case <-ctx.Done():
			return domain.Activation{}, ctx.Err()
		case <-expired:
			_, _ = fmt.Fprintln(s.out, "Timed out.")
			return domain.ActivationTimeout(), nil
		case line, ok := <-s.lines:
			if !ok {
				return domain.Activation{}, domain.ErrSessionClosed
			}
			cmd := strings.ToLower(strings.TrimSpace(line))
			if cmd == "" {
				continue
			}
			id, known := commands[cmd]
			if known && slices.Contains(valid, id) {
				return domain.Activated(id), nil
			}
			_, _ = fmt.Fprintf(s.out, "Unknown command %q, expected one of: %s\n", cmd, shortcuts(valid))
		}
	}
}

func shortcuts(ids []domain.ActivationID) string {
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = shortcut(id)
	}
	return strings.Join(keys, ", ")
}

// startReader feeds input lines to the session until EOF.
func (s *Session) startReader() {
	go func() {
		defer close(s.lines)
		scanner := bufio.NewScanner(s.in)
		for scanner.Scan() {
			s.lines <- scanner.Text()
		}
	}()
}
