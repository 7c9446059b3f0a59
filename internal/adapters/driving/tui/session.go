// Package tui provides a full-screen terminal display for browse sessions.
// It implements a driving adapter following hexagonal architecture
// principles: core services drive it through driven.InteractiveSession.
package tui

import (
	"context"
	"slices"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/tabula/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/tabula/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/tabula/internal/core/domain"
	"github.com/custodia-labs/tabula/internal/core/ports/driven"
)

// program is the part of tea.Program a session uses.
type program interface {
	Run() (tea.Model, error)
	Send(msg tea.Msg)
	Quit()
}

// Session displays browse views in a Bubbletea program.
type Session struct {
	program     program
	activations chan domain.ActivationID
	done        chan struct{}
	started     bool
	stopOnce    sync.Once
	err         error
}

// Ensure Session implements driven.InteractiveSession.
var _ driven.InteractiveSession = (*Session)(nil)

// NewSession creates a session on the alternate screen. Options are
// passed to the Bubbletea program.
func NewSession(opts ...tea.ProgramOption) *Session {
	activations := make(chan domain.ActivationID, 1)
	app := NewApp(styles.DefaultStyles(), activations)
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	return newSession(tea.NewProgram(app, opts...), activations)
}

func newSession(p program, activations chan domain.ActivationID) *Session {
	return &Session{
		program:     p,
		activations: activations,
		done:        make(chan struct{}),
	}
}

// Start runs the program in the background.
func (s *Session) Start() {
	if s.started {
		return
	}
	s.started = true
	go func() {
		_, s.err = s.program.Run()
		close(s.done)
	}()
}

// Close stops the program and restores the terminal.
func (s *Session) Close() error {
	if !s.started {
		return nil
	}
	s.stopOnce.Do(s.program.Quit)
	<-s.done
	return s.err
}

// Send shows a new view.
func (s *Session) Send(ctx context.Context, view domain.PageView) error {
	return s.deliver(ctx, messages.ViewShown{View: view})
}

// Edit replaces the view on screen, keeping its scroll position.
func (s *Session) Edit(ctx context.Context, view domain.PageView) error {
	return s.deliver(ctx, messages.ViewShown{View: view, Replace: true})
}

func (s *Session) deliver(ctx context.Context, msg tea.Msg) error {
	if !s.started {
		return ErrNotStarted
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.done:
		return domain.ErrSessionClosed
	default:
	}
	s.program.Send(msg)
	return nil
}

// AwaitActivation blocks until a control in valid is activated, the
// timeout elapses or the program exits. Exiting the program reports
// domain.ErrSessionClosed. Presses made before the call are discarded so
// they cannot act on a view the user has not seen yet.
func (s *Session) AwaitActivation(
	ctx context.Context,
	valid []domain.ActivationID,
	timeout time.Duration,
) (domain.Activation, error) {
	if !s.started {
		return domain.Activation{}, ErrNotStarted
	}
	s.discardPending()

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
		case <-s.done:
			return domain.Activation{}, domain.ErrSessionClosed
		case <-expired:
			return domain.ActivationTimeout(), nil
		case id := <-s.activations:
			if slices.Contains(valid, id) {
				return domain.Activated(id), nil
			}
		}
	}
}

func (s *Session) discardPending() {
	for {
		select {
		case <-s.activations:
		default:
			return
		}
	}
}
