package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/tabula/internal/adapters/driving/console"
	"github.com/custodia-labs/tabula/internal/adapters/driving/tui"
	"github.com/custodia-labs/tabula/internal/core/domain"
	"github.com/custodia-labs/tabula/internal/core/ports/driven"
	"github.com/custodia-labs/tabula/internal/core/ports/driving"
	"github.com/custodia-labs/tabula/internal/logger"
)

// isTerminal reports whether stdin and stdout are attached to a terminal.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// startTUI starts the terminal UI on the command's streams and returns it
// with the func that stops it.
var startTUI = func(cmd *cobra.Command) (driven.InteractiveSession, func() error) {
	s := tui.NewSession(
		tea.WithContext(cmd.Context()),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	s.Start()
	return s, s.Close
}

// resolveUI picks the session kind. An empty flag uses the configured UI.
func resolveUI(flag string, configured domain.BrowseUI, tty bool) (domain.BrowseUI, error) {
	ui := configured
	if flag != "" {
		ui = domain.BrowseUI(flag)
	}
	if !ui.IsValid() {
		return "", fmt.Errorf("%w: unknown ui %q (expected auto, tui or console)", domain.ErrInvalidArgument, ui)
	}
	if ui == domain.BrowseUIAuto {
		if tty {
			return domain.BrowseUITUI, nil
		}
		return domain.BrowseUIConsole, nil
	}
	return ui, nil
}

// runBrowse pages through items in an interactive session and prints how
// the session ended.
func runBrowse(cmd *cobra.Command, items []domain.ListItem) error {
	if browseService == nil {
		return errBrowseServiceMissing
	}
	if len(items) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	settings, err := currentSettings()
	if err != nil {
		return err
	}
	tty := isTerminal()
	ui, err := resolveUI(listFlags.ui, settings.Browse.UI, tty)
	if err != nil {
		return err
	}

	var session driven.InteractiveSession
	closeSession := func() error { return nil }
	switch ui {
	case domain.BrowseUITUI:
		release := logger.Hold()
		s, closeTUI := startTUI(cmd)
		session = s
		closeSession = func() error {
			defer release()
			return closeTUI()
		}
	default:
		style := console.StylePlain
		if tty {
			style = console.StyleDark
		}
		session = console.NewSession(cmd.InOrStdin(), cmd.OutOrStdout(), console.WithMarkdownStyle(style))
	}

	outcome, err := browseService.Browse(cmd.Context(), session, items, driving.BrowseOptions{
		PageTimeout: settings.Browse.PageTimeout,
		Transpose:   listFlags.transpose,
	})
	if closeErr := closeSession(); closeErr != nil && err == nil {
		err = fmt.Errorf("closing session: %w", closeErr)
	}
	if err != nil {
		return err
	}

	printOutcome(cmd, outcome)
	return nil
}

func printOutcome(cmd *cobra.Command, outcome *driving.BrowseOutcome) {
	switch outcome.State {
	case domain.BrowseResolved:
		cmd.Printf("Chose %s\n%s\n", outcome.Chosen.Heading(), outcome.Chosen.Link())
	case domain.BrowseExpired:
		cmd.Printf("Browse timed out on page %d.\n", outcome.Page+1)
	case domain.BrowseClosed:
		cmd.Println("Browse closed.")
	}
}
