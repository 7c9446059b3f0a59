// Package cli provides the cobra command tree for tabula.
// It implements a driving adapter following hexagonal architecture principles.
package cli

import (
	"context"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/tabula/internal/core/domain"
	"github.com/custodia-labs/tabula/internal/core/ports/driving"
	"github.com/custodia-labs/tabula/internal/logger"
)

// version is set at build time.
var version = "dev"

var verbose bool

// Services used by commands. Set through SetServices before Execute.
var (
	tabService      driving.TabService
	searchService   driving.SearchService
	browseService   driving.BrowseService
	settingsService driving.SettingsService
	serverHooks     ServerHooks
)

// ServerHooks are optional capabilities used by long-running commands.
type ServerHooks struct {
	// Metrics serves the Prometheus registry.
	Metrics http.Handler

	// Watch calls onChange whenever the configuration file changes,
	// until ctx is done.
	Watch func(ctx context.Context, onChange func()) error

	// Reload applies changed settings to running components.
	Reload func(settings *domain.AppSettings)
}

// Services aggregates the core services the commands drive.
type Services struct {
	Tab      driving.TabService
	Search   driving.SearchService
	Browse   driving.BrowseService
	Settings driving.SettingsService
	Server   ServerHooks
}

// SetServices installs the services used by commands.
func SetServices(s *Services) {
	tabService = s.Tab
	searchService = s.Search
	browseService = s.Browse
	settingsService = s.Settings
	serverHooks = s.Server
}

// Loader builds the services that fetch pages together with a func that
// releases them. It runs before the first command that needs them, so a
// broken configuration does not stop the config commands that repair it.
type Loader func(ctx context.Context) (*Services, func(), error)

var (
	loader          Loader
	releaseServices func()
)

// SetLoader installs a loader. Services already set with SetServices are
// replaced when it runs.
func SetLoader(l Loader) {
	loader = l
}

// offlineAnnotation marks commands that only need the settings service.
const offlineAnnotation = "offline"

// needsServices reports whether cmd fetches pages.
func needsServices(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if _, ok := c.Annotations[offlineAnnotation]; ok {
			return false
		}
		switch c.Name() {
		case "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
			return false
		}
	}
	return true
}

func loadServices(ctx context.Context) error {
	if loader == nil {
		return nil
	}
	s, release, err := loader(ctx)
	if err != nil {
		return err
	}
	SetServices(s)
	loader, releaseServices = nil, release
	return nil
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

var rootCmd = &cobra.Command{
	Use:   "tabula",
	Short: "Guitar tabs and chords from ultimate-guitar.com",
	Long: `tabula fetches tabs and chord sheets from ultimate-guitar.com.

Search by artist and title, explore trending tabs, page through results
interactively and transpose chord sheets to any key. Run "tabula mcp serve"
to offer the same lookups to AI assistants.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)
		if !needsServices(cmd) {
			return nil
		}
		return loadServices(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log each step to stderr")
}

// Execute runs the command tree and prints a user-facing message on
// failure. It returns the process exit code.
func Execute(ctx context.Context) int {
	err := rootCmd.ExecuteContext(ctx)
	if releaseServices != nil {
		releaseServices()
		releaseServices = nil
	}
	if err != nil {
		logger.Debug("command failed: %v", err)
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %s\n", userMessage(err))
		return 1
	}
	return 0
}

// currentSettings returns the configured settings, falling back to the
// defaults when no settings service is installed.
func currentSettings() (*domain.AppSettings, error) {
	if settingsService == nil {
		defaults := domain.DefaultAppSettings()
		return &defaults, nil
	}
	return settingsService.Get()
}

// resultLimit returns n, or the configured default when n is not positive.
func resultLimit(n int) (int, error) {
	if n > 0 {
		return n, nil
	}
	settings, err := currentSettings()
	if err != nil {
		return 0, err
	}
	return settings.Browse.DefaultLimit, nil
}
