// Command tabula fetches guitar tabs and chord sheets from ultimate-guitar.com.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/tabula/internal/adapters/driven/cache"
	"github.com/custodia-labs/tabula/internal/adapters/driven/config/file"
	"github.com/custodia-labs/tabula/internal/adapters/driving/cli"
	"github.com/custodia-labs/tabula/internal/connectors/ultimateguitar"
	"github.com/custodia-labs/tabula/internal/core/domain"
	"github.com/custodia-labs/tabula/internal/core/ports/driven"
	"github.com/custodia-labs/tabula/internal/core/services"
	"github.com/custodia-labs/tabula/internal/logger"
	"github.com/custodia-labs/tabula/internal/metrics"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// homeEnv overrides the directory holding config.toml and cache.db.
const homeEnv = "TABULA_HOME"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := configure(os.Getenv(homeEnv)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	cli.SetVersion(version)
	return cli.Execute(ctx)
}

// configure opens the config file in home and installs the settings
// service. Everything that depends on the stored values is built later by
// the loader, only for commands that fetch pages.
func configure(home string) error {
	configStore, err := file.NewConfigStore(home)
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}
	settingsService := services.NewSettingsService(configStore)

	cli.SetServices(&cli.Services{Settings: settingsService})
	cli.SetLoader(func(ctx context.Context) (*cli.Services, func(), error) {
		return build(ctx, configStore, settingsService, home)
	})
	return nil
}

// build creates the services from the stored settings. The returned
// function releases the cache.
func build(
	ctx context.Context,
	configStore *file.ConfigStore,
	settingsService *services.SettingsService,
	home string,
) (*cli.Services, func(), error) {
	settings, err := settingsService.Get()
	if err != nil {
		return nil, nil, fmt.Errorf("%w (repair it with \"tabula config set\")", err)
	}

	m := metrics.New()
	limiter := ultimateguitar.NewRateLimiter(settings.Fetch.RequestsPerSecond, settings.Fetch.Burst)
	client := ultimateguitar.NewClient(
		ultimateguitar.WithHTTPClient(&http.Client{Timeout: settings.Fetch.Timeout}),
		ultimateguitar.WithUserAgent(settings.Fetch.UserAgent),
		ultimateguitar.WithRateLimiter(limiter),
		ultimateguitar.WithMetrics(m),
	)

	store, err := openCache(ctx, settings.Cache, home)
	if err != nil {
		return nil, nil, err
	}

	var fetcher driven.PageFetcher = client
	if store != nil {
		fetcher = cache.NewFetcher(client, store, settings.Cache.TTL, m)
	}

	parser := ultimateguitar.NewParser()
	tabService := services.NewTabService(fetcher, parser, m)
	searchService := services.NewSearchService(fetcher, parser)

	svc := &cli.Services{
		Tab:      tabService,
		Search:   searchService,
		Browse:   services.NewBrowseService(tabService, searchService, m, settings.Browse.PageTimeout),
		Settings: settingsService,
		Server: cli.ServerHooks{
			Metrics: m.Handler(),
			Watch:   configStore.Watch,
			Reload: func(s *domain.AppSettings) {
				limiter.SetRate(s.Fetch.RequestsPerSecond, s.Fetch.Burst)
				logger.Debug("Rate limit now %.2f/s, burst %d", s.Fetch.RequestsPerSecond, s.Fetch.Burst)
			},
		},
	}
	release := func() {
		if store == nil {
			return
		}
		if err := store.Close(); err != nil {
			logger.Warn("closing cache: %v", err)
		}
	}
	return svc, release, nil
}
