package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/custodia-labs/tabula/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/tabula/internal/core/domain"
	"github.com/custodia-labs/tabula/internal/core/services"
	"github.com/custodia-labs/tabula/internal/logger"
)

const (
	wonderwallURL   = "https://tabs.ultimate-guitar.com/tab/oasis/wonderwall-chords-27596"
	liveForeverURL  = "https://tabs.ultimate-guitar.com/tab/oasis/live-forever-chords-6714"
	wonderwallTabID = 27596
)

// fakeTabService serves a chords document for any known url.
type fakeTabService struct {
	err           error
	lastURL       string
	lastArtist    string
	lastTranspose int
}

func (f *fakeTabService) Get(_ context.Context, url string, transpose int) (*domain.TabDocument, error) {
	f.lastURL, f.lastTranspose = url, transpose
	if f.err != nil {
		return nil, f.err
	}
	info := domain.TabInfo{
		ID: wonderwallTabID, Type: domain.TabTypeChords, URL: url,
		Artist: "Oasis", Song: "Wonderwall", Capo: intPtr(2),
	}
	doc := domain.NewChordDocument(info, "[tab][ch]Em7[/ch] today is gonna be[/tab]", []string{"Em7"})
	if sheet, ok := doc.Chords(); ok && transpose != 0 {
		sheet.Transpose(transpose)
	}
	return doc, nil
}

func (f *fakeTabService) TopChords(ctx context.Context, artist, _ string, transpose int) (*domain.TabDocument, error) {
	f.lastArtist = artist
	return f.Get(ctx, wonderwallURL, transpose)
}

// fakeSearchService returns fixed results and records its arguments.
type fakeSearchService struct {
	tabs       []domain.TabSummary
	artists    []domain.ArtistSummary
	err        error
	lastFilter domain.ResultFilter
	lastLimit  int
	lastOrder  domain.ExploreOrder
	lastPath   string
}

func (f *fakeSearchService) SearchTabs(
	_ context.Context, _, _ string, filter domain.ResultFilter, limit int,
) ([]domain.TabSummary, error) {
	f.lastFilter, f.lastLimit = filter, limit
	return f.tabs, f.err
}

func (f *fakeSearchService) SearchArtists(_ context.Context, _ string, limit int) ([]domain.ArtistSummary, error) {
	f.lastLimit = limit
	return f.artists, f.err
}

func (f *fakeSearchService) Explore(
	_ context.Context, order domain.ExploreOrder, filter domain.ResultFilter, limit int,
) ([]domain.TabSummary, error) {
	f.lastOrder, f.lastFilter, f.lastLimit = order, filter, limit
	if !order.IsValid() {
		return nil, domain.ErrInvalidArgument
	}
	return f.tabs, f.err
}

func (f *fakeSearchService) ArtistTabs(
	_ context.Context, path string, filter domain.ResultFilter, limit int,
) ([]domain.TabSummary, error) {
	f.lastPath, f.lastFilter, f.lastLimit = path, filter, limit
	return f.tabs, f.err
}

func intPtr(i int) *int { return &i }

func sampleTabs() []domain.TabSummary {
	return []domain.TabSummary{
		{ID: intPtr(27596), URL: wonderwallURL, Artist: "Oasis", Song: "Wonderwall", Type: domain.TabTypeChords, Votes: 12345, Rating: 4.81},
		{ID: intPtr(6714), URL: liveForeverURL, Artist: "Oasis", Song: "Live Forever", Type: domain.TabTypeChords, Votes: 870, Rating: 4.6},
	}
}

// testServices holds the fakes installed by setupTestServices.
type testServices struct {
	tab    *fakeTabService
	search *fakeSearchService
}

// setupTestServices installs fake services and returns a cleanup function
// that restores the previous services and flag values.
func setupTestServices() (*testServices, func()) {
	prevTab, prevSearch, prevBrowse, prevSettings := tabService, searchService, browseService, settingsService
	prevTerminal, prevStartTUI := isTerminal, startTUI
	prevLoader := loader

	fakes := &testServices{
		tab:    &fakeTabService{},
		search: &fakeSearchService{tabs: sampleTabs()},
	}
	SetServices(&Services{
		Tab:      fakes.tab,
		Search:   fakes.search,
		Browse:   services.NewBrowseService(fakes.tab, fakes.search, nil, time.Second),
		Settings: services.NewSettingsService(memory.NewConfigStore()),
	})
	isTerminal = func() bool { return false }

	return fakes, func() {
		tabService, searchService, browseService, settingsService = prevTab, prevSearch, prevBrowse, prevSettings
		isTerminal, startTUI = prevTerminal, prevStartTUI
		loader, releaseServices = prevLoader, nil
		verbose = false
		logger.SetVerbose(false)
		tabTranspose, tabJSON, tabOutput = 0, false, ""
		listFlags.filter, listFlags.limit, listFlags.json = "all", 0, false
		listFlags.browse, listFlags.ui, listFlags.transpose = false, "", 0
		rootCmd.SetIn(nil)
		rootCmd.SetArgs(nil)
	}
}

// execute runs the root command with args and returns its output.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	var in io.Reader = strings.NewReader(stdin)
	rootCmd.SetIn(in)
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(context.Background())
	return buf.String(), err
}
