package cli

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/tabula/internal/core/domain"
)

// listFlags are shared by the commands that print result lists.
var listFlags struct {
	filter    string
	limit     int
	json      bool
	browse    bool
	ui        string
	transpose int
}

var searchCmd = &cobra.Command{
	Use:   "search [artist] [song]",
	Short: "Search tabs by artist and song, or artists by name",
	Long: `Searches ultimate-guitar.com.

With an artist and a song, runs a title search and lists tabs by votes.
With only an artist, lists matching artists.

Examples:
  tabula search oasis wonderwall --type chords
  tabula search "beach weather" --browse`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runSearch,
}

var exploreCmd = &cobra.Command{
	Use:   "explore [order]",
	Short: "List trending, popular, recent or top rated tabs",
	Long: `Lists tabs from the explore page.

Orders:
  today    - most viewed today
  popular  - most viewed overall (default)
  recent   - newest
  rating   - highest rated`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"today", "popular", "recent", "rating"},
	RunE:      runExplore,
}

var artistCmd = &cobra.Command{
	Use:   "artist [path]",
	Short: "List the tabs of an artist",
	Long: `Lists tabs from an artist page, given its path (/artist/oasis_6916)
or full link as printed by "tabula search <artist>".`,
	Args: cobra.ExactArgs(1),
	RunE: runArtist,
}

func init() {
	for _, cmd := range []*cobra.Command{searchCmd, exploreCmd, artistCmd} {
		cmd.Flags().StringVar(&listFlags.filter, "type", "all", "result type: chords, tabs or all")
		cmd.Flags().IntVarP(&listFlags.limit, "limit", "n", 0, "maximum number of results (0 = browse.default_limit)")
		cmd.Flags().BoolVar(&listFlags.json, "json", false, "output results as JSON")
		cmd.Flags().BoolVarP(&listFlags.browse, "browse", "b", false, "page through results interactively")
		cmd.Flags().StringVar(&listFlags.ui, "ui", "", "interactive session: auto, tui or console")
		cmd.Flags().IntVarP(&listFlags.transpose, "transpose", "t", 0, "semitones to shift a chosen chord sheet")
		rootCmd.AddCommand(cmd)
	}
}

func runSearch(cmd *cobra.Command, args []string) error {
	if searchService == nil {
		return errSearchServiceMissing
	}
	limit, err := resultLimit(listFlags.limit)
	if err != nil {
		return err
	}

	if len(args) == 1 {
		artists, err := searchService.SearchArtists(cmd.Context(), args[0], limit)
		if err != nil {
			return fmt.Errorf("search failed: %w", err)
		}
		if listFlags.browse {
			return runBrowse(cmd, domain.ArtistItems(artists))
		}
		return outputArtists(cmd, artists)
	}

	tabs, err := searchService.SearchTabs(cmd.Context(), args[0], args[1], domain.ResultFilter(listFlags.filter), limit)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}
	return outputTabList(cmd, tabs)
}

func runExplore(cmd *cobra.Command, args []string) error {
	if searchService == nil {
		return errSearchServiceMissing
	}
	limit, err := resultLimit(listFlags.limit)
	if err != nil {
		return err
	}

	order := domain.ExplorePopular
	if len(args) == 1 {
		order = domain.ExploreOrder(args[0])
	}

	tabs, err := searchService.Explore(cmd.Context(), order, domain.ResultFilter(listFlags.filter), limit)
	if err != nil {
		return fmt.Errorf("explore failed: %w", err)
	}
	return outputTabList(cmd, tabs)
}

func runArtist(cmd *cobra.Command, args []string) error {
	if searchService == nil {
		return errSearchServiceMissing
	}
	limit, err := resultLimit(listFlags.limit)
	if err != nil {
		return err
	}

	tabs, err := searchService.ArtistTabs(cmd.Context(), artistPath(args[0]), domain.ResultFilter(listFlags.filter), limit)
	if err != nil {
		return fmt.Errorf("artist failed: %w", err)
	}
	return outputTabList(cmd, tabs)
}

// artistPath accepts an artist link or path and returns the path.
func artistPath(arg string) string {
	if strings.HasPrefix(arg, "http://") || strings.HasPrefix(arg, "https://") {
		if u, err := url.Parse(arg); err == nil {
			return u.Path
		}
	}
	return arg
}

func outputTabList(cmd *cobra.Command, tabs []domain.TabSummary) error {
	switch {
	case listFlags.browse:
		return runBrowse(cmd, domain.TabItems(tabs))
	case listFlags.json:
		return outputJSON(cmd, tabEntries(tabs))
	}

	if len(tabs) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	for i, t := range tabs {
		cmd.Printf("  [%d] %s\n", i+1, t.Heading())
		cmd.Printf("      %s, %s votes, rated %s\n",
			t.Type, humanize.Comma(int64(t.Votes)), strconv.FormatFloat(t.Rating, 'f', 1, 64))
		cmd.Printf("      %s\n", t.URL)
	}
	return nil
}

func outputArtists(cmd *cobra.Command, artists []domain.ArtistSummary) error {
	if listFlags.json {
		return outputJSON(cmd, artistEntries(artists))
	}

	if len(artists) == 0 {
		cmd.Println("No artists found.")
		return nil
	}

	for i, a := range artists {
		cmd.Printf("  [%d] %s\n", i+1, a.Artist)
		cmd.Printf("      %s\n", a.Link())
	}
	return nil
}

// tabEntry is the JSON shape of a result entry.
type tabEntry struct {
	ID     *int    `json:"id,omitempty"`
	Artist string  `json:"artist"`
	Song   string  `json:"song"`
	Type   string  `json:"type"`
	URL    string  `json:"url"`
	Votes  int     `json:"votes"`
	Rating float64 `json:"rating"`
}

// artistEntry is the JSON shape of an artist entry.
type artistEntry struct {
	Artist string `json:"artist"`
	Path   string `json:"path"`
	URL    string `json:"url"`
}

func tabEntries(tabs []domain.TabSummary) []tabEntry {
	entries := make([]tabEntry, len(tabs))
	for i, t := range tabs {
		entries[i] = tabEntry{
			ID:     t.ID,
			Artist: t.Artist,
			Song:   t.Song,
			Type:   t.Type.String(),
			URL:    t.URL,
			Votes:  t.Votes,
			Rating: t.Rating,
		}
	}
	return entries
}

func artistEntries(artists []domain.ArtistSummary) []artistEntry {
	entries := make([]artistEntry, len(artists))
	for i, a := range artists {
		entries[i] = artistEntry{Artist: a.Artist, Path: a.ArtistURL, URL: a.Link()}
	}
	return entries
}

func outputJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
