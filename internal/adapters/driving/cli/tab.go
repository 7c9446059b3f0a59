package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/tabula/internal/core/domain"
)

var (
	tabTranspose int
	tabJSON      bool
	tabOutput    string
)

var tabCmd = &cobra.Command{
	Use:   "tab [url]",
	Short: "Show a tab or chord sheet",
	Long: `Fetches a single tab page and prints its metadata and content.

Chord sheets can be transposed with --transpose; the shift is in semitones
and may be negative.

Examples:
  tabula tab https://tabs.ultimate-guitar.com/tab/oasis/wonderwall-chords-27596
  tabula tab --transpose -2 https://tabs.ultimate-guitar.com/tab/oasis/wonderwall-chords-27596`,
	Args: cobra.ExactArgs(1),
	RunE: runTab,
}

var chordsCmd = &cobra.Command{
	Use:   "chords [artist] [song]",
	Short: "Show the top rated chord sheet for a song",
	Long:  `Searches for a song and prints the chords result with the most votes.`,
	Args:  cobra.ExactArgs(2),
	RunE:  runChords,
}

func init() {
	for _, cmd := range []*cobra.Command{tabCmd, chordsCmd} {
		cmd.Flags().IntVarP(&tabTranspose, "transpose", "t", 0, "semitones to shift a chord sheet")
		cmd.Flags().BoolVar(&tabJSON, "json", false, "output the tab as JSON")
		cmd.Flags().StringVarP(&tabOutput, "output", "o", "", "write the content to a file")
		rootCmd.AddCommand(cmd)
	}
}

func runTab(cmd *cobra.Command, args []string) error {
	if tabService == nil {
		return errTabServiceMissing
	}

	doc, err := tabService.Get(cmd.Context(), args[0], tabTranspose)
	if err != nil {
		return err
	}
	return outputTab(cmd, doc)
}

func runChords(cmd *cobra.Command, args []string) error {
	if tabService == nil {
		return errTabServiceMissing
	}

	doc, err := tabService.TopChords(cmd.Context(), args[0], args[1], tabTranspose)
	if err != nil {
		return err
	}
	return outputTab(cmd, doc)
}

// tabOutputJSON is the JSON shape of a tab.
type tabOutputJSON struct {
	ID            int     `json:"id"`
	Type          string  `json:"type"`
	Artist        string  `json:"artist"`
	Song          string  `json:"song"`
	URL           string  `json:"url"`
	Tuning        *string `json:"tuning,omitempty"`
	Key           *string `json:"key,omitempty"`
	Capo          *int    `json:"capo,omitempty"`
	Transposition *int    `json:"transposition,omitempty"`
	Content       string  `json:"content"`
}

func outputTab(cmd *cobra.Command, doc *domain.TabDocument) error {
	if tabOutput != "" {
		content := doc.Content()
		if err := os.WriteFile(tabOutput, []byte(content), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", tabOutput, err)
		}
		cmd.Printf("Wrote %s to %s\n", humanize.Bytes(uint64(len(content))), tabOutput)
		return nil
	}

	if tabJSON {
		return outputTabJSON(cmd, doc)
	}

	info := doc.Info()
	cmd.Println(info.Title())
	cmd.Println(info.URL)
	cmd.Println()
	cmd.Println(doc.FormattedMetadata())
	cmd.Println()
	cmd.Println(strings.TrimRight(doc.Content(), "\n"))
	return nil
}

func outputTabJSON(cmd *cobra.Command, doc *domain.TabDocument) error {
	info := doc.Info()
	out := tabOutputJSON{
		ID:      info.ID,
		Type:    info.Type.String(),
		Artist:  info.Artist,
		Song:    info.Song,
		URL:     info.URL,
		Tuning:  info.Tuning,
		Key:     info.Key,
		Capo:    info.Capo,
		Content: doc.Content(),
	}
	if sheet, ok := doc.Chords(); ok {
		n := sheet.Transposition()
		out.Transposition = &n
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal tab: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
