package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/custodia-labs/tabula/internal/core/domain"
)

// TabDetailView renders a tab document. Chord sheets get transpose controls.
func TabDetailView(doc *domain.TabDocument) domain.PageView {
	info := doc.Info()
	return domain.PageView{
		Title:       info.Title(),
		URL:         info.URL,
		Description: "```\n" + doc.FormattedMetadata() + "\n```",
		Body:        doc.Content(),
		Controls:    domain.DetailControls(doc.IsChords()),
	}
}

// ArtistDetailView renders the tabs listed on an artist page.
func ArtistDetailView(artist domain.ArtistSummary, tabs []domain.TabSummary) domain.PageView {
	lines := make([]string, 0, len(tabs))
	for i, t := range tabs {
		lines = append(lines, fmt.Sprintf("%2d. %s", i+1, TabLine(t)))
	}
	return domain.PageView{
		Title:       artist.Heading(),
		URL:         artist.Link(),
		Description: fmt.Sprintf("**%s** listed", pluralTabs(len(tabs))),
		Body:        strings.Join(lines, "\n"),
		Controls:    domain.DetailControls(false),
	}
}

// NoticeView is a view with a message and no controls.
func NoticeView(title, message string) domain.PageView {
	return domain.PageView{Title: title, Description: message}
}

// TabLine is a one-line summary of a result entry.
func TabLine(t domain.TabSummary) string {
	return fmt.Sprintf("%s [%s] %s votes, rated %s",
		t.Heading(), t.Type, humanize.Comma(int64(t.Votes)), strconv.FormatFloat(t.Rating, 'f', 1, 64))
}

// ArtistLine is a one-line summary of an artist entry.
func ArtistLine(a domain.ArtistSummary) string {
	return fmt.Sprintf("%s  %s", a.Heading(), a.Link())
}

func pluralTabs(n int) string {
	if n == 1 {
		return "1 tab"
	}
	return humanize.Comma(int64(n)) + " tabs"
}
