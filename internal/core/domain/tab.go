package domain

import "strings"

// TabType identifies the kind of tab page.
type TabType string

// Tab types recognised on ultimate-guitar.
const (
	// TabTypeChords is a chords-and-lyrics sheet.
	TabTypeChords TabType = "Chords"

	// TabTypeTabs is plain fingering tablature.
	TabTypeTabs TabType = "Tabs"
)

// IsValid returns true if the tab type is recognised.
func (t TabType) IsValid() bool {
	return t == TabTypeChords || t == TabTypeTabs
}

// String returns the string representation.
func (t TabType) String() string {
	return string(t)
}

// TabInfo holds the metadata of a single tab page.
// Optional fields are nil when the page does not carry them.
type TabInfo struct {
	ID     int
	Type   TabType
	URL    string
	Artist string
	Song   string

	// Tuning is the guitar tuning, e.g. "E A D G B E".
	Tuning *string

	// Key is the song tonality.
	Key *string

	// Capo is the capo fret.
	Capo *int
}

// Title returns "Artist - Song".
func (i TabInfo) Title() string {
	return i.Artist + " - " + i.Song
}

// Markup delimiters used in tab content.
const (
	ChordOpen  = "[ch]"
	ChordClose = "[/ch]"
	TabOpen    = "[tab]"
	TabClose   = "[/tab]"
)

var (
	tabMarkup   = strings.NewReplacer(TabOpen, "", TabClose, "", "\r", "")
	chordMarkup = strings.NewReplacer(ChordOpen, "", ChordClose, "")
)

// StripTabMarkup removes tab delimiters and carriage returns,
// leaving chord delimiters in place.
func StripTabMarkup(s string) string {
	return tabMarkup.Replace(s)
}

// StripChordMarkup removes chord delimiters.
func StripChordMarkup(s string) string {
	return chordMarkup.Replace(s)
}

// StripMarkup removes every delimiter and carriage return.
func StripMarkup(s string) string {
	return StripChordMarkup(StripTabMarkup(s))
}
