package domain

import (
	"strconv"
	"strings"
)

// TabDocument is a parsed tab page: metadata plus content.
// Chords documents carry a ChordSheet; plain tabs do not.
type TabDocument struct {
	info    TabInfo
	raw     string
	content string
	chords  *ChordSheet
}

// NewTabDocument creates a plain tab document. The rendered content is
// computed once with every delimiter and carriage return stripped.
func NewTabDocument(info TabInfo, rawContent string) *TabDocument {
	return &TabDocument{
		info:    info,
		raw:     rawContent,
		content: StripMarkup(rawContent),
	}
}

// NewChordDocument creates a chords document that can be transposed.
func NewChordDocument(info TabInfo, rawContent string, vocabulary []string) *TabDocument {
	return &TabDocument{
		info:   info,
		raw:    rawContent,
		chords: NewChordSheet(rawContent, vocabulary),
	}
}

// Info returns the tab metadata.
func (d *TabDocument) Info() TabInfo {
	return d.info
}

// RawContent returns the content as received, delimiters included.
func (d *TabDocument) RawContent() string {
	return d.raw
}

// Content returns the rendered content. For chords documents this
// reflects the current transposition.
func (d *TabDocument) Content() string {
	if d.chords != nil {
		return d.chords.Content()
	}
	return d.content
}

// Chords returns the chord sheet of a chords document.
func (d *TabDocument) Chords() (*ChordSheet, bool) {
	return d.chords, d.chords != nil
}

// IsChords reports whether the document is transposable.
func (d *TabDocument) IsChords() bool {
	return d.chords != nil
}

// FormattedMetadata returns one line per present field: type and ID,
// tuning, key, capo, and the transposition for chords documents.
func (d *TabDocument) FormattedMetadata() string {
	lines := []string{string(d.info.Type) + " ID: " + strconv.Itoa(d.info.ID)}
	if d.info.Tuning != nil {
		lines = append(lines, "Tuning: "+*d.info.Tuning)
	}
	if d.info.Key != nil {
		lines = append(lines, "Key: "+*d.info.Key)
	}
	if d.info.Capo != nil {
		lines = append(lines, "Capo: "+strconv.Itoa(*d.info.Capo))
	}
	if d.chords != nil {
		lines = append(lines, "Transposition: "+strconv.Itoa(d.chords.Transposition()))
	}
	return strings.Join(lines, "\n")
}
