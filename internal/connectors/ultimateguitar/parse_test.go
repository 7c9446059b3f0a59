package ultimateguitar

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/tabula/internal/core/domain"
)

func TestParser_ParseTab_Chords(t *testing.T) {
	doc, err := NewParser().ParseTab([]byte(chordsPayload))
	require.NoError(t, err)

	info := doc.Info()
	assert.Equal(t, 2421111, info.ID)
	assert.Equal(t, domain.TabTypeChords, info.Type)
	assert.Equal(t, "Beach Weather", info.Artist)
	assert.Equal(t, "Chit Chat", info.Song)
	require.NotNil(t, info.Tuning)
	assert.Equal(t, "E A D G B E", *info.Tuning)
	require.NotNil(t, info.Key)
	assert.Equal(t, "A", *info.Key)
	assert.Nil(t, info.Capo)

	require.True(t, doc.IsChords())
	sheet, _ := doc.Chords()
	assert.Equal(t, []string{"A", "E/G#", "F#m"}, sheet.Vocabulary())
	assert.Equal(t, "A   E/G#\nChit chat\nF#m", doc.Content())

	sheet.Transpose(2)
	assert.Equal(t, "B   Gb/A\nChit chat\nGm", doc.Content())
	assert.Equal(t, "Chords ID: 2421111\nTuning: E A D G B E\nKey: A\nTransposition: 2", doc.FormattedMetadata())
}

func TestParser_ParseTab_Tabs(t *testing.T) {
	doc, err := NewParser().ParseTab([]byte(tabsPayload))
	require.NoError(t, err)

	assert.False(t, doc.IsChords())
	assert.Equal(t, "e|--2--|\nB|--3--|", doc.Content())
	require.NotNil(t, doc.Info().Capo)
	assert.Equal(t, 2, *doc.Info().Capo)
	assert.Nil(t, doc.Info().Tuning)
	assert.Equal(t, "Tabs ID: 1442936\nCapo: 2", doc.FormattedMetadata())
}

func TestParser_ParseTab_MissingFields(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"missing song_name", strings.Replace(tabsPayload, `"song_name":"Bright"`, `"x":"Bright"`, 1)},
		{"missing id", strings.Replace(tabsPayload, `"id":1442936,`, ``, 1)},
		{"missing artist", strings.Replace(tabsPayload, `"artist_name":"Echosmith",`, ``, 1)},
		{"missing tab url", strings.Replace(tabsPayload, `"tab_url":"https://tabs.ultimate-guitar.com/tab/echosmith/bright-tabs-1442936",`, ``, 1)},
		{"missing type", strings.Replace(tabsPayload, `"type":"Tabs",`, ``, 1)},
		{"missing content", strings.Replace(tabsPayload, `"content"`, `"text"`, 1)},
		{"missing applicature on chords", strings.Replace(chordsPayload, `"applicature"`, `"fingerings"`, 1)},
		{"null applicature on chords", strings.Replace(chordsPayload, `"applicature":{"A":[{"id":1}],"E/G#":[{"id":2}],"F#m":[{"id":3}]}`, `"applicature":null`, 1)},
		{"missing store", `{"page":{}}`},
		{"missing data", `{"store":{"page":{}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewParser().ParseTab([]byte(tt.payload))
			assert.ErrorIs(t, err, domain.ErrMalformedDocument)
		})
	}
}

func TestParser_ParseTab_NotJSON(t *testing.T) {
	_, err := NewParser().ParseTab([]byte("<html>"))
	assert.ErrorIs(t, err, ErrBadPayload)
	assert.ErrorIs(t, err, domain.ErrMalformedDocument)
}

func TestParser_ParseTab_EmptyApplicatureArray(t *testing.T) {
	payload := strings.Replace(chordsPayload, `"applicature":{"A":[{"id":1}],"E/G#":[{"id":2}],"F#m":[{"id":3}]}`, `"applicature":[]`, 1)

	doc, err := NewParser().ParseTab([]byte(payload))

	require.NoError(t, err)
	sheet, ok := doc.Chords()
	require.True(t, ok)
	assert.Empty(t, sheet.Vocabulary())
}

func TestParser_ParseTab_Meta(t *testing.T) {
	tests := []struct {
		name   string
		meta   string
		tuning *string
		key    *string
		capo   *int
	}{
		{"meta is a list", `[]`, nil, nil, nil},
		{"meta is null", `null`, nil, nil, nil},
		{"empty tonality", `{"tonality":""}`, nil, nil, nil},
		{"capo zero", `{"capo":0}`, nil, nil, intPtr(0)},
		{"capo null", `{"capo":null}`, nil, nil, nil},
		{"capo wrong type", `{"capo":"2"}`, nil, nil, nil},
		{"tuning without value", `{"tuning":{"name":"Standard"}}`, nil, nil, nil},
		{"all present", `{"tuning":{"value":"D A D G B E"},"tonality":"D","capo":3}`, strPtr("D A D G B E"), strPtr("D"), intPtr(3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := strings.Replace(tabsPayload, `"meta":{"capo":2}`, `"meta":`+tt.meta, 1)

			doc, err := NewParser().ParseTab([]byte(payload))
			require.NoError(t, err)

			info := doc.Info()
			assert.Equal(t, tt.tuning, info.Tuning)
			assert.Equal(t, tt.key, info.Key)
			assert.Equal(t, tt.capo, info.Capo)
		})
	}
}

func TestParser_ParseTab_OtherTypesArePlain(t *testing.T) {
	payload := strings.Replace(tabsPayload, `"type":"Tabs"`, `"type":"Bass Tabs"`, 1)

	doc, err := NewParser().ParseTab([]byte(payload))

	require.NoError(t, err)
	assert.False(t, doc.IsChords())
	assert.Equal(t, domain.TabType("Bass Tabs"), doc.Info().Type)
}

func TestParser_ParseSearch(t *testing.T) {
	results, err := NewParser().ParseSearch([]byte(searchPayload))
	require.NoError(t, err)

	assert.Equal(t, 4, results.Len(), "pro and marketing entries are skipped")

	chords, err := results.ChordsOnly(2)
	require.NoError(t, err)
	require.Len(t, chords, 2)
	assert.Equal(t, 50, chords[0].Votes)
	assert.Equal(t, 30, chords[1].Votes)
	require.NotNil(t, chords[0].ID)
	assert.Equal(t, 3, *chords[0].ID)
	assert.Equal(t, 4.7, chords[0].Rating)
}

func TestParser_ParseSearch_OtherTabsFallback(t *testing.T) {
	payload := strings.Replace(searchPayload, `"results"`, `"other_tabs"`, 1)

	results, err := NewParser().ParseSearch([]byte(payload))

	require.NoError(t, err)
	assert.Equal(t, 4, results.Len())
}

func TestParser_ParseSearch_NoResults(t *testing.T) {
	_, err := NewParser().ParseSearch([]byte(`{"store":{"page":{"data":{}}}}`))
	assert.ErrorIs(t, err, domain.ErrMalformedDocument)

	results, err := NewParser().ParseSearch([]byte(`{"store":{"page":{"data":{"results":[]}}}}`))
	require.NoError(t, err)
	assert.Equal(t, 0, results.Len())
}

func TestParser_ParseSearch_EntryMissingFieldsSkipped(t *testing.T) {
	payload := `{"store":{"page":{"data":{"results":[
		{"tab_url":"u1","artist_name":"A","song_name":"S","type":"Chords","votes":1,"rating":4.2},
		{"artist_name":"A","song_name":"S","type":"Chords","votes":1,"rating":4},
		{"tab_url":"u3","artist_name":"A","song_name":"S","type":"Chords","rating":4},
		{"tab_url":"u4","artist_name":"A","song_name":"S","type":"Chords","votes":3},
		{"tab_url":"u5","song_name":"S","type":"Tabs","votes":3,"rating":4}
	]}}}}`

	results, err := NewParser().ParseSearch([]byte(payload))

	require.NoError(t, err)
	require.Equal(t, 1, results.Len())
	entry := results.Entries()[0]
	assert.Equal(t, "u1", entry.URL)
	assert.Nil(t, entry.ID)
	assert.Equal(t, 1, entry.Votes)
	assert.InDelta(t, 4.2, entry.Rating, 1e-9)
}

func TestParser_ParseExplore(t *testing.T) {
	results, err := NewParser().ParseExplore([]byte(explorePayload))
	require.NoError(t, err)

	all, err := results.All(10)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "C", all[0].Artist)

	_, err = NewParser().ParseExplore([]byte(searchPayload))
	assert.ErrorIs(t, err, domain.ErrMalformedDocument)
}

func TestParser_ParseArtistSearch(t *testing.T) {
	results, err := NewParser().ParseArtistSearch([]byte(artistSearchPayload))
	require.NoError(t, err)

	artists, err := results.Top(10)
	require.NoError(t, err)
	require.Len(t, artists, 2)
	assert.Equal(t, "Oasis", artists[0].Artist)
	assert.Equal(t, "https://www.ultimate-guitar.com/artist/oasis_6916", artists[0].Link())
	assert.Equal(t, "Oasis Acoustic", artists[1].Artist)
}

func TestObjectKeys_PreservesOrder(t *testing.T) {
	keys, err := objectKeys([]byte(`{"G":1,"C":{"a":[1,2]},"Am":[],"D/F#":null}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"G", "C", "Am", "D/F#"}, keys)
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
