package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func votes(tabs []TabSummary) []int {
	out := make([]int, len(tabs))
	for i, t := range tabs {
		out[i] = t.Votes
	}
	return out
}

func sampleResults() *TabResults {
	return NewTabResults([]TabSummary{
		{Song: "a", Type: TabTypeChords, Votes: 10},
		{Song: "b", Type: TabTypeTabs, Votes: 99},
		{Song: "c", Type: TabTypeChords, Votes: 50},
		{Song: "d", Type: TabTypeChords, Votes: 30},
		{Song: "e", Type: TabTypeTabs, Votes: 5},
	})
}

func TestTabResults_ChordsOnly(t *testing.T) {
	r := NewTabResults([]TabSummary{
		{Type: TabTypeChords, Votes: 10},
		{Type: TabTypeChords, Votes: 50},
		{Type: TabTypeChords, Votes: 30},
	})

	got, err := r.ChordsOnly(2)

	require.NoError(t, err)
	assert.Equal(t, []int{50, 30}, votes(got))
}

func TestTabResults_Select(t *testing.T) {
	tests := []struct {
		name     string
		filter   ResultFilter
		n        int
		expected []int
	}{
		{"chords only", FilterChords, 10, []int{50, 30, 10}},
		{"tabs only", FilterTabs, 10, []int{99, 5}},
		{"all truncated", FilterAll, 3, []int{99, 50, 30}},
		{"n larger than set", FilterAll, 100, []int{99, 50, 30, 10, 5}},
		{"single", FilterTabs, 1, []int{99}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := sampleResults().Select(tt.filter, tt.n)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, votes(got))
		})
	}
}

func TestTabResults_StableTies(t *testing.T) {
	r := NewTabResults([]TabSummary{
		{Song: "first", Type: TabTypeChords, Votes: 7},
		{Song: "top", Type: TabTypeChords, Votes: 8},
		{Song: "second", Type: TabTypeChords, Votes: 7},
		{Song: "third", Type: TabTypeChords, Votes: 7},
	})

	got, err := r.All(4)

	require.NoError(t, err)
	songs := []string{got[0].Song, got[1].Song, got[2].Song, got[3].Song}
	assert.Equal(t, []string{"top", "first", "second", "third"}, songs)
}

func TestTabResults_InvalidCount(t *testing.T) {
	for _, n := range []int{0, -1} {
		_, err := sampleResults().ChordsOnly(n)
		assert.True(t, errors.Is(err, ErrInvalidArgument), "n=%d", n)
	}
	_, err := sampleResults().TabsOnly(0)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = sampleResults().All(0)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestTabResults_InvalidFilter(t *testing.T) {
	_, err := sampleResults().Select(ResultFilter("pro"), 1)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestTabResults_DoesNotReorderSource(t *testing.T) {
	r := sampleResults()
	_, err := r.All(5)
	require.NoError(t, err)

	assert.Equal(t, []int{10, 99, 50, 30, 5}, votes(r.Entries()))
}

func TestTabResults_EmptyFilterResult(t *testing.T) {
	r := NewTabResults([]TabSummary{{Type: TabTypeTabs, Votes: 1}})

	got, err := r.ChordsOnly(3)

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestArtistResults_Top(t *testing.T) {
	r := NewArtistResults([]ArtistSummary{
		{Artist: "Oasis", ArtistURL: "/artist/oasis_6916"},
		{Artist: "Oasis Tribute", ArtistURL: "/artist/oasis_tribute_1"},
		{Artist: "Oasis Acoustic", ArtistURL: "/artist/oasis_acoustic_2"},
	})

	got, err := r.Top(2)
	require.NoError(t, err)
	assert.Equal(t, "Oasis", got[0].Artist)
	assert.Equal(t, "Oasis Tribute", got[1].Artist)

	all, err := r.Top(10)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	_, err = r.Top(0)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestTabSummary_Description(t *testing.T) {
	s := TabSummary{
		ID:     intPtr(2421111),
		URL:    "https://tabs.ultimate-guitar.com/tab/beach-weather/chit-chat-chords-2421111",
		Artist: "Beach Weather",
		Song:   "Chit Chat",
		Type:   TabTypeChords,
		Votes:  120,
		Rating: 4.8,
	}

	assert.Equal(t, "Beach Weather - Chit Chat", s.Heading())
	assert.Equal(t, s.URL, s.Link())
	assert.Equal(t,
		"**Rating:** `4.8`\n**Votes:** `120`\n\n**ID:** `2421111`\n**Link**\nhttps://tabs.ultimate-guitar.com/tab/beach-weather/chit-chat-chords-2421111",
		s.Description())
}

func TestTabSummary_DescriptionWithoutID(t *testing.T) {
	s := TabSummary{URL: "u", Votes: 1, Rating: 5}
	assert.Contains(t, s.Description(), "**ID:** `-`")
	assert.Contains(t, s.Description(), "**Rating:** `5`")
}

func TestArtistSummary_Link(t *testing.T) {
	a := ArtistSummary{Artist: "Oasis", ArtistURL: "/artist/oasis_6916"}

	assert.Equal(t, "Oasis", a.Heading())
	assert.Equal(t, "https://www.ultimate-guitar.com/artist/oasis_6916", a.Link())
	assert.Equal(t, "**Link**\nhttps://www.ultimate-guitar.com/artist/oasis_6916", a.Description())
}

func TestResultFilter_IsValid(t *testing.T) {
	for _, f := range AllResultFilters() {
		assert.True(t, f.IsValid(), f.String())
	}
	assert.False(t, ResultFilter("").IsValid())
}

func TestItems(t *testing.T) {
	tabs := TabItems([]TabSummary{{Artist: "A", Song: "B"}})
	require.Len(t, tabs, 1)
	assert.Equal(t, "A - B", tabs[0].Heading())

	artists := ArtistItems([]ArtistSummary{{Artist: "A"}})
	require.Len(t, artists, 1)
	assert.Equal(t, "A", artists[0].Heading())
}

func TestExploreOrder_SortKey(t *testing.T) {
	tests := []struct {
		order    ExploreOrder
		expected string
	}{
		{ExploreToday, "hits_daily_desc"},
		{ExplorePopular, "hitstotal_desc"},
		{ExploreRecent, "date_desc"},
		{ExploreRating, "rating_desc"},
	}

	for _, tt := range tests {
		t.Run(tt.order.String(), func(t *testing.T) {
			assert.True(t, tt.order.IsValid())
			assert.Equal(t, tt.expected, tt.order.SortKey())
			assert.NotEqual(t, unknownDescription, tt.order.Description())
		})
	}

	assert.False(t, ExploreOrder("trending").IsValid())
	assert.Empty(t, ExploreOrder("trending").SortKey())
	assert.Len(t, AllExploreOrders(), 4)
}
