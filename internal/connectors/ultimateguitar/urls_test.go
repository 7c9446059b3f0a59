package ultimateguitar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/tabula/internal/core/domain"
)

func TestEndpoints_Validate(t *testing.T) {
	e := DefaultEndpoints()

	tests := []struct {
		url   string
		valid bool
	}{
		{"https://tabs.ultimate-guitar.com/tab/beach-weather/chit-chat-chords-2421111", true},
		{"https://www.ultimate-guitar.com/search.php?search_type=title&value=x", true},
		{"https://www.ultimate-guitar.com/explore?order=date_desc", true},
		{"https://www.google.com/", false},
		{"https://www.youtube.com/watch?v=rogKZtOhg44", false},
		{"http://tabs.ultimate-guitar.com/tab/x", false},
		{"https://tabs.ultimate-guitar.com/", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			err := e.Validate(tt.url)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, domain.ErrInvalidSource)
			}
		})
	}
}

func TestEndpoints_SearchURL(t *testing.T) {
	e := DefaultEndpoints()

	assert.Equal(t,
		"https://www.ultimate-guitar.com/search.php?search_type=title&value=beach%20weather%20chit%20chat",
		e.SearchURL(" beach weather ", "chit chat "))
	assert.Equal(t,
		"https://www.ultimate-guitar.com/search.php?search_type=band&value=oasis",
		e.SearchURL("oasis", ""))
	assert.Equal(t,
		"https://www.ultimate-guitar.com/search.php?search_type=title&value=simon%20%26%20garfunkel%20boxer",
		e.SearchURL("simon & garfunkel", "boxer"))
}

func TestEndpoints_ExploreURL(t *testing.T) {
	e := DefaultEndpoints()

	u, err := e.ExploreURL(domain.ExploreRecent)
	require.NoError(t, err)
	assert.Equal(t, "https://www.ultimate-guitar.com/explore?order=date_desc", u)

	_, err = e.ExploreURL("trending")
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestEndpoints_ArtistURL(t *testing.T) {
	e := DefaultEndpoints()

	assert.Equal(t, "https://www.ultimate-guitar.com/artist/oasis_6916", e.ArtistURL("/artist/oasis_6916"))
	assert.Equal(t, "https://www.ultimate-guitar.com/artist/oasis_6916", e.ArtistURL("artist/oasis_6916"))
	assert.Equal(t, "https://www.ultimate-guitar.com/artist/oasis_6916", e.ArtistURL("https://www.ultimate-guitar.com/artist/oasis_6916"))
}
