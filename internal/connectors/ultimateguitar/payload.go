package ultimateguitar

import (
	"bytes"
	"encoding/json"
)

// page is the js-store envelope shared by every page.
type page struct {
	Store *struct {
		Page *struct {
			Data json.RawMessage `json:"data"`
		} `json:"page"`
	} `json:"store"`
}

type tabPageData struct {
	Tab     *tabJSON     `json:"tab"`
	TabView *tabViewJSON `json:"tab_view"`
}

type tabJSON struct {
	ID         *int    `json:"id"`
	Type       *string `json:"type"`
	TabURL     *string `json:"tab_url"`
	ArtistName *string `json:"artist_name"`
	SongName   *string `json:"song_name"`
}

type tabViewJSON struct {
	Meta    json.RawMessage `json:"meta"`
	WikiTab *struct {
		Content *string `json:"content"`
	} `json:"wiki_tab"`
	Applicature json.RawMessage `json:"applicature"`
}

type searchPageData struct {
	Results   json.RawMessage `json:"results"`
	OtherTabs json.RawMessage `json:"other_tabs"`
}

type explorePageData struct {
	Data *struct {
		Tabs json.RawMessage `json:"tabs"`
	} `json:"data"`
}

type entryJSON struct {
	ID         *int     `json:"id"`
	TabURL     *string  `json:"tab_url"`
	ArtistName *string  `json:"artist_name"`
	SongName   *string  `json:"song_name"`
	Type       *string  `json:"type"`
	Votes      *int     `json:"votes"`
	Rating     *float64 `json:"rating"`
}

type artistJSON struct {
	ArtistName *string `json:"artist_name"`
	ArtistURL  *string `json:"artist_url"`
}

// isNull reports whether raw is absent or JSON null.
func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// isObject reports whether raw is a JSON object.
func isObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{'
}

// objectKeys returns the keys of a JSON object in document order.
func objectKeys(raw json.RawMessage) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	var keys []string
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, _ := tok.(string)
		keys = append(keys, key)

		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			return nil, err
		}
	}
	return keys, nil
}
