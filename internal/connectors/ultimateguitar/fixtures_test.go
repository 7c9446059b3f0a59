package ultimateguitar

import (
	"fmt"
	"html"
)

const chordsPayload = `{"store":{"page":{"data":{
	"tab":{"id":2421111,"type":"Chords","tab_url":"https://tabs.ultimate-guitar.com/tab/beach-weather/chit-chat-chords-2421111","artist_name":"Beach Weather","song_name":"Chit Chat"},
	"tab_view":{
		"meta":{"tuning":{"name":"Standard","value":"E A D G B E"},"tonality":"A"},
		"wiki_tab":{"content":"[tab][ch]A[/ch]   [ch]E/G#[/ch]\r\nChit chat[/tab]\r\n[ch]F#m[/ch]"},
		"applicature":{"A":[{"id":1}],"E/G#":[{"id":2}],"F#m":[{"id":3}]}
	}
}}}}`

const tabsPayload = `{"store":{"page":{"data":{
	"tab":{"id":1442936,"type":"Tabs","tab_url":"https://tabs.ultimate-guitar.com/tab/echosmith/bright-tabs-1442936","artist_name":"Echosmith","song_name":"Bright"},
	"tab_view":{
		"meta":{"capo":2},
		"wiki_tab":{"content":"[tab]e|--2--|\r\nB|--3--|[/tab]"}
	}
}}}}`

const searchPayload = `{"store":{"page":{"data":{"results":[
	{"id":1,"tab_url":"https://tabs.ultimate-guitar.com/tab/oasis/wonderwall-chords-1","artist_name":"Oasis","song_name":"Wonderwall","type":"Chords","votes":10,"rating":4.5},
	{"id":2,"tab_url":"https://tabs.ultimate-guitar.com/tab/oasis/wonderwall-tabs-2","artist_name":"Oasis","song_name":"Wonderwall","type":"Tabs","votes":99,"rating":4.9},
	{"id":3,"tab_url":"https://tabs.ultimate-guitar.com/tab/oasis/wonderwall-chords-3","artist_name":"Oasis","song_name":"Wonderwall","type":"Chords","votes":50,"rating":4.7},
	{"id":4,"tab_url":"https://tabs.ultimate-guitar.com/pro/4","artist_name":"Oasis","song_name":"Wonderwall","type":"Pro","votes":1000,"rating":5},
	{"marketing_type":"TabsPro"},
	{"id":5,"tab_url":"https://tabs.ultimate-guitar.com/tab/oasis/wonderwall-chords-5","artist_name":"Oasis","song_name":"Wonderwall","type":"Chords","votes":30,"rating":4.1}
]}}}}`

const artistSearchPayload = `{"store":{"page":{"data":{"results":[
	{"artist_name":"Oasis","artist_url":"/artist/oasis_6916"},
	{"artist_name":"Oasis Tribute"},
	{"artist_name":"Oasis Acoustic","artist_url":"/artist/oasis_acoustic_2"}
]}}}}`

const explorePayload = `{"store":{"page":{"data":{"data":{"tabs":[
	{"id":10,"tab_url":"https://tabs.ultimate-guitar.com/tab/a/b-chords-10","artist_name":"A","song_name":"B","type":"Chords","votes":5,"rating":4},
	{"id":11,"tab_url":"https://tabs.ultimate-guitar.com/tab/c/d-tabs-11","artist_name":"C","song_name":"D","type":"Tabs","votes":7,"rating":3.5}
]}}}}}`

// pageHTML wraps a payload the way the site embeds it.
func pageHTML(payload string) string {
	return fmt.Sprintf(`<!DOCTYPE html><html><head><title>UG</title></head><body>
<div class="js-page js-global-wrapper"><div class="js-store" data-content="%s"></div></div>
</body></html>`, html.EscapeString(payload))
}
