package ultimateguitar

import (
	"encoding/json"
	"errors"
	"io"
	"strings"

	"golang.org/x/net/html"
)

const (
	storeClass = "js-store"
	storeAttr  = "data-content"
)

// ExtractPayload scans an HTML page for the js-store div and returns its
// data-content attribute, unescaped. The payload must be valid JSON.
func ExtractPayload(r io.Reader) ([]byte, error) {
	z := html.NewTokenizer(r)
	for {
		switch z.Next() {
		case html.ErrorToken:
			if errors.Is(z.Err(), io.EOF) {
				return nil, ErrNoStore
			}
			return nil, z.Err()

		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			if tok.Data != "div" {
				continue
			}
			content, ok := storeContent(tok.Attr)
			if !ok {
				continue
			}
			payload := []byte(content)
			if !json.Valid(payload) {
				return nil, ErrBadPayload
			}
			return payload, nil
		}
	}
}

// storeContent returns data-content when the attributes mark a js-store div.
func storeContent(attrs []html.Attribute) (string, bool) {
	var isStore, hasContent bool
	var content string
	for _, a := range attrs {
		switch a.Key {
		case "class":
			for _, c := range strings.Fields(a.Val) {
				if c == storeClass {
					isStore = true
				}
			}
		case storeAttr:
			content = a.Val
			hasContent = true
		}
	}
	return content, isStore && hasContent
}
