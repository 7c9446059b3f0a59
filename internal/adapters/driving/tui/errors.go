package tui

import "errors"

// ErrNotStarted is returned when a session is used before Start.
var ErrNotStarted = errors.New("tui: session not started")

// ErrNoLink is reported when copying from a page without a link.
var ErrNoLink = errors.New("tui: page has no link")
