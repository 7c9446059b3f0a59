package cli

import (
	"errors"

	"github.com/custodia-labs/tabula/internal/core/domain"
)

// Errors returned when a command runs without its service.
var (
	errTabServiceMissing      = errors.New("tab service not configured")
	errSearchServiceMissing   = errors.New("search service not configured")
	errBrowseServiceMissing   = errors.New("browse service not configured")
	errSettingsServiceMissing = errors.New("settings service not configured")
)

// userMessage converts an error into text for the terminal.
func userMessage(err error) string {
	var transportErr *domain.TransportError

	switch {
	case errors.Is(err, domain.ErrInvalidSource):
		return "not a valid ultimate-guitar link (expected https://tabs.ultimate-guitar.com/tab/...)"
	case domain.IsNotFound(err):
		return "not found: the page does not exist or was removed"
	case errors.As(err, &transportErr) && transportErr.Category == domain.StatusServerError:
		return "ultimate-guitar.com is unavailable, try again later"
	case errors.As(err, &transportErr) && transportErr.StatusCode == 0:
		return "could not reach ultimate-guitar.com, check your connection"
	case errors.Is(err, domain.ErrTransport):
		return "ultimate-guitar.com refused the request: " + err.Error()
	case errors.Is(err, domain.ErrMalformedDocument):
		return "the page layout was not understood: " + err.Error()
	default:
		return err.Error()
	}
}
