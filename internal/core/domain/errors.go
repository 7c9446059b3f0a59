package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// Domain errors represent business logic failures.
// Adapters wrap them so callers can match with errors.Is.
var (
	// ErrInvalidSource indicates a link that is not a recognised tab,
	// search or explore location. It is returned before any network call.
	ErrInvalidSource = errors.New("invalid source")

	// ErrNotFound indicates the requested page does not exist.
	ErrNotFound = errors.New("not found")

	// ErrTransport indicates a fetch failed at the transport or status level.
	ErrTransport = errors.New("transport error")

	// ErrMalformedDocument indicates a required field is missing from
	// an otherwise successfully fetched payload.
	ErrMalformedDocument = errors.New("malformed document")

	// ErrInvalidArgument indicates an out-of-contract parameter,
	// such as a non-positive result count.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrSessionClosed indicates the user ended an interactive session.
	ErrSessionClosed = errors.New("session closed")
)

// StatusCategory classifies a failed fetch.
type StatusCategory int

// Status categories.
const (
	StatusUnknown StatusCategory = iota
	StatusNotFound
	StatusClientError
	StatusServerError
)

// String returns the category name.
func (c StatusCategory) String() string {
	switch c {
	case StatusNotFound:
		return "not_found"
	case StatusClientError:
		return "client_error"
	case StatusServerError:
		return "server_error"
	default:
		return "unknown"
	}
}

// CategoryForStatus maps an HTTP status code to a category.
// Zero means no response was received.
func CategoryForStatus(code int) StatusCategory {
	switch {
	case code == http.StatusNotFound || code == http.StatusGone:
		return StatusNotFound
	case code >= 400 && code < 500:
		return StatusClientError
	case code >= 500 && code < 600:
		return StatusServerError
	default:
		return StatusUnknown
	}
}

// TransportError describes a fetch that failed before a usable page
// was received.
type TransportError struct {
	URL        string
	StatusCode int
	Category   StatusCategory
	Err        error
}

// NewTransportError creates a TransportError for a non-2xx response.
func NewTransportError(url string, statusCode int) *TransportError {
	return &TransportError{
		URL:        url,
		StatusCode: statusCode,
		Category:   CategoryForStatus(statusCode),
	}
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	if e.StatusCode == 0 {
		if e.Err != nil {
			return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
		}
		return fmt.Sprintf("fetch %s failed", e.URL)
	}
	return fmt.Sprintf("fetch %s: status %d (%s)", e.URL, e.StatusCode, e.Category)
}

// Unwrap returns the underlying network error, if any.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is reports whether the error matches ErrTransport, or ErrNotFound
// when the category is StatusNotFound.
func (e *TransportError) Is(target error) bool {
	switch target {
	case ErrTransport:
		return true
	case ErrNotFound:
		return e.Category == StatusNotFound
	default:
		return false
	}
}

// IsNotFound reports whether err represents a missing page.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
