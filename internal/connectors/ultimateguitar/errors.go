package ultimateguitar

import (
	"errors"
	"fmt"

	"github.com/custodia-labs/tabula/internal/core/domain"
)

// Ultimate-guitar specific errors. Both wrap domain.ErrMalformedDocument.
var (
	// ErrNoStore indicates the page has no js-store element.
	ErrNoStore = fmt.Errorf("%w: ultimateguitar: page has no js-store data", domain.ErrMalformedDocument)

	// ErrBadPayload indicates the js-store data is not valid JSON.
	ErrBadPayload = fmt.Errorf("%w: ultimateguitar: js-store data is not JSON", domain.ErrMalformedDocument)
)

// missingField returns a malformed-document error naming a JSON path.
func missingField(path string) error {
	return fmt.Errorf("%w: missing %s", domain.ErrMalformedDocument, path)
}

// IsRateLimited checks if the error is a 429 response.
func IsRateLimited(err error) bool {
	var te *domain.TransportError
	if errors.As(err, &te) {
		return te.StatusCode == 429
	}
	return false
}
