package driven

import "github.com/custodia-labs/tabula/internal/core/domain"

// UsageRecorder receives counts from core services.
type UsageRecorder interface {
	// BrowseFinished records the terminal state of a browse session.
	BrowseFinished(state domain.BrowseState)

	// Transposed records one transposition of a chord sheet.
	Transposed(result domain.TransposeResult)
}
