package services

import (
	"github.com/custodia-labs/tabula/internal/core/domain"
	"github.com/custodia-labs/tabula/internal/core/ports/driven"
)

// nopRecorder discards usage counts.
type nopRecorder struct{}

func (nopRecorder) BrowseFinished(domain.BrowseState) {}
func (nopRecorder) Transposed(domain.TransposeResult) {}

func recorderOrNop(r driven.UsageRecorder) driven.UsageRecorder {
	if r == nil {
		return nopRecorder{}
	}
	return r
}
