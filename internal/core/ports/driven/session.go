package driven

import (
	"context"
	"time"

	"github.com/custodia-labs/tabula/internal/core/domain"
)

// InteractiveSession is the display a browse session drives.
// A session serves one browse at a time.
type InteractiveSession interface {
	// Send shows a new view.
	Send(ctx context.Context, view domain.PageView) error

	// Edit replaces the last view shown.
	Edit(ctx context.Context, view domain.PageView) error

	// AwaitActivation blocks until one of valid is activated or timeout
	// elapses. A zero timeout waits until ctx is done. Activations of
	// other IDs are ignored.
	AwaitActivation(ctx context.Context, valid []domain.ActivationID, timeout time.Duration) (domain.Activation, error)
}
