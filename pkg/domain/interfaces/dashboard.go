package interfaces

import (
	"context"
	"io"
	"time"

	"github.com/secmon-lab/launchdash/pkg/domain/model"
	"github.com/secmon-lab/launchdash/pkg/domain/types"
)

// Dashboard serves the two linked chart outputs
type Dashboard interface {
	// Options returns the selector configuration for clients
	Options(ctx context.Context) *model.DashboardOptions

	// DefaultSelection returns the selection shown before any interaction
	DefaultSelection(ctx context.Context) model.Selection

	// Compute evaluates a single output for the given selection
	Compute(ctx context.Context, output types.OutputID, sel model.Selection) (*model.ChartResult, error)

	// Dispatch recomputes every output subscribed to the changed input
	Dispatch(ctx context.Context, event model.InputEvent) ([]model.OutputUpdate, error)
}

// ChartRenderer draws a chart result as an image
type ChartRenderer interface {
	Render(w io.Writer, result *model.ChartResult, format types.ImageFormat) error
}

// BindingObserver is notified after each binding recomputation
type BindingObserver interface {
	ObserveRecompute(output types.OutputID, elapsed time.Duration, result *model.ChartResult)
}
