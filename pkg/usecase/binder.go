package usecase

import (
	"context"
	"slices"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/launchdash/pkg/domain/interfaces"
	"github.com/secmon-lab/launchdash/pkg/domain/model"
	"github.com/secmon-lab/launchdash/pkg/domain/types"
)

var (
	ErrTagUnknownInput  = goerr.NewTag("unknown_input")
	ErrTagUnknownOutput = goerr.NewTag("unknown_output")
)

// ComputeFunc derives an output from the dataset and the current selection.
// It must not read or write anything else.
type ComputeFunc func(ds *model.Dataset, sel model.Selection) *model.ChartResult

// Binding declares which inputs an output depends on and how to compute it
type Binding struct {
	Output  types.OutputID
	Inputs  []types.InputID
	Compute ComputeFunc
}

// Subscribes reports whether the binding depends on input
func (b Binding) Subscribes(input types.InputID) bool {
	return slices.Contains(b.Inputs, input)
}

// Binder is the registry of reactive bindings over a static dataset
type Binder struct {
	dataset  *model.Dataset
	bindings []Binding
	observer interfaces.BindingObserver
}

// NewBinder creates an empty registry for ds
func NewBinder(ds *model.Dataset, observer interfaces.BindingObserver) *Binder {
	return &Binder{
		dataset:  ds,
		observer: observer,
	}
}

// Register adds a binding. Outputs must be unique.
func (b *Binder) Register(binding Binding) error {
	if binding.Output == "" {
		return goerr.New("binding output is required")
	}
	if len(binding.Inputs) == 0 {
		return goerr.New("binding has no inputs", goerr.V("output", binding.Output))
	}
	if binding.Compute == nil {
		return goerr.New("binding has no compute function", goerr.V("output", binding.Output))
	}
	if _, ok := b.find(binding.Output); ok {
		return goerr.New("duplicate binding output", goerr.V("output", binding.Output))
	}

	binding.Inputs = slices.Clone(binding.Inputs)
	b.bindings = append(b.bindings, binding)
	return nil
}

// Outputs returns the registered outputs in registration order
func (b *Binder) Outputs() []types.OutputID {
	result := make([]types.OutputID, 0, len(b.bindings))
	for _, binding := range b.bindings {
		result = append(result, binding.Output)
	}
	return result
}

func (b *Binder) find(output types.OutputID) (Binding, bool) {
	for _, binding := range b.bindings {
		if binding.Output == output {
			return binding, true
		}
	}
	return Binding{}, false
}

// Compute evaluates one output for sel
func (b *Binder) Compute(ctx context.Context, output types.OutputID, sel model.Selection) (*model.ChartResult, error) {
	binding, ok := b.find(output)
	if !ok {
		return nil, goerr.New("unknown output",
			goerr.V("output", output),
			goerr.T(ErrTagUnknownOutput))
	}
	return b.run(ctx, binding, sel), nil
}

// Dispatch handles one input change event. Every binding subscribed to the
// changed input is recomputed exactly once, in registration order. The
// event ID is assigned by the caller and only used for logging.
func (b *Binder) Dispatch(ctx context.Context, event model.InputEvent) ([]model.OutputUpdate, error) {
	var updates []model.OutputUpdate
	for _, binding := range b.bindings {
		if !binding.Subscribes(event.Input) {
			continue
		}
		updates = append(updates, model.OutputUpdate{
			Output: binding.Output,
			Chart:  b.run(ctx, binding, event.Selection),
		})
	}

	if len(updates) == 0 {
		return nil, goerr.New("no binding subscribes to input",
			goerr.V("input", event.Input),
			goerr.V("event_id", event.ID),
			goerr.T(ErrTagUnknownInput))
	}

	ctxlog.From(ctx).Debug("input change dispatched",
		"event_id", event.ID,
		"input", event.Input,
		"site", event.Selection.Site,
		"payload", event.Selection.Payload,
		"updates", len(updates),
	)

	return updates, nil
}

func (b *Binder) run(ctx context.Context, binding Binding, sel model.Selection) *model.ChartResult {
	start := time.Now()
	result := binding.Compute(b.dataset, sel)
	elapsed := time.Since(start)

	if b.observer != nil {
		b.observer.ObserveRecompute(binding.Output, elapsed, result)
	}

	ctxlog.From(ctx).Debug("output recomputed",
		"output", binding.Output,
		"kind", result.Kind,
		"total", result.Total(),
		"duration", elapsed,
	)

	return result
}
