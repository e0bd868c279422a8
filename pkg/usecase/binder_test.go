package usecase_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/launchdash/pkg/domain/model"
	"github.com/secmon-lab/launchdash/pkg/domain/types"
	"github.com/secmon-lab/launchdash/pkg/usecase"
)

type recordingObserver struct {
	outputs []types.OutputID
}

func (r *recordingObserver) ObserveRecompute(output types.OutputID, elapsed time.Duration, result *model.ChartResult) {
	r.outputs = append(r.outputs, output)
}

func countingCompute(calls *int) usecase.ComputeFunc {
	return func(ds *model.Dataset, sel model.Selection) *model.ChartResult {
		*calls++
		return &model.ChartResult{Kind: model.ChartKindProportion, Title: sel.Site.String()}
	}
}

func TestBinder_Register(t *testing.T) {
	ds := newScenarioDataset(t)
	var calls int

	testCases := []struct {
		name    string
		binding usecase.Binding
		wantErr bool
	}{
		{
			name:    "valid",
			binding: usecase.Binding{Output: "a", Inputs: []types.InputID{"x"}, Compute: countingCompute(&calls)},
		},
		{
			name:    "missing output",
			binding: usecase.Binding{Inputs: []types.InputID{"x"}, Compute: countingCompute(&calls)},
			wantErr: true,
		},
		{
			name:    "no inputs",
			binding: usecase.Binding{Output: "b", Compute: countingCompute(&calls)},
			wantErr: true,
		},
		{
			name:    "no compute",
			binding: usecase.Binding{Output: "c", Inputs: []types.InputID{"x"}},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			binder := usecase.NewBinder(ds, nil)
			err := binder.Register(tc.binding)
			if tc.wantErr {
				gt.Error(t, err)
			} else {
				gt.NoError(t, err)
			}
		})
	}

	t.Run("duplicate output", func(t *testing.T) {
		binder := usecase.NewBinder(ds, nil)
		binding := usecase.Binding{Output: "a", Inputs: []types.InputID{"x"}, Compute: countingCompute(&calls)}
		gt.NoError(t, binder.Register(binding))
		gt.Error(t, binder.Register(binding))
		gt.Equal(t, binder.Outputs(), []types.OutputID{"a"})
	})
}

func TestBinder_Dispatch(t *testing.T) {
	ctx := context.Background()
	ds := newScenarioDataset(t)
	observer := &recordingObserver{}
	binder := usecase.NewBinder(ds, observer)

	var aCalls, bCalls int
	gt.NoError(t, binder.Register(usecase.Binding{
		Output:  "a",
		Inputs:  []types.InputID{"x"},
		Compute: countingCompute(&aCalls),
	}))
	gt.NoError(t, binder.Register(usecase.Binding{
		Output: "b",
		// listing an input twice must not recompute twice
		Inputs:  []types.InputID{"x", "y", "x"},
		Compute: countingCompute(&bCalls),
	}))

	sel := model.Selection{Site: "KSC LC-39A"}

	updates, err := binder.Dispatch(ctx, model.InputEvent{Input: "x", Selection: sel})
	gt.NoError(t, err).Required()
	gt.A(t, updates).Length(2)
	gt.Equal(t, aCalls, 1)
	gt.Equal(t, bCalls, 1)
	gt.Equal(t, updates[0].Chart.Title, "KSC LC-39A")

	updates, err = binder.Dispatch(ctx, model.InputEvent{Input: "y", Selection: sel})
	gt.NoError(t, err).Required()
	gt.A(t, updates).Length(1)
	gt.Equal(t, updates[0].Output, types.OutputID("b"))
	gt.Equal(t, aCalls, 1)
	gt.Equal(t, bCalls, 2)

	gt.Equal(t, observer.outputs, []types.OutputID{"a", "b", "b"})
}

func TestBinder_ResultsAreFresh(t *testing.T) {
	ctx := context.Background()
	dashboard, err := usecase.NewDashboard(newScenarioDataset(t))
	gt.NoError(t, err).Required()

	sel := model.Selection{Site: types.AllSites}
	first, err := dashboard.Compute(ctx, types.OutputSuccessPie, sel)
	gt.NoError(t, err).Required()
	first.Slices[0].Count = 100

	second, err := dashboard.Compute(ctx, types.OutputSuccessPie, sel)
	gt.NoError(t, err).Required()
	gt.Equal(t, second.Slices[0].Count, 1)
}

func TestBinder_DispatchKeepsCallerEventID(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := ctxlog.With(context.Background(), logger)

	binder := usecase.NewBinder(newScenarioDataset(t), nil)
	var calls int
	gt.NoError(t, binder.Register(usecase.Binding{
		Output:  "a",
		Inputs:  []types.InputID{"x"},
		Compute: countingCompute(&calls),
	}))

	_, err := binder.Dispatch(ctx, model.InputEvent{ID: "evt-42", Input: "x"})
	gt.NoError(t, err).Required()

	var found bool
	for _, line := range bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n")) {
		var entry map[string]any
		gt.NoError(t, json.Unmarshal(line, &entry)).Required()
		if entry["msg"] == "input change dispatched" {
			found = true
			gt.V(t, entry["event_id"]).Equal("evt-42")
		}
	}
	gt.True(t, found)
}
