package render_test

import (
	"bytes"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/launchdash/pkg/domain/model"
	"github.com/secmon-lab/launchdash/pkg/domain/types"
	"github.com/secmon-lab/launchdash/pkg/service/render"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func pieResult() *model.ChartResult {
	return &model.ChartResult{
		Kind:      model.ChartKindProportion,
		Title:     "Total Successful Launches by Site",
		NameField: "Launch Site",
		Slices: []model.Slice{
			{Label: "KSC LC-39A", Count: 1},
			{Label: "CCAFS LC-40", Count: 2},
		},
	}
}

func scatterResult() *model.ChartResult {
	return &model.ChartResult{
		Kind:  model.ChartKindScatter,
		Title: "Payload vs. Outcome for All Sites",
		Points: []model.ScatterPoint{
			{PayloadMassKg: 5000, Outcome: types.OutcomeSuccess, BoosterVersionCategory: "v1", Site: "KSC LC-39A"},
			{PayloadMassKg: 3000, Outcome: types.OutcomeFailure, BoosterVersionCategory: "v1", Site: "KSC LC-39A"},
			{PayloadMassKg: 7000, Outcome: types.OutcomeSuccess, BoosterVersionCategory: "v2", Site: "CCAFS LC-40"},
		},
	}
}

func TestRenderer_Render(t *testing.T) {
	renderer := render.New(render.WithSize(640, 400))

	testCases := []struct {
		name   string
		result *model.ChartResult
	}{
		{name: "pie", result: pieResult()},
		{name: "empty pie", result: &model.ChartResult{Kind: model.ChartKindProportion, Title: "Launch Outcomes for Site X"}},
		{name: "scatter", result: scatterResult()},
		{name: "single point scatter", result: &model.ChartResult{
			Kind:   model.ChartKindScatter,
			Points: scatterResult().Points[:1],
		}},
		{name: "empty scatter", result: &model.ChartResult{Kind: model.ChartKindScatter, Title: "Payload vs. Outcome for X"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name+" png", func(t *testing.T) {
			var buf bytes.Buffer
			gt.NoError(t, renderer.Render(&buf, tc.result, types.ImageFormatPNG)).Required()
			gt.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic))
		})

		t.Run(tc.name+" svg", func(t *testing.T) {
			var buf bytes.Buffer
			gt.NoError(t, renderer.Render(&buf, tc.result, types.ImageFormatSVG)).Required()
			gt.S(t, buf.String()).Contains("<svg")
		})
	}
}

func TestRenderer_Errors(t *testing.T) {
	renderer := render.New()

	t.Run("unsupported format", func(t *testing.T) {
		var buf bytes.Buffer
		err := renderer.Render(&buf, pieResult(), types.ImageFormat("gif"))
		gt.Error(t, err)
		gt.B(t, goerr.HasTag(err, render.ErrTagUnsupportedFormat)).True()
	})

	t.Run("unsupported kind", func(t *testing.T) {
		var buf bytes.Buffer
		err := renderer.Render(&buf, &model.ChartResult{Kind: "bar"}, types.ImageFormatPNG)
		gt.Error(t, err)
		gt.B(t, goerr.HasTag(err, render.ErrTagUnsupportedChart)).True()
	})

	t.Run("nil result", func(t *testing.T) {
		var buf bytes.Buffer
		gt.Error(t, renderer.Render(&buf, nil, types.ImageFormatPNG))
	})
}
