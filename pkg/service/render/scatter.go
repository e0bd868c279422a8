package render

import (
	"math"

	"github.com/secmon-lab/launchdash/pkg/domain/model"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// pointStyle renders dots only, no connecting line
func pointStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: chart.Disabled,
		DotWidth:    5,
		DotColor:    col,
	}
}

// scatter builds a payload/outcome scatter chart with one series per
// booster version category, in order of first appearance.
func (r *Renderer) scatter(result *model.ChartResult) chart.Chart {
	var (
		order  []string
		series = make(map[string]*chart.ContinuousSeries)
	)

	for _, p := range result.Points {
		s, ok := series[p.BoosterVersionCategory]
		if !ok {
			s = &chart.ContinuousSeries{
				Name:  p.BoosterVersionCategory,
				Style: pointStyle(colorAt(len(order))),
			}
			series[p.BoosterVersionCategory] = s
			order = append(order, p.BoosterVersionCategory)
		}
		s.XValues = append(s.XValues, p.PayloadMassKg)
		s.YValues = append(s.YValues, float64(p.Outcome))
	}

	xr := xRange(result.Points)

	all := make([]chart.Series, 0, len(order)+1)
	for _, name := range order {
		all = append(all, *series[name])
	}
	if len(all) == 0 {
		// go-chart needs one visible series; this one draws nothing
		all = append(all, chart.ContinuousSeries{
			Name:    "No data",
			XValues: []float64{xr.Min},
			YValues: []float64{0},
			Style: chart.Style{
				StrokeWidth: chart.Disabled,
				StrokeColor: drawing.ColorTransparent,
			},
		})
	}

	ch := chart.Chart{
		Title:  result.Title,
		Width:  r.width,
		Height: r.height,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 16, Right: 12, Bottom: 16},
		},
		XAxis: chart.XAxis{
			Name:  "Payload Mass (kg)",
			Range: xr,
		},
		YAxis: chart.YAxis{
			Name: "class",
			Ticks: []chart.Tick{
				{Value: -0.5, Label: ""},
				{Value: 0, Label: "0"},
				{Value: 1, Label: "1"},
				{Value: 1.5, Label: ""},
			},
		},
		Series: all,
	}
	if len(order) > 0 {
		ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	}

	return ch
}

// xRange pads the payload extent so single points stay inside the canvas
// and the range is never zero-width.
func xRange(points []model.ScatterPoint) *chart.ContinuousRange {
	if len(points) == 0 {
		return &chart.ContinuousRange{Min: 0, Max: 1}
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, p := range points {
		lo = min(lo, p.PayloadMassKg)
		hi = max(hi, p.PayloadMassKg)
	}

	pad := (hi - lo) * 0.05
	if pad == 0 {
		pad = max(math.Abs(lo)*0.05, 1)
	}

	return &chart.ContinuousRange{Min: lo - pad, Max: hi + pad}
}
