package render

import (
	"fmt"

	"github.com/secmon-lab/launchdash/pkg/domain/model"
	"github.com/wcharczuk/go-chart/v2"
)

// pie builds a pie chart. A result without slices is drawn as a single
// grey "No data" slice because go-chart refuses empty pies.
func (r *Renderer) pie(result *model.ChartResult) chart.PieChart {
	values := make([]chart.Value, 0, len(result.Slices))
	for i, s := range result.Slices {
		if s.Count <= 0 {
			continue
		}
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s (%d)", s.Label, s.Count),
			Value: float64(s.Count),
			Style: chart.Style{FillColor: colorAt(i), StrokeColor: colorAt(i)},
		})
	}

	if len(values) == 0 {
		values = append(values, chart.Value{
			Label: "No data",
			Value: 1,
			Style: chart.Style{FillColor: placeholderColor, StrokeColor: placeholderColor},
		})
	}

	return chart.PieChart{
		Title:  result.Title,
		Width:  r.width,
		Height: r.height,
		Values: values,
	}
}
