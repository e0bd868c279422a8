package model

import "github.com/secmon-lab/launchdash/pkg/domain/types"

// ChartKind distinguishes the two chart shapes
type ChartKind string

const (
	ChartKindProportion ChartKind = "proportion"
	ChartKindScatter    ChartKind = "scatter"
)

// Slice is one labeled count of a proportion chart
type Slice struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// ScatterPoint is one launch plotted as payload (x) against outcome (y),
// colored by booster version category. Site is hover data only.
type ScatterPoint struct {
	PayloadMassKg          float64            `json:"x"`
	Outcome                types.OutcomeClass `json:"y"`
	BoosterVersionCategory string             `json:"color"`
	Site                   types.SiteID       `json:"label"`
}

// ChartResult is the chart-ready data for one output. It is rebuilt on
// every recomputation and never mutated afterwards.
type ChartResult struct {
	Kind  ChartKind `json:"kind"`
	Title string    `json:"title"`
	// NameField is the column the slices are grouped by ("Launch Site" or "class")
	NameField string         `json:"name_field,omitempty"`
	Slices    []Slice        `json:"slices,omitempty"`
	Points    []ScatterPoint `json:"points,omitempty"`
}

// IsEmpty reports whether the result carries no data
func (c *ChartResult) IsEmpty() bool {
	return len(c.Slices) == 0 && len(c.Points) == 0
}

// Total returns the sum of slice counts, or the number of points
func (c *ChartResult) Total() int {
	if c.Kind == ChartKindScatter {
		return len(c.Points)
	}
	total := 0
	for _, s := range c.Slices {
		total += s.Count
	}
	return total
}

// OutputUpdate pairs a recomputed chart with the output it belongs to
type OutputUpdate struct {
	Output types.OutputID `json:"output"`
	Chart  *ChartResult   `json:"chart"`
}
