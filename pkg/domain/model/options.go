package model

import (
	"maps"
	"math"
	"slices"
	"strconv"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/launchdash/pkg/domain/types"
)

// SliderOptions describes the payload range selector
type SliderOptions struct {
	Min   float64        `json:"min"`
	Max   float64        `json:"max"`
	Step  float64        `json:"step"`
	Marks map[int]string `json:"marks"`
	Value PayloadRange   `json:"value"`
}

// DashboardOptions is everything a client needs to build the inputs
type DashboardOptions struct {
	Title       string        `json:"title"`
	Sites       []Site        `json:"sites"`
	DefaultSite types.SiteID  `json:"default_site"`
	Payload     SliderOptions `json:"payload"`
}

// Layout holds the configurable presentation of the dashboard
type Layout struct {
	Title      string
	SliderMin  float64
	SliderMax  float64
	SliderStep float64
}

// DefaultLayout returns the layout of the original dashboard
func DefaultLayout() Layout {
	return Layout{
		Title:      "SpaceX Launch Records Dashboard",
		SliderMin:  0,
		SliderMax:  10000,
		SliderStep: 1000,
	}
}

// Validate validates the layout
func (l Layout) Validate() error {
	for _, v := range []float64{l.SliderMin, l.SliderMax, l.SliderStep} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return goerr.New("slider settings must be finite",
				goerr.V("min", l.SliderMin),
				goerr.V("max", l.SliderMax),
				goerr.V("step", l.SliderStep))
		}
	}
	if l.SliderMin > l.SliderMax {
		return goerr.New("slider min must not exceed max",
			goerr.V("min", l.SliderMin),
			goerr.V("max", l.SliderMax))
	}
	if l.SliderStep <= 0 {
		return goerr.New("slider step must be positive", goerr.V("step", l.SliderStep))
	}
	return nil
}

// maxSliderMarks bounds the number of labelled ticks on the payload slider
const maxSliderMarks = 11

// markInterval returns the distance between slider marks: every two and a
// half steps, widened by whole multiples so that at most maxSliderMarks
// marks fit between min and max.
func markInterval(layout Layout) float64 {
	interval := layout.SliderStep * 2.5
	span := layout.SliderMax - layout.SliderMin
	if interval <= 0 || span <= 0 {
		return 0
	}
	if n := math.Ceil(span / (interval * (maxSliderMarks - 1))); n > 1 {
		interval *= n
	}
	return interval
}

// NewDashboardOptions builds the selector options. The first site entry is
// always "All Sites".
func NewDashboardOptions(layout Layout, sites *SitesConfig, ds *Dataset) *DashboardOptions {
	entries := make([]Site, 0, len(sites.Sites)+1)
	entries = append(entries, Site{ID: types.AllSites, Label: "All Sites"})
	for _, s := range sites.Sites {
		entries = append(entries, Site{ID: s.ID, Label: s.DisplayLabel()})
	}

	marks := map[int]string{
		int(layout.SliderMin): strconv.Itoa(int(layout.SliderMin)),
		int(layout.SliderMax): strconv.Itoa(int(layout.SliderMax)),
	}
	if interval := markInterval(layout); interval > 0 {
		for v := layout.SliderMin + interval; v < layout.SliderMax; v += interval {
			marks[int(v)] = strconv.Itoa(int(v))
		}
	}

	return &DashboardOptions{
		Title:       layout.Title,
		Sites:       entries,
		DefaultSite: types.AllSites,
		Payload: SliderOptions{
			Min:   layout.SliderMin,
			Max:   layout.SliderMax,
			Step:  layout.SliderStep,
			Marks: marks,
			Value: ds.PayloadBounds(),
		},
	}
}

// Clone returns a deep copy of the options
func (o *DashboardOptions) Clone() *DashboardOptions {
	c := *o
	c.Sites = slices.Clone(o.Sites)
	c.Payload.Marks = maps.Clone(o.Payload.Marks)
	return &c
}
