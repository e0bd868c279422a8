package model

import "github.com/secmon-lab/launchdash/pkg/domain/types"

// PayloadRange is an inclusive bound pair on payload mass in kg.
// Low > High is allowed and matches nothing.
type PayloadRange struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// Contains reports whether v lies within [Low, High]
func (r PayloadRange) Contains(v float64) bool {
	return r.Low <= v && v <= r.High
}

// IsEmpty reports whether no value can satisfy the range
func (r PayloadRange) IsEmpty() bool {
	return !(r.Low <= r.High)
}

// Selection is the current value of every dashboard input
type Selection struct {
	Site    types.SiteID `json:"site"`
	Payload PayloadRange `json:"payload"`
}

// NewSelection returns the initial selection: all sites, full payload range
func NewSelection(ds *Dataset) Selection {
	return Selection{
		Site:    types.AllSites,
		Payload: ds.PayloadBounds(),
	}
}

// InputEvent is a single user interaction: the input that changed and the
// selection after the change
type InputEvent struct {
	ID        types.EventID `json:"event_id"`
	Input     types.InputID `json:"input"`
	Selection Selection     `json:"selection"`
}
