package types

import "github.com/google/uuid"

// InputID names a dashboard input widget
type InputID string

// String returns the string representation
func (id InputID) String() string {
	return string(id)
}

// OutputID names a dashboard output (chart)
type OutputID string

// String returns the string representation
func (id OutputID) String() string {
	return string(id)
}

const (
	InputSite    InputID = "site-dropdown"
	InputPayload InputID = "payload-slider"

	OutputSuccessPie     OutputID = "success-pie-chart"
	OutputPayloadScatter OutputID = "success-payload-scatter-chart"
)

// EventID identifies a single input change event
type EventID string

// String returns the string representation
func (id EventID) String() string {
	return string(id)
}

// NewEventID creates a new EventID
func NewEventID() EventID {
	return EventID(uuid.New().String())
}
