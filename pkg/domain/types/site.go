package types

// SiteID represents a launch site identifier (e.g. "KSC LC-39A")
type SiteID string

// AllSites is the selector value meaning "no site restriction"
const AllSites SiteID = "ALL"

// String returns the string representation
func (id SiteID) String() string {
	return string(id)
}

// IsAll reports whether the ID is the AllSites sentinel
func (id SiteID) IsAll() bool {
	return id == AllSites
}

// OutcomeClass is the binary launch outcome (1 = success, 0 = failure)
type OutcomeClass int

const (
	OutcomeFailure OutcomeClass = 0
	OutcomeSuccess OutcomeClass = 1
)

// String returns "1" or "0"
func (c OutcomeClass) String() string {
	if c == OutcomeSuccess {
		return "1"
	}
	return "0"
}

// IsValid checks if the class is one of the two known values
func (c OutcomeClass) IsValid() bool {
	switch c {
	case OutcomeFailure, OutcomeSuccess:
		return true
	default:
		return false
	}
}
