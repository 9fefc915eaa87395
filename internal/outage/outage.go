package outage

import (
	"fmt"
	"time"
)

// Sentinel field values used when a notice block is missing a sub-element.
// They match the wording the Enea page itself uses for absent data.
const (
	UnknownRegion = "Nieznany obszar"
	NoDescription = "Brak opisu"
)

// Outage represents a single power-outage notice published by Enea Operator.
type Outage struct {
	Region      string     `json:"region"`
	Description string     `json:"description"`
	StartTime   *time.Time `json:"start_time,omitempty"`
	EndTime     time.Time  `json:"end_time"`
}

// Type identifies one of the two notice categories the operator publishes.
// The values double as the CLI-facing names; PageParam maps them to the
// literal query-parameter tokens the remote endpoint expects.
type Type string

const (
	TypePlanned   Type = "planned"
	TypeUnplanned Type = "unplanned"
)

// PageParam returns the literal "page" query value for this category.
func (t Type) PageParam() string {
	if t == TypePlanned {
		return "planowane"
	}
	return "awarie"
}

// ParseType maps user input to a Type, rejecting anything outside the
// two known categories.
func ParseType(s string) (Type, error) {
	switch Type(s) {
	case TypePlanned:
		return TypePlanned, nil
	case TypeUnplanned:
		return TypeUnplanned, nil
	default:
		return "", fmt.Errorf("unknown outage type %q (must be %q or %q)", s, TypePlanned, TypeUnplanned)
	}
}
