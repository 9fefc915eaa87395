// Package filter provides client-side filtering of outage notices.
//
// The Enea endpoint only scopes results by region and notice category;
// narrowing a listing to a street or address happens locally by matching
// the notice description. Matching is a case-insensitive substring test
// against the description only, never the region label.
//
// Example usage:
//
//	f := &filter.Filter{Address: "Zakopiańska"}
//	affected := f.Apply(outages)
package filter

import (
	"strings"

	"github.com/pfrederiksen/enea-outages/internal/outage"
)

// Filter represents outage filtering criteria
type Filter struct {
	// Address narrows results to notices whose description contains this
	// text (case-insensitive substring match).
	Address string `json:"address,omitempty"`
}

// IsEmpty checks if the filter has any active criteria.
// An empty filter matches all notices.
func (f *Filter) IsEmpty() bool {
	return strings.TrimSpace(f.Address) == ""
}

// Matches checks if a notice passes all active filter criteria.
func (f *Filter) Matches(o *outage.Outage) bool {
	if f.IsEmpty() {
		return true
	}
	return strings.Contains(
		strings.ToLower(o.Description),
		strings.ToLower(strings.TrimSpace(f.Address)),
	)
}

// Apply returns the notices that match the filter, preserving input order.
func (f *Filter) Apply(outages []*outage.Outage) []*outage.Outage {
	if f.IsEmpty() {
		return outages
	}

	matched := make([]*outage.Outage, 0, len(outages))
	for _, o := range outages {
		if f.Matches(o) {
			matched = append(matched, o)
		}
	}
	return matched
}
