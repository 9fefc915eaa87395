// Package cli implements the enea-outages command-line interface.
//
// The root command fetches outage notices for a region and notice category,
// optionally narrowed to an address, or lists the regions the operator
// publishes pages for. Results are printed as human-readable text or JSON.
package cli
