// Package outage provides types and date parsing for Enea Operator outage notices.
//
// The package defines the Outage record produced by the scraper, the closed
// set of notice categories the operator publishes (planned and unplanned),
// and the parser that normalizes the Polish free-text date line found in each
// notice into concrete timestamps.
package outage
