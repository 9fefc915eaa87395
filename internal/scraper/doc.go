// Package scraper provides HTTP fetching and HTML parsing for Enea Operator
// power-outage notices.
//
// The scraper fetches the public outage pages from wylaczenia-eneaoperator.pl,
// selected by region and notice category, and extracts per-notice records
// including the affected area, a free-text description, and the outage time
// window. It also discovers the list of regions the operator publishes pages
// for. Parsing is pure and shared between the blocking and context-aware
// fetch variants.
package scraper
