package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pfrederiksen/enea-outages/internal/outage"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// timeLayout is how timestamps are rendered in text output.
const timeLayout = "2006-01-02 15:04"

// OutputResult contains data to be output
type OutputResult struct {
	CheckedAt   time.Time        `json:"checked_at"`
	Region      string           `json:"region,omitempty"`
	Type        outage.Type      `json:"type,omitempty"`
	Address     string           `json:"address,omitempty"`
	Outages     []*outage.Outage `json:"outages"`
	OutageCount int              `json:"outage_count"`
	Regions     []string         `json:"regions,omitempty"`
}

// WriteOutput writes the result in the specified format
func WriteOutput(w io.Writer, result *OutputResult, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs results as JSON
func writeJSON(w io.Writer, result *OutputResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// writeText outputs results as human-readable text
func writeText(w io.Writer, result *OutputResult) error {
	if result.Regions != nil {
		if len(result.Regions) == 0 {
			fmt.Fprintln(w, "Could not retrieve regions.")
			return nil
		}
		fmt.Fprintln(w, "Available regions:")
		for _, region := range result.Regions {
			fmt.Fprintf(w, "- %s\n", region)
		}
		return nil
	}

	if result.OutageCount == 0 {
		fmt.Fprintln(w, "No outages found for the specified criteria.")
		return nil
	}

	fmt.Fprintf(w, "Found %d outage notice(s):\n", result.OutageCount)
	for _, o := range result.Outages {
		fmt.Fprintln(w, strings.Repeat("-", 40))
		fmt.Fprintf(w, "  Region:      %s\n", o.Region)
		fmt.Fprintf(w, "  Description: %s\n", o.Description)
		if o.StartTime != nil {
			fmt.Fprintf(w, "  Start:       %s\n", o.StartTime.Format(timeLayout))
		}
		fmt.Fprintf(w, "  End:         %s\n", o.EndTime.Format(timeLayout))
	}
	fmt.Fprintln(w, strings.Repeat("-", 40))

	return nil
}
