package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/maskins/ticketwatch/internal/performance"
	"github.com/maskins/ticketwatch/internal/render"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// OutputResult contains the data of one completed check.
type OutputResult struct {
	RunID         string               `json:"run_id"`
	CheckedAt     time.Time            `json:"checked_at"`
	EventURL      string               `json:"event_url"`
	Records       []performance.Record `json:"records"`
	Available     []performance.Record `json:"available"`
	NewlyBookable []performance.Record `json:"newly_bookable"`
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
	fmt.Fprintf(w, "Checked %s at %s\n\n", result.EventURL, result.CheckedAt.Format(time.RFC3339))

	if len(result.Records) == 0 {
		fmt.Fprintln(w, "No performances found.")
		return nil
	}

	fmt.Fprint(w, render.TextTable(result.Records))
	fmt.Fprintf(w, "\n%d of %d performances match the availability filter.\n",
		len(result.Available), len(result.Records))

	if len(result.NewlyBookable) == 0 {
		fmt.Fprintln(w, "\nNo newly bookable performances.")
		return nil
	}

	fmt.Fprintf(w, "\nNewly bookable (%d):\n", len(result.NewlyBookable))
	for _, rec := range result.NewlyBookable {
		line := strings.TrimSpace(rec.Date + " " + rec.Time)
		if line == "" {
			line = rec.Raw
		}
		fmt.Fprintf(w, "  NEW: %s (%s)", line, rec.Status.Label())
		if rec.Href != "" {
			fmt.Fprintf(w, " %s", rec.Href)
		}
		fmt.Fprintln(w)
	}
	return nil
}
