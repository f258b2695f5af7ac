package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/maskins/ticketwatch/internal/render"
)

// WriteStepSummary appends a Markdown report to the file named by
// GITHUB_STEP_SUMMARY. Outside a GitHub Actions job the variable is unset
// and nothing is written.
func WriteStepSummary(result *OutputResult) error {
	path := os.Getenv("GITHUB_STEP_SUMMARY")
	if path == "" {
		return nil
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("opening step summary: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(buildSummary(result)); err != nil {
		return fmt.Errorf("writing step summary: %w", err)
	}
	return nil
}

// buildSummary renders the Markdown report for one check.
func buildSummary(result *OutputResult) string {
	var out strings.Builder

	out.WriteString("## Ticket availability\n\n")
	fmt.Fprintf(&out, "**Event:** %s\n\n", result.EventURL)
	fmt.Fprintf(&out, "_Checked at %s_\n\n", result.CheckedAt.Format(time.RFC3339))

	if len(result.Records) == 0 {
		out.WriteString("No performances found.\n")
		return out.String()
	}

	out.WriteString(render.BuildRowTable(result.Records).Markdown())

	if len(result.NewlyBookable) > 0 {
		fmt.Fprintf(&out, "\n### Newly bookable (%d)\n\n", len(result.NewlyBookable))
		out.WriteString(render.BuildRowTable(result.NewlyBookable).Markdown())
	}
	return out.String()
}
