package notifier

import (
	"fmt"
	"strings"

	"github.com/maskins/ticketwatch/internal/performance"
)

// Notifier defines the interface for posting availability notifications.
type Notifier interface {
	// Notify posts a notification for the given newly bookable records.
	Notify(records []performance.Record) error
}

// formatMessage builds the chat message for a set of newly bookable
// performances: a bold headline and one bullet per performance.
func formatMessage(eventURL string, records []performance.Record) string {
	var msg strings.Builder
	fmt.Fprintf(&msg, "*Ticket watch:* tickets available for %s\n", eventURL)
	for _, rec := range records {
		line := strings.TrimSpace(rec.Date + " " + rec.Time)
		if line == "" {
			line = rec.Raw
		}
		fmt.Fprintf(&msg, "• %s (%s)", line, rec.Status.Label())
		if rec.Href != "" {
			fmt.Fprintf(&msg, " %s", rec.Href)
		}
		msg.WriteString("\n")
	}
	return strings.TrimRight(msg.String(), "\n")
}
