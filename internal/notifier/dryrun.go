package notifier

import (
	"fmt"
	"io"

	"github.com/maskins/ticketwatch/internal/performance"
)

// DryRunNotifier prints what would be posted without actually sending it.
type DryRunNotifier struct {
	eventURL string
	out      io.Writer
}

// NewDryRunNotifier creates a dry-run notifier writing to out.
func NewDryRunNotifier(eventURL string, out io.Writer) *DryRunNotifier {
	return &DryRunNotifier{eventURL: eventURL, out: out}
}

// Notify prints the message that would be posted.
func (n *DryRunNotifier) Notify(records []performance.Record) error {
	if len(records) == 0 {
		return nil
	}
	fmt.Fprintln(n.out, "--- notification (dry run) ---")
	fmt.Fprintln(n.out, formatMessage(n.eventURL, records))
	return nil
}
