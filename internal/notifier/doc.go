// Package notifier posts alerts when performances become bookable.
//
// The package provides a small Notifier interface with a Slack
// incoming-webhook implementation and a dry-run implementation that prints
// the message instead of sending it. Message formatting is shared so the
// dry run shows exactly what would be posted.
package notifier
