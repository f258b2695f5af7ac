// Package calendar generates iCalendar entries for performances.
package calendar

import (
	"crypto/sha1"
	"fmt"
	"strings"
	"time"

	"github.com/maskins/ticketwatch/internal/performance"
)

// performanceDuration is assumed for DTEND; the page does not publish
// running times.
const performanceDuration = 3 * time.Hour

// GenerateICS generates an iCalendar (.ics) document for one performance.
// eventName labels the SUMMARY; eventURL is used for the UID domain and the
// URL property. Records with unparsable dates fall back to a placeholder
// slot one week out so the entry still imports.
func GenerateICS(rec performance.Record, eventName, eventURL string) string {
	var ics strings.Builder

	ics.WriteString("BEGIN:VCALENDAR\r\n")
	ics.WriteString("VERSION:2.0\r\n")
	ics.WriteString("PRODID:-//ticketwatch//ticketwatch//EN\r\n")
	ics.WriteString("CALSCALE:GREGORIAN\r\n")
	ics.WriteString("METHOD:PUBLISH\r\n")
	ics.WriteString("BEGIN:VEVENT\r\n")

	uid := sha1.Sum([]byte(eventURL + "|" + rec.PerformanceKey()))
	fmt.Fprintf(&ics, "UID:%x@ticketwatch\r\n", uid[:10])
	fmt.Fprintf(&ics, "DTSTAMP:%s\r\n", formatICSTime(time.Now().UTC()))

	start, ok := rec.StartTime()
	if !ok {
		start = time.Now().UTC().AddDate(0, 0, 7).Truncate(time.Hour)
	}
	fmt.Fprintf(&ics, "DTSTART:%s\r\n", formatICSTime(start))
	fmt.Fprintf(&ics, "DTEND:%s\r\n", formatICSTime(start.Add(performanceDuration)))

	summary := eventName
	if summary == "" {
		summary = "Performance"
	}
	fmt.Fprintf(&ics, "SUMMARY:%s\r\n", escapeICS(summary))

	description := fmt.Sprintf("%s %s - %s", rec.Date, rec.Time, rec.Status.Label())
	if rec.Href != "" {
		description += "\nBook: " + rec.Href
	}
	fmt.Fprintf(&ics, "DESCRIPTION:%s\r\n", escapeICS(description))

	if eventURL != "" {
		fmt.Fprintf(&ics, "URL:%s\r\n", eventURL)
	}
	ics.WriteString("STATUS:CONFIRMED\r\n")
	ics.WriteString("SEQUENCE:0\r\n")
	ics.WriteString("TRANSP:OPAQUE\r\n")

	ics.WriteString("END:VEVENT\r\n")
	ics.WriteString("END:VCALENDAR\r\n")

	return ics.String()
}

// formatICSTime formats a time.Time as an iCalendar datetime string.
func formatICSTime(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}

// escapeICS escapes special characters according to RFC 5545.
func escapeICS(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, ";", "\\;")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}
