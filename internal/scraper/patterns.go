package scraper

import (
	"regexp"
	"strings"
	"unicode"
)

// Pattern fragments for performance row text. Dates look like
// "Sat 15 November 2025" with the weekday optional; times look like "19:30"
// or "7:30pm". The row pattern is a search, not an anchored match, so label
// text around the date is fine: "Evening performance - 15 November 2025,
// 7:30pm - Book now".
const (
	weekdayPattern = `Mon(?:day)?|Tue(?:s(?:day)?)?|Wed(?:nesday)?|Thu(?:r(?:s(?:day)?)?)?|Fri(?:day)?|Sat(?:urday)?|Sun(?:day)?`
	monthPattern   = `Jan(?:uary)?|Feb(?:ruary)?|Mar(?:ch)?|Apr(?:il)?|May|Jun(?:e)?|Jul(?:y)?|Aug(?:ust)?|Sep(?:t(?:ember)?)?|Oct(?:ober)?|Nov(?:ember)?|Dec(?:ember)?`
	timePattern    = `\d{1,2}:\d{2}\s*(?:AM|PM)?`
)

// rowPattern captures weekday (optional), day, month, year, and time from a
// performance row. Comma or whitespace may separate the date from the time.
var rowPattern = regexp.MustCompile(
	`(?i)\b(?:(` + weekdayPattern + `)\s+)?(\d{1,2})\s+(` + monthPattern + `)\s+(\d{4})[\s,]*(` + timePattern + `)`,
)

// lineBoundaryPattern splits coarse container text into logical lines:
// newlines, tabs, non-breaking spaces, and runs of two or more spaces all
// act as row boundaries.
var lineBoundaryPattern = regexp.MustCompile(`\r?\n|\t|\x{00A0}| {2,}`)

// CollapseSpaces normalizes whitespace runs in text to single spaces and
// trims the ends.
func CollapseSpaces(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// SplitLines breaks a coarse text block on line-break-like boundaries and
// returns the non-empty lines with their internal whitespace collapsed.
func SplitLines(text string) []string {
	var lines []string
	for _, part := range lineBoundaryPattern.Split(text, -1) {
		if line := CollapseSpaces(part); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// stripSpaces removes every whitespace rune, including non-breaking spaces.
func stripSpaces(text string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, text)
}
