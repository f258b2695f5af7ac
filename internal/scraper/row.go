package scraper

import "strings"

// ParseRow extracts the date and time of a performance from one block of row
// text. Both returned strings are empty when the text contains no
// recognizable date-and-time expression; that is a normal outcome, not an
// error.
//
// The date is reassembled from the captured weekday (when present), day,
// month, and year, joined by single spaces. The time is uppercased with all
// whitespace removed, so " 7:30 pm " becomes "7:30PM".
func ParseRow(text string) (date, clock string) {
	matches := rowPattern.FindStringSubmatch(text)
	if matches == nil {
		return "", ""
	}

	parts := make([]string, 0, 4)
	if matches[1] != "" {
		parts = append(parts, matches[1])
	}
	parts = append(parts, matches[2], matches[3], matches[4])

	return strings.Join(parts, " "), strings.ToUpper(stripSpaces(matches[5]))
}
