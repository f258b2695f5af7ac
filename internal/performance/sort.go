package performance

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// sentinelYear pushes records with unparsable dates past any real
// performance so they sort last, deterministically.
const sentinelYear = 9999

// monthNumbers resolves abbreviated and full month names (lowercase) to 1-12.
var monthNumbers = map[string]int{
	"jan": 1, "january": 1,
	"feb": 2, "february": 2,
	"mar": 3, "march": 3,
	"apr": 4, "april": 4,
	"may": 5,
	"jun": 6, "june": 6,
	"jul": 7, "july": 7,
	"aug": 8, "august": 8,
	"sep": 9, "sept": 9, "september": 9,
	"oct": 10, "october": 10,
	"nov": 11, "november": 11,
	"dec": 12, "december": 12,
}

// clockPattern matches a normalized time string such as "7:30PM" or "19:30".
var clockPattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})(AM|PM)?$`)

// sortKey is the canonical calendar tuple derived from a record's textual
// date and time.
type sortKey struct {
	year, month, day, hour, minute int
}

func maximalKey() sortKey {
	return sortKey{year: sentinelYear, month: 12, day: 31, hour: 23, minute: 59}
}

func (k sortKey) less(other sortKey) bool {
	if k.year != other.year {
		return k.year < other.year
	}
	if k.month != other.month {
		return k.month < other.month
	}
	if k.day != other.day {
		return k.day < other.day
	}
	if k.hour != other.hour {
		return k.hour < other.hour
	}
	return k.minute < other.minute
}

// parseDateTokens splits "Sat 15 November 2025" or "15 Nov 2025" into
// calendar components. Any other token count, an unknown month, or a
// non-numeric day/year means the date is unparsable.
func parseDateTokens(date string) (day, month, year int, ok bool) {
	tokens := strings.Fields(date)
	if len(tokens) == 4 {
		tokens = tokens[1:] // drop leading weekday
	}
	if len(tokens) != 3 {
		return 0, 0, 0, false
	}
	day, err := strconv.Atoi(tokens[0])
	if err != nil {
		return 0, 0, 0, false
	}
	month, found := monthNumbers[strings.ToLower(tokens[1])]
	if !found {
		return 0, 0, 0, false
	}
	year, err = strconv.Atoi(tokens[2])
	if err != nil {
		return 0, 0, 0, false
	}
	return day, month, year, true
}

// parseClock converts a normalized time string to a 24-hour clock.
// 12AM maps to hour 0, 12PM stays 12, and other PM hours gain 12.
func parseClock(clock string) (hour, minute int, ok bool) {
	matches := clockPattern.FindStringSubmatch(clock)
	if matches == nil {
		return 0, 0, false
	}
	hour, _ = strconv.Atoi(matches[1])
	minute, _ = strconv.Atoi(matches[2])
	if hour > 23 || minute > 59 {
		return 0, 0, false
	}
	switch matches[3] {
	case "AM":
		if hour == 12 {
			hour = 0
		}
	case "PM":
		if hour < 12 {
			hour += 12
		}
	}
	return hour, minute, true
}

// key maps a record to its sort key. Any parse failure yields the maximal
// key so malformed records never corrupt the ordering of well-formed ones.
func (r Record) key() sortKey {
	day, month, year, ok := parseDateTokens(r.Date)
	if !ok {
		return maximalKey()
	}
	hour, minute, ok := parseClock(r.Time)
	if !ok {
		return maximalKey()
	}
	return sortKey{year: year, month: month, day: day, hour: hour, minute: minute}
}

// StartTime returns the performance start as a local calendar value.
// The boolean is false when the record's date or time cannot be parsed.
// Dates are calendar tuples, not instants; UTC is used as a neutral location.
func (r Record) StartTime() (time.Time, bool) {
	day, month, year, ok := parseDateTokens(r.Date)
	if !ok {
		return time.Time{}, false
	}
	hour, minute, ok := parseClock(r.Time)
	if !ok {
		return time.Time{}, false
	}
	return time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.UTC), true
}

// SortChronologically orders records by their calendar sort key, earliest
// first. Records with unparsable dates or times sort last. The sort is
// stable: records with equal keys keep their original relative order.
func SortChronologically(records []Record) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].key().less(records[j].key())
	})
}
