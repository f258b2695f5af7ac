package performance

import "strings"

// Status is the normalized availability of a performance.
type Status string

const (
	StatusNotOnSale Status = "not_on_sale"
	StatusLimited   Status = "limited"
	StatusSoldOut   Status = "sold_out"
	StatusAvailable Status = "available"
	StatusUnknown   Status = "unknown"
)

// Label returns the human-readable form of a status.
func (s Status) Label() string {
	switch s {
	case StatusNotOnSale:
		return "Not on sale"
	case StatusLimited:
		return "Limited"
	case StatusSoldOut:
		return "Sold out"
	case StatusAvailable:
		return "Available"
	default:
		return "Unknown"
	}
}

// Bookable reports whether tickets can currently be bought for a
// performance in this status.
func (s Status) Bookable() bool {
	return s == StatusAvailable || s == StatusLimited
}

// ParseStatus converts user-supplied text ("sold_out", "Sold out", "soldout")
// to a Status. Returns StatusUnknown and false when the text matches nothing.
func ParseStatus(text string) (Status, bool) {
	normalized := strings.ToLower(strings.TrimSpace(text))
	normalized = strings.NewReplacer(" ", "_", "-", "_").Replace(normalized)
	switch normalized {
	case "not_on_sale", "notonsale":
		return StatusNotOnSale, true
	case "limited":
		return StatusLimited, true
	case "sold_out", "soldout":
		return StatusSoldOut, true
	case "available":
		return StatusAvailable, true
	case "unknown":
		return StatusUnknown, true
	}
	return StatusUnknown, false
}

// bookingHints are the positive purchase-intent words looked for both in row
// text and in the visible text of candidate booking links.
var bookingHints = []string{"book", "select", "choose seats", "reserve", "purchase", "available"}

// HasBookingHint reports whether text contains a purchase-intent word.
// Matching is case-insensitive.
func HasBookingHint(text string) bool {
	lower := strings.ToLower(text)
	for _, hint := range bookingHints {
		if strings.Contains(lower, hint) {
			return true
		}
	}
	return false
}

// classifierRule is one precedence-ranked classification rule. Rules are
// evaluated in slice order and the first match wins.
type classifierRule struct {
	status Status
	match  func(lowerText string, hasBookingLink bool) bool
}

func containsAny(phrases ...string) func(string, bool) bool {
	return func(lowerText string, _ bool) bool {
		for _, phrase := range phrases {
			if strings.Contains(lowerText, phrase) {
				return true
			}
		}
		return false
	}
}

// classifierRules is the ordered rule table. Negative statuses are checked
// before the booking-hint rule: a row carrying both a "Sold out" label and a
// "Book" link classifies as sold out.
var classifierRules = []classifierRule{
	{StatusNotOnSale, containsAny("not on sale")},
	{StatusLimited, containsAny("limited")},
	{StatusSoldOut, containsAny("sold out", "unavailable", "returns only")},
	{StatusAvailable, func(lowerText string, hasBookingLink bool) bool {
		return hasBookingLink || HasBookingHint(lowerText)
	}},
}

// Classify derives the availability status for a row of scraped text.
// hasBookingLink is true when the extraction pipeline found a booking-like
// link inside the row. Text that matches no rule yields StatusUnknown;
// classification never fails.
func Classify(text string, hasBookingLink bool) Status {
	lower := strings.ToLower(text)
	for _, rule := range classifierRules {
		if rule.match(lower, hasBookingLink) {
			return rule.status
		}
	}
	return StatusUnknown
}
