package performance

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name           string
		text           string
		hasBookingLink bool
		expected       Status
	}{
		{"not on sale", "Tickets not on sale yet", false, StatusNotOnSale},
		{"limited", "Limited availability", false, StatusLimited},
		{"sold out", "Sat 15 Nov 2025 7:30pm Sold Out", false, StatusSoldOut},
		{"unavailable", "This performance is unavailable", false, StatusSoldOut},
		{"returns only", "Returns only", false, StatusSoldOut},
		{"booking link", "Sat 15 Nov 2025 7:30pm", true, StatusAvailable},
		{"book hint word", "Thu 20 Feb 2025 7:45pm Book now", false, StatusAvailable},
		{"choose seats hint", "Fri 21 Feb 2025 7:45pm Choose seats", false, StatusAvailable},
		{"no signal", "Thu 20 Feb 2025 7:45pm", false, StatusUnknown},
		{"case insensitive", "SOLD OUT", false, StatusSoldOut},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Classify(tt.text, tt.hasBookingLink)
			if result != tt.expected {
				t.Errorf("Classify(%q, %v) = %q, expected %q", tt.text, tt.hasBookingLink, result, tt.expected)
			}
		})
	}
}

// A row can carry both a sold-out label and a booking affordance when
// adjacent rows bleed into one scraped blob. Negative statuses must win
// regardless of the booking link.
func TestClassifyPrecedence(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected Status
	}{
		{"sold out beats book link", "Sold out - Book tickets", StatusSoldOut},
		{"not on sale beats book link", "Tickets not on sale - Book", StatusNotOnSale},
		{"limited beats sold out", "Limited - next show sold out", StatusLimited},
		{"not on sale beats limited", "not on sale, limited run", StatusNotOnSale},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := Classify(tt.text, true); result != tt.expected {
				t.Errorf("Classify(%q, true) = %q, expected %q", tt.text, result, tt.expected)
			}
		})
	}
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		input    string
		expected Status
		ok       bool
	}{
		{"sold_out", StatusSoldOut, true},
		{"Sold Out", StatusSoldOut, true},
		{"soldout", StatusSoldOut, true},
		{"available", StatusAvailable, true},
		{"not-on-sale", StatusNotOnSale, true},
		{"limited", StatusLimited, true},
		{"unknown", StatusUnknown, true},
		{"nonsense", StatusUnknown, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, ok := ParseStatus(tt.input)
			if result != tt.expected || ok != tt.ok {
				t.Errorf("ParseStatus(%q) = (%q, %v), expected (%q, %v)", tt.input, result, ok, tt.expected, tt.ok)
			}
		})
	}
}

func TestStatusBookable(t *testing.T) {
	if !StatusAvailable.Bookable() || !StatusLimited.Bookable() {
		t.Error("available and limited should be bookable")
	}
	if StatusSoldOut.Bookable() || StatusNotOnSale.Bookable() || StatusUnknown.Bookable() {
		t.Error("sold out, not on sale, and unknown should not be bookable")
	}
}
