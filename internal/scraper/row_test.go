package scraper

import (
	"reflect"
	"testing"
)

func TestParseRow(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		expectedDate string
		expectedTime string
	}{
		{"weekday and full month", "Sat 15 November 2025, 7:30pm", "Sat 15 November 2025", "7:30PM"},
		{"no weekday abbreviated month", "15 Nov 2025 19:30", "15 Nov 2025", "19:30"},
		{"surrounding label text", "Evening performance - 15 November 2025, 7:30pm - Book now", "15 November 2025", "7:30PM"},
		{"spaced meridiem", "Thu 20 Feb 2025  7:45 pm", "Thu 20 Feb 2025", "7:45PM"},
		{"full weekday name", "Saturday 1 March 2026 2:30PM", "Saturday 1 March 2026", "2:30PM"},
		{"comma only separator", "5 Feb 2025,19:30", "5 Feb 2025", "19:30"},
		{"no match", "Box office closed for refurbishment", "", ""},
		{"date without time", "15 November 2025", "", ""},
		{"time without date", "Doors at 7:30pm", "", ""},
		{"empty", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, clock := ParseRow(tt.text)
			if date != tt.expectedDate || clock != tt.expectedTime {
				t.Errorf("ParseRow(%q) = (%q, %q), expected (%q, %q)",
					tt.text, date, clock, tt.expectedDate, tt.expectedTime)
			}
		})
	}
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{"newlines", "first line\nsecond line\n\nthird", []string{"first line", "second line", "third"}},
		{"double spaces", "Sat 15 Nov 2025 7:30pm  Sold out  Book", []string{"Sat 15 Nov 2025 7:30pm", "Sold out", "Book"}},
		{"tabs and nbsp", "one\ttwo\u00A0three", []string{"one", "two", "three"}},
		{"single spaces kept", "all one line here", []string{"all one line here"}},
		{"blank", "  \n \t ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SplitLines(tt.text)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("SplitLines(%q) = %v, expected %v", tt.text, result, tt.expected)
			}
		})
	}
}

func TestCollapseSpaces(t *testing.T) {
	if got := CollapseSpaces("  Sat  15   Nov\n2025  "); got != "Sat 15 Nov 2025" {
		t.Errorf("CollapseSpaces = %q", got)
	}
}
