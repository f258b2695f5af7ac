package cli

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/maskins/ticketwatch/internal/performance"
)

func sampleResult() *OutputResult {
	records := []performance.Record{
		{Date: "Sat 15 November 2025", Time: "7:30PM", Status: performance.StatusAvailable, Href: "https://tickets.example.com/book/1001"},
		{Date: "Sun 16 November 2025", Time: "2:30PM", Status: performance.StatusSoldOut},
	}
	return &OutputResult{
		RunID:         "run-1",
		CheckedAt:     time.Date(2025, 11, 1, 9, 0, 0, 0, time.UTC),
		EventURL:      "https://tickets.example.com/events/7992",
		Records:       records,
		Available:     records[:1],
		NewlyBookable: records[:1],
	}
}

func TestWriteOutputText(t *testing.T) {
	var out strings.Builder
	if err := WriteOutput(&out, sampleResult(), FormatText); err != nil {
		t.Fatalf("WriteOutput failed: %v", err)
	}

	text := out.String()
	for _, want := range []string{
		"Checked https://tickets.example.com/events/7992",
		"Sat 15 November 2025",
		"Sold out",
		"1 of 2 performances match",
		"NEW: Sat 15 November 2025 7:30PM (Available)",
		"https://tickets.example.com/book/1001",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("expected %q in text output:\n%s", want, text)
		}
	}
}

func TestWriteOutputTextEmpty(t *testing.T) {
	result := sampleResult()
	result.Records = nil
	result.Available = nil
	result.NewlyBookable = nil

	var out strings.Builder
	if err := WriteOutput(&out, result, FormatText); err != nil {
		t.Fatalf("WriteOutput failed: %v", err)
	}
	if !strings.Contains(out.String(), "No performances found.") {
		t.Errorf("expected empty-run message, got:\n%s", out.String())
	}
}

func TestWriteOutputTextNoNewlyBookable(t *testing.T) {
	result := sampleResult()
	result.NewlyBookable = nil

	var out strings.Builder
	if err := WriteOutput(&out, result, FormatText); err != nil {
		t.Fatalf("WriteOutput failed: %v", err)
	}
	if !strings.Contains(out.String(), "No newly bookable performances.") {
		t.Errorf("expected no-new message, got:\n%s", out.String())
	}
}

func TestWriteOutputJSON(t *testing.T) {
	var out strings.Builder
	if err := WriteOutput(&out, sampleResult(), FormatJSON); err != nil {
		t.Fatalf("WriteOutput failed: %v", err)
	}

	var decoded OutputResult
	if err := json.Unmarshal([]byte(out.String()), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.EventURL != "https://tickets.example.com/events/7992" {
		t.Errorf("unexpected event URL: %q", decoded.EventURL)
	}
	if len(decoded.Records) != 2 || len(decoded.NewlyBookable) != 1 {
		t.Errorf("unexpected record counts: %d records, %d newly bookable",
			len(decoded.Records), len(decoded.NewlyBookable))
	}
	if decoded.Records[1].Status != performance.StatusSoldOut {
		t.Errorf("expected sold_out status to round-trip, got %q", decoded.Records[1].Status)
	}
}

func TestWriteOutputUnknownFormat(t *testing.T) {
	var out strings.Builder
	if err := WriteOutput(&out, sampleResult(), OutputFormat("xml")); err == nil {
		t.Error("expected error for unknown format")
	}
}
