package render

import (
	"strings"
	"testing"

	"github.com/maskins/ticketwatch/internal/performance"
)

func sampleRecords() []performance.Record {
	return []performance.Record{
		{Date: "Mon 3 November 2025", Time: "19:00", Status: performance.StatusSoldOut},
		{Date: "Sat 15 November 2025", Time: "7:30PM", Status: performance.StatusAvailable, Href: "https://tickets.example.com/book/1001"},
	}
}

func TestTextTable(t *testing.T) {
	table := TextTable(sampleRecords())
	lines := strings.Split(strings.TrimRight(table, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header, separator, and 2 rows, got %d lines:\n%s", len(lines), table)
	}

	if !strings.Contains(lines[0], "Date") || !strings.Contains(lines[0], "Status") {
		t.Errorf("unexpected header line: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "|--") {
		t.Errorf("unexpected separator line: %q", lines[1])
	}
	if !strings.Contains(lines[2], "Sold out") {
		t.Errorf("expected sold out row first, got %q", lines[2])
	}
	if !strings.Contains(lines[3], "https://tickets.example.com/book/1001") {
		t.Errorf("expected booking link in row, got %q", lines[3])
	}

	// Fixed width: every line is equally long.
	for i := 1; i < len(lines); i++ {
		if len(lines[i]) != len(lines[0]) {
			t.Errorf("line %d width %d differs from header width %d", i, len(lines[i]), len(lines[0]))
		}
	}
}

func TestTextTableClipsLongCells(t *testing.T) {
	long := performance.Record{
		Date:   "Sat 15 November 2025",
		Time:   "7:30PM",
		Status: performance.StatusAvailable,
		Href:   "https://tickets.example.com/" + strings.Repeat("x", 100),
	}
	table := TextTable([]performance.Record{long})
	for _, line := range strings.Split(table, "\n") {
		if len(line) > maxColumnWidth*len(tableHeader)+16 {
			t.Errorf("line too wide (%d chars): %q", len(line), line)
		}
	}
	if !strings.Contains(table, "...") {
		t.Error("expected truncation mark in clipped cell")
	}
}

func TestTextTableEmpty(t *testing.T) {
	table := TextTable(nil)
	if !strings.Contains(table, "Date") {
		t.Errorf("empty table should still render a header, got %q", table)
	}
}

func TestBuildRowTable(t *testing.T) {
	table := BuildRowTable(sampleRecords())
	if len(table.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(table.Rows))
	}
	if table.Rows[0][2] != "Sold out" {
		t.Errorf("expected status label, got %q", table.Rows[0][2])
	}
}

func TestRowTableEscapesPipes(t *testing.T) {
	records := []performance.Record{
		{Date: "15 Nov 2025 | matinee", Time: "2:30PM", Status: performance.StatusAvailable},
	}
	table := BuildRowTable(records)
	if table.Rows[0][0] != `15 Nov 2025 \| matinee` {
		t.Errorf("expected escaped pipe, got %q", table.Rows[0][0])
	}

	markdown := table.Markdown()
	if !strings.Contains(markdown, `\|`) {
		t.Error("expected escaped pipe in markdown output")
	}
	if !strings.Contains(markdown, "| Date | Time | Status | Link |") {
		t.Errorf("unexpected markdown header:\n%s", markdown)
	}
}
