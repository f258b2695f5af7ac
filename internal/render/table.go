package render

import (
	"fmt"
	"strings"

	"github.com/maskins/ticketwatch/internal/performance"
)

const (
	// maxColumnWidth keeps one pathological cell (usually a long booking
	// URL) from blowing up the whole table.
	maxColumnWidth = 60
	truncationMark = "..."
)

var tableHeader = []string{"Date", "Time", "Status", "Link"}

// TextTable renders records as a fixed-width table with Date, Time, Status,
// and Link columns. Column widths are computed from content, never narrower
// than the header and never wider than maxColumnWidth. Rows appear in the
// order given.
func TextTable(records []performance.Record) string {
	rows := recordCells(records)

	widths := make([]int, len(tableHeader))
	for i, header := range tableHeader {
		widths[i] = len(header)
	}
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}
	for i := range widths {
		if widths[i] > maxColumnWidth {
			widths[i] = maxColumnWidth
		}
	}

	var out strings.Builder
	writeRow := func(cells []string) {
		out.WriteString("|")
		for i, cell := range cells {
			fmt.Fprintf(&out, " %-*s |", widths[i], clipCell(cell, widths[i]))
		}
		out.WriteString("\n")
	}

	writeRow(tableHeader)
	out.WriteString("|")
	for _, width := range widths {
		out.WriteString(strings.Repeat("-", width+2))
		out.WriteString("|")
	}
	out.WriteString("\n")
	for _, row := range rows {
		writeRow(row)
	}
	return out.String()
}

// clipCell truncates a cell that exceeds the column width.
func clipCell(cell string, width int) string {
	if len(cell) <= width {
		return cell
	}
	if width <= len(truncationMark) {
		return cell[:width]
	}
	return cell[:width-len(truncationMark)] + truncationMark
}

// recordCells maps records to their table cells.
func recordCells(records []performance.Record) [][]string {
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		date := rec.Date
		if date == "" {
			date = "?"
		}
		clock := rec.Time
		if clock == "" {
			clock = "?"
		}
		rows = append(rows, []string{date, clock, rec.Status.Label(), rec.Href})
	}
	return rows
}
