package render

import (
	"strings"

	"github.com/maskins/ticketwatch/internal/performance"
)

// RowTable is a row-oriented view of the record list for external rendering
// (Markdown step summaries, chat messages). Cells are already escaped for
// pipe-delimited output.
type RowTable struct {
	Header []string
	Rows   [][]string
}

// BuildRowTable converts records to a RowTable with the same columns as the
// text table.
func BuildRowTable(records []performance.Record) RowTable {
	cells := recordCells(records)
	rows := make([][]string, 0, len(cells))
	for _, row := range cells {
		escaped := make([]string, len(row))
		for i, cell := range row {
			escaped[i] = escapeCell(cell)
		}
		rows = append(rows, escaped)
	}
	return RowTable{Header: append([]string(nil), tableHeader...), Rows: rows}
}

// Markdown renders the table as a GitHub-flavored Markdown table.
func (t RowTable) Markdown() string {
	var out strings.Builder
	out.WriteString("| ")
	out.WriteString(strings.Join(t.Header, " | "))
	out.WriteString(" |\n|")
	for range t.Header {
		out.WriteString("---|")
	}
	out.WriteString("\n")
	for _, row := range t.Rows {
		out.WriteString("| ")
		out.WriteString(strings.Join(row, " | "))
		out.WriteString(" |\n")
	}
	return out.String()
}

// escapeCell neutralizes characters that would corrupt table cell
// boundaries: literal pipes are escaped and line breaks become spaces.
func escapeCell(cell string) string {
	cell = strings.ReplaceAll(cell, "|", `\|`)
	cell = strings.ReplaceAll(cell, "\n", " ")
	return cell
}
