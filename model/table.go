package model

import (
	"fmt"
	"strings"
)

// Table represents a detected table: ordered rows of cell strings.
//
// Before assembly, rows may differ in length (flexible detection can
// under-group). After assembly every row has identical length, shorter
// rows having been padded on the right with empty strings (never
// truncated), and Index holds the table's 1-based workbook position.
type Table struct {
	Page  int        // 1-indexed page the table was detected on
	Index int        // 1-based workbook position, assigned at assembly
	Rows  [][]string // Row-major cell text
}

// NewTable creates an empty table for the given page.
func NewTable(page int) *Table {
	return &Table{
		Page: page,
		Rows: make([][]string, 0),
	}
}

// AddRow appends a row of cell text to the table.
func (t *Table) AddRow(cells []string) {
	t.Rows = append(t.Rows, cells)
}

// RowCount returns the number of rows
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// ColCount returns the widest row's cell count. Once a table has been
// assembled this is every row's cell count.
func (t *Table) ColCount() int {
	max := 0
	for _, row := range t.Rows {
		if len(row) > max {
			max = len(row)
		}
	}
	return max
}

// Cell returns the cell text at the given row and column (0-indexed).
// Out-of-range positions return the empty string.
func (t *Table) Cell(row, col int) string {
	if row < 0 || row >= len(t.Rows) {
		return ""
	}
	if col < 0 || col >= len(t.Rows[row]) {
		return ""
	}
	return t.Rows[row][col]
}

// IsRectangular reports whether every row has the same cell count.
func (t *Table) IsRectangular() bool {
	if len(t.Rows) == 0 {
		return true
	}
	width := len(t.Rows[0])
	for _, row := range t.Rows[1:] {
		if len(row) != width {
			return false
		}
	}
	return true
}

// SheetName returns the worksheet name for the table's workbook position.
func (t *Table) SheetName() string {
	return fmt.Sprintf("Table_%d", t.Index)
}

// GetText concatenates the table content, tab-separated within rows.
func (t *Table) GetText() string {
	var sb strings.Builder
	for _, row := range t.Rows {
		for j, cell := range row {
			sb.WriteString(cell)
			if j < len(row)-1 {
				sb.WriteString("\t")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// ToCSV converts the table to CSV format
func (t *Table) ToCSV() string {
	var sb strings.Builder
	for _, row := range t.Rows {
		for j, cell := range row {
			// Escape quotes and wrap in quotes if necessary
			if strings.Contains(cell, ",") || strings.Contains(cell, "\"") || strings.Contains(cell, "\n") {
				cell = "\"" + strings.ReplaceAll(cell, "\"", "\"\"") + "\""
			}
			sb.WriteString(cell)
			if j < len(row)-1 {
				sb.WriteString(",")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
