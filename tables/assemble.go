package tables

import (
	"github.com/tsawler/tabella/model"
)

// Assemble finalizes detected tables for the workbook: every row is padded
// on the right with empty cells up to its table's widest row, and each
// table receives its 1-based workbook position. Rows are never truncated.
//
// The caller supplies tables in page order, detection order within each
// page; assembly preserves that order, so the assigned indices are the
// final sheet order. The input slice is modified in place and returned.
func Assemble(tables []*model.Table) []*model.Table {
	for i, t := range tables {
		pad(t)
		t.Index = i + 1
	}
	return tables
}

// pad widens every row to the table's widest row with empty cells.
func pad(t *model.Table) {
	width := t.ColCount()
	for i, cells := range t.Rows {
		for len(cells) < width {
			cells = append(cells, "")
		}
		t.Rows[i] = cells
	}
}
