// Package xlsx provides XLSX (Office Open XML Spreadsheet) workbook
// writing and cell sanitization for extracted tables.
package xlsx

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/tsawler/tabella/model"
)

// defaultSheet is the placeholder worksheet excelize puts in a new
// workbook. It is dropped on save once real sheets exist.
const defaultSheet = "Sheet1"

// Writer serializes assembled tables into a multi-sheet xlsx workbook,
// one worksheet per table.
type Writer struct {
	file   *excelize.File
	first  string
	sheets int
}

// NewWriter creates a writer holding an empty workbook.
func NewWriter() *Writer {
	return &Writer{file: excelize.NewFile()}
}

// AppendTable adds a worksheet named after the table's workbook position
// and fills it with the table's cells, row by row.
func (w *Writer) AppendTable(t *model.Table) error {
	name := t.SheetName()
	if _, err := w.file.NewSheet(name); err != nil {
		return fmt.Errorf("sheet %s: %w", name, err)
	}
	for r, row := range t.Rows {
		for c, value := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return fmt.Errorf("sheet %s: %w", name, err)
			}
			if err := w.file.SetCellValue(name, cell, value); err != nil {
				return fmt.Errorf("sheet %s cell %s: %w", name, cell, err)
			}
		}
	}
	if w.sheets == 0 {
		w.first = name
	}
	w.sheets++
	return nil
}

// SheetCount returns the number of table sheets appended so far.
func (w *Writer) SheetCount() int {
	return w.sheets
}

// SaveAs writes the workbook to path. When at least one table sheet
// exists the placeholder sheet is removed and the first table sheet is
// made active, so the workbook opens on real data.
func (w *Writer) SaveAs(path string) error {
	if w.sheets > 0 && w.first != defaultSheet {
		if err := w.file.DeleteSheet(defaultSheet); err != nil {
			return fmt.Errorf("remove placeholder sheet: %w", err)
		}
		idx, err := w.file.GetSheetIndex(w.first)
		if err != nil {
			return fmt.Errorf("locate sheet %s: %w", w.first, err)
		}
		w.file.SetActiveSheet(idx)
	}
	if err := w.file.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

// Close releases the workbook's resources. The writer must not be used
// after Close.
func (w *Writer) Close() error {
	return w.file.Close()
}

// WriteFile writes tables to a workbook at path, one sheet per table in
// slice order. Tables should already be assembled so each sheet is
// rectangular and carries its final index.
func WriteFile(path string, tables []*model.Table) error {
	w := NewWriter()
	defer w.Close()

	for _, t := range tables {
		if err := w.AppendTable(t); err != nil {
			return err
		}
	}
	return w.SaveAs(path)
}
