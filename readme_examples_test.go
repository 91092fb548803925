package tabella_test

import (
	"fmt"
	"log"
	"os"

	"github.com/tsawler/tabella"
	"github.com/tsawler/tabella/reader"
	"github.com/tsawler/tabella/tables"
)

// These examples verify the README code samples compile correctly.
// They are not meant to be run as actual tests since they require files.

func Example_extractTables() {
	found, warnings, err := tabella.Open("report.pdf").Tables()
	if err != nil {
		log.Fatal(err)
	}

	for _, tbl := range found {
		fmt.Printf("%s: %dx%d on page %d\n",
			tbl.SheetName(), tbl.RowCount(), tbl.ColCount(), tbl.Page)
	}

	for _, w := range warnings {
		fmt.Println("Warning:", w.Message)
	}
}

func Example_saveWorkbook() {
	count, warnings, err := tabella.Open("report.pdf").SaveXLSX("report_tables.xlsx")
	if err != nil {
		log.Fatal(err)
	}
	_ = warnings

	if count == 0 {
		fmt.Println("No tables detected in the entire PDF.")
	} else {
		fmt.Printf("Extracted %d tables\n", count)
	}
}

func Example_extractWithOptions() {
	found, warnings, err := tabella.Open("report.pdf").
		Pages(1, 2, 3).      // Specific pages
		Verbose(os.Stdout).  // Per-page progress
		Tables()
	_ = found
	_ = warnings
	_ = err

	// Or a contiguous range
	found, warnings, err = tabella.Open("report.pdf").
		PageRange(10, 20).
		Tables()
	_ = found
	_ = warnings
	_ = err
}

func Example_detectorTuning() {
	cfg := tables.DefaultConfig()
	cfg.MinStrictColumns = 4 // Accept narrower grids as strict tables
	cfg.RowYTolerance = 8    // Looser baseline grouping for noisy PDFs

	found, _, err := tabella.Open("report.pdf").
		DetectorConfig(cfg).
		Tables()
	if err != nil {
		log.Fatal(err)
	}
	_ = found
}

func Example_openDocuments() {
	// From file path
	ext := tabella.Open("report.pdf")
	_ = ext

	// From an already open document
	doc, _ := reader.Open("report.pdf")
	defer doc.Close()
	ext = tabella.FromDocument(doc)
	_ = ext
}

func Example_inspectTables() {
	found, _, err := tabella.Open("report.pdf").Tables()
	if err != nil {
		log.Fatal(err)
	}

	for _, tbl := range found {
		// Rows are rectangular: short rows are padded with empty cells.
		for _, row := range tbl.Rows {
			fmt.Println(row)
		}
		fmt.Println("first cell:", tbl.Cell(0, 0))
	}
}

func Example_textFragments() {
	// Word-level fragments with positions, before table detection.
	fragments, _, err := tabella.Open("report.pdf").Fragments()
	if err != nil {
		log.Fatal(err)
	}

	for _, frag := range fragments {
		fmt.Printf("p.%d (%.1f, %.1f): %s\n", frag.Page, frag.BBox.X, frag.BBox.Y, frag.Text)
	}
}

func Example_warnings() {
	found, warnings, err := tabella.Open("report.pdf").Tables()
	if err != nil {
		log.Fatal(err) // Fatal error
	}
	_ = found

	for _, w := range warnings {
		log.Println("Warning:", w.Message) // Non-fatal issues, e.g. skipped pages
	}

	// Format all warnings
	formatted := tabella.FormatWarnings(warnings)
	_ = formatted
}

func Example_errorHandling() {
	// Panic on error (for scripts/tests)
	found := tabella.MustTables(tabella.Open("report.pdf").Tables())
	count := tabella.Must(tabella.Open("report.pdf").PageCount())
	_ = found
	_ = count
}
