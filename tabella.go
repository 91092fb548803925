// Package tabella provides a fluent API for detecting tables in PDF files
// and exporting them to xlsx workbooks.
//
// Basic usage:
//
//	count, warnings, err := tabella.Open("report.pdf").SaveXLSX("report_tables.xlsx")
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", tabella.FormatWarnings(warnings))
//	}
//
// With options:
//
//	tables, _, err := tabella.Open("report.pdf").
//	    Pages(1, 2, 3).
//	    Verbose(os.Stdout).
//	    Tables()
//
// For advanced use cases, the lower-level reader and tables packages are also
// available.
package tabella

import (
	"github.com/tsawler/tabella/reader"
)

// Open opens a PDF file and returns an Extractor for fluent configuration.
// The returned Extractor must be closed when done, either explicitly via Close()
// or implicitly when calling a terminal operation like Tables().
//
// Example:
//
//	tables, warnings, err := tabella.Open("report.pdf").Tables()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromDocument creates an Extractor from an already-opened reader.Document.
// This is useful when you need more control over the document lifecycle.
// Note: The caller is responsible for closing the document.
//
// Example:
//
//	doc, err := reader.Open("report.pdf")
//	if err != nil {
//	    // handle error
//	}
//	defer doc.Close()
//	tables, warnings, err := tabella.FromDocument(doc).Tables()
func FromDocument(doc *reader.Document) *Extractor {
	return &Extractor{
		doc:       doc,
		ownsDoc:   false,
		docOpened: true,
		options:   defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	count := tabella.Must(tabella.Open("report.pdf").PageCount())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustTables is a helper that wraps a call to Tables() and panics if the
// error is non-nil. It discards warnings and returns just the value.
// It is intended for use in scripts or tests where error handling would be
// cumbersome.
//
// Example:
//
//	tables := tabella.MustTables(tabella.Open("report.pdf").Tables())
func MustTables[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
