package tabella

import (
	"fmt"
	"io"
	"sort"

	"github.com/tsawler/tabella/model"
	"github.com/tsawler/tabella/reader"
	"github.com/tsawler/tabella/tables"
	"github.com/tsawler/tabella/text"
	"github.com/tsawler/tabella/xlsx"
)

// Extractor provides a fluent interface for detecting tables in PDF files.
// Each configuration method returns a new Extractor instance, making it
// safe for concurrent use and allowing method chaining.
type Extractor struct {
	// Source
	filename string

	// Document access
	doc *reader.Document

	// Lifecycle
	ownsDoc   bool // true if we opened the document and should close it
	docOpened bool // true if the document has been opened

	// Configuration
	options ExtractOptions

	// Accumulated error (fail-fast)
	err error

	// Warnings accumulated during processing
	warnings []Warning
}

// clone creates a shallow copy of the Extractor with a deep copy of options.
// This ensures immutability - each chain method returns a new instance.
func (e *Extractor) clone() *Extractor {
	newExt := &Extractor{
		filename:  e.filename,
		doc:       e.doc,
		ownsDoc:   e.ownsDoc,
		docOpened: e.docOpened,
		options:   e.options.clone(),
		err:       e.err,
		warnings:  append([]Warning(nil), e.warnings...),
	}
	return newExt
}

// ensureDocument opens the document if not already open.
func (e *Extractor) ensureDocument() error {
	if e.docOpened {
		return nil
	}
	if e.filename == "" {
		return fmt.Errorf("no filename specified")
	}

	doc, err := reader.Open(e.filename)
	if err != nil {
		return fmt.Errorf("failed to open PDF: %w", err)
	}
	e.doc = doc
	e.ownsDoc = true
	e.docOpened = true
	return nil
}

// Close releases resources associated with the Extractor.
// It is safe to call Close multiple times.
func (e *Extractor) Close() error {
	if e.ownsDoc && e.doc != nil {
		err := e.doc.Close()
		e.doc = nil
		e.ownsDoc = false
		return err
	}
	return nil
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// Pages specifies which pages to scan for tables (1-indexed).
// Multiple calls are cumulative.
//
// Example:
//
//	tables, _, err := tabella.Open("report.pdf").Pages(1, 3, 5).Tables()
func (e *Extractor) Pages(pages ...int) *Extractor {
	newExt := e.clone()
	newExt.options.pages = append(newExt.options.pages, pages...)
	return newExt
}

// PageRange specifies a range of pages to scan (1-indexed, inclusive).
//
// Example:
//
//	tables, _, err := tabella.Open("report.pdf").PageRange(5, 10).Tables()
func (e *Extractor) PageRange(start, end int) *Extractor {
	newExt := e.clone()
	for i := start; i <= end; i++ {
		newExt.options.pages = append(newExt.options.pages, i)
	}
	return newExt
}

// DetectorConfig replaces the table-detection configuration. Use
// tables.DefaultConfig() as a starting point and adjust the thresholds
// that matter for your documents.
//
// Example:
//
//	cfg := tables.DefaultConfig()
//	cfg.MinStrictColumns = 4
//	tables, _, err := tabella.Open("report.pdf").DetectorConfig(cfg).Tables()
func (e *Extractor) DetectorConfig(cfg tables.Config) *Extractor {
	newExt := e.clone()
	newExt.options.detector = cfg
	return newExt
}

// Verbose configures the extractor to write per-page progress messages to w
// while tables are being detected.
//
// Example:
//
//	tables, _, err := tabella.Open("report.pdf").Verbose(os.Stdout).Tables()
func (e *Extractor) Verbose(w io.Writer) *Extractor {
	newExt := e.clone()
	newExt.options.progress = w
	return newExt
}

// ============================================================================
// Terminal Operations (execute extraction and return results)
// ============================================================================

// Tables scans the configured pages and returns every detected table, ordered
// by page and position, with workbook-wide 1-based indices already assigned.
// This is a terminal operation that closes the underlying document.
//
// Returns the detected tables, any warnings encountered during processing,
// and an error if extraction failed. Warnings indicate non-fatal issues
// (e.g., a page whose content stream could not be parsed) where extraction
// succeeded but some pages were skipped.
//
// Example:
//
//	tables, warnings, err := tabella.Open("report.pdf").Tables()
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", tabella.FormatWarnings(warnings))
//	}
func (e *Extractor) Tables() ([]*model.Table, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}

	if err := e.ensureDocument(); err != nil {
		return nil, nil, err
	}
	defer e.Close()

	pageNumbers, err := e.resolvePages()
	if err != nil {
		return nil, nil, err
	}

	total := e.doc.PageCount()

	var all []*model.Table
	for _, pageNum := range pageNumbers {
		e.progressf("Processing page %d of %d...\n", pageNum, total)

		page, err := e.doc.Page(pageNum)
		if err != nil {
			// A page the library cannot parse is skipped, not fatal.
			e.warnings = append(e.warnings, Warning{Page: pageNum, Message: err.Error()})
			continue
		}

		page.Fragments = text.MergeFragments(page.Fragments)

		found, method, err := tables.Detect(page, e.options.detector)
		if err != nil {
			e.warnings = append(e.warnings, Warning{Page: pageNum, Message: fmt.Sprintf("table detection failed: %v", err)})
			continue
		}

		if len(found) == 0 {
			e.progressf("No tables detected on page %d\n", pageNum)
			continue
		}
		e.progressf("Found %d table(s) on page %d (%s method)\n", len(found), pageNum, method)

		for _, t := range found {
			xlsx.CleanTable(t)
		}
		all = append(all, found...)
	}

	return tables.Assemble(all), e.warnings, nil
}

// SaveXLSX detects tables on the configured pages and writes them to an xlsx
// workbook at path, one sheet per table. When no tables are detected, no file
// is written and the returned count is zero; that is not an error.
// This is a terminal operation that closes the underlying document.
//
// Returns the number of tables written, any warnings encountered during
// processing, and an error if extraction or writing failed.
//
// Example:
//
//	count, warnings, err := tabella.Open("report.pdf").SaveXLSX("report_tables.xlsx")
func (e *Extractor) SaveXLSX(path string) (int, []Warning, error) {
	tbls, warnings, err := e.Tables()
	if err != nil {
		return 0, warnings, err
	}

	if len(tbls) == 0 {
		return 0, warnings, nil
	}

	if err := xlsx.WriteFile(path, tbls); err != nil {
		return 0, warnings, err
	}

	return len(tbls), warnings, nil
}

// Fragments returns the merged text fragments from the configured pages,
// ordered by page. Useful for inspecting what the detectors will see.
// This is a terminal operation that closes the underlying document.
//
// Example:
//
//	fragments, warnings, err := tabella.Open("report.pdf").Pages(1).Fragments()
func (e *Extractor) Fragments() ([]model.TextFragment, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}

	if err := e.ensureDocument(); err != nil {
		return nil, nil, err
	}
	defer e.Close()

	pageNumbers, err := e.resolvePages()
	if err != nil {
		return nil, nil, err
	}

	var allFragments []model.TextFragment
	for _, pageNum := range pageNumbers {
		page, err := e.doc.Page(pageNum)
		if err != nil {
			e.warnings = append(e.warnings, Warning{Page: pageNum, Message: err.Error()})
			continue
		}
		allFragments = append(allFragments, text.MergeFragments(page.Fragments)...)
	}

	return allFragments, e.warnings, nil
}

// PageCount returns the total number of pages in the document.
// Note: This does NOT close the document, allowing further operations.
//
// Example:
//
//	ext := tabella.Open("report.pdf")
//	defer ext.Close()
//	count, err := ext.PageCount()
func (e *Extractor) PageCount() (int, error) {
	if e.err != nil {
		return 0, e.err
	}

	if err := e.ensureDocument(); err != nil {
		return 0, err
	}

	return e.doc.PageCount(), nil
}

// ============================================================================
// Internal helpers
// ============================================================================

// resolvePages validates the requested page numbers and returns them sorted
// with duplicates removed (1-indexed). If no pages were specified, all pages
// are returned.
func (e *Extractor) resolvePages() ([]int, error) {
	pageCount := e.doc.PageCount()

	// If no pages specified, use all pages
	if len(e.options.pages) == 0 {
		pageNumbers := make([]int, pageCount)
		for i := 0; i < pageCount; i++ {
			pageNumbers[i] = i + 1
		}
		return pageNumbers, nil
	}

	// Validate and dedupe
	seen := make(map[int]bool)
	var pageNumbers []int
	for _, p := range e.options.pages {
		if p < 1 || p > pageCount {
			return nil, fmt.Errorf("page %d out of range (1-%d)", p, pageCount)
		}
		if !seen[p] {
			seen[p] = true
			pageNumbers = append(pageNumbers, p)
		}
	}

	// Sort pages in order
	sort.Ints(pageNumbers)
	return pageNumbers, nil
}

// progressf writes a progress message when a progress writer is configured.
func (e *Extractor) progressf(format string, args ...any) {
	if e.options.progress == nil {
		return
	}
	fmt.Fprintf(e.options.progress, format, args...)
}
