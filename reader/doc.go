// Package reader opens PDF files and converts their pages into positioned
// text fragments.
//
// # Opening PDF Files
//
// Use [Open] to open a PDF file for reading:
//
//	doc, err := reader.Open("report.pdf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer doc.Close()
//
// Or use [NewDocument] with any io.ReaderAt.
//
// # Page Access
//
// Access pages by number (1-based, the way PDF viewers count):
//
//	page, err := doc.Page(1)  // First page
//
// Each returned page carries one text fragment per glyph run from the page's
// content stream, in content-stream order. Runs are not merged into words
// here; that is the text package's job.
//
// # Malformed Files
//
// PDF files in the wild are frequently damaged. Page converts parser panics
// from the underlying library into ordinary errors, so a document with one
// broken page can still yield the rest.
package reader
