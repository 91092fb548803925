// Package text merges run-level PDF text output into word-level fragments.
//
// PDF content streams rarely emit one run per word: depending on the
// producer, a single cell of a table may arrive as several kerned glyph
// runs, and a single run may span an explicit space. Table detection needs
// one fragment per visual word or cell, so this package normalizes reader
// output before detection sees it.
//
// # Merging
//
// [MergeFragments] groups runs into baseline bands (top of the page first),
// orders each band left to right, and joins consecutive runs whose
// horizontal gap is below a threshold proportional to the font size:
//
//	words := text.MergeFragments(page.Fragments)
//
// Whitespace-only runs act as explicit word boundaries, taking precedence
// over geometric gaps. Merged fragments cover the union of their runs'
// bounding boxes, so downstream clustering sees the full word extent.
//
// # Determinism
//
// For a fixed input the output order is fully determined: bands
// top-to-bottom, words left-to-right. Detection results therefore never
// depend on the order the reader happened to walk the content stream.
package text
