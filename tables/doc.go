// Package tables provides table detection and assembly for PDF pages.
//
// This package implements heuristics for detecting tabular data from
// positioned text alone, with no gridlines required. Detection converts an
// unordered bag of text fragments on a page into structured grids of rows
// and columns.
//
// # Detectors
//
// Table detection is performed by types implementing the [Detector]
// interface. The package provides two, tried in order:
//
//   - [StrictDetector] - requires a dominant column count (five or more)
//     shared by most of the page's rows; emits at most one table per page
//   - [FlexibleDetector] - the fallback safety net; buckets consecutive
//     rows of similar width and emits every bucket with at least two rows
//     and two columns
//
// [Detect] composes them with a short-circuit: strict's result wins when
// non-empty, flexible runs otherwise. Detectors are registered globally
// and can be retrieved by name:
//
//	detector := tables.GetDetector("strict")
//	found, err := detector.Detect(page)
//
// # Row clustering
//
// Both detectors share one row-clustering pass: fragments are sorted by
// vertical center and split into row bands wherever the gap between
// consecutive centers exceeds RowYTolerance. This sort-then-bucket scan
// keeps clustering O(n log n) and deterministic. Clustering is page-local;
// rows never merge across pages.
//
// # Configuration
//
// Thresholds are fixed constants of the pipeline, carried by [Config]:
//
//	config := tables.DefaultConfig()
//	config.MinStrictColumns = 6
//	detector.Configure(config)
//
// # Assembly
//
// [Assemble] makes detected tables rectangular: every row is padded on the
// right with empty cells to the widest row's width (never truncated), and
// each table receives its final 1-based workbook position.
package tables
