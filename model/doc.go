// Package model provides the data types shared by the tabella extraction
// pipeline.
//
// This package defines the user-facing structures that represent extracted
// content. PDF reading produces them, table detection consumes and produces
// them, and workbook writing serializes them, making them the primary API
// for consuming extraction results.
//
// # Fragments and Pages
//
// A [TextFragment] is a contiguous run of text at a known position, as
// emitted by PDF text extraction. A [Page] carries its dimensions and the
// fragments found on it:
//
//	page := model.NewPage(1, 612, 792)
//	page.AddFragment(model.TextFragment{Text: "Total", BBox: bbox, Page: 1})
//
// Coordinates follow the PDF convention: the origin is the bottom-left
// corner of the page and Y grows upward.
//
// # Tables
//
// A [Table] is an ordered sequence of rows of cell strings. Detection emits
// tables whose rows may still differ in length; assembly pads every row to
// the widest row's width (never truncating) and assigns the table its
// 1-based workbook position. Export helpers:
//
//   - [Table.ToCSV] - CSV rendering
//   - [Table.GetText] - tab-separated plain text
//   - [Table.SheetName] - the worksheet name for the table's position
//
// # Geometry
//
// Geometric primitives support position calculations:
//
//   - [BBox] - bounding box with edge accessors, union, and intersection tests
//   - [Point] - 2D point with distance calculation
package model
