package model

import "strings"

// TextFragment is a contiguous run of text at a known position on a page,
// as emitted by PDF text extraction. Fragments are immutable and scoped to
// the page they were extracted from; detection never merges fragments
// across pages.
type TextFragment struct {
	Text     string
	BBox     BBox
	Font     string
	FontSize float64
	Page     int // 1-based page number
}

// IsBlank reports whether the fragment carries no visible text.
func (f TextFragment) IsBlank() bool {
	return strings.TrimSpace(f.Text) == ""
}
