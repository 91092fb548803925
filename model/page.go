package model

// Page represents a single page in a PDF document
type Page struct {
	Number    int            // 1-indexed page number
	Width     float64        // Page width in points
	Height    float64        // Page height in points
	Fragments []TextFragment // All text fragments with positions
}

// NewPage creates a new page with given dimensions
func NewPage(number int, width, height float64) *Page {
	return &Page{
		Number:    number,
		Width:     width,
		Height:    height,
		Fragments: make([]TextFragment, 0),
	}
}

// AddFragment adds a text fragment to the page
func (p *Page) AddFragment(f TextFragment) {
	p.Fragments = append(p.Fragments, f)
}

// IsBlank reports whether the page has no visible text. Blank pages produce
// no tables; they are not an error.
func (p *Page) IsBlank() bool {
	for _, f := range p.Fragments {
		if !f.IsBlank() {
			return false
		}
	}
	return true
}
