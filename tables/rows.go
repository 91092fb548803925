package tables

import (
	"sort"

	"github.com/tsawler/tabella/model"
)

// row is a horizontal band of fragments under detection, ordered left to
// right. Rows are transient: they exist only between clustering and table
// emission, and never cross a page boundary.
type row struct {
	y      float64 // mean of the member fragments' vertical centers
	top    float64 // highest fragment top edge in the band
	bottom float64 // lowest fragment bottom edge in the band
	frags  []model.TextFragment
}

// cells returns the row's cell texts, left to right.
func (r row) cells() []string {
	out := make([]string, len(r.frags))
	for i, f := range r.frags {
		out[i] = f.Text
	}
	return out
}

// width returns the row's column count.
func (r row) width() int {
	return len(r.frags)
}

// clusterRows groups a page's fragments into rows with a sort-then-bucket
// scan: fragments are sorted by descending vertical center (top of the page
// first) and a new row starts whenever the gap between consecutive centers
// exceeds the tolerance. Blank fragments are dropped before clustering.
// Within each row, fragments are ordered left to right.
func clusterRows(frags []model.TextFragment, tolerance float64) []row {
	visible := make([]model.TextFragment, 0, len(frags))
	for _, f := range frags {
		if !f.IsBlank() {
			visible = append(visible, f)
		}
	}
	if len(visible) == 0 {
		return nil
	}

	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].BBox.Center().Y > visible[j].BBox.Center().Y
	})

	var rows []row
	band := []model.TextFragment{visible[0]}
	for _, f := range visible[1:] {
		prev := band[len(band)-1]
		if prev.BBox.Center().Y-f.BBox.Center().Y > tolerance {
			rows = append(rows, newRow(band))
			band = []model.TextFragment{f}
			continue
		}
		band = append(band, f)
	}
	rows = append(rows, newRow(band))
	return rows
}

// newRow finalizes a band into a row: orders the fragments left to right
// and records the band's vertical extent.
func newRow(band []model.TextFragment) row {
	sort.SliceStable(band, func(i, j int) bool {
		if band[i].BBox.Left() != band[j].BBox.Left() {
			return band[i].BBox.Left() < band[j].BBox.Left()
		}
		return band[i].Text < band[j].Text
	})

	r := row{
		top:    band[0].BBox.Top(),
		bottom: band[0].BBox.Bottom(),
		frags:  band,
	}
	sum := 0.0
	for _, f := range band {
		sum += f.BBox.Center().Y
		if t := f.BBox.Top(); t > r.top {
			r.top = t
		}
		if b := f.BBox.Bottom(); b < r.bottom {
			r.bottom = b
		}
	}
	r.y = sum / float64(len(band))
	return r
}

// verticalGap returns the edge-to-edge distance between two row bands,
// upper band first. Overlapping bands yield a negative gap.
func verticalGap(upper, lower row) float64 {
	return upper.bottom - lower.top
}
