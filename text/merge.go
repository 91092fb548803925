package text

import (
	"sort"
	"strings"

	"github.com/tsawler/tabella/model"
)

// Merging thresholds, relative to the font size of the run being extended.
// PDF content streams frequently emit one run per glyph cluster; runs closer
// together than wordGapFactor of the font size belong to the same word.
const (
	// wordGapFactor is the largest horizontal gap, as a fraction of font
	// size, that still joins two runs into one fragment.
	wordGapFactor = 0.3

	// minWordGap is the floor for the join threshold in points, so very
	// small font sizes don't split every glyph into its own fragment.
	minWordGap = 1.0

	// lineOverlapFactor decides whether two runs share a baseline band:
	// their Y centers must differ by less than this fraction of the taller
	// run's height.
	lineOverlapFactor = 0.5
)

// MergeFragments merges run-level fragments, as emitted by PDF text
// extraction, into word-level fragments suitable for column detection.
//
// Runs are grouped into baseline bands top-to-bottom, ordered left-to-right
// within each band, and joined whenever the horizontal gap between
// consecutive runs is below the word-gap threshold. Whitespace-only runs
// terminate the current word (the stream's own word boundaries win over
// geometry). The merged fragment covers the union of its runs' boxes and
// keeps the first run's font attributes.
//
// The result is deterministic for a fixed input: bands top-to-bottom, words
// left-to-right, all text trimmed, no blank fragments.
func MergeFragments(frags []model.TextFragment) []model.TextFragment {
	if len(frags) == 0 {
		return nil
	}

	sorted := make([]model.TextFragment, len(frags))
	copy(sorted, frags)
	sort.SliceStable(sorted, func(i, j int) bool {
		yi, yj := sorted[i].BBox.Center().Y, sorted[j].BBox.Center().Y
		if yi != yj {
			return yi > yj // top of page first
		}
		return sorted[i].BBox.Left() < sorted[j].BBox.Left()
	})

	var merged []model.TextFragment
	for _, band := range groupBands(sorted) {
		merged = append(merged, mergeBand(band)...)
	}
	return merged
}

// groupBands splits fragments (already sorted top-to-bottom) into baseline
// bands. A fragment joins the current band when its Y center lies within the
// overlap tolerance of the previous fragment.
func groupBands(sorted []model.TextFragment) [][]model.TextFragment {
	var bands [][]model.TextFragment
	current := []model.TextFragment{sorted[0]}

	for _, frag := range sorted[1:] {
		prev := current[len(current)-1]
		tol := maxFloat(prev.BBox.Height, frag.BBox.Height) * lineOverlapFactor
		if tol < 1 {
			tol = 1 // degenerate boxes from readers that report no height
		}
		if abs(frag.BBox.Center().Y-prev.BBox.Center().Y) <= tol {
			current = append(current, frag)
		} else {
			bands = append(bands, current)
			current = []model.TextFragment{frag}
		}
	}
	return append(bands, current)
}

// mergeBand joins one band's runs into word fragments, left to right.
func mergeBand(band []model.TextFragment) []model.TextFragment {
	sort.SliceStable(band, func(i, j int) bool {
		return band[i].BBox.Left() < band[j].BBox.Left()
	})

	var words []model.TextFragment
	var cur model.TextFragment
	open := false

	flush := func() {
		if !open {
			return
		}
		cur.Text = strings.TrimSpace(cur.Text)
		if cur.Text != "" {
			words = append(words, cur)
		}
		open = false
	}

	for _, run := range band {
		// Explicit whitespace runs end the current word.
		if run.IsBlank() {
			flush()
			continue
		}
		if !open {
			cur = run
			open = true
			continue
		}
		if gap := run.BBox.Left() - cur.BBox.Right(); gap <= joinThreshold(cur) {
			cur.Text += run.Text
			cur.BBox = cur.BBox.Union(run.BBox)
			continue
		}
		flush()
		cur = run
		open = true
	}
	flush()
	return words
}

// joinThreshold returns the largest gap that still continues the fragment.
func joinThreshold(f model.TextFragment) float64 {
	t := f.FontSize * wordGapFactor
	if t < minWordGap {
		t = minWordGap
	}
	return t
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// abs returns the absolute value of a float64
func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
