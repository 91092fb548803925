package tables

import (
	"testing"

	"github.com/tsawler/tabella/model"
)

func TestFlexibleDetectorName(t *testing.T) {
	d := NewFlexibleDetector()
	if d.Name() != "flexible" {
		t.Errorf("Name() = %q, want 'flexible'", d.Name())
	}
}

// Three rows of 4, 4, and 3 fragments at irregular spacing: too narrow for
// strict detection, but flexible groups them into a single table. The
// 3-cell row stays ragged until assembly pads it.
func TestFlexibleDetectorGroupsDriftingWidths(t *testing.T) {
	page := pageOf(
		frag("a1", 72, 700), frag("b1", 160, 700), frag("c1", 250, 700), frag("d1", 340, 700),
		frag("a2", 72, 682), frag("b2", 160, 682), frag("c2", 250, 682), frag("d2", 340, 682),
		frag("a3", 72, 669), frag("b3", 160, 669), frag("c3", 250, 669),
	)

	d := NewFlexibleDetector()
	found, err := d.Detect(page)
	if err != nil {
		t.Fatalf("Detect() error = %v", err)
	}
	if len(found) != 1 {
		t.Fatalf("got %d tables, want 1", len(found))
	}

	table := found[0]
	if table.RowCount() != 3 {
		t.Errorf("RowCount() = %d, want 3", table.RowCount())
	}
	if table.ColCount() != 4 {
		t.Errorf("ColCount() = %d, want 4", table.ColCount())
	}
	if len(table.Rows[2]) != 3 {
		t.Errorf("third row has %d cells, want 3 before assembly", len(table.Rows[2]))
	}
}

func TestFlexibleDetectorSplitsOnWidthChange(t *testing.T) {
	// Three 2-cell rows followed by three 4-cell rows. The width jump of
	// two exceeds the drift tolerance, so two tables come back.
	page := pageOf(
		frag("a", 72, 700), frag("b", 200, 700),
		frag("c", 72, 685), frag("d", 200, 685),
		frag("e", 72, 670), frag("f", 200, 670),

		frag("g", 72, 655), frag("h", 160, 655), frag("i", 250, 655), frag("j", 340, 655),
		frag("k", 72, 640), frag("l", 160, 640), frag("m", 250, 640), frag("n", 340, 640),
		frag("o", 72, 625), frag("p", 160, 625), frag("q", 250, 625), frag("r", 340, 625),
	)

	d := NewFlexibleDetector()
	found, err := d.Detect(page)
	if err != nil {
		t.Fatalf("Detect() error = %v", err)
	}
	if len(found) != 2 {
		t.Fatalf("got %d tables, want 2", len(found))
	}
	if found[0].ColCount() != 2 || found[0].RowCount() != 3 {
		t.Errorf("first table = %dx%d, want 3x2",
			found[0].RowCount(), found[0].ColCount())
	}
	if found[1].ColCount() != 4 || found[1].RowCount() != 3 {
		t.Errorf("second table = %dx%d, want 3x4",
			found[1].RowCount(), found[1].ColCount())
	}
}

func TestFlexibleDetectorSplitsOnVerticalGap(t *testing.T) {
	// Same width throughout, but a wide vertical gap separates two blocks.
	page := pageOf(
		frag("a", 72, 700), frag("b", 200, 700),
		frag("c", 72, 685), frag("d", 200, 685),

		frag("e", 72, 560), frag("f", 200, 560),
		frag("g", 72, 545), frag("h", 200, 545),
	)

	d := NewFlexibleDetector()
	found, err := d.Detect(page)
	if err != nil {
		t.Fatalf("Detect() error = %v", err)
	}
	if len(found) != 2 {
		t.Fatalf("got %d tables, want 2 (gap should split)", len(found))
	}
}

// Flexible detection never emits a table with fewer than two rows or fewer
// than two columns.
func TestFlexibleDetectorEmissionFloors(t *testing.T) {
	tests := []struct {
		name string
		page *model.Page
	}{
		{"single row", pageOf(
			frag("a", 72, 700), frag("b", 160, 700), frag("c", 250, 700),
		)},
		{"single column", pageOf(
			frag("a", 72, 700),
			frag("b", 72, 685),
			frag("c", 72, 670),
		)},
		{"lone fragment", pageOf(frag("a", 72, 700))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewFlexibleDetector()
			found, err := d.Detect(tt.page)
			if err != nil {
				t.Fatalf("Detect() error = %v", err)
			}
			if len(found) != 0 {
				t.Errorf("got %d tables, want 0", len(found))
			}
		})
	}
}

func TestFlexibleDetectorBlankPage(t *testing.T) {
	d := NewFlexibleDetector()
	found, err := d.Detect(pageOf())
	if err != nil {
		t.Fatalf("Detect() error = %v", err)
	}
	if found != nil {
		t.Errorf("blank page: got %v, want nil", found)
	}
}

func TestFlexibleDetectorParagraphPage(t *testing.T) {
	// Prose lines merge into one fragment per line; a page of one-cell
	// rows must not become a table.
	page := pageOf(
		frag("This report covers the third quarter.", 72, 700),
		frag("Revenue grew modestly across regions.", 72, 685),
		frag("Costs remained flat year over year.", 72, 670),
	)

	d := NewFlexibleDetector()
	found, err := d.Detect(page)
	if err != nil {
		t.Fatalf("Detect() error = %v", err)
	}
	if len(found) != 0 {
		t.Errorf("got %d tables from prose, want 0", len(found))
	}
}

func BenchmarkFlexibleDetect(b *testing.B) {
	page := gridPage(40, 3)
	d := NewFlexibleDetector()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := d.Detect(page); err != nil {
			b.Fatal(err)
		}
	}
}
