package tables

import (
	"github.com/tsawler/tabella/model"
)

// StrictDetector accepts a page only when it shows a dominant, well-aligned
// column structure: the widest row must reach MinStrictColumns, and at
// least AlignmentFraction of the page's rows must share that exact width.
// Rows whose width drifts beyond ColumnGapTolerance from the dominant width
// are rejected from the table; rows within the tolerance are kept and
// padded later by assembly. A page yields at most one strict table.
type StrictDetector struct {
	config Config
}

// NewStrictDetector creates a strict detector with default configuration.
func NewStrictDetector() *StrictDetector {
	return &StrictDetector{
		config: DefaultConfig(),
	}
}

// Name returns the detector's identifier ("strict").
func (d *StrictDetector) Name() string {
	return "strict"
}

// Configure sets the detector configuration.
func (d *StrictDetector) Configure(config Config) error {
	d.config = config
	return nil
}

// Detect finds the page's dominant table, if any. Blank pages and pages
// without a qualifying column structure produce no tables and no error.
func (d *StrictDetector) Detect(page *model.Page) ([]*model.Table, error) {
	rows := clusterRows(page.Fragments, d.config.RowYTolerance)
	if len(rows) == 0 {
		return nil, nil
	}

	// The representative row is the widest one.
	representative := 0
	for _, r := range rows {
		if r.width() > representative {
			representative = r.width()
		}
	}
	if representative < d.config.MinStrictColumns {
		return nil, nil
	}

	matching := 0
	for _, r := range rows {
		if r.width() == representative {
			matching++
		}
	}
	if float64(matching)/float64(len(rows)) < d.config.AlignmentFraction {
		return nil, nil
	}

	table := model.NewTable(page.Number)
	for _, r := range rows {
		if representative-r.width() <= d.config.ColumnGapTolerance {
			table.AddRow(r.cells())
		}
	}
	if table.RowCount() < d.config.MinRows {
		return nil, nil
	}

	return []*model.Table{table}, nil
}
