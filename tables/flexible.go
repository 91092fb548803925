package tables

import (
	"github.com/tsawler/tabella/model"
)

// FlexibleDetector is the fallback for pages strict detection rejects. It
// walks the page's rows top to bottom and buckets consecutive rows whose
// column counts stay within ColumnGapTolerance of the bucket's opening
// width. A bucket also ends at any vertical gap wider than
// RowGapSeparation. Buckets clearing the MinRows/MinCols floors are emitted
// as tables, so one page may yield several. It intentionally accepts
// looser, less rectangular data than strict detection.
type FlexibleDetector struct {
	config Config
}

// NewFlexibleDetector creates a flexible detector with default configuration.
func NewFlexibleDetector() *FlexibleDetector {
	return &FlexibleDetector{
		config: DefaultConfig(),
	}
}

// Name returns the detector's identifier ("flexible").
func (d *FlexibleDetector) Name() string {
	return "flexible"
}

// Configure sets the detector configuration.
func (d *FlexibleDetector) Configure(config Config) error {
	d.config = config
	return nil
}

// Detect finds tables by grouping runs of similarly-wide rows. Blank pages
// produce no tables and no error.
func (d *FlexibleDetector) Detect(page *model.Page) ([]*model.Table, error) {
	rows := clusterRows(page.Fragments, d.config.RowYTolerance)
	if len(rows) == 0 {
		return nil, nil
	}

	var tables []*model.Table
	var bucket []row
	anchor := 0 // column count the bucket opened with

	flush := func() {
		if t := d.emit(bucket, page.Number); t != nil {
			tables = append(tables, t)
		}
		bucket = nil
	}

	for i, r := range rows {
		if len(bucket) == 0 {
			bucket = append(bucket, r)
			anchor = r.width()
			continue
		}

		drift := r.width() - anchor
		if drift < 0 {
			drift = -drift
		}
		if drift > d.config.ColumnGapTolerance ||
			verticalGap(rows[i-1], r) > d.config.RowGapSeparation {
			flush()
			bucket = append(bucket, r)
			anchor = r.width()
			continue
		}
		bucket = append(bucket, r)
	}
	flush()

	return tables, nil
}

// emit converts a bucket of rows into a table, or returns nil when the
// bucket misses the emission floors.
func (d *FlexibleDetector) emit(bucket []row, pageNum int) *model.Table {
	if len(bucket) < d.config.MinRows {
		return nil
	}
	widest := 0
	for _, r := range bucket {
		if r.width() > widest {
			widest = r.width()
		}
	}
	if widest < d.config.MinCols {
		return nil
	}

	table := model.NewTable(pageNum)
	for _, r := range bucket {
		table.AddRow(r.cells())
	}
	return table
}
