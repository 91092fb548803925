package tables

import (
	"github.com/tsawler/tabella/model"
)

// Detector is the interface for table detection algorithms
type Detector interface {
	// Detect finds tables in a page
	Detect(page *model.Page) ([]*model.Table, error)

	// Name returns the detector name
	Name() string

	// Configure sets detector parameters
	Configure(config Config) error
}

// Config holds the detection thresholds. The values are fixed constants of
// the pipeline, not end-user tuning knobs; the type exists so the two
// detectors share one set and tests can pin specific values.
type Config struct {
	// RowYTolerance is the largest gap between the vertical centers of
	// consecutive sorted fragments that still places them on the same row
	// (points).
	RowYTolerance float64

	// MinStrictColumns is the column count the representative row must
	// reach before strict detection accepts a page.
	MinStrictColumns int

	// AlignmentFraction is the fraction of a page's rows that must match
	// the representative column count exactly for strict detection.
	AlignmentFraction float64

	// ColumnGapTolerance is how far a row's column count may drift from
	// its table's width before the row is rejected (strict) or a new
	// table begins (flexible).
	ColumnGapTolerance int

	// RowGapSeparation is the vertical gap between consecutive row bands
	// that forces a table boundary in flexible detection (points).
	RowGapSeparation float64

	// Minimum rows for an emitted table
	MinRows int

	// Minimum columns for an emitted table
	MinCols int
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		RowYTolerance:      5.0,
		MinStrictColumns:   5,
		AlignmentFraction:  0.6,
		ColumnGapTolerance: 1,
		RowGapSeparation:   50.0,
		MinRows:            2,
		MinCols:            2,
	}
}

// Detect runs strict detection and falls back to flexible detection when
// strict finds nothing. It returns the detected tables, in top-to-bottom
// page order, along with the name of the detector that produced them
// (empty when the page yields no tables). Blank pages produce no tables
// and no error.
func Detect(page *model.Page, config Config) ([]*model.Table, string, error) {
	strict := NewStrictDetector()
	if err := strict.Configure(config); err != nil {
		return nil, "", err
	}
	found, err := strict.Detect(page)
	if err != nil {
		return nil, "", err
	}
	if len(found) > 0 {
		return found, strict.Name(), nil
	}

	flexible := NewFlexibleDetector()
	if err := flexible.Configure(config); err != nil {
		return nil, "", err
	}
	found, err = flexible.Detect(page)
	if err != nil {
		return nil, "", err
	}
	if len(found) > 0 {
		return found, flexible.Name(), nil
	}
	return nil, "", nil
}

// DetectorRegistry holds registered detectors
type DetectorRegistry struct {
	detectors map[string]Detector
}

// NewRegistry creates a new detector registry
func NewRegistry() *DetectorRegistry {
	return &DetectorRegistry{
		detectors: make(map[string]Detector),
	}
}

// Register registers a detector
func (r *DetectorRegistry) Register(detector Detector) {
	r.detectors[detector.Name()] = detector
}

// Get retrieves a detector by name
func (r *DetectorRegistry) Get(name string) Detector {
	return r.detectors[name]
}

// List returns all registered detector names
func (r *DetectorRegistry) List() []string {
	names := make([]string, 0, len(r.detectors))
	for name := range r.detectors {
		names = append(names, name)
	}
	return names
}

// Global registry
var globalRegistry = NewRegistry()

// RegisterDetector registers a detector globally
func RegisterDetector(detector Detector) {
	globalRegistry.Register(detector)
}

// GetDetector retrieves a detector by name
func GetDetector(name string) Detector {
	return globalRegistry.Get(name)
}

// ListDetectors returns all registered detector names
func ListDetectors() []string {
	return globalRegistry.List()
}

func init() {
	// Register default detectors
	RegisterDetector(NewStrictDetector())
	RegisterDetector(NewFlexibleDetector())
}
