package tabella

import (
	"io"

	"github.com/tsawler/tabella/tables"
)

// ExtractOptions holds configuration for table extraction.
type ExtractOptions struct {
	// Page selection (1-indexed in API, stored as-is)
	pages []int

	// Detection tuning passed through to the table detectors
	detector tables.Config

	// Progress messages are written here when non-nil
	progress io.Writer
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		pages:    nil, // nil means all pages
		detector: tables.DefaultConfig(),
		progress: nil, // nil means silent
	}
}

// clone creates a deep copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	newOpts := ExtractOptions{
		detector: o.detector,
		progress: o.progress,
	}

	// Deep copy pages slice
	if o.pages != nil {
		newOpts.pages = make([]int, len(o.pages))
		copy(newOpts.pages, o.pages)
	}

	return newOpts
}
