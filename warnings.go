package tabella

import (
	"fmt"
	"strings"
)

// Warning describes a non-fatal problem encountered while processing a
// document. Extraction keeps going when a warning is recorded; the page that
// triggered it is simply skipped or produces partial output.
type Warning struct {
	// Page is the 1-indexed page the warning relates to, or 0 when the
	// warning applies to the document as a whole.
	Page int

	// Message describes what went wrong.
	Message string
}

// String returns a human-readable form of the warning.
func (w Warning) String() string {
	if w.Page > 0 {
		return fmt.Sprintf("page %d: %s", w.Page, w.Message)
	}
	return w.Message
}

// FormatWarnings joins warnings into a newline-separated string suitable for
// logging. Returns an empty string when there are no warnings.
//
// Example:
//
//	tables, warnings, err := tabella.Open("report.pdf").Tables()
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", tabella.FormatWarnings(warnings))
//	}
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = w.String()
	}
	return strings.Join(lines, "\n")
}
