package xlsx

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"

	"github.com/tsawler/tabella/model"
)

// illegalCellRune reports whether r cannot appear in an xlsx string cell.
// Worksheet XML rejects the C0 controls other than tab, LF and CR, plus
// DEL and the C1 block.
func illegalCellRune(r rune) bool {
	switch {
	case r == '\t' || r == '\n' || r == '\r':
		return false
	case r < 0x20:
		return true
	case r >= 0x7F && r <= 0x9F:
		return true
	}
	return false
}

// cellSanitizer repairs ill-formed UTF-8, then removes every rune illegal
// in spreadsheet string cells.
var cellSanitizer = transform.Chain(
	runes.ReplaceIllFormed(),
	runes.Remove(runes.Predicate(illegalCellRune)),
)

// CleanString returns s with spreadsheet-illegal characters removed and
// surrounding whitespace trimmed. Interior spacing is preserved. Cleaning
// never fails: ill-formed input is repaired or dropped, never propagated
// as an error.
func CleanString(s string) string {
	cleaned, _, err := transform.String(cellSanitizer, s)
	if err != nil {
		cleaned = strings.Map(func(r rune) rune {
			if r == utf8.RuneError || illegalCellRune(r) {
				return -1
			}
			return r
		}, s)
	}
	return strings.TrimSpace(cleaned)
}

// CleanTable sanitizes every cell of a table in place.
func CleanTable(t *model.Table) {
	for _, row := range t.Rows {
		for i, cell := range row {
			row[i] = CleanString(cell)
		}
	}
}
