// Package caret renders syntax diagnostics, marking the offending columns
// beneath the input line.
//
//	Syntax error:
//	A = 0x1
//	    ↑ ↑
//	somewhere between position 4 and 7, expected value8
package caret

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/chanmix51/lepr/translate"
)

var f = translate.From

// MARKER is placed under each offending column.
const MARKER = "↑"

// Locator is a diagnostic that knows where it happened.
type Locator interface {
	// Location returns the byte offsets of the diagnostic in the line.
	// start == end designates a single position, otherwise [start, end).
	Location() (start, end int)
	// Hints returns the names of what would have been accepted.
	Hints() []string
}

// column converts a byte offset of line into a display column.
func column(line string, offset int) int {
	offset = max(0, min(offset, len(line)))
	return utf8.RuneCountInString(line[:offset])
}

// Markers returns the marker line for a location: one marker at start, and a
// second one under the last column of a span wider than one column.
func Markers(line string, loc Locator) string {
	start, end := loc.Location()
	first := column(line, start)
	last := column(line, end) - 1

	marks := strings.Repeat(" ", first) + MARKER
	if last > first {
		marks += strings.Repeat(" ", last-first-1) + MARKER
	}

	return marks
}

// Message returns the one line description of a location.
func Message(line string, loc Locator) (text string) {
	start, end := loc.Location()
	if start >= end {
		text = f("at position %d", column(line, start))
	} else {
		text = f("somewhere between position %d and %d", column(line, start), column(line, end))
	}

	if hints := loc.Hints(); len(hints) != 0 {
		text += f(", expected %v", strings.Join(hints, f(" or ")))
	}

	return
}

// Sprint returns the complete diagnostic for line.
func Sprint(line string, loc Locator) string {
	return fmt.Sprintf("%v\n%v\n%v\n%v\n", f("Syntax error:"), line, Markers(line, loc), Message(line, loc))
}

// Render writes the complete diagnostic for line to w.
func Render(w io.Writer, line string, loc Locator) (err error) {
	_, err = io.WriteString(w, Sprint(line, loc))
	return
}
