package term

import (
	"fmt"
	"strings"

	"github.com/muesli/ansi"
	"github.com/muesli/termenv"
)

var (
	// Clear erases the whole display and homes the cursor.
	Clear = termenv.CSI + fmt.Sprintf(termenv.EraseDisplaySeq, 2) + termenv.CSI + "H"

	HideCursor    = termenv.CSI + termenv.HideCursorSeq
	ShowCursor    = termenv.CSI + termenv.ShowCursorSeq
	AltScreen     = termenv.CSI + termenv.AltScreenSeq
	ExitAltScreen = termenv.CSI + termenv.ExitAltScreenSeq
)

// Move positions the cursor at 0-based column x, row y.
func Move(x, y int) string {
	return termenv.CSI + fmt.Sprintf(termenv.CursorPositionSeq, y+1, x+1)
}

// Blank returns a run of n spaces.
func Blank(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}

// PrintableWidth returns the number of columns s occupies once escape
// sequences are stripped.
func PrintableWidth(s string) int {
	return ansi.PrintableRuneWidth(s)
}
