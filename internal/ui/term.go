package ui

import (
	"io"
	"os"

	"golang.org/x/term"
)

const fallbackWidth = 80

// IsTTY reports whether w is a terminal. Writers that are not *os.File never are.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd())) //nolint:gosec // G115: fd fits in int
}

// TermWidth returns the column count of the terminal behind w, or 80 when w
// is not a terminal or its size is unavailable.
func TermWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return fallbackWidth
	}
	width, _, err := term.GetSize(int(f.Fd())) //nolint:gosec // G115: fd fits in int
	if err != nil || width <= 0 {
		return fallbackWidth
	}
	return width
}
