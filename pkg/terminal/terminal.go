// Package terminal answers questions about the terminal the command is
// attached to, if any.
package terminal

import (
	"os"
	"strconv"

	"golang.org/x/term"
)

const DefaultWidth = 80

// IsTerminalFile reports whether f refers to a terminal.  It is false for
// any f that is not backed by an *os.File such as a pipe or regular file.
func IsTerminalFile(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Width returns the column width of the terminal on stderr, falling back
// to $COLUMNS and then DefaultWidth.
func Width() int {
	if w, _, err := term.GetSize(int(os.Stderr.Fd())); err == nil && w > 0 {
		return w
	}
	if w, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil && w > 0 {
		return w
	}
	return DefaultWidth
}
