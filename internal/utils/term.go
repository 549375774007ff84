package utils

import (
	"os"
	"strconv"

	"golang.org/x/term"
)

// TermWidth returns the current terminal width in columns.
//
// In CI / tests there is often no TTY attached, so the size query
// fails. In that case we fall back to a sane default width (80) or the
// value from $COLUMNS if present.
func TermWidth() int {
	// Prefer explicit override when present.
	if c := os.Getenv("COLUMNS"); c != "" {
		if n, err := strconv.Atoi(c); err == nil && n > 0 {
			return n
		}
	}

	width, _, err := term.GetSize(int(os.Stderr.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}
