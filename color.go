package expectorate

import (
	"os"
	"sync"

	"golang.org/x/term"
)

var (
	colorOnce sync.Once
	colorOK   bool
)

// colorEnabled reports whether diff output should use ANSI colors. The probe runs once per process against stdout, where failure diffs end up.
func colorEnabled() bool {
	colorOnce.Do(func() {
		colorOK = terminalColor(os.Stdout)
	})
	return colorOK
}

// terminalColor reports whether f is an interactive terminal that should receive colored output. NO_COLOR set to any value (including empty) and TERM=dumb both suppress color.
func terminalColor(f *os.File) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
