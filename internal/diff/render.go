package diff

import "strings"

// Render returns a human-oriented rendering of d with every unchanged line kept as context. Each record becomes one output line, prefixed like a unified diff body: " " for lines in
// both texts, "-" for lines only in the old text, and "+" for lines only in the new text. There are no hunk headers.
//
// If color, removed lines are wrapped in red and added lines in green ANSI escapes; otherwise the output contains no escape sequences and is safe for non-terminal destinations.
//
// Lines are rendered without their trailing newline, and the returned string uses "\n" as the line separator. A diff with no records renders as the empty string. Render is a pure
// function of d and color.
func (d Diff) Render(color bool) string {
	// Colors (ANSI). Applied only if color==true.
	const (
		reset = "\x1b[0m"
		red   = "\x1b[31m"
		green = "\x1b[32m"
	)

	colorize := func(s, code string) string {
		if !color {
			return s
		}
		return code + s + reset
	}

	out := make([]string, 0, len(d.Lines))
	for _, ln := range d.Lines {
		core, _ := trimEOL(ln.Text, defaultEOL)
		switch ln.Op {
		case OpEqual:
			out = append(out, " "+core)
		case OpDelete:
			out = append(out, colorize("-"+core, red))
		case OpInsert:
			out = append(out, colorize("+"+core, green))
		}
	}
	return strings.Join(out, defaultEOL)
}
