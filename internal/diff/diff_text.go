package diff

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// DiffText diffs oldText to newText, returning a Diff.
func DiffText(oldText, newText string) Diff {
	dmp := diffmatchpatch.New()

	// Diff based on lines: each unique line is mapped to a rune, so the edit script is computed over lines as atomic tokens.
	rOld, rNew, lineArray := dmp.DiffLinesToRunes(oldText, newText)
	lineDiffs := dmp.DiffMainRunes(rOld, rNew, false)
	lineDiffs = dmp.DiffCleanupMerge(lineDiffs)

	// Decode rune-string back to slice of original lines using the lineArray mapping.
	decode := func(s string) []string {
		if s == "" {
			return nil
		}
		out := make([]string, 0, len(s))
		for _, r := range s {
			idx := int(r)
			if idx >= 0 && idx < len(lineArray) {
				out = append(out, lineArray[idx])
			}
		}
		return out
	}

	var lines []Line
	var dels []Line
	var ins []Line

	// flush emits a pending changed region, deletions first.
	flush := func() {
		lines = append(lines, dels...)
		lines = append(lines, ins...)
		dels = nil
		ins = nil
	}

	for _, d := range lineDiffs {
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			flush()
			for _, ln := range decode(d.Text) {
				lines = append(lines, Line{Op: OpEqual, Text: ln})
			}
		case diffmatchpatch.DiffDelete:
			for _, ln := range decode(d.Text) {
				dels = append(dels, Line{Op: OpDelete, Text: ln})
			}
		case diffmatchpatch.DiffInsert:
			for _, ln := range decode(d.Text) {
				ins = append(ins, Line{Op: OpInsert, Text: ln})
			}
		}
	}
	flush()

	diff := Diff{OldText: oldText, NewText: newText, Lines: lines}

	if err := diff.validate(); err != nil {
		panic(fmt.Errorf("DiffText: validate failed with %v", err))
	}

	return diff
}

// trimEOL removes a trailing eol from a line if present.
func trimEOL(line, eol string) (string, bool) {
	if eol != "" && strings.HasSuffix(line, eol) {
		return line[:len(line)-len(eol)], true
	}
	return line, false
}
