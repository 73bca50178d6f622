package diff

// Op is an operation from old text to new text.
type Op int

// Operations from old text to new text.
const (
	OpEqual Op = iota
	OpInsert
	OpDelete
)

// Line is a single line-level change record.
//
// Text is the entire line, including the trailing newline if the input had one (the last line of an input may not).
type Line struct {
	Op   Op     // Operation for this line (OpEqual, OpInsert, or OpDelete).
	Text string // Entire line, usually '\n'-terminated.
}

// Diff is a line-granular diff from old text to new text.
//
// Invariants:
//   - concat(Text of OpEqual and OpDelete lines) == OldText
//   - concat(Text of OpEqual and OpInsert lines) == NewText
//   - lines are in document order; within a changed region, deletions precede insertions
type Diff struct {
	OldText string // Entire original text.
	NewText string // Entire revised text.
	Lines   []Line // Ordered records that cover the whole diff and reconstruct OldText/NewText.
}

// Changed reports whether the diff contains any insertion or deletion.
func (d Diff) Changed() bool {
	for _, ln := range d.Lines {
		if ln.Op != OpEqual {
			return true
		}
	}
	return false
}

// defaultEOL is the EOL ('\n').
//
// This constant exists because the design may change to allow configurable EOLs (maybe Windows needs "\r\n"), and this provides a nice hook to find callsites.
const defaultEOL = "\n"
