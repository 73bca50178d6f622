package diff

import (
	"fmt"
	"strings"
)

// validate checks the Diff invariants and returns an error on the first violation.
func (d Diff) validate() error {
	var oldConcat, newConcat strings.Builder
	for i, ln := range d.Lines {
		if ln.Text == "" {
			return fmt.Errorf("line[%d]: empty Text", i)
		}
		switch ln.Op {
		case OpEqual:
			oldConcat.WriteString(ln.Text)
			newConcat.WriteString(ln.Text)
		case OpDelete:
			oldConcat.WriteString(ln.Text)
		case OpInsert:
			newConcat.WriteString(ln.Text)
		default:
			return fmt.Errorf("line[%d]: unknown op %d", i, ln.Op)
		}
	}
	if d.OldText != oldConcat.String() {
		return fmt.Errorf("diff: lines do not reconstruct OldText")
	}
	if d.NewText != newConcat.String() {
		return fmt.Errorf("diff: lines do not reconstruct NewText")
	}
	return nil
}
