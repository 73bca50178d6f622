// Package diff computes and renders line-granular text diffs between an "old" and a "new" string.
//
// Representation: A Diff holds the complete OldText/NewText and an ordered slice of line records. Each record has an Op:
//   - OpEqual: the line appears in both texts
//   - OpInsert: the line appears only in the new text
//   - OpDelete: the line appears only in the old text
//
// Lines are atomic tokens: the diff never splits within a line. Each record's Text includes the trailing '\n' if it was present in the input; the last line of an input may not have one,
// and that fact is preserved.
//
// Invariants:
//   - concatenating Text over OpEqual and OpDelete records reconstructs Diff.OldText
//   - concatenating Text over OpEqual and OpInsert records reconstructs Diff.NewText
//   - records appear in document order; within a changed region, deletions precede the insertions that replace them
//
// Getting a diff: Use DiffText to compute a Diff:
//
//	d := diff.DiffText(oldText, newText)
//	fmt.Println(d.Render(false))
//
// Rendering: Diff.Render emits every record, one output line each, prefixed like a unified diff body (" ", "-", "+") with no hunk headers; unchanged lines are always kept as context.
// Set color to true to wrap removed lines in red and added lines in green ANSI escapes.
//
// Newlines: This package treats '\n' as the line separator. A trailing-newline difference between the two inputs is a real change and produces records.
package diff
