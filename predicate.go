package expectorate

import "fmt"

// FilePredicate checks candidate text for equality with the contents of a fixture file. Construct one with EqFile or EqFileOrPanic.
type FilePredicate struct {
	path        string
	panicOnFail bool
}

// EqFile returns a predicate that ensures equality with the contents of the file at path.
//
// To accept changes to the file, run with EXPECTORATE=overwrite.
func EqFile(path string) FilePredicate {
	return FilePredicate{path: path}
}

// EqFileOrPanic is like EqFile, but the returned predicate panics on mismatch or I/O failure instead of reporting false.
//
// To accept changes to the file, run with EXPECTORATE=overwrite.
func EqFileOrPanic(path string) FilePredicate {
	return FilePredicate{path: path, panicOnFail: true}
}

// Eval reports whether actual matches the fixture, under the same mode and normalization rules as AssertContents: in overwrite mode it rewrites the fixture and reports true. On
// mismatch or I/O failure it prints the failure (including the rendered diff) to stdout and reports false, or panics for a predicate built with EqFileOrPanic.
func (p FilePredicate) Eval(actual string) bool {
	err := assertContents(p.path, actual, ModeFromEnv(), colorEnabled())
	if err == nil {
		return true
	}
	if p.panicOnFail {
		panic(fmt.Sprintf("assertion failed: %v", err))
	}
	fmt.Println(err)
	return false
}

func (p FilePredicate) String() string {
	return fmt.Sprintf("content matches %s", p.path)
}
