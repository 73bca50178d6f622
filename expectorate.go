package expectorate

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/oxidecomputer/expectorate/internal/diff"
	"github.com/oxidecomputer/expectorate/internal/fixture"
)

// EnvVar is the environment variable controlling the operating mode. Setting it to "overwrite" (exact, case-sensitive match) regenerates fixtures instead of comparing against them;
// any other value, or leaving it unset, selects Verify.
const EnvVar = "EXPECTORATE"

// Mode selects between comparing actual content against a fixture and regenerating the fixture from it.
type Mode int

const (
	// Verify compares actual content against the fixture and fails on mismatch.
	Verify Mode = iota
	// Overwrite replaces the fixture with the actual content; no comparison is performed.
	Overwrite
)

var (
	modeOnce sync.Once
	envMode  Mode
)

// ModeFromEnv resolves the operating mode from EnvVar. The result is cached after the first call, since the environment cannot meaningfully change mid-run.
func ModeFromEnv() Mode {
	modeOnce.Do(func() {
		envMode = modeFromString(os.Getenv(EnvVar))
	})
	return envMode
}

func modeFromString(s string) Mode {
	if s == "overwrite" {
		return Overwrite
	}
	return Verify
}

// TB is the subset of testing.TB used by AssertContents. *testing.T and *testing.B satisfy it.
type TB interface {
	Helper()
	Fatalf(format string, args ...any)
}

// AssertContents compares actual against the contents of the file at path and fails t on mismatch, with the line diff in the failure message. A missing file is compared as if empty,
// so every actual line shows as added. When the process runs with EXPECTORATE=overwrite, the file is rewritten with actual instead and no comparison is performed.
//
// CRLF line endings on either side are normalized to LF before comparing. A trailing-newline difference still counts as a mismatch.
//
// Any I/O failure reading or writing the fixture also fails t, naming the path and operation.
func AssertContents(t TB, path string, actual string) {
	t.Helper()
	if err := assertContents(path, actual, ModeFromEnv(), colorEnabled()); err != nil {
		t.Fatalf("%v", err)
	}
}

// MismatchError reports that actual content did not match a fixture in Verify mode. Diff holds the rendered line diff from the fixture's content to the actual content.
//
// I/O failures are reported as ordinary errors, not MismatchError.
type MismatchError struct {
	Path string // Fixture file that was compared against.
	Diff string // Rendered line diff, fixture to actual.
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("actual content does not match fixture %q:\n\n%s\n\nset %s=overwrite if these changes are intentional", e.Path, e.Diff, EnvVar)
}

// assertContents is the mode- and color-explicit core of AssertContents. It returns nil on a match or a successful overwrite, a *MismatchError on a content mismatch, and an ordinary
// error on I/O failure.
func assertContents(path string, actual string, mode Mode, color bool) error {
	actual = dos2unix(actual)

	if mode == Overwrite {
		// Never compare here: overwrite exists purely to regenerate fixtures.
		return fixture.Store(path, actual)
	}

	// Treat nonexistent files like an empty file.
	expected, _, err := fixture.Load(path)
	if err != nil {
		return err
	}
	expected = dos2unix(expected)

	if expected == actual {
		return nil
	}

	d := diff.DiffText(expected, actual)
	return &MismatchError{Path: path, Diff: d.Render(color)}
}

// dos2unix converts CRLF line endings to LF.
func dos2unix(s string) string {
	return strings.ReplaceAll(s, "\r\n", "\n")
}
