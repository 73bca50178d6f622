package expectorate_test

import (
	"os"
	"testing"

	"github.com/oxidecomputer/expectorate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readTestdata(t *testing.T, name string) string {
	t.Helper()
	b, err := os.ReadFile(name)
	require.NoError(t, err)
	return string(b)
}

func TestAssertContents_Good(t *testing.T) {
	actual := readTestdata(t, "testdata/data_a.txt")
	expectorate.AssertContents(t, "testdata/data_a.txt", actual)
}

func TestPredicate_Good(t *testing.T) {
	actual := readTestdata(t, "testdata/data_a.txt")
	assert.True(t, expectorate.EqFile("testdata/data_a.txt").Eval(actual))
}

func TestPredicate_Bad(t *testing.T) {
	actual := readTestdata(t, "testdata/data_a.txt")
	assert.False(t, expectorate.EqFile("testdata/data_b.txt").Eval(actual))
}

func TestPredicate_OneLineChange(t *testing.T) {
	actual := readTestdata(t, "testdata/data_a.txt")
	assert.False(t, expectorate.EqFile("testdata/data_a2.txt").Eval(actual))
}

func TestPredicate_OrPanic(t *testing.T) {
	actual := readTestdata(t, "testdata/data_a.txt")

	require.Panics(t, func() {
		expectorate.EqFileOrPanic("testdata/data_b.txt").Eval(actual)
	})
	require.NotPanics(t, func() {
		assert.True(t, expectorate.EqFileOrPanic("testdata/data_a.txt").Eval(actual))
	})
}

func TestPredicate_String(t *testing.T) {
	assert.Equal(t, "content matches testdata/data_a.txt", expectorate.EqFile("testdata/data_a.txt").String())
}
