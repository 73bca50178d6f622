package fixture

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_Missing(t *testing.T) {
	content, ok, err := Load(filepath.Join(t.TempDir(), "absent.txt"))
	require.NoError(t, err)
	require.False(t, ok)
	require.Empty(t, content)
}

func TestLoad_Existing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.txt")
	require.NoError(t, os.WriteFile(path, []byte("line 1\nline 2\n"), 0o644))

	content, ok, err := Load(path)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "line 1\nline 2\n", content)
}

func TestLoad_PathIsDirectory(t *testing.T) {
	dir := t.TempDir()
	_, _, err := Load(dir)
	require.Error(t, err)
	require.Contains(t, err.Error(), dir)
}

func TestStore_CreatesParents(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a", "b", "c.txt")

	require.NoError(t, Store(path, "hello\n"))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "hello\n", string(b))
}

func TestStore_ReplacesContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f.txt")
	require.NoError(t, os.WriteFile(path, []byte("a much longer original content\n"), 0o644))

	require.NoError(t, Store(path, "short\n"))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "short\n", string(b))

	// The temp file must not survive the rename.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestStore_ParentIsFile(t *testing.T) {
	dir := t.TempDir()
	occupied := filepath.Join(dir, "occupied")
	require.NoError(t, os.WriteFile(occupied, []byte("not a directory\n"), 0o644))

	err := Store(filepath.Join(occupied, "f.txt"), "x\n")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unable to create directory")
	require.Contains(t, err.Error(), occupied)
}

func TestStore_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.txt")
	for i := 0; i < 2; i++ {
		require.NoError(t, Store(path, "same\n"))
		b, err := os.ReadFile(path)
		require.NoError(t, err)
		require.Equal(t, "same\n", string(b))
	}
}
