package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindFiles(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	write := func(rel string) string {
		p := filepath.Join(dir, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte("# menu"), 0o600))
		return p
	}
	b := write("b.hcl")
	a := write("a.hcl")
	nested := write("extra/sauces.hcl")
	write("notes.txt")

	// --- Act ---
	files, err := FindFiles([]string{dir, a}, ".hcl")

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, []string{a, b, nested}, files)
}

func TestFindFiles_SingleFileWithOtherExtension(t *testing.T) {
	t.Parallel()

	p := filepath.Join(t.TempDir(), "menu.txt")
	require.NoError(t, os.WriteFile(p, nil, 0o600))

	files, err := FindFiles([]string{p}, ".hcl")
	require.NoError(t, err)
	require.Empty(t, files)
}

func TestFindFiles_MissingPath(t *testing.T) {
	t.Parallel()

	_, err := FindFiles([]string{filepath.Join(t.TempDir(), "missing")}, ".hcl")
	require.Error(t, err)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestFindFiles_EmptyExtensionPanics(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { _, _ = FindFiles(nil, "") })
}
