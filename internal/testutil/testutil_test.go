package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsolatedHome(t *testing.T) {
	t.Setenv("SCAFFOLD_BASE_DIR", "/from/outside")

	home := IsolatedHome(t)

	assert.Equal(t, home, os.Getenv("HOME"))
	assert.Empty(t, os.Getenv("SCAFFOLD_BASE_DIR"))
	assert.DirExists(t, home)
}

func TestWriteFileAndReadTree(t *testing.T) {
	root := t.TempDir()

	path := WriteFile(t, root, "a/b/c.txt", "hello")
	assert.Equal(t, filepath.Join(root, "a", "b", "c.txt"), path)
	WriteFile(t, root, "top.txt", "top")

	assert.Equal(t, map[string]string{
		"a/":        "",
		"a/b/":      "",
		"a/b/c.txt": "hello",
		"top.txt":   "top",
	}, ReadTree(t, root))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}
