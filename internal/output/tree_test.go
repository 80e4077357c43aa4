package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderFileTree(t *testing.T) {
	out := stripAnsi(RenderFileTree("my-lib", map[string]string{
		"Cargo.toml":           "Cargo manifest",
		"src/":                 "Crate sources",
		"src/lib.rs":           "Library root",
		"tests/":               "",
		"tests/integration.rs": "",
	}))

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "my-lib/", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "├── src/"))
	assert.Contains(t, lines[1], "Crate sources")
	assert.True(t, strings.HasPrefix(lines[2], "│   └── lib.rs"))
	assert.True(t, strings.HasPrefix(lines[3], "├── tests/"))
	assert.Equal(t, "│   └── integration.rs", lines[4])
	assert.True(t, strings.HasPrefix(lines[5], "└── Cargo.toml"))
}

func TestRenderFileTree_EmptyDirectory(t *testing.T) {
	out := stripAnsi(RenderFileTree("app", map[string]string{
		"android/": "",
		"index.js": "",
		".vscode/": "",
	}))
	assert.Contains(t, out, "├── .vscode/")
	assert.Contains(t, out, "├── android/")
	assert.Contains(t, out, "└── index.js")
}

func TestRenderFileTree_Empty(t *testing.T) {
	assert.Empty(t, RenderFileTree("x", nil))
}

func TestRenderFileTree_DescriptionColumn(t *testing.T) {
	out := stripAnsi(RenderFileTree("x", map[string]string{
		"a.txt":    "first",
		"long.txt": "second",
	}))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, descriptionColumn, strings.Index(lines[1], "first"))
	assert.Equal(t, descriptionColumn, strings.Index(lines[2], "second"))
}
