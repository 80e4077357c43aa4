package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderKindTable(t *testing.T) {
	out := stripAnsi(RenderKindTable([]KindRow{
		{Kind: "react", Description: "React web application", Flags: "--typescript, --testing"},
		{Kind: "rust", Description: "Rust crate", Flags: "--project-type"},
	}))

	assert.Contains(t, out, "KIND")
	assert.Contains(t, out, "DESCRIPTION")
	assert.Contains(t, out, "react")
	assert.Contains(t, out, "--project-type")
}
