package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestOutputFormatValid(t *testing.T) {
	tests := []struct {
		format OutputFormat
		valid  bool
	}{
		{FormatTable, true},
		{FormatJSON, true},
		{FormatYAML, true},
		{OutputFormat("dir"), false},
		{OutputFormat(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.format.Valid())
		})
	}
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		input string
		want  OutputFormat
		valid bool
	}{
		{"table", FormatTable, true},
		{"TABLE", FormatTable, true},
		{"json", FormatJSON, true},
		{"yaml", FormatYAML, true},
		{"yml", FormatYAML, true},
		{"invalid", OutputFormat("invalid"), false},
		{"", OutputFormat(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, valid := ParseOutputFormat(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.valid, valid)
		})
	}
}

func TestValidFormats(t *testing.T) {
	assert.Equal(t, []string{"table", "json", "yaml"}, ValidFormats())
}

type sample struct {
	Kind  string   `json:"kind" yaml:"kind"`
	Flags []string `json:"flags" yaml:"flags"`
}

func TestWriteStructured(t *testing.T) {
	in := []sample{{Kind: "rust", Flags: []string{"project-type"}}}

	var jsonBuf bytes.Buffer
	require.NoError(t, WriteStructured(&jsonBuf, FormatJSON, in))
	var fromJSON []sample
	require.NoError(t, json.Unmarshal(jsonBuf.Bytes(), &fromJSON))
	assert.Equal(t, in, fromJSON)

	var yamlBuf bytes.Buffer
	require.NoError(t, WriteStructured(&yamlBuf, FormatYAML, in))
	assert.Contains(t, yamlBuf.String(), "- kind: rust")

	var fromYAML []sample
	require.NoError(t, yaml.Unmarshal(yamlBuf.Bytes(), &fromYAML))
	assert.Equal(t, in, fromYAML)

	assert.Error(t, WriteStructured(&bytes.Buffer{}, FormatTable, in))
}
