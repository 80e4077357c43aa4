package project

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/opmodel/scaffold/internal/errors"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		kind       Kind
		raw        map[string]any
		want       Options
		wantReason Reason
	}{
		{
			name: "react defaults",
			kind: React,
			want: ReactOptions{},
		},
		{
			name: "react typescript and testing",
			kind: React,
			raw:  map[string]any{"typescript": true, "testing": "true"},
			want: ReactOptions{TypeScript: true, Testing: true},
		},
		{
			name:       "react rejects navigation",
			kind:       React,
			raw:        map[string]any{"navigation": true},
			wantReason: UnsupportedOption,
		},
		{
			name:       "react rejects project type",
			kind:       React,
			raw:        map[string]any{"project-type": "library"},
			wantReason: UnsupportedOption,
		},
		{
			name: "react native navigation",
			kind: ReactNative,
			raw:  map[string]any{"navigation": true},
			want: ReactNativeOptions{Navigation: true},
		},
		{
			name:       "react native rejects testing",
			kind:       ReactNative,
			raw:        map[string]any{"testing": false},
			wantReason: UnsupportedOption,
		},
		{
			name: "rust defaults to binary",
			kind: Rust,
			want: RustOptions{ProjectType: Binary},
		},
		{
			name: "rust library via alias",
			kind: Rust,
			raw:  map[string]any{"projectType": "library"},
			want: RustOptions{ProjectType: Library},
		},
		{
			name:       "rust invalid project type",
			kind:       Rust,
			raw:        map[string]any{"project-type": "plugin"},
			wantReason: InvalidEnumValue,
		},
		{
			name:       "rust project type is case sensitive",
			kind:       Rust,
			raw:        map[string]any{"project-type": "Library"},
			wantReason: InvalidEnumValue,
		},
		{
			name:       "rust rejects typescript",
			kind:       Rust,
			raw:        map[string]any{"typescript": true},
			wantReason: UnsupportedOption,
		},
		{
			name:       "duplicate spelling",
			kind:       Rust,
			raw:        map[string]any{"project-type": "binary", "projectType": "library"},
			wantReason: DuplicateOption,
		},
		{
			name:       "non boolean string",
			kind:       React,
			raw:        map[string]any{"typescript": "maybe"},
			wantReason: InvalidValue,
		},
		{
			name:       "non boolean type",
			kind:       React,
			raw:        map[string]any{"testing": 1},
			wantReason: InvalidValue,
		},
		{
			name:       "unknown kind",
			kind:       Kind("vue"),
			wantReason: UnknownKind,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Validate(tt.kind, tt.raw)
			if tt.wantReason != "" {
				require.Error(t, err)
				var ve *ValidationError
				require.True(t, errors.As(err, &ve))
				assert.Equal(t, tt.wantReason, ve.Reason)
				assert.True(t, errors.Is(err, oerrors.ErrValidation))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidate_FirstErrorIsStable(t *testing.T) {
	raw := map[string]any{"zeta": true, "alpha": true, "navigation": true}
	for i := 0; i < 20; i++ {
		_, err := Validate(React, raw)
		var ve *ValidationError
		require.True(t, errors.As(err, &ve))
		assert.Equal(t, "alpha", ve.Field)
	}
}

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "my-app", false},
		{"underscores and digits", "app_2", false},
		{"mixed case", "MyApp", false},
		{"empty", "", true},
		{"dot", ".", true},
		{"dot dot", "..", true},
		{"forward slash", "a/b", true},
		{"back slash", `a\b`, true},
		{"colon", "a:b", true},
		{"wildcard", "app*", true},
		{"nul", "a\x00b", true},
		{"newline", "a\nb", true},
		{"trailing dot", "app.", true},
		{"trailing space", "app ", true},
		{"inner space", "my app", true},
		{"braces", "app{x}", true},
		{"quote", "it's", true},
		{"leading dot", ".hidden", true},
		{"leading dash", "-app", true},
		{"dotted", "my.app", false},
		{"no alphanumerics", "---", true},
		{"too long", strings.Repeat("a", maxNameLength+1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var ve *ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, InvalidName, ve.Reason)
		})
	}
}

func TestPackageName(t *testing.T) {
	assert.Equal(t, "myapp", PackageName("my-app"))
	assert.Equal(t, "myapp2", PackageName("My_App.2"))
	assert.Equal(t, "", PackageName("--"))
	assert.Equal(t, "caf", PackageName("café"))
}

func TestAllOptions_CoversEveryKind(t *testing.T) {
	assert.Len(t, AllOptions(React), 4)
	assert.Len(t, AllOptions(ReactNative), 4)
	assert.Len(t, AllOptions(Rust), 2)
	assert.Nil(t, AllOptions(Kind("vue")))

	for _, kind := range Kinds() {
		for _, opts := range AllOptions(kind) {
			assert.Equal(t, kind, opts.Kind())
		}
	}
}

func TestRustFlags(t *testing.T) {
	lib := RustOptions{ProjectType: Library}.Flags()
	assert.True(t, lib["Library"])
	assert.False(t, lib["Binary"])

	bin := RustOptions{ProjectType: Binary}.Flags()
	assert.True(t, bin["Binary"])
	assert.False(t, bin["Library"])
}
