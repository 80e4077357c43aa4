package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveConfigPath_FlagPrecedence(t *testing.T) {
	t.Setenv(EnvConfig, "/env/path/config.yaml")

	result, err := ResolveConfigPath(ResolveConfigPathOptions{
		FlagValue: "/flag/path/config.yaml",
	})
	require.NoError(t, err)

	assert.Equal(t, "/flag/path/config.yaml", result.ConfigPath)
	assert.Equal(t, SourceFlag, result.Source)
	assert.Equal(t, "/env/path/config.yaml", result.Shadowed[SourceEnv])
	assert.NotEmpty(t, result.Shadowed[SourceDefault])
}

func TestResolveConfigPath_EnvPrecedence(t *testing.T) {
	t.Setenv(EnvConfig, "/env/path/config.yaml")

	result, err := ResolveConfigPath(ResolveConfigPathOptions{})
	require.NoError(t, err)

	assert.Equal(t, "/env/path/config.yaml", result.ConfigPath)
	assert.Equal(t, SourceEnv, result.Source)
	assert.NotEmpty(t, result.Shadowed[SourceDefault])
}

func TestResolveConfigPath_Default(t *testing.T) {
	t.Setenv(EnvConfig, "")

	result, err := ResolveConfigPath(ResolveConfigPathOptions{})
	require.NoError(t, err)

	assert.Contains(t, result.ConfigPath, ".scaffold")
	assert.Contains(t, result.ConfigPath, "config.yaml")
	assert.Equal(t, SourceDefault, result.Source)
	assert.Empty(t, result.Shadowed)
}

func TestSource_String(t *testing.T) {
	assert.Equal(t, "flag", string(SourceFlag))
	assert.Equal(t, "env", string(SourceEnv))
	assert.Equal(t, "config", string(SourceConfig))
	assert.Equal(t, "default", string(SourceDefault))
}

func TestResolveBaseDir(t *testing.T) {
	tests := []struct {
		name       string
		env        string
		flag       string
		config     string
		wantValue  string
		wantSource ConfigSource
		wantShadow map[ConfigSource]string
	}{
		{
			name:       "flag overrides all",
			env:        "/env",
			flag:       "/flag",
			config:     "/file",
			wantValue:  "/flag",
			wantSource: SourceFlag,
			wantShadow: map[ConfigSource]string{SourceEnv: "/env", SourceConfig: "/file"},
		},
		{
			name:       "env over config",
			env:        "/env",
			config:     "/env",
			wantValue:  "/env",
			wantSource: SourceEnv,
			wantShadow: map[ConfigSource]string{},
		},
		{
			name:       "config value",
			config:     "/file",
			wantValue:  "/file",
			wantSource: SourceConfig,
			wantShadow: map[ConfigSource]string{},
		},
		{
			name:       "default",
			wantValue:  ".",
			wantSource: SourceDefault,
			wantShadow: map[ConfigSource]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvBaseDir, tt.env)

			got, err := ResolveBaseDir(ResolveBaseDirOptions{FlagValue: tt.flag, ConfigValue: tt.config})
			require.NoError(t, err)
			assert.Equal(t, "baseDir", got.Key)
			assert.Equal(t, tt.wantValue, got.Value)
			assert.Equal(t, tt.wantSource, got.Source)
			assert.Equal(t, tt.wantShadow, got.Shadowed)
		})
	}
}

func TestResolveBaseDir_ExpandsTilde(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	t.Setenv(EnvBaseDir, "")

	got, err := ResolveBaseDir(ResolveBaseDirOptions{FlagValue: "~/code"})
	require.NoError(t, err)
	assert.Equal(t, "/home/tester/code", got.Value)
}
