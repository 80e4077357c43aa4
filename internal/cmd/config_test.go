package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/opmodel/scaffold/internal/config"
	oerrors "github.com/opmodel/scaffold/internal/errors"
)

func TestNewConfigCmd(t *testing.T) {
	c := NewConfigCmd(&GlobalConfig{})

	assert.Equal(t, "config", c.Use)
	var names []string
	for _, sub := range c.Commands() {
		names = append(names, sub.Name())
	}
	assert.ElementsMatch(t, []string{"init", "vet"}, names)

	initCmd, _, err := c.Find([]string{"init"})
	require.NoError(t, err)
	assert.NotNil(t, initCmd.Flags().Lookup("force"))
}

func TestConfigInit_CreatesFile(t *testing.T) {
	env := newTestEnv(t)
	env.configPath = filepath.Join(env.home, ".scaffold", "config.yaml")

	out, err := env.run(t, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Config file created")

	dirInfo, err := os.Stat(filepath.Dir(env.configPath))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o700), dirInfo.Mode().Perm())

	fileInfo, err := os.Stat(env.configPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), fileInfo.Mode().Perm())

	data, err := os.ReadFile(env.configPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# scaffold configuration")

	var cfg config.Config
	require.NoError(t, yaml.Unmarshal(data, &cfg))
	assert.Equal(t, config.DefaultConfig(), &cfg)

	// The generated file loads cleanly.
	loaded, err := config.NewLoader().LoadWithDefaults(env.configPath)
	require.NoError(t, err)
	assert.Equal(t, "binary", loaded.Defaults.Rust.ProjectType)
}

func TestConfigInit_ExistingConfig(t *testing.T) {
	env := newTestEnv(t)
	env.writeConfig(t, "baseDir: /keep\n")

	_, err := env.run(t, "config", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
	assert.Equal(t, oerrors.ExitGeneralError, oerrors.ExitCodeFromError(err))

	data, err := os.ReadFile(env.configPath)
	require.NoError(t, err)
	assert.Equal(t, "baseDir: /keep\n", string(data))
}

func TestConfigInit_ForceOverwrite(t *testing.T) {
	env := newTestEnv(t)
	env.writeConfig(t, "baseDir: /old\n")

	_, err := env.run(t, "config", "init", "--force")
	require.NoError(t, err)

	data, err := os.ReadFile(env.configPath)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "/old")
	assert.Contains(t, string(data), "projectType: binary")
}

func TestConfigVet(t *testing.T) {
	tests := []struct {
		name     string
		content  string // empty means no file
		wantCode int
		wantOut  string
	}{
		{
			name:     "valid",
			content:  "baseDir: ~/code\ndefaults:\n  rust:\n    projectType: library\n",
			wantCode: oerrors.ExitSuccess,
			wantOut:  "Config file is valid",
		},
		{
			name:     "invalid project type",
			content:  "defaults:\n  rust:\n    projectType: plugin\n",
			wantCode: oerrors.ExitValidationError,
		},
		{
			name:     "missing file",
			wantCode: oerrors.ExitGeneralError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			if tt.content != "" {
				env.writeConfig(t, tt.content)
			}

			out, err := env.run(t, "config", "vet")
			assert.Equal(t, tt.wantCode, oerrors.ExitCodeFromError(err))
			if tt.wantOut != "" {
				assert.Contains(t, out, tt.wantOut)
			}
		})
	}
}

func TestConfigVet_ReportsField(t *testing.T) {
	env := newTestEnv(t)
	env.writeConfig(t, "defaults:\n  rust:\n    projectType: plugin\n")

	_, err := env.run(t, "config", "vet")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "defaults.rust.projectType")
}
