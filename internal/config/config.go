// Package config provides configuration loading and management.
package config

import (
	"github.com/opmodel/scaffold/internal/project"
)

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	// Env: SCAFFOLD_LOG_TIMESTAMPS
	Timestamps *bool `mapstructure:"timestamps" yaml:"timestamps,omitempty"`
}

// ReactDefaults are the default flags of `scaffold react`.
type ReactDefaults struct {
	TypeScript bool `mapstructure:"typescript" yaml:"typescript"`
	Testing    bool `mapstructure:"testing" yaml:"testing"`
}

// ReactNativeDefaults are the default flags of `scaffold react-native`.
type ReactNativeDefaults struct {
	TypeScript bool `mapstructure:"typescript" yaml:"typescript"`
	Navigation bool `mapstructure:"navigation" yaml:"navigation"`
}

// RustDefaults are the default flags of `scaffold rust`.
type RustDefaults struct {
	// ProjectType is "binary" or "library".
	ProjectType string `mapstructure:"projectType" yaml:"projectType"`
}

// Defaults holds per-kind option defaults. Explicit flags always win.
type Defaults struct {
	React       ReactDefaults       `mapstructure:"react" yaml:"react"`
	ReactNative ReactNativeDefaults `mapstructure:"reactNative" yaml:"reactNative"`
	Rust        RustDefaults        `mapstructure:"rust" yaml:"rust"`
}

// Config represents the scaffold CLI configuration.
// Loaded from ~/.scaffold/config.yaml.
type Config struct {
	// BaseDir is the directory new projects are created in.
	// Env: SCAFFOLD_BASE_DIR, Default: "."
	BaseDir string `mapstructure:"baseDir" yaml:"baseDir"`

	// Log contains logging-related settings.
	Log LogConfig `mapstructure:"log" yaml:"log,omitempty"`

	// Defaults contains per-kind option defaults.
	Defaults Defaults `mapstructure:"defaults" yaml:"defaults"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `scaffold config init` to generate the initial config file.
func DefaultConfig() *Config {
	return &Config{
		BaseDir: ".",
		Defaults: Defaults{
			Rust: RustDefaults{ProjectType: string(project.Binary)},
		},
	}
}

// WithDefaults fills unset fields from DefaultConfig.
func (c *Config) WithDefaults() *Config {
	out := *c
	def := DefaultConfig()
	if out.BaseDir == "" {
		out.BaseDir = def.BaseDir
	}
	if out.Defaults.Rust.ProjectType == "" {
		out.Defaults.Rust.ProjectType = def.Defaults.Rust.ProjectType
	}
	return &out
}

// OptionDefaults returns the configured defaults for kind as raw options,
// keyed by canonical flag name.
func (c *Config) OptionDefaults(kind project.Kind) map[string]any {
	switch kind {
	case project.React:
		return map[string]any{
			project.FlagTypeScript: c.Defaults.React.TypeScript,
			project.FlagTesting:    c.Defaults.React.Testing,
		}
	case project.ReactNative:
		return map[string]any{
			project.FlagTypeScript: c.Defaults.ReactNative.TypeScript,
			project.FlagNavigation: c.Defaults.ReactNative.Navigation,
		}
	case project.Rust:
		raw := map[string]any{}
		if c.Defaults.Rust.ProjectType != "" {
			raw[project.FlagProjectType] = c.Defaults.Rust.ProjectType
		}
		return raw
	default:
		return map[string]any{}
	}
}
