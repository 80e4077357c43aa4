package config

import (
	"os"

	"github.com/opmodel/scaffold/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolvedValue records where one configuration value came from and which
// lower-precedence values it shadowed.
type ResolvedValue struct {
	Key      string
	Value    any
	Source   ConfigSource
	Shadowed map[ConfigSource]string
}

// ResolveConfigPathOptions contains options for config path resolution.
type ResolveConfigPathOptions struct {
	// FlagValue is the --config flag value (empty if not set).
	FlagValue string
}

// ResolveConfigPathResult contains the resolved config path and its source.
type ResolveConfigPathResult struct {
	// ConfigPath is the resolved config file path.
	ConfigPath string
	// Source indicates where the config path came from.
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]string
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) SCAFFOLD_CONFIG env, (3) ~/.scaffold/config.yaml
func ResolveConfigPath(opts ResolveConfigPathOptions) (ResolveConfigPathResult, error) {
	result := ResolveConfigPathResult{
		Shadowed: make(map[ConfigSource]string),
	}

	envValue := os.Getenv(EnvConfig)

	paths, err := DefaultPaths()
	if err != nil {
		return result, err
	}
	defaultPath := paths.ConfigFile

	switch {
	case opts.FlagValue != "":
		result.ConfigPath = opts.FlagValue
		result.Source = SourceFlag
		if envValue != "" {
			result.Shadowed[SourceEnv] = envValue
		}
		result.Shadowed[SourceDefault] = defaultPath
	case envValue != "":
		result.ConfigPath = envValue
		result.Source = SourceEnv
		result.Shadowed[SourceDefault] = defaultPath
	default:
		result.ConfigPath = defaultPath
		result.Source = SourceDefault
	}

	return result, nil
}

// ResolveBaseDirOptions contains options for base directory resolution.
type ResolveBaseDirOptions struct {
	// FlagValue is the --dir flag value (empty if not set).
	FlagValue string
	// ConfigValue is the loaded baseDir, which already has the env
	// override applied.
	ConfigValue string
}

// ResolveBaseDir resolves the directory projects are created in using
// precedence: (1) --dir flag, (2) SCAFFOLD_BASE_DIR env, (3) config.baseDir,
// (4) the working directory. The returned path has ~ expanded.
func ResolveBaseDir(opts ResolveBaseDirOptions) (ResolvedValue, error) {
	result := ResolvedValue{
		Key:      "baseDir",
		Shadowed: make(map[ConfigSource]string),
	}

	envValue := os.Getenv(EnvBaseDir)
	fileValue := opts.ConfigValue
	if envValue != "" && fileValue == envValue {
		// The loader merged the env value in; the file value is unknown.
		fileValue = ""
	}

	var value string
	switch {
	case opts.FlagValue != "":
		value = opts.FlagValue
		result.Source = SourceFlag
		if envValue != "" {
			result.Shadowed[SourceEnv] = envValue
		}
		if fileValue != "" {
			result.Shadowed[SourceConfig] = fileValue
		}
	case envValue != "":
		value = envValue
		result.Source = SourceEnv
		if fileValue != "" {
			result.Shadowed[SourceConfig] = fileValue
		}
	case fileValue != "":
		value = fileValue
		result.Source = SourceConfig
	default:
		value = "."
		result.Source = SourceDefault
	}

	expanded, err := ExpandPath(value)
	if err != nil {
		return result, err
	}
	result.Value = expanded
	return result, nil
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}
