package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Environment variable prefix for scaffold configuration.
const envPrefix = "SCAFFOLD"

// Environment variables read outside viper's automatic binding.
const (
	EnvConfig     = "SCAFFOLD_CONFIG"
	EnvBaseDir    = "SCAFFOLD_BASE_DIR"
	EnvTimestamps = "SCAFFOLD_LOG_TIMESTAMPS"
)

// Loader handles loading and merging configuration from multiple sources.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	// Set up environment variable bindings
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults make every key known to viper, so nested keys resolve from
	// env as SCAFFOLD_DEFAULTS_REACT_TYPESCRIPT and so on.
	def := DefaultConfig()
	v.SetDefault("baseDir", def.BaseDir)
	v.SetDefault("defaults.react.typescript", def.Defaults.React.TypeScript)
	v.SetDefault("defaults.react.testing", def.Defaults.React.Testing)
	v.SetDefault("defaults.reactNative.typescript", def.Defaults.ReactNative.TypeScript)
	v.SetDefault("defaults.reactNative.navigation", def.Defaults.ReactNative.Navigation)
	v.SetDefault("defaults.rust.projectType", def.Defaults.Rust.ProjectType)

	// Bind specific environment variables
	_ = v.BindEnv("baseDir", EnvBaseDir, "SCAFFOLD_BASEDIR")
	_ = v.BindEnv("log.timestamps", EnvTimestamps)
	_ = v.BindEnv("defaults.reactNative.typescript", "SCAFFOLD_DEFAULTS_REACT_NATIVE_TYPESCRIPT")
	_ = v.BindEnv("defaults.reactNative.navigation", "SCAFFOLD_DEFAULTS_REACT_NATIVE_NAVIGATION")
	_ = v.BindEnv("defaults.rust.projectType", "SCAFFOLD_DEFAULTS_RUST_PROJECT_TYPE")

	return &Loader{v: v}
}

// Load loads configuration from the given file path.
// If configFile is empty, it uses the default config file path.
// Environment variables take precedence over file values.
func (l *Loader) Load(configFile string) (*Config, error) {
	if configFile == "" {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return nil, fmt.Errorf("getting config file path: %w", err)
		}
	}

	// Expand ~ in path
	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return nil, fmt.Errorf("expanding config path: %w", err)
	}

	l.v.SetConfigFile(expandedPath)
	l.v.SetConfigType("yaml")

	// A missing config file is fine; defaults and env vars still apply.
	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// LoadWithDefaults loads configuration, applies defaults and validates it.
func (l *Loader) LoadWithDefaults(configFile string) (*Config, error) {
	cfg, err := l.Load(configFile)
	if err != nil {
		return nil, err
	}

	cfg = cfg.WithDefaults()
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ConfigFileExists checks if the config file exists.
func ConfigFileExists(configFile string) (bool, error) {
	if configFile == "" {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return false, err
		}
	}

	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return false, err
	}

	_, err = os.Stat(expandedPath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}
