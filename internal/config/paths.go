package config

import (
	"os"
	"path/filepath"
)

// Paths contains standard filesystem paths for scaffold.
type Paths struct {
	// ConfigFile is the path to the config file (~/.scaffold/config.yaml).
	ConfigFile string

	// HomeDir is the scaffold home directory (~/.scaffold).
	HomeDir string
}

// DefaultPaths returns the default paths for scaffold.
func DefaultPaths() (*Paths, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	scaffoldHome := filepath.Join(homeDir, ".scaffold")

	return &Paths{
		ConfigFile: filepath.Join(scaffoldHome, "config.yaml"),
		HomeDir:    scaffoldHome,
	}, nil
}

// GetConfigFile returns the config file path.
// If SCAFFOLD_CONFIG is set, it takes precedence.
func GetConfigFile() (string, error) {
	if envPath := os.Getenv(EnvConfig); envPath != "" {
		return envPath, nil
	}

	paths, err := DefaultPaths()
	if err != nil {
		return "", err
	}

	return paths.ConfigFile, nil
}

// GetHomeDir returns the scaffold home directory path.
func GetHomeDir() (string, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return "", err
	}

	return paths.HomeDir, nil
}

// ExpandPath expands ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if len(path) == 0 {
		return path, nil
	}

	if path[0] != '~' {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	if len(path) == 1 {
		return homeDir, nil
	}

	// Handle ~/path/to/something
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:]), nil
	}

	// Handle ~username (not supported, return as-is)
	return path, nil
}
