// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/afero"

	"github.com/opmodel/scaffold/internal/config"
)

// GlobalConfig holds CLI-wide configuration resolved during PersistentPreRunE.
// It is populated once at startup and passed explicitly into every
// sub-command constructor.
type GlobalConfig struct {
	// Config is the loaded configuration with defaults applied.
	Config *config.Config

	// ConfigPath is the resolved --config path.
	ConfigPath string

	// BaseDir is the resolved directory projects are created in.
	BaseDir string

	Verbose bool

	// Fs is the filesystem projects are written to. Nil means the OS
	// filesystem.
	Fs afero.Fs
}
