package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/opmodel/scaffold/internal/config"
	oerrors "github.com/opmodel/scaffold/internal/errors"
	"github.com/opmodel/scaffold/internal/output"
)

const configHeader = "# scaffold configuration\n# Flags given on the command line override these defaults.\n\n"

// NewConfigCmd creates the config command group.
func NewConfigCmd(gc *GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Manage scaffold configuration",
		Long: `Manage the scaffold configuration file.

The file lives at ~/.scaffold/config.yaml unless --config or SCAFFOLD_CONFIG
points elsewhere.`,
	}

	c.AddCommand(newConfigInitCmd(gc))
	c.AddCommand(newConfigVetCmd(gc))

	return c
}

func newConfigInitCmd(gc *GlobalConfig) *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create a configuration file with default values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigInit(gc, force)
		},
	}

	c.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config file")

	return c
}

func runConfigInit(gc *GlobalConfig, force bool) error {
	path, err := config.ExpandPath(gc.ConfigPath)
	if err != nil {
		return fmt.Errorf("expanding config path: %w", err)
	}

	exists, err := config.ConfigFileExists(path)
	if err != nil {
		return fmt.Errorf("checking config file: %w", err)
	}
	if exists && !force {
		return &oerrors.ExitError{
			Err: &oerrors.DetailError{
				Type:     "config exists",
				Message:  "config file already exists",
				Location: path,
				Hint:     "Use --force to overwrite it.",
			},
			Code: oerrors.ExitGeneralError,
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(config.DefaultConfig())
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	data = append([]byte(configHeader), data...)

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	output.Println(output.FormatCheckmark("Config file created: " + path))
	return nil
}

func newConfigVetCmd(gc *GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate the configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigVet(gc)
		},
	}
}

func runConfigVet(gc *GlobalConfig) error {
	path, err := config.ExpandPath(gc.ConfigPath)
	if err != nil {
		return fmt.Errorf("expanding config path: %w", err)
	}

	exists, err := config.ConfigFileExists(path)
	if err != nil {
		return fmt.Errorf("checking config file: %w", err)
	}
	if !exists {
		return &oerrors.ExitError{
			Err: &oerrors.DetailError{
				Type:     "not found",
				Message:  "config file not found",
				Location: path,
				Hint:     "Run 'scaffold config init' to create one.",
			},
			Code: oerrors.ExitGeneralError,
		}
	}

	if _, err := config.NewLoader().LoadWithDefaults(path); err != nil {
		var verrs config.ValidationErrors
		if errors.As(err, &verrs) {
			ctx := make(map[string]string, len(verrs))
			for _, e := range verrs {
				ctx[e.Field] = e.Message
			}
			return &oerrors.ExitError{
				Err: &oerrors.DetailError{
					Type:     "validation failed",
					Message:  "config file is invalid",
					Location: path,
					Context:  ctx,
					Cause:    oerrors.ErrValidation,
				},
				Code: oerrors.ExitValidationError,
			}
		}
		return fmt.Errorf("loading config: %w", err)
	}

	output.Println(output.FormatCheckmark("Config file is valid: " + path))
	return nil
}
