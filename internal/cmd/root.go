package cmd

import (
	"github.com/spf13/cobra"

	"github.com/opmodel/scaffold/internal/config"
	oerrors "github.com/opmodel/scaffold/internal/errors"
	"github.com/opmodel/scaffold/internal/output"
)

// rootFlags are the persistent flags shared by every command.
type rootFlags struct {
	config     string
	verbose    bool
	timestamps bool
	dir        string
}

// NewRootCmd creates the root command for the scaffold CLI.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&GlobalConfig{})
}

func newRootCmd(gc *GlobalConfig) *cobra.Command {
	var flags rootFlags

	rootCmd := &cobra.Command{
		Use:   "scaffold",
		Short: "Generate React, React Native and Rust project skeletons",
		Long: `scaffold creates ready-to-build project trees from built-in templates.

A run either creates the whole project directory or leaves nothing behind.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd, &flags, gc)
		},
	}

	// Unknown or malformed flags exit like any other invalid option.
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &oerrors.ExitError{
			Err:  oerrors.Wrap(oerrors.ErrValidation, err.Error()),
			Code: oerrors.ExitValidationError,
		}
	})

	rootCmd.PersistentFlags().StringVar(&flags.config, "config", "", "Path to config file (env: SCAFFOLD_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&flags.timestamps, "timestamps", true, "Show timestamps in log output")
	rootCmd.PersistentFlags().StringVarP(&flags.dir, "dir", "C", "", "Directory to create projects in (env: SCAFFOLD_BASE_DIR)")

	rootCmd.AddCommand(NewReactCmd(gc))
	rootCmd.AddCommand(NewReactNativeCmd(gc))
	rootCmd.AddCommand(NewRustCmd(gc))
	rootCmd.AddCommand(NewListCmd(gc))
	rootCmd.AddCommand(NewConfigCmd(gc))
	rootCmd.AddCommand(NewVersionCmd(gc))

	return rootCmd
}

// initializeGlobals sets up logging, loads configuration and resolves the
// base directory.
func initializeGlobals(cmd *cobra.Command, flags *rootFlags, gc *GlobalConfig) error {
	output.SetOutput(cmd.OutOrStdout())

	pathResult, err := config.ResolveConfigPath(config.ResolveConfigPathOptions{FlagValue: flags.config})
	if err != nil {
		return exitWithDetail(err)
	}

	cfg, loadErr := config.NewLoader().LoadWithDefaults(pathResult.ConfigPath)
	if loadErr != nil {
		cfg = config.DefaultConfig()
	}

	// Timestamps: flag (if explicitly set) > config > default (nil = true)
	logCfg := output.LogConfig{Verbose: flags.verbose}
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(flags.timestamps)
	} else if cfg.Log.Timestamps != nil {
		logCfg.Timestamps = cfg.Log.Timestamps
	}
	output.SetupLogging(logCfg)

	if loadErr != nil {
		output.Warn("ignoring configuration file", "path", pathResult.ConfigPath, "err", loadErr)
	}

	baseDir, err := config.ResolveBaseDir(config.ResolveBaseDirOptions{
		FlagValue:   flags.dir,
		ConfigValue: cfg.BaseDir,
	})
	if err != nil {
		return exitWithDetail(err)
	}

	gc.Config = cfg
	gc.ConfigPath = pathResult.ConfigPath
	gc.BaseDir = baseDir.Value.(string)
	gc.Verbose = flags.verbose

	config.LogResolvedValues([]config.ResolvedValue{
		{Key: "config", Value: pathResult.ConfigPath, Source: pathResult.Source, Shadowed: pathResult.Shadowed},
		baseDir,
	})

	return nil
}
