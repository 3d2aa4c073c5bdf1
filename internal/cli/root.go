// Package cli provides the Cobra command structure for linegrep.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/linegrep/internal/configloader"
	"github.com/yaklabco/linegrep/internal/logging"
	"github.com/yaklabco/linegrep/pkg/config"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

type searchFlags struct {
	ignoreCase  bool
	format      string
	noContent   bool
	lineNumbers bool
}

const rootLongDescription = `linegrep prints a text file, then prints every line containing the query
with each occurrence highlighted.

Case-insensitive search is enabled with --ignore-case, IGNORE_CASE=1 or
LINEGREP_IGNORE_CASE=true. Matching lines are always shown with their
original casing.`

const rootExample = `  linegrep poem.txt duct              # Case-sensitive search
  IGNORE_CASE=1 linegrep poem.txt DUCT # Case-insensitive search
  linegrep -n --no-content poem.txt to # Only matches, with line numbers
  linegrep --format json poem.txt to   # Structured span list`

// NewRootCommand creates the root linegrep command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string
	flags := &searchFlags{}

	rootCmd := &cobra.Command{
		Use:     "linegrep <file> <query>",
		Short:   "Search a text file for a substring and highlight the matches",
		Long:    rootLongDescription,
		Example: rootExample,
		Version: info.Version,
		Args:    cobra.ArbitraryArgs,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, args, flags)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", string(config.ColorAuto),
		"colorize output: auto, always, never")

	// Search flags.
	rootCmd.Flags().BoolVarP(&flags.ignoreCase, "ignore-case", "i", false, "match the query regardless of case")
	rootCmd.Flags().StringVar(&flags.format, "format", string(config.FormatText), "output format: text, json")
	rootCmd.Flags().BoolVar(&flags.noContent, "no-content", false, "do not print the file content before the matches")
	rootCmd.Flags().BoolVarP(&flags.lineNumbers, "line-number", "n", false, "prefix matches with their line number")

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &config.ConfigurationError{Message: err.Error()}
	})
	rootCmd.SetVersionTemplate(fmt.Sprintf("linegrep %s (commit: %s, built: %s)\n", info.Version, info.Commit, info.Date))

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	helpFormatter := NewHelpFormatter(config.ColorMode(color), os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}

func runSearch(cmd *cobra.Command, args []string, flags *searchFlags) error {
	logger := logging.Default()

	// Arguments are validated before any configuration or input file is read.
	cliCfg, err := config.Build(args, os.Getenv)
	if err != nil {
		return err
	}
	cliCfg.Color = ""
	cliCfg.Format = ""
	applySearchFlags(cmd, cliCfg, flags)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithLogger(ctx, logger)

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return errors.Join(errors.New("failed to load configuration"), err)
	}

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldFiles, loadResult.LoadedFrom)
	}

	cfg := loadResult.Config
	ctx = logging.WithFields(ctx,
		logging.FieldQuery, cfg.Query,
		logging.FieldIgnoreCase, cfg.IgnoreCase,
	)
	logging.FromContext(ctx).Debug("configuration loaded",
		logging.FieldFormat, cfg.Format,
		logging.FieldColor, cfg.Color,
	)

	return Run(ctx, cfg, cmd.OutOrStdout())
}

// applySearchFlags copies explicitly set flags onto cfg.
func applySearchFlags(cmd *cobra.Command, cfg *config.Config, flags *searchFlags) {
	if flags.ignoreCase {
		cfg.IgnoreCase = true
	}
	if flags.noContent {
		cfg.NoContent = true
	}
	if flags.lineNumbers {
		cfg.LineNumbers = true
	}
	if cmd.Flags().Changed("format") {
		cfg.Format = config.OutputFormat(flags.format)
	}
	if cmd.Flags().Changed("color") {
		if color, err := cmd.Flags().GetString("color"); err == nil {
			cfg.Color = config.ColorMode(color)
		}
	}
}
