package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/linegrep/internal/configloader"
	"github.com/yaklabco/linegrep/internal/logging"
	"github.com/yaklabco/linegrep/pkg/config"
)

type initFlags struct {
	force  bool
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a linegrep configuration file",
		Long: `Create a .linegrep.yml file in the current directory holding the default
settings. Values in the file apply to every search started below that
directory; environment variables and flags still override them.`,
		Example: `  linegrep init                      # Create .linegrep.yml
  linegrep init --output custom.yml  # Write to a custom path
  linegrep init --force              # Overwrite an existing file`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runInit(flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "overwrite an existing configuration file")
	cmd.Flags().StringVarP(&flags.output, "output", "o", configloader.ProjectConfigName, "output file path")

	return cmd
}

func runInit(flags *initFlags) error {
	logger := logging.NewInteractive()

	absPath, err := filepath.Abs(flags.output)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if err := configloader.WriteProjectConfig(config.NewConfig(), absPath, flags.force); err != nil {
		return err
	}

	logger.Info("created configuration file", logging.FieldPath, flags.output)
	return nil
}
