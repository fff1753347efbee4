package cli

import (
	"fmt"
	"greeter/internal/config"
	"greeter/internal/shared"
	"os"

	"github.com/spf13/cobra"
)

type InitConfigOptions struct {
	Out   string
	Force bool
}

// NewInitConfigCommand writes a config file holding every default value.
func NewInitConfigCommand() *cobra.Command {
	options := &InitConfigOptions{}

	cmd := &cobra.Command{
		Use:   "init-config",
		Short: "Write a config file with the default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := writeDefaultConfig(options); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote default configuration to %s\n", options.Out)
			return nil
		},
	}

	cmd.Flags().StringVar(&options.Out, "out", defaultConfigPath, "Destination of the config file.")
	cmd.Flags().BoolVar(&options.Force, "force", false, "Overwrite an existing file.")

	return cmd
}

func writeDefaultConfig(options *InitConfigOptions) error {
	if !options.Force {
		if _, err := os.Stat(options.Out); err == nil {
			return fmt.Errorf("%s: %w (use --force to overwrite)", options.Out, shared.ErrConfigExists)
		}
	}
	return config.SaveConfig(options.Out, config.Defaults())
}
