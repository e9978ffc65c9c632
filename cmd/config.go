package cmd

import (
	"fmt"
	"os"

	"github.com/shaharia-lab/render3d/internal/cli"
	"github.com/spf13/cobra"
)

// NewConfigCmd creates a config command
func NewConfigCmd(container *cli.Container) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage render3d configuration",
		Long:  `Commands to view your render3d configuration.`,
	}

	cfgCmd.AddCommand(NewConfigPreviewCmd(container), NewConfigPathCmd(container))
	return cfgCmd
}

// NewConfigPreviewCmd creates a command to preview the config file
func NewConfigPreviewCmd(container *cli.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "preview",
		Short: "Preview the current configuration file",
		Long:  `Display the content of your render3d configuration file.`,
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath := container.ConfigMgr.Path()
			configData, err := os.ReadFile(configPath)
			if err != nil {
				return fmt.Errorf("error reading config file: %w", err)
			}

			out := cmd.OutOrStdout()
			th := container.ThemeMgr.GetCurrentTheme()
			th.Primary().Fprintln(out, "Configuration File")
			th.Secondary().Fprintf(out, "Located at: %s\n\n", configPath)
			fmt.Fprintln(out, string(configData))
			return nil
		},
	}
}

// NewConfigPathCmd creates a command printing the config file location
func NewConfigPathCmd(container *cli.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the path of the configuration file",
		Args:  usageArgs(cobra.NoArgs),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), container.ConfigMgr.Path())
		},
	}
}
