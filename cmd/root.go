package cmd

import (
	"github.com/shaharia-lab/render3d/internal/cli"
	"github.com/shaharia-lab/render3d/internal/clierr"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command
func NewRootCmd(container *cli.Container) *cobra.Command {
	rootCmd := &cobra.Command{
		Version: container.Config.Version.VersionText(),
		Use:     container.Config.Name,
		Short:   "Render 3D visualizations of simulation data",
		Long: `render3d renders 3D visualizations of simulation volume data.

The drawing itself is done by an external renderer (ParaView's pvbatch by
default, see 'render3d config preview'); render3d turns command-line options
into render jobs, runs the renderer and keeps a history of what was rendered.`,
		Args:          usageArgs(cobra.NoArgs),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return &clierr.UsageError{Message: err.Error()}
	})

	return rootCmd
}

// usageArgs makes a positional-args validator report its errors as usage
// errors, so they exit with the usage status like flag errors do.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return &clierr.UsageError{Message: err.Error()}
		}
		return nil
	}
}
