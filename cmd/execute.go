package cmd

import (
	"io"

	"github.com/shaharia-lab/render3d/internal/cli"
	"github.com/shaharia-lab/render3d/internal/clierr"
	"github.com/shaharia-lab/render3d/internal/logger"
	"github.com/shaharia-lab/render3d/internal/render3d"
	"github.com/spf13/cobra"
)

// NewCommandTree builds the root command with every subcommand attached
func NewCommandTree(container *cli.Container) *cobra.Command {
	rootCmd := NewRootCmd(container)
	rootCmd.AddCommand(
		render3d.NewCommand(container.RenderDeps, container.Logger),
		NewConfigCmd(container),
		NewHistoryCmd(container),
	)
	return rootCmd
}

// Execute runs the command tree with args and returns the process exit code.
// Errors are written to stderr.
func Execute(container *cli.Container, args []string, stdout, stderr io.Writer) int {
	rootCmd := NewCommandTree(container)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	code := clierr.ExitCode(err)
	if err != nil {
		container.Logger.Error("command failed", map[string]interface{}{
			logger.ErrorKey: err,
			"args":          args,
			"exit_code":     code,
		})
		container.ThemeMgr.GetCurrentTheme().Error().Fprintf(stderr, "Error: %v\n", err)
		if code == clierr.ExitUsage {
			container.ThemeMgr.GetCurrentTheme().Subtle().Fprintf(stderr, "Try '%s --help' for help.\n", rootCmd.Name())
		}
	}
	return code
}
