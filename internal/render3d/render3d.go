package render3d

import (
	"github.com/shaharia-lab/render3d/internal/logger"
	"github.com/shaharia-lab/render3d/internal/render3d/clip"
	"github.com/shaharia-lab/render3d/internal/render3d/domain"
	"github.com/shaharia-lab/render3d/internal/render3d/runner"
	"github.com/spf13/cobra"
)

const (
	// CommandName is the name the group is installed under
	CommandName = "render-3d"

	short = "Renders a 3D visualization of simulation data."
	long  = `Renders a 3D visualization of simulation data.

See subcommands for possible renderings.`
)

// NewDefault returns the render-3d group with the clip and domain subcommands
func NewDefault(deps runner.DepsFunc, log logger.Logger) *Group {
	g := NewGroup(CommandName, short, long, log)
	g.Register("clip", clip.Short, func() *cobra.Command {
		return clip.NewCommand(deps)
	})
	g.Register("domain", domain.Short, func() *cobra.Command {
		return domain.NewCommand(deps)
	})
	return g
}

// NewCommand returns the render-3d cobra command
func NewCommand(deps runner.DepsFunc, log logger.Logger) *cobra.Command {
	return NewDefault(deps, log).Command()
}
