// Package domain implements "render-3d domain": the element geometry of a
// simulation domain.
package domain

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/shaharia-lab/render3d/internal/clierr"
	"github.com/shaharia-lab/render3d/internal/render3d/runner"
	"github.com/shaharia-lab/render3d/internal/renderer"
	"github.com/spf13/cobra"
)

// Short is the one-line description shown in the render-3d command list
const Short = "Renders a 3D domain with elements and grid lines."

type options struct {
	output        string
	zoom          float64
	timeStep      int
	animate       bool
	hiResElements bool
	showGrid      bool

	common runner.Options
}

// NewCommand creates the domain command
func NewCommand(deps runner.DepsFunc) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "domain XMF_FILE",
		Short: Short,
		Long: `Renders a 3D domain with elements and grid lines.

XMF_FILE is the volume data index written alongside the H5 output. With
--animate every time step is rendered into a movie, otherwise only
--time-step is rendered.`,
		Args: func(cmd *cobra.Command, args []string) error {
			switch len(args) {
			case 0:
				return clierr.NewUsageError("Missing argument 'XMF_FILE'.")
			case 1:
				return nil
			default:
				return clierr.NewUsageError("Got unexpected extra arguments (%s)", strings.Join(args[1:], " "))
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			job, err := opts.job(args[0])
			if err != nil {
				return err
			}

			d, err := deps()
			if err != nil {
				return fmt.Errorf("failed to prepare domain renderer: %w", err)
			}

			return runner.Run(cmd.Context(), cmd, d, job, opts.common)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.output, "output", "o", "", "Output file, including extension (required)")
	flags.Float64Var(&opts.zoom, "zoom", 1, "Zoom factor")
	flags.IntVar(&opts.timeStep, "time-step", 0, "Select a time step, ignored with --animate")
	flags.BoolVar(&opts.animate, "animate", false, "Render all time steps as an animation")
	flags.BoolVar(&opts.hiResElements, "hi-res-elements", false, "Tessellate element faces for smoother curved boundaries")
	flags.BoolVar(&opts.showGrid, "show-grid", true, "Show the grid lines of the elements")
	opts.common.AddFlags(cmd)

	return cmd
}

func (o *options) validate(xmfFile string) error {
	if o.output == "" {
		return clierr.NewUsageError("Missing option '--output' / '-o'.")
	}
	if !strings.EqualFold(filepath.Ext(xmfFile), ".xmf") {
		return clierr.NewUsageError("Invalid value for 'XMF_FILE': '%s' is not an .xmf file.", xmfFile)
	}
	if _, err := os.Stat(xmfFile); err != nil {
		return clierr.NewUsageError("Invalid value for 'XMF_FILE': Path '%s' does not exist.", xmfFile)
	}
	if math.IsNaN(o.zoom) || math.IsInf(o.zoom, 0) || o.zoom <= 0 {
		return clierr.NewUsageError("Invalid value for '--zoom': %g is not positive.", o.zoom)
	}
	if o.timeStep < 0 {
		return clierr.NewUsageError("Invalid value for '--time-step': %d is negative.", o.timeStep)
	}
	return nil
}

func (o *options) job(xmfFile string) (renderer.Job, error) {
	if err := o.validate(xmfFile); err != nil {
		return renderer.Job{}, err
	}

	job, err := renderer.NewJob(renderer.KindDomain, []string{xmfFile}, o.output)
	if err != nil {
		return renderer.Job{}, err
	}

	job.Set("zoom", o.zoom)
	job.Set("animate", o.animate)
	if !o.animate {
		job.Set("time_step", o.timeStep)
	}
	job.Set("hi_res_elements", o.hiResElements)
	job.Set("show_grid", o.showGrid)
	return job, nil
}
