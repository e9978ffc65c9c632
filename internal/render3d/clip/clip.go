// Package clip implements "render-3d clip": a planar slice through volume data.
package clip

import (
	"fmt"
	"math"
	"os"

	"github.com/shaharia-lab/render3d/internal/clierr"
	"github.com/shaharia-lab/render3d/internal/render3d/runner"
	"github.com/shaharia-lab/render3d/internal/renderer"
	"github.com/spf13/cobra"
)

// Short is the one-line description shown in the render-3d command list
const Short = "Renders a clip normal to the z-direction."

// DefaultColormap is the ParaView preset used when --colormap is not given
const DefaultColormap = "Inferno (matplotlib)"

type options struct {
	subfileName string
	output      string
	variable    string
	step        int
	clipOrigin  []float64
	clipNormal  []float64
	zoom        float64
	logScale    bool
	showGrid    bool
	colormap    string

	common runner.Options
}

// NewCommand creates the clip command
func NewCommand(deps runner.DepsFunc) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "clip H5_FILES...",
		Short: Short,
		Long: `Renders a clip normal to the z-direction.

Slices the volume data in H5_FILES with a plane through --clip-origin and
perpendicular to --clip-normal, colors it by --variable and writes the
image to --output.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return clierr.NewUsageError("Missing argument 'H5_FILES...'.")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			job, err := opts.job(args)
			if err != nil {
				return err
			}

			d, err := deps()
			if err != nil {
				return fmt.Errorf("failed to prepare clip renderer: %w", err)
			}

			return runner.Run(cmd.Context(), cmd, d, job, opts.common)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.subfileName, "subfile-name", "d", "", "Name of volume data subfile within each h5 file (required)")
	flags.StringVarP(&opts.output, "output", "o", "", "Output file, including extension (required)")
	flags.StringVarP(&opts.variable, "variable", "y", "", "Variable to plot (required)")
	flags.IntVar(&opts.step, "step", -1, "Observation step to render, -1 for the last one")
	flags.Float64SliceVar(&opts.clipOrigin, "clip-origin", []float64{0, 0, 0}, "Origin of the clip plane")
	flags.Float64SliceVar(&opts.clipNormal, "clip-normal", []float64{0, 0, 1}, "Normal of the clip plane")
	flags.Float64Var(&opts.zoom, "zoom", 1, "Zoom factor")
	flags.BoolVar(&opts.logScale, "log", false, "Plot the variable on a log scale")
	flags.BoolVar(&opts.showGrid, "show-grid", false, "Show the grid lines of the elements")
	flags.StringVar(&opts.colormap, "colormap", DefaultColormap, "Name of a ParaView colormap preset")
	opts.common.AddFlags(cmd)

	return cmd
}

func (o *options) validate(inputs []string) error {
	required := []struct {
		value, long, short string
	}{
		{o.subfileName, "subfile-name", "d"},
		{o.output, "output", "o"},
		{o.variable, "variable", "y"},
	}
	for _, r := range required {
		if r.value == "" {
			return clierr.NewUsageError("Missing option '--%s' / '-%s'.", r.long, r.short)
		}
	}

	for _, in := range inputs {
		if _, err := os.Stat(in); err != nil {
			return clierr.NewUsageError("Invalid value for 'H5_FILES...': Path '%s' does not exist.", in)
		}
	}

	if len(o.clipOrigin) != 3 {
		return clierr.NewUsageError("Invalid value for '--clip-origin': expected 3 components, got %d.", len(o.clipOrigin))
	}
	if len(o.clipNormal) != 3 {
		return clierr.NewUsageError("Invalid value for '--clip-normal': expected 3 components, got %d.", len(o.clipNormal))
	}
	if !finite(o.clipOrigin...) {
		return clierr.NewUsageError("Invalid value for '--clip-origin': components must be finite numbers.")
	}
	if !finite(o.clipNormal...) {
		return clierr.NewUsageError("Invalid value for '--clip-normal': components must be finite numbers.")
	}
	if norm(o.clipNormal) == 0 {
		return clierr.NewUsageError("Invalid value for '--clip-normal': must not be the zero vector.")
	}
	if !finite(o.zoom) || o.zoom <= 0 {
		return clierr.NewUsageError("Invalid value for '--zoom': %g is not positive.", o.zoom)
	}
	if o.step < -1 {
		return clierr.NewUsageError("Invalid value for '--step': %d is smaller than -1.", o.step)
	}
	return nil
}

func (o *options) job(inputs []string) (renderer.Job, error) {
	if err := o.validate(inputs); err != nil {
		return renderer.Job{}, err
	}

	job, err := renderer.NewJob(renderer.KindClip, inputs, o.output)
	if err != nil {
		return renderer.Job{}, err
	}

	job.Set("subfile_name", o.subfileName)
	job.Set("variable", o.variable)
	job.Set("step", o.step)
	job.Set("clip_origin", o.clipOrigin)
	job.Set("clip_normal", normalize(o.clipNormal))
	job.Set("zoom", o.zoom)
	job.Set("log", o.logScale)
	job.Set("show_grid", o.showGrid)
	job.Set("colormap", o.colormap)
	return job, nil
}

func finite(v ...float64) bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

func norm(v []float64) float64 {
	var sum float64
	for _, c := range v {
		sum += c * c
	}
	return math.Sqrt(sum)
}

func normalize(v []float64) []float64 {
	n := norm(v)
	out := make([]float64, len(v))
	for i, c := range v {
		out[i] = c / n
	}
	return out
}
