package runner

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/shaharia-lab/render3d/internal/history"
	"github.com/shaharia-lab/render3d/internal/logger"
	"github.com/shaharia-lab/render3d/internal/renderer"
	"github.com/shaharia-lab/render3d/internal/theme"
	"github.com/spf13/cobra"
)

// Options are the flags every render subcommand accepts
type Options struct {
	Force  bool
	DryRun bool
}

// AddFlags registers --force and --dry-run on cmd
func (o *Options) AddFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&o.Force, "force", "f", false, "Overwrite the output file without asking")
	cmd.Flags().BoolVar(&o.DryRun, "dry-run", false, "Print the render job instead of running the renderer")
}

// Run executes job with the collaborators in d. Output goes to cmd's writers.
func Run(ctx context.Context, cmd *cobra.Command, d Deps, job renderer.Job, opts Options) error {
	out := cmd.OutOrStdout()
	th := d.Theme
	if th == nil {
		th = theme.NewPlainTheme()
	}
	log := d.Logger
	if log == nil {
		log = logger.Discard
	}
	log = log.WithFields(map[string]interface{}{
		"job_id": job.ID,
		"kind":   string(job.Kind),
		"output": job.Output,
	})

	if opts.DryRun {
		log.Debug("dry run, renderer not invoked", nil)
		PrintJob(out, job)
		return nil
	}

	if _, err := os.Stat(job.Output); err == nil && !opts.Force {
		if d.Prompter == nil {
			return fmt.Errorf("output file %s already exists, use --force to overwrite", job.Output)
		}
		ok, err := d.Prompter.Confirm(fmt.Sprintf("Output file %s already exists. Overwrite?", job.Output), false)
		if err != nil {
			return fmt.Errorf("failed to confirm overwrite: %w", err)
		}
		if !ok {
			log.Info("render aborted, output exists", nil)
			th.Warning().Fprintln(out, "Aborted.")
			return nil
		}
	}

	if dir := filepath.Dir(job.Output); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if d.Renderer == nil {
		return fmt.Errorf("no renderer available")
	}

	th.Info().Fprintf(out, "Rendering %s -> %s\n", job.Kind, job.Output)
	result, renderErr := d.Renderer.Render(ctx, job)

	entry := history.Entry{
		JobID:     job.ID,
		Kind:      string(job.Kind),
		Output:    job.Output,
		Status:    history.StatusSucceeded,
		Duration:  result.Duration,
		CreatedAt: job.CreatedAt,
	}
	if renderErr != nil {
		entry.Status = history.StatusFailed
		entry.Error = renderErr.Error()
	}
	if d.History != nil {
		if err := d.History.Record(ctx, entry); err != nil {
			// history is best effort
			log.Warn("failed to record render history", map[string]interface{}{logger.ErrorKey: err})
		}
	}

	if renderErr != nil {
		log.Error("render failed", map[string]interface{}{logger.ErrorKey: renderErr})
		return fmt.Errorf("failed to render %s: %w", job.Kind, renderErr)
	}

	log.Info("render succeeded", map[string]interface{}{"duration": result.Duration.String()})
	th.Success().Fprintf(out, "Rendered %s in %s\n", result.Output, result.Duration.Round(time.Millisecond))
	return nil
}

// PrintJob writes job as a two-column table
func PrintJob(w io.Writer, job renderer.Job) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Parameter", "Value"})
	table.SetBorder(false)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	table.Append([]string{"job", job.ID})
	table.Append([]string{"kind", string(job.Kind)})
	table.Append([]string{"inputs", strings.Join(job.Inputs, ", ")})
	table.Append([]string{"output", job.Output})
	for _, k := range job.ParamKeys() {
		table.Append([]string{k, formatValue(job.Params[k])})
	}

	table.Render()
}

func formatValue(v interface{}) string {
	switch val := v.(type) {
	case []float64:
		parts := make([]string, len(val))
		for i, f := range val {
			parts[i] = fmt.Sprintf("%g", f)
		}
		return strings.Join(parts, ",")
	case float64:
		return fmt.Sprintf("%g", val)
	default:
		return fmt.Sprint(val)
	}
}
