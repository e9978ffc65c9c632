package renderer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/shaharia-lab/render3d/internal/config"
	"github.com/shaharia-lab/render3d/internal/logger"
	"gopkg.in/yaml.v3"
)

// stderrTailLines bounds how much renderer output ends up in an error
const stderrTailLines = 20

// Renderer turns a Job into an output file
type Renderer interface {
	Render(ctx context.Context, job Job) (Result, error)
}

// RenderError is returned when the renderer process exits unsuccessfully
type RenderError struct {
	JobID    string
	ExitCode int
	Stderr   string
}

func (e *RenderError) Error() string {
	msg := fmt.Sprintf("renderer exited with status %d for job %s", e.ExitCode, e.JobID)
	if e.Stderr != "" {
		msg += ":\n" + e.Stderr
	}
	return msg
}

// ExecRenderer runs the configured renderer executable once per job.
// The job is passed as a YAML file: <executable> [args...] <script> --job <file>
// The file lives in the jobs directory only while the renderer runs.
type ExecRenderer struct {
	cfg     config.RendererConfig
	jobsDir string
	logger  logger.Logger
}

var _ Renderer = (*ExecRenderer)(nil)

// NewExecRenderer creates an ExecRenderer that keeps job files in jobsDir
func NewExecRenderer(cfg config.RendererConfig, jobsDir string, log logger.Logger) *ExecRenderer {
	if log == nil {
		log = logger.Discard
	}
	return &ExecRenderer{
		cfg:     cfg,
		jobsDir: jobsDir,
		logger:  log,
	}
}

// Render writes the job file and runs the renderer until it exits, the
// configured timeout passes or ctx is cancelled.
func (r *ExecRenderer) Render(ctx context.Context, job Job) (Result, error) {
	script := r.cfg.ScriptFor(string(job.Kind))
	if script == "" {
		return Result{}, fmt.Errorf("no renderer script configured for %s", job.Kind)
	}
	if r.cfg.Executable == "" {
		return Result{}, errors.New("no renderer executable configured")
	}

	jobFile, err := r.writeJobFile(job)
	if err != nil {
		return Result{}, err
	}

	if r.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.cfg.Timeout)
		defer cancel()
	}

	args := make([]string, 0, len(r.cfg.Args)+3)
	args = append(args, r.cfg.Args...)
	args = append(args, script, "--job", jobFile)

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, r.cfg.Executable, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = time.Second

	log := r.logger.WithFields(map[string]interface{}{
		"job_id":   job.ID,
		"kind":     string(job.Kind),
		"renderer": r.cfg.Executable,
	})
	log.Debug("starting renderer", map[string]interface{}{"args": args})
	defer func() {
		if err := os.Remove(jobFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			log.Warn("failed to remove job file", map[string]interface{}{logger.ErrorKey: err, "path": jobFile})
		}
	}()

	start := time.Now()
	runErr := cmd.Run()
	elapsed := time.Since(start)

	if runErr != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return Result{}, fmt.Errorf("renderer timed out after %s: %w", r.cfg.Timeout, ctx.Err())
		}
		if ctx.Err() != nil {
			return Result{}, fmt.Errorf("renderer cancelled: %w", ctx.Err())
		}

		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			return Result{}, &RenderError{
				JobID:    job.ID,
				ExitCode: exitErr.ExitCode(),
				Stderr:   tail(stderr.String(), stderrTailLines),
			}
		}
		return Result{}, fmt.Errorf("failed to run renderer %s: %w", r.cfg.Executable, runErr)
	}

	log.Info("renderer finished", map[string]interface{}{"duration": elapsed.String()})

	return Result{
		JobID:    job.ID,
		Output:   job.Output,
		Duration: elapsed,
		Log:      stdout.String(),
	}, nil
}

func (r *ExecRenderer) writeJobFile(job Job) (string, error) {
	if err := os.MkdirAll(r.jobsDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create jobs directory: %w", err)
	}

	data, err := yaml.Marshal(&job)
	if err != nil {
		return "", fmt.Errorf("failed to marshal job: %w", err)
	}

	path := filepath.Join(r.jobsDir, job.ID+".yaml")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write job file: %w", err)
	}
	return path, nil
}

// tail returns at most the last n lines of s
func tail(s string, n int) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
