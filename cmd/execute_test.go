package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shaharia-lab/render3d/internal/cli"
	"github.com/shaharia-lab/render3d/internal/clierr"
	"github.com/shaharia-lab/render3d/internal/filesystem"
	"github.com/shaharia-lab/render3d/internal/history"
	"github.com/shaharia-lab/render3d/internal/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContainer(t *testing.T) *cli.Container {
	t.Helper()
	t.Setenv(filesystem.HomeEnvVar, t.TempDir())

	c, err := cli.NewContainer(cli.InitOptions{
		Version: "1.0.0",
		Commit:  "abc",
		Date:    "today",
		Theme:   theme.Plain,
	})
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c
}

func run(t *testing.T, c *cli.Container, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := Execute(c, args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestExecute_Render3DHelp(t *testing.T) {
	c := newTestContainer(t)

	for _, flag := range []string{"-h", "--help"} {
		code, out, _ := run(t, c, "render-3d", flag)
		assert.Equal(t, clierr.ExitOK, code)
		assert.Contains(t, out, "Usage: render3d render-3d [OPTIONS] COMMAND [ARGS]...")
		assert.Contains(t, out, "clip")
		assert.Contains(t, out, "domain")
	}
}

func TestExecute_UnknownRender3DSubcommand(t *testing.T) {
	c := newTestContainer(t)

	code, _, errOut := run(t, c, "render-3d", "bogus")

	assert.Equal(t, clierr.ExitUsage, code)
	assert.Contains(t, errOut, "Error: The command 'bogus' is not implemented.")
	assert.Contains(t, errOut, "Choose from:\n clip\n domain")
	assert.Contains(t, errOut, "Try 'render3d --help' for help.")
}

func TestExecute_ClipUsageError(t *testing.T) {
	c := newTestContainer(t)

	code, _, errOut := run(t, c, "render-3d", "clip", "--no-such-flag")

	assert.Equal(t, clierr.ExitUsage, code)
	assert.Contains(t, errOut, "unknown flag: --no-such-flag")
}

func TestExecute_Version(t *testing.T) {
	c := newTestContainer(t)

	code, out, _ := run(t, c, "--version")
	assert.Equal(t, clierr.ExitOK, code)
	assert.Contains(t, out, "v1.0.0 : abc (today)")
}

func TestExecute_ConfigPreview(t *testing.T) {
	c := newTestContainer(t)

	code, out, _ := run(t, c, "config", "preview")
	assert.Equal(t, clierr.ExitOK, code)
	assert.Contains(t, out, c.ConfigMgr.Path())
	assert.Contains(t, out, "executable: pvbatch")

	code, out, _ = run(t, c, "config", "path")
	assert.Equal(t, clierr.ExitOK, code)
	assert.Equal(t, c.ConfigMgr.Path()+"\n", out)
}

func TestExecute_History(t *testing.T) {
	c := newTestContainer(t)

	code, out, _ := run(t, c, "history")
	assert.Equal(t, clierr.ExitOK, code)
	assert.Contains(t, out, "No render jobs recorded yet.")

	store, err := c.History()
	require.NoError(t, err)
	require.NoError(t, store.Record(context.Background(), history.Entry{
		JobID:     "0f8fad5b-d9cb-469f-a165-70867728950e",
		Kind:      "clip",
		Output:    "/tmp/clip.png",
		Status:    history.StatusFailed,
		Error:     "renderer exited with status 1",
		Duration:  1200 * time.Millisecond,
		CreatedAt: time.Now(),
	}))

	code, out, _ = run(t, c, "history", "--limit", "5")
	assert.Equal(t, clierr.ExitOK, code)
	assert.Contains(t, out, "0f8fad5b")
	assert.Contains(t, out, "failed")
	assert.Contains(t, out, "1.2s")
	assert.Contains(t, out, "/tmp/clip.png")
}

func TestExecute_HistoryInvalidLimit(t *testing.T) {
	c := newTestContainer(t)

	code, _, _ := run(t, c, "history", "--limit", "notanumber")
	assert.Equal(t, clierr.ExitUsage, code)
}

func TestExecute_UnexpectedArgumentsAreUsageErrors(t *testing.T) {
	c := newTestContainer(t)

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "unknown command", args: []string{"bogus"}, wantErr: `unknown command "bogus" for "render3d"`},
		{name: "history argument", args: []string{"history", "x"}, wantErr: `unknown command "x" for "render3d history"`},
		{name: "config preview argument", args: []string{"config", "preview", "extra"}, wantErr: `unknown command "extra"`},
		{name: "config path argument", args: []string{"config", "path", "extra"}, wantErr: `unknown command "extra"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, errOut := run(t, c, tt.args...)
			assert.Equal(t, clierr.ExitUsage, code)
			assert.Contains(t, errOut, tt.wantErr)
			assert.Contains(t, errOut, "Try 'render3d --help' for help.")
		})
	}
}

func TestExecute_HistoryDisabled(t *testing.T) {
	home := t.TempDir()
	t.Setenv(filesystem.HomeEnvVar, home)

	configPath := filepath.Join(home, "config", "config.yaml")
	require.NoError(t, os.MkdirAll(filepath.Dir(configPath), 0755))
	require.NoError(t, os.WriteFile(configPath, []byte("history:\n  enabled: false\n"), 0644))

	c, err := cli.NewContainer(cli.InitOptions{Version: "1.0.0", Theme: theme.Plain})
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })

	code, out, _ := run(t, c, "history")
	assert.Equal(t, clierr.ExitOK, code)
	assert.Contains(t, out, "Render history is disabled")
	assert.NoFileExists(t, c.Paths[filesystem.HistoryDB])
}
