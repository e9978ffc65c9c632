package clip

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/shaharia-lab/render3d/internal/clierr"
	"github.com/shaharia-lab/render3d/internal/logger"
	"github.com/shaharia-lab/render3d/internal/render3d/runner"
	"github.com/shaharia-lab/render3d/internal/renderer"
	"github.com/shaharia-lab/render3d/internal/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func volumeFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "VolumeData0.h5")
	require.NoError(t, os.WriteFile(path, []byte("h5"), 0644))
	return path
}

func TestClipValidation(t *testing.T) {
	h5 := volumeFile(t)
	base := []string{h5, "-d", "VolumeData", "-y", "Psi", "-o", "clip.png", "--dry-run"}

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "no input files", args: []string{"-d", "VolumeData"}, wantErr: "Missing argument 'H5_FILES...'"},
		{name: "missing subfile", args: []string{h5, "-y", "Psi", "-o", "clip.png"}, wantErr: "Missing option '--subfile-name' / '-d'"},
		{name: "missing output", args: []string{h5, "-d", "VolumeData", "-y", "Psi"}, wantErr: "Missing option '--output' / '-o'"},
		{name: "missing variable", args: []string{h5, "-d", "VolumeData", "-o", "clip.png"}, wantErr: "Missing option '--variable' / '-y'"},
		{name: "nonexistent input", args: []string{"missing.h5", "-d", "VolumeData", "-y", "Psi", "-o", "clip.png"}, wantErr: "Path 'missing.h5' does not exist"},
		{name: "two component origin", args: append(base, "--clip-origin", "1,2"), wantErr: "expected 3 components, got 2"},
		{name: "zero normal", args: append(base, "--clip-normal", "0,0,0"), wantErr: "must not be the zero vector"},
		{name: "negative zoom", args: append(base, "--zoom", "-1"), wantErr: "'--zoom': -1 is not positive"},
		{name: "NaN zoom", args: append(base, "--zoom", "NaN"), wantErr: "'--zoom': NaN is not positive"},
		{name: "infinite zoom", args: append(base, "--zoom", "+Inf"), wantErr: "'--zoom': +Inf is not positive"},
		{name: "NaN origin", args: append(base, "--clip-origin", "NaN,0,0"), wantErr: "'--clip-origin': components must be finite"},
		{name: "infinite normal", args: append(base, "--clip-normal", "Inf,0,0"), wantErr: "'--clip-normal': components must be finite"},
		{name: "NaN normal", args: append(base, "--clip-normal", "0,NaN,1"), wantErr: "'--clip-normal': components must be finite"},
		{name: "step below -1", args: append(base, "--step", "-3"), wantErr: "smaller than -1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewCommand(runner.StaticDeps(runner.Deps{}))
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetErr(&bytes.Buffer{})
			cmd.SetArgs(tt.args)

			err := cmd.Execute()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.True(t, clierr.IsUsage(err), "validation errors are usage errors")
		})
	}
}

func TestClipDryRun(t *testing.T) {
	h5 := volumeFile(t)

	var out bytes.Buffer
	cmd := NewCommand(runner.StaticDeps(runner.Deps{Theme: theme.NewPlainTheme()}))
	cmd.SetOut(&out)
	cmd.SetArgs([]string{h5, "-d", "VolumeData", "-y", "Psi", "-o", "clip.png", "--clip-normal", "0,3,4", "--dry-run"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Psi")
	assert.Contains(t, out.String(), "0,0.6,0.8", "normal should be normalized")
	assert.Contains(t, out.String(), DefaultColormap)
}

func TestClipRendersJob(t *testing.T) {
	h5 := volumeFile(t)
	output := filepath.Join(t.TempDir(), "clip.png")

	mockRenderer := &renderer.MockRenderer{}
	mockRenderer.On("Render", mock.Anything, mock.MatchedBy(func(job renderer.Job) bool {
		return job.Kind == renderer.KindClip &&
			assert.ObjectsAreEqual([]string{h5}, job.Inputs) &&
			job.Params["subfile_name"] == "VolumeData" &&
			job.Params["variable"] == "Psi" &&
			job.Params["step"] == 4 &&
			job.Params["log"] == true &&
			assert.ObjectsAreEqual([]float64{1, 0, 0}, job.Params["clip_origin"])
	})).Return(renderer.Result{Output: output}, nil).Once()

	var out bytes.Buffer
	cmd := NewCommand(runner.StaticDeps(runner.Deps{
		Renderer: mockRenderer,
		Logger:   logger.Discard,
		Theme:    theme.NewPlainTheme(),
	}))
	cmd.SetOut(&out)
	cmd.SetArgs([]string{h5, "-d", "VolumeData", "-y", "Psi", "-o", output, "--step", "4", "--log", "--clip-origin", "1,0,0"})

	require.NoError(t, cmd.Execute())
	mockRenderer.AssertExpectations(t)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, []float64{0, 0, 1}, normalize([]float64{0, 0, 5}))
	assert.InDelta(t, 1.0, norm(normalize([]float64{1, 2, 3})), 1e-12)
}
