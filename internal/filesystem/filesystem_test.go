package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shaharia-lab/render3d/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureAppDirectory(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv(HomeEnvVar, "")

	fs := NewAppFilesystem(&config.AppConfig{Name: "TestApp"})

	appDir, err := fs.ensureAppDirectory()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tempHome, ".testapp"), appDir)

	info, err := os.Stat(appDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir(), "App path should be a directory")

	again, err := fs.ensureAppDirectory()
	assert.NoError(t, err, "Second call should not return an error")
	assert.Equal(t, appDir, again)
}

func TestEnsureAppDirectory_EnvOverride(t *testing.T) {
	override := filepath.Join(t.TempDir(), "custom")
	t.Setenv(HomeEnvVar, override)

	appDir, err := NewAppFilesystem(&config.AppConfig{Name: "TestApp"}).ensureAppDirectory()
	require.NoError(t, err)
	assert.Equal(t, override, appDir)
}

func TestEnsureAllPaths(t *testing.T) {
	appDir := t.TempDir()
	t.Setenv(HomeEnvVar, appDir)

	paths, err := NewAppFilesystem(&config.AppConfig{Name: "TestApp"}).EnsureAllPaths()
	require.NoError(t, err)

	dirs := map[PathType]string{
		AppDirectory:    appDir,
		ConfigDirectory: filepath.Join(appDir, "config"),
		LogsDirectory:   filepath.Join(appDir, "logs"),
		DataDirectory:   filepath.Join(appDir, "data"),
		JobsDirectory:   filepath.Join(appDir, "cache", "jobs"),
	}
	for kind, want := range dirs {
		assert.Equal(t, want, paths[kind], "path for %s", kind)
		info, err := os.Stat(want)
		if assert.NoError(t, err, "%s should exist", kind) {
			assert.True(t, info.IsDir())
		}
	}

	assert.Equal(t, filepath.Join(appDir, "config", "config.yaml"), paths[ConfigFilePath])
	assert.Equal(t, filepath.Join(appDir, "logs", "testapp.log"), paths[LogsFilePath])
	assert.Equal(t, filepath.Join(appDir, "data", "history.db"), paths[HistoryDB])
}
