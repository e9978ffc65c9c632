// Package filesystem lays out the per-user directories render3d writes to.
package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shaharia-lab/render3d/internal/config"
)

type PathType string

const (
	configYamlFileName = "config.yaml"
	historyDBFileName  = "history.db"

	// HomeEnvVar overrides the application directory
	HomeEnvVar = "RENDER3D_HOME"

	AppDirectory    PathType = "app"
	ConfigDirectory PathType = "config"
	ConfigFilePath  PathType = "config_file"
	LogsDirectory   PathType = "logs"
	LogsFilePath    PathType = "log_file"
	DataDirectory   PathType = "data"
	HistoryDB       PathType = "history_db"
	JobsDirectory   PathType = "jobs"
)

// Filesystem resolves and creates application paths.
type Filesystem struct {
	appCfg *config.AppConfig
}

// NewAppFilesystem creates a new Filesystem instance.
func NewAppFilesystem(appCfg *config.AppConfig) *Filesystem {
	return &Filesystem{
		appCfg: appCfg,
	}
}

// EnsureAllPaths creates every application directory and returns the resolved paths.
// Files (config, log, history database) are only resolved, their owners create them.
func (s *Filesystem) EnsureAllPaths() (map[PathType]string, error) {
	paths := map[PathType]string{}

	appDirectory, err := s.ensureAppDirectory()
	if err != nil {
		return paths, err
	}
	paths[AppDirectory] = appDirectory

	dirs := []struct {
		kind PathType
		name string
	}{
		{ConfigDirectory, "config"},
		{LogsDirectory, "logs"},
		{DataDirectory, "data"},
		{JobsDirectory, filepath.Join("cache", "jobs")},
	}
	for _, d := range dirs {
		dir := filepath.Join(appDirectory, d.name)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return paths, fmt.Errorf("failed to create %s directory: %w", d.kind, err)
		}
		paths[d.kind] = dir
	}

	paths[ConfigFilePath] = filepath.Join(paths[ConfigDirectory], configYamlFileName)
	paths[LogsFilePath] = filepath.Join(paths[LogsDirectory], fmt.Sprintf("%s.log", strings.ToLower(s.appCfg.Name)))
	paths[HistoryDB] = filepath.Join(paths[DataDirectory], historyDBFileName)

	return paths, nil
}

func (s *Filesystem) ensureAppDirectory() (string, error) {
	appDir := os.Getenv(HomeEnvVar)
	if appDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		appDir = filepath.Join(homeDir, fmt.Sprintf(".%s", strings.ToLower(s.appCfg.Name)))
	}

	if err := os.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}

	return appDir, nil
}
