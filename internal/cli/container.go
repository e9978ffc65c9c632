package cli

import (
	"fmt"
	"sync"

	"github.com/shaharia-lab/render3d/internal/config"
	"github.com/shaharia-lab/render3d/internal/filesystem"
	"github.com/shaharia-lab/render3d/internal/history"
	"github.com/shaharia-lab/render3d/internal/logger"
	"github.com/shaharia-lab/render3d/internal/render3d/runner"
	"github.com/shaharia-lab/render3d/internal/renderer"
	"github.com/shaharia-lab/render3d/internal/theme"
)

// Container holds all application dependencies
type Container struct {
	Config    *config.AppConfig
	Settings  config.Config
	ConfigMgr *config.Manager
	Paths     map[filesystem.PathType]string
	Logger    logger.Logger
	ThemeMgr  *theme.Manager

	historyOnce sync.Once
	history     *history.Store
	historyErr  error
}

// InitOptions contains options for initialization
type InitOptions struct {
	Version string
	Commit  string
	Date    string
	// LogLevel overrides the level from the config file when set
	LogLevel string
	Theme    theme.Name
}

// NewContainer creates and initializes all application dependencies
func NewContainer(opts InitOptions) (*Container, error) {
	if opts.Version == "" {
		return nil, fmt.Errorf("version is required")
	}

	container := &Container{
		Config: config.NewDefaultConfig(config.WithVersion(config.Version{
			Version: opts.Version,
			Commit:  opts.Commit,
			Date:    opts.Date,
		})),
		ThemeMgr: theme.NewManagerByName(opts.Theme),
	}

	var err error
	container.Paths, err = filesystem.NewAppFilesystem(container.Config).EnsureAllPaths()
	if err != nil {
		return nil, fmt.Errorf("failed to ensure all application paths: %w", err)
	}

	container.ConfigMgr = config.NewManager(container.Paths[filesystem.ConfigFilePath])
	container.Settings, err = container.ConfigMgr.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	levelName := container.Settings.Log.Level
	if opts.LogLevel != "" {
		levelName = opts.LogLevel
	}
	level, ok := logger.ParseLevel(levelName)
	if !ok {
		return nil, fmt.Errorf("invalid log level %q", levelName)
	}

	container.Logger, err = logger.NewZapLogger(logger.Config{
		LogLevel:   level,
		FilePath:   container.Paths[filesystem.LogsFilePath],
		UseConsole: container.Settings.Log.Console,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	container.Logger.Debug("container initialized", map[string]interface{}{
		"version": container.Config.Version.VersionText(),
		"config":  container.ConfigMgr.Path(),
	})

	return container, nil
}

// History opens the render history database on first use
func (c *Container) History() (*history.Store, error) {
	c.historyOnce.Do(func() {
		c.history, c.historyErr = history.Open(c.Paths[filesystem.HistoryDB])
	})
	return c.history, c.historyErr
}

// RenderDeps assembles the collaborators used by the render-3d subcommands.
// History is best effort: when the database cannot be opened renders still
// run, unrecorded.
func (c *Container) RenderDeps() (runner.Deps, error) {
	deps := runner.Deps{
		Renderer: renderer.NewExecRenderer(c.Settings.Renderer, c.Paths[filesystem.JobsDirectory], c.Logger),
		Logger:   c.Logger,
		Theme:    c.ThemeMgr.GetCurrentTheme(),
		Prompter: runner.SurveyPrompter{},
	}

	if c.Settings.History.Enabled {
		store, err := c.History()
		if err != nil {
			c.Logger.Warn("render history unavailable, jobs will not be recorded", map[string]interface{}{
				logger.ErrorKey: err,
				"path":          c.Paths[filesystem.HistoryDB],
			})
		} else {
			deps.History = store
		}
	}

	return deps, nil
}

// Close releases resources opened lazily and flushes the logger
func (c *Container) Close() error {
	if c.history != nil {
		if err := c.history.Close(); err != nil {
			return fmt.Errorf("failed to close history: %w", err)
		}
	}
	if c.Logger != nil {
		_ = c.Logger.Sync()
	}
	return nil
}
