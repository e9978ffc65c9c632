package config

import (
	"time"
)

// RendererConfig describes the external program that performs the actual rendering
type RendererConfig struct {
	// Executable is looked up in PATH when not absolute
	Executable string `yaml:"executable"`
	// Args are passed before the script path
	Args []string `yaml:"args,omitempty"`
	// ClipScript and DomainScript are the renderer scripts for each subcommand
	ClipScript   string        `yaml:"clip_script"`
	DomainScript string        `yaml:"domain_script"`
	Timeout      time.Duration `yaml:"timeout"`
}

// LogConfig represents the logging configuration
type LogConfig struct {
	Level   string `yaml:"level"`
	Console bool   `yaml:"console"`
}

// HistoryConfig controls the render history database
type HistoryConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Config represents the main configuration
type Config struct {
	Renderer RendererConfig `yaml:"renderer"`
	Log      LogConfig      `yaml:"log"`
	History  HistoryConfig  `yaml:"history"`
}

// Default returns the configuration written when no config file exists yet
func Default() Config {
	return Config{
		Renderer: RendererConfig{
			Executable:   "pvbatch",
			ClipScript:   "render_clip.py",
			DomainScript: "render_domain.py",
			Timeout:      30 * time.Minute,
		},
		Log: LogConfig{
			Level: "info",
		},
		History: HistoryConfig{
			Enabled: true,
		},
	}
}

// ScriptFor returns the renderer script configured for kind ("clip" or "domain")
func (r RendererConfig) ScriptFor(kind string) string {
	switch kind {
	case "clip":
		return r.ClipScript
	case "domain":
		return r.DomainScript
	default:
		return ""
	}
}
