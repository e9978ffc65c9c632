package config

import (
	"fmt"
)

// AppConfig represents the build-time identity of the application
type AppConfig struct {
	Name    string
	Version Version
}

// Version represents the version information for the application
type Version struct {
	Version string
	Commit  string
	Date    string
}

// VersionText returns the version information as a string
func (v *Version) VersionText() string {
	return fmt.Sprintf("v%s : %s (%s)", v.Version, v.Commit, v.Date)
}

// Option is a function that configures an AppConfig
type Option func(*AppConfig)

// WithVersion sets the build version information
func WithVersion(v Version) Option {
	return func(c *AppConfig) {
		c.Version = v
	}
}

// NewDefaultConfig returns the AppConfig for render3d with opts applied
func NewDefaultConfig(opts ...Option) *AppConfig {
	c := &AppConfig{
		Name: "render3d",
		Version: Version{
			Version: "0.0.0",
			Commit:  "none",
			Date:    "unknown",
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
