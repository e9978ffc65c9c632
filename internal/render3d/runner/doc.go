// Package runner holds the behaviour shared by the render subcommands:
// confirming overwrites, dry runs, invoking the renderer and recording the
// outcome in history.
package runner
