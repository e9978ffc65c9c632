package main

import (
	"fmt"
	"os"

	"github.com/shaharia-lab/render3d/cmd"
	"github.com/shaharia-lab/render3d/internal/cli"
	"github.com/shaharia-lab/render3d/internal/theme"
)

var version = "0.0.1"
var commit = "none"
var date = "unknown"

func main() {
	container, err := cli.NewContainer(cli.InitOptions{
		Version:  version,
		Commit:   commit,
		Date:     date,
		LogLevel: os.Getenv("RENDER3D_LOG_LEVEL"),
		Theme:    theme.Name(os.Getenv("RENDER3D_THEME")),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error during initialization: %v\n", err)
		os.Exit(1)
	}

	code := cmd.Execute(container, os.Args[1:], os.Stdout, os.Stderr)
	if err := container.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error during shutdown: %v\n", err)
	}
	os.Exit(code)
}
