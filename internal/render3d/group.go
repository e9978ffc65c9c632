package render3d

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/shaharia-lab/render3d/internal/clierr"
	"github.com/shaharia-lab/render3d/internal/logger"
	"github.com/spf13/cobra"
)

// Factory builds a subcommand
type Factory func() *cobra.Command

type entry struct {
	name    string
	short   string
	factory Factory
}

// Group is an ordered set of lazily constructed subcommands
type Group struct {
	use   string
	short string
	long  string

	logger logger.Logger

	mu      sync.Mutex
	entries []entry
	loaded  map[string]*cobra.Command
}

// NewGroup creates an empty group named use
func NewGroup(use, short, long string, log logger.Logger) *Group {
	if log == nil {
		log = logger.Discard
	}
	return &Group{
		use:    use,
		short:  short,
		long:   long,
		logger: log,
		loaded: make(map[string]*cobra.Command),
	}
}

// Register adds a subcommand. short is shown in the group help without
// calling f. It panics if name is already registered.
func (g *Group) Register(name, short string, f Factory) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, e := range g.entries {
		if e.name == name {
			panic(fmt.Sprintf("command %s already registered", name))
		}
	}
	g.entries = append(g.entries, entry{name: name, short: short, factory: f})
}

// ListCommands returns the subcommand names in registration order
func (g *Group) ListCommands() []string {
	g.mu.Lock()
	defer g.mu.Unlock()

	names := make([]string, len(g.entries))
	for i, e := range g.entries {
		names[i] = e.name
	}
	return names
}

// GetCommand returns the subcommand called name, building it on first use.
// Unknown names yield a *clierr.RequiredChoiceError listing the valid names.
func (g *Group) GetCommand(name string) (*cobra.Command, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if cmd, ok := g.loaded[name]; ok {
		return cmd, nil
	}
	return g.buildLocked(name)
}

// buildLocked runs the factory for name and memoizes the result.
// g.mu must be held.
func (g *Group) buildLocked(name string) (*cobra.Command, error) {
	var factory Factory
	names := make([]string, len(g.entries))
	for i, e := range g.entries {
		names[i] = e.name
		if e.name == name {
			factory = e.factory
		}
	}

	if factory == nil {
		g.logger.Warn("unknown subcommand requested", map[string]interface{}{
			"group":      g.name(),
			"subcommand": name,
		})
		return nil, clierr.NewRequiredChoiceError(
			fmt.Sprintf("The command '%s' is not implemented.", name),
			names,
		)
	}

	cmd := factory()
	g.loaded[name] = cmd
	g.logger.Debug("subcommand loaded", map[string]interface{}{
		"group":      g.name(),
		"subcommand": name,
	})
	return cmd, nil
}

// commandForRun returns a subcommand that has not parsed flags yet. cobra
// keeps flag values after a run, so a command that already ran is rebuilt.
func (g *Group) commandForRun(name string) (*cobra.Command, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if cmd, ok := g.loaded[name]; ok && !cmd.Flags().Parsed() {
		return cmd, nil
	}
	return g.buildLocked(name)
}

func (g *Group) name() string {
	name, _, _ := strings.Cut(g.use, " ")
	return name
}

// Command returns the cobra command for the group. Arguments after the group
// name are not parsed by cobra: the first one selects the subcommand and the
// rest are handed to it.
func (g *Group) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:                g.use + " COMMAND [ARGS]...",
		Short:              g.short,
		Long:               g.long,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveDefault
			}
			return g.completions(toComplete), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 || isHelpFlag(args[0]) {
				g.WriteHelp(cmd.OutOrStdout(), cmd.CommandPath())
				return nil
			}

			sub, err := g.commandForRun(args[0])
			if err != nil {
				return err
			}
			return g.execute(cmd, sub, args[1:])
		},
	}
	cmd.SetHelpFunc(func(cmd *cobra.Command, _ []string) {
		g.WriteHelp(cmd.OutOrStdout(), cmd.CommandPath())
	})

	return cmd
}

// execute runs sub under a throwaway root so that its usage and help show the
// full command path.
func (g *Group) execute(parent, sub *cobra.Command, args []string) error {
	root := &cobra.Command{
		Use:           g.name(),
		SilenceErrors: true,
		SilenceUsage:  true,
		Annotations: map[string]string{
			cobra.CommandDisplayNameAnnotation: parent.CommandPath(),
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return &clierr.UsageError{Message: err.Error()}
	})
	root.AddCommand(sub)
	defer root.RemoveCommand(sub)

	root.SetArgs(append([]string{sub.Name()}, args...))
	root.SetIn(parent.InOrStdin())
	root.SetOut(parent.OutOrStdout())
	root.SetErr(parent.ErrOrStderr())

	return root.ExecuteContext(parent.Context())
}

// WriteHelp writes the group usage, description and subcommand list
func (g *Group) WriteHelp(w io.Writer, commandPath string) {
	g.mu.Lock()
	entries := append([]entry(nil), g.entries...)
	g.mu.Unlock()

	width := 0
	for _, e := range entries {
		if len(e.name) > width {
			width = len(e.name)
		}
	}

	fmt.Fprintf(w, "Usage: %s [OPTIONS] COMMAND [ARGS]...\n\n", commandPath)
	description := g.long
	if description == "" {
		description = g.short
	}
	for _, line := range strings.Split(strings.TrimSpace(description), "\n") {
		if line == "" {
			fmt.Fprintln(w)
			continue
		}
		fmt.Fprintf(w, "  %s\n", line)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fmt.Fprintln(w, "  -h, --help  Show this message and exit.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, e := range entries {
		fmt.Fprintf(w, "  %-*s  %s\n", width, e.name, e.short)
	}
}

func (g *Group) completions(prefix string) []string {
	g.mu.Lock()
	defer g.mu.Unlock()

	var out []string
	for _, e := range g.entries {
		if strings.HasPrefix(e.name, prefix) {
			out = append(out, e.name+"\t"+e.short)
		}
	}
	return out
}

func isHelpFlag(arg string) bool {
	return arg == "-h" || arg == "--help"
}
