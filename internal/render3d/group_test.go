package render3d

import (
	"bytes"
	"sync"
	"testing"

	"github.com/shaharia-lab/render3d/internal/clierr"
	"github.com/shaharia-lab/render3d/internal/logger"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// countingGroup registers two subcommands that record how often they are built
func countingGroup(t *testing.T) (*Group, map[string]int) {
	t.Helper()
	built := map[string]int{}
	g := NewGroup("viz", "Visualizes things.", "", nil)
	for _, name := range []string{"alpha", "beta"} {
		name := name
		g.Register(name, "Does "+name+".", func() *cobra.Command {
			built[name]++
			return &cobra.Command{
				Use: name,
				RunE: func(cmd *cobra.Command, args []string) error {
					cmd.Printf("%s ran with %v\n", name, args)
					return nil
				},
			}
		})
	}
	return g, built
}

func TestGroup_ListCommandsKeepsRegistrationOrder(t *testing.T) {
	g, built := countingGroup(t)

	assert.Equal(t, []string{"alpha", "beta"}, g.ListCommands())
	assert.Empty(t, built, "listing must not build subcommands")
}

func TestGroup_ListCommandsReturnsCopy(t *testing.T) {
	g, _ := countingGroup(t)

	names := g.ListCommands()
	names[0] = "mutated"

	assert.Equal(t, []string{"alpha", "beta"}, g.ListCommands())
}

func TestGroup_GetCommandBuildsOnlyRequested(t *testing.T) {
	g, built := countingGroup(t)

	first, err := g.GetCommand("beta")
	require.NoError(t, err)
	second, err := g.GetCommand("beta")
	require.NoError(t, err)

	assert.Same(t, first, second, "subcommands are memoized")
	assert.Equal(t, map[string]int{"beta": 1}, built)
}

func TestGroup_GetCommandConcurrentBuildsOnce(t *testing.T) {
	g, built := countingGroup(t)

	var wg sync.WaitGroup
	cmds := make([]*cobra.Command, 8)
	for i := range cmds {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			cmd, err := g.GetCommand("alpha")
			assert.NoError(t, err)
			cmds[i] = cmd
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, built["alpha"])
	for _, cmd := range cmds[1:] {
		assert.Same(t, cmds[0], cmd)
	}
}

func TestGroup_GetCommandUnknown(t *testing.T) {
	log := &logger.MockLogger{}
	log.On("Warn", "unknown subcommand requested", mock.Anything).Once()

	g := NewGroup("viz", "Visualizes things.", "", log)
	g.Register("alpha", "Does alpha.", func() *cobra.Command { return &cobra.Command{Use: "alpha"} })

	cmd, err := g.GetCommand("gamma")
	assert.Nil(t, cmd)

	var choiceErr *clierr.RequiredChoiceError
	require.ErrorAs(t, err, &choiceErr)
	assert.Equal(t, "The command 'gamma' is not implemented.", choiceErr.Message)
	assert.Equal(t, " alpha", choiceErr.Choices)
	log.AssertExpectations(t)
}

func TestGroup_RegisterDuplicatePanics(t *testing.T) {
	g, _ := countingGroup(t)
	assert.Panics(t, func() {
		g.Register("alpha", "again", func() *cobra.Command { return nil })
	})
}

func TestGroup_CommandDispatchesRemainingArgs(t *testing.T) {
	g, built := countingGroup(t)

	var out bytes.Buffer
	cmd := g.Command()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"alpha", "one", "--two"})

	err := cmd.Execute()
	require.Error(t, err, "unknown flag --two must be rejected by the subcommand")
	assert.True(t, clierr.IsUsage(err))

	cmd.SetArgs([]string{"alpha", "one", "two"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "alpha ran with [one two]")
	assert.Equal(t, 2, built["alpha"], "a subcommand that already parsed flags is rebuilt")
	assert.Zero(t, built["beta"])
}

func TestGroup_CommandHelp(t *testing.T) {
	for _, args := range [][]string{{"-h"}, {"--help"}, {}} {
		g, built := countingGroup(t)

		var out bytes.Buffer
		cmd := g.Command()
		cmd.SetOut(&out)
		cmd.SetArgs(args)

		require.NoError(t, cmd.Execute(), "args %v", args)
		assert.Contains(t, out.String(), "Usage: viz [OPTIONS] COMMAND [ARGS]...")
		assert.Contains(t, out.String(), "  alpha  Does alpha.")
		assert.Contains(t, out.String(), "  beta   Does beta.")
		assert.Empty(t, built, "help must not build subcommands")
	}
}

func TestGroup_CommandCompletion(t *testing.T) {
	g, _ := countingGroup(t)

	got := g.completions("al")
	assert.Equal(t, []string{"alpha\tDoes alpha."}, got)
	assert.Len(t, g.completions(""), 2)
}
