package runner

import (
	"github.com/AlecAivazis/survey/v2"
	"github.com/shaharia-lab/render3d/internal/history"
	"github.com/shaharia-lab/render3d/internal/logger"
	"github.com/shaharia-lab/render3d/internal/renderer"
	"github.com/shaharia-lab/render3d/internal/theme"
)

// Deps are the collaborators a render subcommand needs at run time
type Deps struct {
	Renderer renderer.Renderer
	// History may be nil when history is disabled
	History  history.Recorder
	Logger   logger.Logger
	Theme    theme.Theme
	Prompter Prompter
}

// DepsFunc resolves Deps when a subcommand actually runs, so that building
// the command tree never opens databases or probes the renderer.
type DepsFunc func() (Deps, error)

// StaticDeps returns a DepsFunc that always yields d
func StaticDeps(d Deps) DepsFunc {
	return func() (Deps, error) { return d, nil }
}

// Prompter asks the user yes/no questions
type Prompter interface {
	Confirm(message string, defaultValue bool) (bool, error)
}

// SurveyPrompter asks on the terminal
type SurveyPrompter struct{}

// Confirm shows a yes/no prompt
func (SurveyPrompter) Confirm(message string, defaultValue bool) (bool, error) {
	answer := defaultValue
	prompt := &survey.Confirm{
		Message: message,
		Default: defaultValue,
	}
	if err := survey.AskOne(prompt, &answer); err != nil {
		return false, err
	}
	return answer, nil
}
