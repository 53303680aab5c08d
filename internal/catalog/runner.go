package catalog

import (
	"fmt"

	"github.com/laststance/plume/internal/logger"
	"github.com/laststance/plume/internal/ui/components"
	plumeerrors "github.com/laststance/plume/pkg/errors"
)

// Result is the outcome of one story under one theme.
type Result struct {
	Story  Story
	Theme  string
	Output string
	Err    error
}

// Passed reports whether the story ran cleanly.
func (r Result) Passed() bool {
	return r.Err == nil
}

// Runner executes every registered story headlessly: static stories render
// under each theme, interactive stories are driven through their script.
type Runner struct {
	log    *logger.Logger
	themes []components.Theme
}

// NewRunner creates a runner. With no themes given it runs the built-in light
// and dark themes, matching what the gallery can display.
func NewRunner(log *logger.Logger, themes ...components.Theme) *Runner {
	if len(themes) == 0 {
		themes = []components.Theme{components.LightTheme(), components.DarkTheme()}
	}
	return &Runner{log: log, themes: themes}
}

// Run executes all stories in the registry and returns one result per story
// and theme, plus theme-level contrast results keyed as "theme/<name>".
func (r *Runner) Run(registry *Registry) []Result {
	var results []Result

	for _, theme := range r.themes {
		results = append(results, r.checkTheme(theme))
		ctx := components.DefaultContext().WithTheme(theme)
		for _, story := range registry.List() {
			results = append(results, r.runStory(story, theme.Name, ctx))
		}
	}
	return results
}

func (r *Runner) runStory(story Story, themeName string, ctx components.RenderContext) (result Result) {
	result = Result{Story: story, Theme: themeName}
	defer func() {
		if rec := recover(); rec != nil {
			result.Err = plumeerrors.NewStoryError(story.Component, story.Scenario, fmt.Errorf("panic: %v", rec))
		}
		if result.Err != nil {
			r.log.With(map[string]any{"story": story.ID(), "theme": themeName}).Error(result.Err, "story failed")
		} else {
			r.log.With(map[string]any{"story": story.ID(), "theme": themeName}).Debug("story passed")
		}
	}()

	if story.Interactive() {
		output, err := RunScript(story.Model(ctx), story.Script)
		result.Output = output
		if err != nil {
			result.Err = plumeerrors.NewStoryError(story.Component, story.Scenario, err)
		}
		return result
	}

	output := story.Render(ctx)
	result.Output = output
	if output == "" {
		result.Err = plumeerrors.NewStoryError(story.Component, story.Scenario, fmt.Errorf("rendered empty output"))
	}
	return result
}

func (r *Runner) checkTheme(theme components.Theme) Result {
	result := Result{
		Story: Story{Component: "theme", Scenario: theme.Name},
		Theme: theme.Name,
	}
	issues, err := CheckThemeContrast(theme)
	switch {
	case err != nil:
		result.Err = fmt.Errorf("theme %s: %w", theme.Name, err)
	case len(issues) > 0:
		result.Err = fmt.Errorf("theme %s: %d contrast issue(s), first: %s", theme.Name, len(issues), issues[0])
	}
	if result.Err != nil {
		r.log.Error(result.Err, "theme contrast check failed")
	}
	return result
}

// Failures filters results down to failing ones.
func Failures(results []Result) []Result {
	var failed []Result
	for _, result := range results {
		if !result.Passed() {
			failed = append(failed, result)
		}
	}
	return failed
}
