package catalog

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laststance/plume/internal/logger"
	"github.com/laststance/plume/internal/ui/components"
)

func TestRunnerStaticStories(t *testing.T) {
	reg := NewRegistry()
	reg.MustRegister(
		Story{Component: "text", Scenario: "plain", Render: renderText("hello")},
		Story{Component: "text", Scenario: "empty", Render: func(components.RenderContext) string { return "" }},
	)

	results := NewRunner(logger.Discard()).Run(reg)

	// Two themes x (one theme check + two stories).
	require.Len(t, results, 6)

	failed := Failures(results)
	require.Len(t, failed, 2, "the empty story should fail under both themes")
	for _, result := range failed {
		assert.Equal(t, "text/empty", result.Story.ID())
	}
}

func TestRunnerInteractiveStory(t *testing.T) {
	reg := NewRegistry()
	reg.MustRegister(Story{
		Component: "counter",
		Scenario:  "increments",
		Model: func(components.RenderContext) tea.Model {
			return counterModel{}
		},
		Script: []Step{
			{Press: "+", Expect: "count=1"},
		},
	})

	results := NewRunner(logger.Discard(), components.LightTheme()).Run(reg)
	assert.Empty(t, Failures(results))
}

func TestRunnerRecoversPanics(t *testing.T) {
	reg := NewRegistry()
	reg.MustRegister(Story{
		Component: "boom",
		Scenario:  "panics",
		Render: func(components.RenderContext) string {
			panic("render exploded")
		},
	})

	results := NewRunner(logger.Discard(), components.LightTheme()).Run(reg)
	failed := Failures(results)
	require.Len(t, failed, 1)
	assert.Contains(t, failed[0].Err.Error(), "panic")
}
