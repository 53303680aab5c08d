package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laststance/plume/internal/ui/components"
)

func renderText(content string) func(components.RenderContext) string {
	return func(ctx components.RenderContext) string {
		return components.NewText(content).ViewWithContext(ctx)
	}
}

func TestRegisterAndGet(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(Story{
		Component: "badge",
		Scenario:  "default",
		Render:    renderText("badge"),
	}))

	story, ok := reg.Get("badge", "default")
	require.True(t, ok)
	assert.Equal(t, "badge/default", story.ID())

	_, ok = reg.Get("badge", "missing")
	assert.False(t, ok)
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	reg := NewRegistry()
	story := Story{Component: "card", Scenario: "default", Render: renderText("x")}

	require.NoError(t, reg.Register(story))
	assert.Error(t, reg.Register(story))
}

func TestRegisterRejectsIncomplete(t *testing.T) {
	reg := NewRegistry()

	assert.Error(t, reg.Register(Story{Component: "", Scenario: "x", Render: renderText("x")}))
	assert.Error(t, reg.Register(Story{Component: "card", Scenario: "empty"}))
}

func TestListOrdering(t *testing.T) {
	reg := NewRegistry()
	reg.MustRegister(
		Story{Component: "card", Scenario: "titled", Render: renderText("a")},
		Story{Component: "badge", Scenario: "success", Render: renderText("b")},
		Story{Component: "badge", Scenario: "default", Render: renderText("c")},
	)

	stories := reg.List()
	require.Len(t, stories, 3)
	assert.Equal(t, "badge/default", stories[0].ID())
	assert.Equal(t, "badge/success", stories[1].ID())
	assert.Equal(t, "card/titled", stories[2].ID())

	assert.Equal(t, []string{"badge", "card"}, reg.Components())
}
