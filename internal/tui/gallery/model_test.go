package gallery

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laststance/plume/internal/catalog"
	"github.com/laststance/plume/internal/logger"
	"github.com/laststance/plume/internal/ui/components"
)

func testRegistry(t *testing.T) *catalog.Registry {
	t.Helper()
	registry := catalog.NewRegistry()
	registry.MustRegister(catalog.Story{
		Component: "text",
		Scenario:  "plain",
		Render: func(ctx components.RenderContext) string {
			return components.NewText("alpha preview").ViewWithContext(ctx)
		},
	})
	registry.MustRegister(catalog.Story{
		Component: "badge",
		Scenario:  "success",
		Render: func(ctx components.RenderContext) string {
			return components.SuccessBadge("ok").ViewWithContext(ctx)
		},
	})
	return registry
}

func newTestGallery(t *testing.T) Model {
	t.Helper()
	return NewModel(testRegistry(t), logger.Discard())
}

func press(t *testing.T, m Model, key string) Model {
	t.Helper()
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
	updated, ok := next.(Model)
	require.True(t, ok)
	return updated
}

func TestNewModelSelectsFirstStory(t *testing.T) {
	m := newTestGallery(t)

	story, ok := m.SelectedStory()
	require.True(t, ok)
	assert.Equal(t, "badge/success", story.ID(), "list follows registry sort order")
}

func TestViewContainsSelectedStoryOutput(t *testing.T) {
	m := newTestGallery(t)

	view := m.View()
	assert.Contains(t, view, "plume gallery")
	assert.Contains(t, view, "badge/success")
	assert.Contains(t, view, "ok")
}

func TestCursorMovesPreview(t *testing.T) {
	m := newTestGallery(t)

	m = press(t, m, "j")
	story, ok := m.SelectedStory()
	require.True(t, ok)
	assert.Equal(t, "text/plain", story.ID())
	assert.Contains(t, m.View(), "alpha preview")
}

func TestThemeToggle(t *testing.T) {
	m := newTestGallery(t)
	require.Equal(t, components.LightTheme().Name, m.Theme().Name)

	m = press(t, m, "t")
	assert.Equal(t, components.DarkTheme().Name, m.Theme().Name)

	m = press(t, m, "t")
	assert.Equal(t, components.LightTheme().Name, m.Theme().Name)
}

func TestQuitKey(t *testing.T) {
	m := newTestGallery(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestWindowSizeResizesPanes(t *testing.T) {
	m := newTestGallery(t)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 140, Height: 50})
	m = next.(Model)

	assert.Equal(t, 140, m.width)
	assert.Equal(t, 140-listWidth-2, m.preview.Width)
	assert.Equal(t, 50-chromeHeight, m.preview.Height)
}

func TestEmptyRegistry(t *testing.T) {
	m := NewModel(catalog.NewRegistry(), logger.Discard())

	_, ok := m.SelectedStory()
	assert.False(t, ok)
	assert.Contains(t, m.View(), "No stories registered.")
}

func TestPanickingStoryDoesNotCrash(t *testing.T) {
	registry := catalog.NewRegistry()
	registry.MustRegister(catalog.Story{
		Component: "broken",
		Scenario:  "panics",
		Render: func(components.RenderContext) string {
			panic("boom")
		},
	})
	m := NewModel(registry, logger.Discard())

	assert.Contains(t, m.View(), "story render panicked")
}
