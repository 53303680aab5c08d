// Package gallery is the interactive story browser: a list of every
// registered story on the left, the story rendered under the active theme on
// the right.
package gallery

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/laststance/plume/internal/catalog"
	"github.com/laststance/plume/internal/logger"
	"github.com/laststance/plume/internal/ui/components"
)

const (
	listWidth     = 34
	chromeHeight  = 4
	defaultWidth  = 100
	defaultHeight = 30
)

// storyItem adapts a catalog story to the bubbles list.
type storyItem struct {
	story catalog.Story
}

func (i storyItem) Title() string       { return i.story.Scenario }
func (i storyItem) Description() string { return i.story.Component }
func (i storyItem) FilterValue() string { return i.story.ID() }

// Model is the gallery browser model.
type Model struct {
	registry *catalog.Registry
	log      *logger.Logger

	list    list.Model
	preview viewport.Model
	theme   components.Theme

	width  int
	height int
}

// NewModel creates a gallery over the given story registry.
func NewModel(registry *catalog.Registry, log *logger.Logger) Model {
	stories := registry.List()
	items := make([]list.Item, len(stories))
	for i, story := range stories {
		items[i] = storyItem{story: story}
	}

	delegate := list.NewDefaultDelegate()
	l := list.New(items, delegate, listWidth, defaultHeight-chromeHeight)
	l.Title = "Stories"
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)

	m := Model{
		registry: registry,
		log:      log,
		list:     l,
		preview:  viewport.New(defaultWidth-listWidth-2, defaultHeight-chromeHeight),
		theme:    components.LightTheme(),
		width:    defaultWidth,
		height:   defaultHeight,
	}
	m.refreshPreview()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// SelectedStory returns the story under the cursor.
func (m Model) SelectedStory() (catalog.Story, bool) {
	item, ok := m.list.SelectedItem().(storyItem)
	if !ok {
		return catalog.Story{}, false
	}
	return item.story, true
}

// Theme returns the theme previews render under.
func (m Model) Theme() components.Theme {
	return m.theme
}

// WithTheme sets the starting theme; the t binding still cycles the builtins.
func (m Model) WithTheme(theme components.Theme) Model {
	m.theme = theme
	m.refreshPreview()
	return m
}

// refreshPreview re-renders the selected story into the viewport.
func (m *Model) refreshPreview() {
	story, ok := m.SelectedStory()
	if !ok {
		m.preview.SetContent("No stories registered.")
		return
	}
	m.preview.SetContent(m.renderStory(story))
	m.preview.GotoTop()
}

// renderStory renders a story under the active theme, recovering from a
// panicking render so one bad story cannot take the browser down.
func (m *Model) renderStory(story catalog.Story) (out string) {
	defer func() {
		if r := recover(); r != nil {
			m.log.With(map[string]any{"story": story.ID()}).Error(nil, "story render panicked")
			out = "story render panicked; see log output"
		}
	}()

	ctx := components.DefaultContext().WithTheme(m.theme)
	if story.Render != nil {
		return story.Render(ctx)
	}
	if story.Model != nil {
		return story.Model(ctx).View()
	}
	return "story has no render function"
}
