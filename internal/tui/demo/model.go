// Package demo is the chirper example application: a small micro-blog TUI
// assembled entirely from the component kit and the uistate store. It exists
// to show the pieces working together, not to be a product.
package demo

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/laststance/plume/internal/logger"
	"github.com/laststance/plume/internal/ui/components"
	"github.com/laststance/plume/internal/uistate"
)

// Model is the chirper application model. All cross-cutting UI state lives in
// the injected store; the model keeps only domain data (the feed) and
// view-local concerns (cursor, sizes, the compose input).
type Model struct {
	store *uistate.Store
	log   *logger.Logger

	posts   []Post
	cursor  int
	navIdx  int
	compose *components.Input

	width  int
	height int
}

// NewModel creates the demo model around an injected store.
func NewModel(store *uistate.Store, log *logger.Logger) Model {
	compose := components.NewInput("What's happening?").WithCharLimit(280)
	return Model{
		store:   store,
		log:     log,
		posts:   seedFeed(),
		compose: compose,
		width:   100,
		height:  30,
	}
}

// Store exposes the injected store, used by the program wiring to subscribe
// re-render notifications.
func (m Model) Store() *uistate.Store {
	return m.store
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// theme resolves the active theme from the store's mode.
func (m Model) theme() components.Theme {
	if m.store.ThemeMode() == uistate.ThemeDark {
		return components.DarkTheme()
	}
	return components.LightTheme()
}

// renderContext builds the context every frame renders under.
func (m Model) renderContext() components.RenderContext {
	return components.DefaultContext().WithTheme(m.theme())
}

// postIndex finds a post by id, -1 when absent.
func (m Model) postIndex(id string) int {
	for i, post := range m.posts {
		if post.ID == id {
			return i
		}
	}
	return -1
}
