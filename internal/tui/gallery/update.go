package gallery

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/laststance/plume/internal/ui/components"
)

// Update implements tea.Model. While the list filter is active all keys go to
// the list; otherwise the gallery bindings apply first.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		m.height = typed.Height
		m.list.SetSize(listWidth, typed.Height-chromeHeight)
		m.preview.Width = typed.Width - listWidth - 2
		m.preview.Height = typed.Height - chromeHeight
		m.refreshPreview()
		return m, nil

	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			return m.forwardToList(typed)
		}
		switch typed.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "t":
			m.theme = m.toggledTheme()
			m.refreshPreview()
			return m, nil
		case "pgup", "pgdown", "ctrl+u", "ctrl+d":
			var cmd tea.Cmd
			m.preview, cmd = m.preview.Update(typed)
			return m, cmd
		}
		return m.forwardToList(typed)
	}

	return m, nil
}

func (m Model) forwardToList(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	m.refreshPreview()
	return m, cmd
}

func (m Model) toggledTheme() components.Theme {
	if m.theme.Name == components.DarkTheme().Name {
		return components.LightTheme()
	}
	return components.DarkTheme()
}
