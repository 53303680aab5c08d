package gallery

import (
	"github.com/charmbracelet/lipgloss"
)

// View implements tea.Model.
func (m Model) View() string {
	header := m.viewHeader()
	left := lipgloss.NewStyle().Width(listWidth).Render(m.list.View())
	right := m.viewPreview()
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
	footer := m.theme.Typography.Caption.
		Render("↑/↓ select · / filter · t theme · pgup/pgdn scroll · q quit")
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (m Model) viewHeader() string {
	theme := m.theme
	title := lipgloss.NewStyle().
		Bold(true).
		Background(theme.Palette.Primary.Base).
		Foreground(theme.Palette.Primary.OnBase).
		Padding(0, 1).
		Render("plume gallery")
	label := theme.Typography.Caption.Render(" " + theme.Name + " theme")
	return lipgloss.JoinHorizontal(lipgloss.Center, title, label)
}

func (m Model) viewPreview() string {
	frame := lipgloss.NewStyle().
		Border(m.theme.Borders.Rounded).
		BorderForeground(m.theme.Palette.Muted.Base).
		Padding(0, 1)

	story, ok := m.SelectedStory()
	if !ok {
		return frame.Render("No stories registered.")
	}

	caption := m.theme.Typography.Caption.Render(story.ID())
	return frame.Render(lipgloss.JoinVertical(lipgloss.Left, caption, "", m.preview.View()))
}
