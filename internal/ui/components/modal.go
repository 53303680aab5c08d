package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/laststance/plume/internal/ui"
)

// Modal renders a single blocking dialog. At most one modal is visible at a
// time; the uistate store enforces that, the component only draws it.
type Modal struct {
	BaseComponent
	title string
	body  ui.Renderable
	hint  string
	width int
}

// NewModal creates a modal with the given title and body.
func NewModal(title string, body ui.Renderable) *Modal {
	return &Modal{
		BaseComponent: NewBaseComponent(),
		title:         title,
		body:          body,
		width:         48,
	}
}

// View renders with the default context.
func (m *Modal) View() string {
	return m.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the dialog box under the given theme.
func (m *Modal) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	title := theme.Typography.Title.Render(m.title)
	rows := []string{title, ""}
	if m.body != nil {
		rows = append(rows, renderChild(m.body, ctx))
	}
	if m.hint != "" {
		rows = append(rows, "", theme.Typography.Caption.Render(m.hint))
	}
	content := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return m.ComputeStyle(theme).
		Border(theme.Borders.Double).
		BorderForeground(theme.Palette.Primary.Base).
		Padding(1, 2).
		Width(m.width).
		Render(content)
}

// Overlay centers the dialog in a width×height region.
func (m *Modal) Overlay(width, height int, ctx RenderContext) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, m.ViewWithContext(ctx))
}

// WithHint sets the key-hint line shown under the body.
func (m *Modal) WithHint(hint string) *Modal {
	m.hint = hint
	return m
}

// WithWidth sets the dialog width in cells.
func (m *Modal) WithWidth(width int) *Modal {
	if width > 0 {
		m.width = width
	}
	return m
}

// Title returns the modal title.
func (m *Modal) Title() string {
	return m.title
}
