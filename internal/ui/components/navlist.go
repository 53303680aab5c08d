package components

import (
	"github.com/charmbracelet/lipgloss"
)

// NavItem is one entry in a NavList.
type NavItem struct {
	Icon  string
	Label string
}

// NavList renders a vertical navigation list, the demo app's sidebar. When
// collapsed it shows icons only.
type NavList struct {
	BaseComponent
	items     []NavItem
	selected  int
	collapsed bool
}

// NewNavList creates a navigation list.
func NewNavList(items ...NavItem) *NavList {
	return &NavList{BaseComponent: NewBaseComponent(), items: items}
}

// View renders with the default context.
func (n *NavList) View() string {
	return n.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the list under the given theme.
func (n *NavList) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	active := lipgloss.NewStyle().
		Bold(true).
		Background(theme.Palette.Primary.Base).
		Foreground(theme.Palette.Primary.OnBase).
		Padding(0, 1)
	inactive := theme.Typography.Body.Padding(0, 1)

	rows := make([]string, 0, len(n.items))
	for i, item := range n.items {
		label := item.Icon
		if !n.collapsed {
			label = item.Icon + " " + item.Label
		}
		style := inactive
		if i == n.selected {
			style = active
		}
		rows = append(rows, style.Render(label))
	}
	return n.ComputeStyle(theme).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// WithSelected sets the highlighted row, clamped to the item range.
func (n *NavList) WithSelected(index int) *NavList {
	if index < 0 {
		index = 0
	}
	if index >= len(n.items) && len(n.items) > 0 {
		index = len(n.items) - 1
	}
	n.selected = index
	return n
}

// WithCollapsed toggles icon-only rendering.
func (n *NavList) WithCollapsed(collapsed bool) *NavList {
	n.collapsed = collapsed
	return n
}

// Selected returns the highlighted row index.
func (n *NavList) Selected() int {
	return n.selected
}
