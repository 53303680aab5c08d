package components

import (
	"github.com/charmbracelet/lipgloss"
)

// StyleFunc transforms a lipgloss style using data pulled from a Theme. It is
// the unit of theme-aware styling: components carry a list of these and apply
// them at render time against whatever theme the render context supplies.
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

// BaseComponent carries the style state shared by every component: a raw
// lipgloss style plus an ordered list of theme-aware appliers. Embed it to get
// the standard styling behavior.
type BaseComponent struct {
	style    lipgloss.Style
	appliers []StyleFunc
}

// NewBaseComponent returns a base with an empty style and no appliers.
func NewBaseComponent() BaseComponent {
	return BaseComponent{style: lipgloss.NewStyle()}
}

// ComputeStyle resolves the final style for the given theme by running every
// applier in registration order over the raw style.
func (b *BaseComponent) ComputeStyle(theme Theme) lipgloss.Style {
	style := b.style
	for _, fn := range b.appliers {
		if fn != nil {
			style = fn(style, theme)
		}
	}
	return style
}

// SetStyle replaces the raw lipgloss style.
func (b *BaseComponent) SetStyle(style lipgloss.Style) {
	b.style = style
}

// SetAppliers replaces the applier list.
func (b *BaseComponent) SetAppliers(appliers ...StyleFunc) {
	b.appliers = appliers
}

// AddAppliers appends appliers after the existing ones.
func (b *BaseComponent) AddAppliers(appliers ...StyleFunc) {
	combined := make([]StyleFunc, len(b.appliers), len(b.appliers)+len(appliers))
	copy(combined, b.appliers)
	b.appliers = append(combined, appliers...)
}

// Spacing describes padding or margin per side, clockwise from the top.
type Spacing struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// UniformSpacing applies the same value to all four sides.
func UniformSpacing(size int) Spacing {
	return Spacing{Top: size, Right: size, Bottom: size, Left: size}
}

// SymmetricSpacing applies one value vertically and another horizontally.
func SymmetricSpacing(vertical, horizontal int) Spacing {
	return Spacing{Top: vertical, Right: horizontal, Bottom: vertical, Left: horizontal}
}

// IsZero reports whether every side is zero.
func (s Spacing) IsZero() bool {
	return s.Top == 0 && s.Right == 0 && s.Bottom == 0 && s.Left == 0
}
