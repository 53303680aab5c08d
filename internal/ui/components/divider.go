package components

import "strings"

// Divider renders a horizontal rule.
type Divider struct {
	BaseComponent
	char  string
	width int
}

// NewDivider creates a divider using a light horizontal line.
func NewDivider() *Divider {
	d := &Divider{BaseComponent: NewBaseComponent(), char: "─", width: 20}
	d.AddAppliers(Foreground(PaletteMuted))
	return d
}

// DashedDivider creates a dashed divider.
func DashedDivider() *Divider {
	return NewDivider().WithChar("╌")
}

// ThickDivider creates a heavy divider.
func ThickDivider() *Divider {
	return NewDivider().WithChar("━")
}

// View renders with the default context.
func (d *Divider) View() string {
	return d.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the divider under the given theme, clamped to the
// context's max width when one is set.
func (d *Divider) ViewWithContext(ctx RenderContext) string {
	width := d.width
	if ctx.Constraints.MaxWidth > 0 && width > ctx.Constraints.MaxWidth {
		width = ctx.Constraints.MaxWidth
	}
	if width <= 0 {
		return ""
	}
	return d.ComputeStyle(ctx.Theme).Render(strings.Repeat(d.char, width))
}

// WithChar sets the repeated rune.
func (d *Divider) WithChar(char string) *Divider {
	if char != "" {
		d.char = char
	}
	return d
}

// WithWidth sets the divider width in cells.
func (d *Divider) WithWidth(width int) *Divider {
	d.width = width
	return d
}

// WithAppliers adds theme-aware style modifiers.
func (d *Divider) WithAppliers(appliers ...StyleFunc) *Divider {
	d.AddAppliers(appliers...)
	return d
}
