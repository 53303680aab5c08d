package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/laststance/plume/internal/ui"
)

// Container is a generic box: children stacked vertically inside an optional
// border and padding. Card and Panel specialize it.
type Container struct {
	BaseComponent
	layout *Stack
	border *lipgloss.Border
}

// NewContainer creates a container around the given children.
func NewContainer(children ...ui.Renderable) *Container {
	return &Container{
		BaseComponent: NewBaseComponent(),
		layout:        VStack(children...),
	}
}

// View renders with the default context.
func (c *Container) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the children and wraps them in the container style.
func (c *Container) ViewWithContext(ctx RenderContext) string {
	inner := ctx
	// Reserve two columns for the border when constrained.
	if ctx.Constraints.MaxWidth > 2 {
		inner = ctx.WithConstraints(WithMaxWidth(ctx.Constraints.MaxWidth - 2))
	}
	style := c.ComputeStyle(ctx.Theme)
	if c.border != nil {
		style = style.Border(*c.border)
	}
	return style.Render(c.layout.ViewWithContext(inner))
}

// WithBorder sets an explicit lipgloss border, overriding any themed one.
func (c *Container) WithBorder(border lipgloss.Border) *Container {
	c.border = &border
	return c
}

// WithGap sets the vertical gap between children.
func (c *Container) WithGap(gap int) *Container {
	c.layout.WithGap(gap)
	return c
}

// WithAppliers adds theme-aware style modifiers.
func (c *Container) WithAppliers(appliers ...StyleFunc) *Container {
	c.AddAppliers(appliers...)
	return c
}

// Add appends children.
func (c *Container) Add(children ...ui.Renderable) *Container {
	c.layout.Add(children...)
	return c
}

// Children returns the contained renderables.
func (c *Container) Children() []ui.Renderable {
	return c.layout.Children()
}

// Layout exposes the underlying stack for advanced arrangements.
func (c *Container) Layout() *Stack {
	return c.layout
}
