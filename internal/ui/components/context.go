package components

// ContextualRenderable is implemented by components that can render with an
// explicit theme and layout constraints instead of package defaults.
type ContextualRenderable interface {
	ViewWithContext(ctx RenderContext) string
}

// RenderContext carries everything a component needs to render: the active
// theme and the layout constraints imposed by its parent.
type RenderContext struct {
	Theme       Theme
	Constraints Constraints
}

// DefaultContext returns a context with the light theme and no constraints.
func DefaultContext() RenderContext {
	return RenderContext{
		Theme:       LightTheme(),
		Constraints: Unconstrained(),
	}
}

// WithTheme returns a copy of the context using the given theme.
func (c RenderContext) WithTheme(theme Theme) RenderContext {
	c.Theme = theme
	return c
}

// WithConstraints returns a copy of the context using the given constraints.
func (c RenderContext) WithConstraints(constraints Constraints) RenderContext {
	c.Constraints = constraints
	return c
}

// Constraints bounds the size a component may occupy. Zero values mean
// unconstrained on that axis.
type Constraints struct {
	MaxWidth  int
	MaxHeight int
}

// Unconstrained returns constraints with no limits.
func Unconstrained() Constraints {
	return Constraints{}
}

// WithMaxWidth returns constraints limited to the given width.
func WithMaxWidth(width int) Constraints {
	return Constraints{MaxWidth: width}
}

// render resolves a child for layout purposes, preferring contextual
// rendering when the child supports it.
func renderChild(child any, ctx RenderContext) string {
	switch c := child.(type) {
	case nil:
		return ""
	case ContextualRenderable:
		return c.ViewWithContext(ctx)
	case interface{ View() string }:
		return c.View()
	default:
		return ""
	}
}
