// Package ui defines the rendering contracts shared by every component in the
// kit. Components render to plain strings; composition happens by joining
// rendered output, never by mutating a shared scene graph.
package ui

// Renderable is anything that can render itself to a string using default
// settings. All components implement this.
type Renderable interface {
	View() string
}

// RenderableFunc adapts a plain function to the Renderable interface.
type RenderableFunc func() string

// View renders by calling the wrapped function.
func (f RenderableFunc) View() string {
	return f()
}
