package components

import "github.com/charmbracelet/lipgloss"

// Header renders a title with an optional subtitle underneath.
type Header struct {
	BaseComponent
	title    string
	subtitle string
}

// NewHeader creates a header with title typography.
func NewHeader(title string) *Header {
	h := &Header{BaseComponent: NewBaseComponent(), title: title}
	h.AddAppliers(Typography(TypographyVariantTitle))
	return h
}

// View renders with the default context.
func (h *Header) View() string {
	return h.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the header under the given theme.
func (h *Header) ViewWithContext(ctx RenderContext) string {
	title := h.ComputeStyle(ctx.Theme).Render(h.title)
	if h.subtitle == "" {
		return title
	}
	subtitle := ctx.Theme.Typography.Subtitle.Render(h.subtitle)
	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle)
}

// WithSubtitle adds a subtitle line.
func (h *Header) WithSubtitle(subtitle string) *Header {
	h.subtitle = subtitle
	return h
}

// WithAppliers adds theme-aware style modifiers.
func (h *Header) WithAppliers(appliers ...StyleFunc) *Header {
	h.AddAppliers(appliers...)
	return h
}

// Title returns the header title.
func (h *Header) Title() string {
	return h.title
}
