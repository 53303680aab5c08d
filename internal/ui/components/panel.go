package components

import (
	"github.com/laststance/plume/internal/ui"
)

// Panel is a lighter sectioning container: normal border, no padding.
type Panel struct {
	*Container
	title string
}

// NewPanel creates a panel around the given children.
func NewPanel(children ...ui.Renderable) *Panel {
	container := NewContainer(children...).WithAppliers(
		Border(BorderVariantNormal, PaletteMuted),
	)
	return &Panel{Container: container}
}

// WithTitle prepends a bold title row.
func (p *Panel) WithTitle(title string) *Panel {
	p.title = title
	children := append([]ui.Renderable{BoldText(title)}, p.Children()...)
	p.Container = NewContainer(children...).WithAppliers(
		Border(BorderVariantNormal, PaletteMuted),
	)
	return p
}

// Title returns the panel title, empty when unset.
func (p *Panel) Title() string {
	return p.title
}
