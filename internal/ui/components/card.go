package components

import (
	"github.com/laststance/plume/internal/ui"
)

// Card is a bordered container for grouped content, the workhorse of the demo
// app's timeline.
type Card struct {
	*Container
}

// NewCard creates a card with rounded border and standard padding.
func NewCard(children ...ui.Renderable) *Card {
	container := NewContainer(children...).WithAppliers(
		Border(BorderVariantRounded, PaletteMuted),
		Padding(SpacingSizeSmall),
	)
	return &Card{Container: container}
}

// WithTitle prepends a title header to the card body.
func (c *Card) WithTitle(title string) *Card {
	children := append([]ui.Renderable{NewHeader(title)}, c.Children()...)
	c.Container = NewContainer(children...).WithAppliers(
		Border(BorderVariantRounded, PaletteMuted),
		Padding(SpacingSizeSmall),
	)
	return c
}

// WithFooter appends a divider and footer to the card body.
func (c *Card) WithFooter(footer ui.Renderable) *Card {
	c.Add(NewDivider(), footer)
	return c
}
