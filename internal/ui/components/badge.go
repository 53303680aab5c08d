package components

// Badge is a small inline status indicator.
type Badge struct {
	BaseComponent
	text string
	tone Tone
}

// NewBadge creates a badge with the default tone.
func NewBadge(text string) *Badge {
	return &Badge{BaseComponent: NewBaseComponent(), text: text}
}

// SuccessBadge creates a success-tone badge.
func SuccessBadge(text string) *Badge {
	return NewBadge(text).WithTone(ToneSuccess)
}

// WarningBadge creates a warning-tone badge.
func WarningBadge(text string) *Badge {
	return NewBadge(text).WithTone(ToneWarning)
}

// ErrorBadge creates an error-tone badge.
func ErrorBadge(text string) *Badge {
	return NewBadge(text).WithTone(ToneError)
}

// View renders with the default context.
func (b *Badge) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the badge under the given theme.
func (b *Badge) ViewWithContext(ctx RenderContext) string {
	set := ctx.Theme.Palette.Slot(b.tone.Slot())
	return b.ComputeStyle(ctx.Theme).
		Padding(0, 1).
		Background(set.Base).
		Foreground(set.OnBase).
		Render(b.text)
}

// WithTone sets the semantic tone.
func (b *Badge) WithTone(tone Tone) *Badge {
	b.tone = tone
	return b
}

// Text returns the badge text.
func (b *Badge) Text() string {
	return b.text
}
