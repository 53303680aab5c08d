package components

// Button is a visual button. Interactivity belongs to the surrounding
// bubbletea model; the component only renders label, tone and state.
type Button struct {
	BaseComponent
	label    string
	tone     Tone
	focused  bool
	disabled bool
}

// NewButton creates a button with the default tone.
func NewButton(label string) *Button {
	return &Button{BaseComponent: NewBaseComponent(), label: label}
}

// PrimaryButton creates a primary-tone button.
func PrimaryButton(label string) *Button {
	return NewButton(label).WithTone(TonePrimary)
}

// DangerButton creates an error-tone button.
func DangerButton(label string) *Button {
	return NewButton(label).WithTone(ToneError)
}

// View renders with the default context.
func (b *Button) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the button under the given theme.
func (b *Button) ViewWithContext(ctx RenderContext) string {
	style := b.ComputeStyle(ctx.Theme).Padding(0, 2)
	set := ctx.Theme.Palette.Slot(b.tone.Slot())
	switch {
	case b.disabled:
		muted := ctx.Theme.Palette.Muted
		style = style.Background(muted.Base).Foreground(muted.OnBase).Faint(true)
	case b.focused:
		style = style.Background(set.Base).Foreground(set.OnBase).Bold(true).Underline(true)
	default:
		style = style.Background(set.Base).Foreground(set.OnBase)
	}
	return style.Render(b.label)
}

// WithTone sets the semantic tone.
func (b *Button) WithTone(tone Tone) *Button {
	b.tone = tone
	return b
}

// WithFocused marks the button as holding keyboard focus.
func (b *Button) WithFocused(focused bool) *Button {
	b.focused = focused
	return b
}

// WithDisabled marks the button as inert.
func (b *Button) WithDisabled(disabled bool) *Button {
	b.disabled = disabled
	return b
}

// Label returns the button label.
func (b *Button) Label() string {
	return b.label
}
