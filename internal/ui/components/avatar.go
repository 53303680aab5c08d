package components

import "strings"

// Avatar renders a user's initials in a colored block, the terminal stand-in
// for a profile picture.
type Avatar struct {
	BaseComponent
	name string
	tone Tone
}

// NewAvatar creates an avatar for a display name.
func NewAvatar(name string) *Avatar {
	return &Avatar{BaseComponent: NewBaseComponent(), name: name, tone: TonePrimary}
}

// View renders with the default context.
func (a *Avatar) View() string {
	return a.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the initials under the given theme.
func (a *Avatar) ViewWithContext(ctx RenderContext) string {
	set := ctx.Theme.Palette.Slot(a.tone.Slot())
	return a.ComputeStyle(ctx.Theme).
		Padding(0, 1).
		Bold(true).
		Background(set.Base).
		Foreground(set.OnBase).
		Render(a.Initials())
}

// Initials returns up to two uppercase initials derived from the name.
func (a *Avatar) Initials() string {
	fields := strings.Fields(a.name)
	switch len(fields) {
	case 0:
		return "?"
	case 1:
		runes := []rune(fields[0])
		return strings.ToUpper(string(runes[0]))
	default:
		first := []rune(fields[0])
		last := []rune(fields[len(fields)-1])
		return strings.ToUpper(string(first[0]) + string(last[0]))
	}
}

// WithTone sets the block color tone.
func (a *Avatar) WithTone(tone Tone) *Avatar {
	a.tone = tone
	return a
}
