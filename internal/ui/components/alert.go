package components

import "github.com/charmbracelet/lipgloss"

// Alert is a bordered notification block with an icon and message.
type Alert struct {
	BaseComponent
	message string
	tone    Tone
}

// NewAlert creates an info-tone alert.
func NewAlert(message string) *Alert {
	return &Alert{BaseComponent: NewBaseComponent(), message: message, tone: ToneInfo}
}

// SuccessAlert creates a success-tone alert.
func SuccessAlert(message string) *Alert {
	return NewAlert(message).WithTone(ToneSuccess)
}

// WarningAlert creates a warning-tone alert.
func WarningAlert(message string) *Alert {
	return NewAlert(message).WithTone(ToneWarning)
}

// ErrorAlert creates an error-tone alert.
func ErrorAlert(message string) *Alert {
	return NewAlert(message).WithTone(ToneError)
}

// View renders with the default context.
func (a *Alert) View() string {
	return a.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the alert under the given theme.
func (a *Alert) ViewWithContext(ctx RenderContext) string {
	set := ctx.Theme.Palette.Slot(a.tone.Slot())
	icon := lipgloss.NewStyle().Bold(true).Foreground(set.Base).Render(ToneIcon(a.tone))
	body := ctx.Theme.Typography.Body.Render(a.message)
	content := lipgloss.JoinHorizontal(lipgloss.Top, icon, " ", body)
	return a.ComputeStyle(ctx.Theme).
		Border(ctx.Theme.Borders.Rounded).
		BorderForeground(set.Base).
		Padding(0, 1).
		Render(content)
}

// WithTone sets the semantic tone.
func (a *Alert) WithTone(tone Tone) *Alert {
	a.tone = tone
	return a
}

// Message returns the alert message.
func (a *Alert) Message() string {
	return a.message
}

// ToneIcon returns the glyph conventionally shown for a tone.
func ToneIcon(tone Tone) string {
	switch tone {
	case ToneSuccess:
		return "✓"
	case ToneWarning:
		return "!"
	case ToneError:
		return "✗"
	case ToneInfo:
		return "ℹ"
	default:
		return "•"
	}
}
