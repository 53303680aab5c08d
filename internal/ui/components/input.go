package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Input wraps bubbles/textinput with theme-aware styling. All editing
// behavior is the wrapped widget's; the wrapper only themes and forwards.
type Input struct {
	model textinput.Model
}

// NewInput creates a text input with the given placeholder.
func NewInput(placeholder string) *Input {
	model := textinput.New()
	model.Placeholder = placeholder
	model.Prompt = "> "
	return &Input{model: model}
}

// Update forwards a bubbletea message to the wrapped widget.
func (i *Input) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	i.model, cmd = i.model.Update(msg)
	return cmd
}

// View renders with the default context.
func (i *Input) View() string {
	return i.ViewWithContext(DefaultContext())
}

// ViewWithContext themes the widget and renders it.
func (i *Input) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	i.model.PromptStyle = theme.Typography.Bold.Foreground(theme.Palette.Primary.Base)
	i.model.TextStyle = theme.Typography.Body
	i.model.PlaceholderStyle = theme.Typography.Caption
	return i.model.View()
}

// Focus gives the input keyboard focus.
func (i *Input) Focus() tea.Cmd {
	return i.model.Focus()
}

// Blur removes keyboard focus.
func (i *Input) Blur() {
	i.model.Blur()
}

// Focused reports whether the input has focus.
func (i *Input) Focused() bool {
	return i.model.Focused()
}

// Value returns the current text.
func (i *Input) Value() string {
	return i.model.Value()
}

// SetValue replaces the current text.
func (i *Input) SetValue(value string) {
	i.model.SetValue(value)
}

// Reset clears the input.
func (i *Input) Reset() {
	i.model.Reset()
}

// WithCharLimit caps the input length.
func (i *Input) WithCharLimit(limit int) *Input {
	i.model.CharLimit = limit
	return i
}

// WithWidth sets the visible width in cells.
func (i *Input) WithWidth(width int) *Input {
	i.model.Width = width
	return i
}
