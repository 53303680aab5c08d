package components

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Spinner wraps bubbles/spinner with theme-aware styling.
type Spinner struct {
	model spinner.Model
	label string
}

// NewSpinner creates a dot spinner with an optional label.
func NewSpinner(label string) *Spinner {
	model := spinner.New()
	model.Spinner = spinner.Dot
	return &Spinner{model: model, label: label}
}

// Tick returns the command that drives the animation.
func (s *Spinner) Tick() tea.Cmd {
	return s.model.Tick
}

// Update forwards a bubbletea message to the wrapped widget.
func (s *Spinner) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	s.model, cmd = s.model.Update(msg)
	return cmd
}

// View renders with the default context.
func (s *Spinner) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext themes the widget and renders frame plus label.
func (s *Spinner) ViewWithContext(ctx RenderContext) string {
	s.model.Style = s.model.Style.Foreground(ctx.Theme.Palette.Primary.Base)
	if s.label == "" {
		return s.model.View()
	}
	return s.model.View() + " " + ctx.Theme.Typography.Body.Render(s.label)
}
