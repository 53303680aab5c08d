package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/laststance/plume/internal/ui"
)

// ToastView renders one transient notification as a compact pill. The toast
// lifecycle itself lives in the uistate store; this is presentation only.
type ToastView struct {
	BaseComponent
	message string
	tone    Tone
}

// NewToastView creates a toast pill.
func NewToastView(message string, tone Tone) *ToastView {
	return &ToastView{BaseComponent: NewBaseComponent(), message: message, tone: tone}
}

// View renders with the default context.
func (t *ToastView) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the toast under the given theme.
func (t *ToastView) ViewWithContext(ctx RenderContext) string {
	set := ctx.Theme.Palette.Slot(t.tone.Slot())
	return t.ComputeStyle(ctx.Theme).
		Padding(0, 1).
		Background(set.Base).
		Foreground(set.OnBase).
		Render(ToneIcon(t.tone) + " " + t.message)
}

// ToastStack renders toasts top to bottom in display order.
func ToastStack(toasts ...*ToastView) *Stack {
	children := make([]ui.Renderable, len(toasts))
	for i, toast := range toasts {
		children[i] = toast
	}
	return VStack(children...).WithGap(0).WithAlign(AlignEnd)
}

// PlaceToasts overlays the rendered toast stack in the top-right corner of a
// width×height region.
func PlaceToasts(width, height int, stack *Stack, ctx RenderContext) string {
	return lipgloss.Place(width, height, lipgloss.Right, lipgloss.Top, stack.ViewWithContext(ctx))
}
