package stories

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/laststance/plume/internal/ui/components"
	"github.com/laststance/plume/internal/uistate"
)

// inputStoryModel hosts the Input wrapper so the typing story can drive it
// through the script harness.
type inputStoryModel struct {
	input *components.Input
	ctx   components.RenderContext
}

func newInputModel(ctx components.RenderContext) tea.Model {
	input := components.NewInput("What's happening?").WithCharLimit(280)
	return &inputStoryModel{input: input, ctx: ctx}
}

func (m *inputStoryModel) Init() tea.Cmd {
	return m.input.Focus()
}

func (m *inputStoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, m.input.Update(msg)
}

func (m *inputStoryModel) View() string {
	return m.input.ViewWithContext(m.ctx)
}

// toastQueueModel wires a uistate store into a story: "s" shows a sticky
// toast, "d" dismisses the newest one, "c" clears the queue.
type toastQueueModel struct {
	store *uistate.Store
	ids   []string
	ctx   components.RenderContext
}

func newToastQueueModel(ctx components.RenderContext) tea.Model {
	return &toastQueueModel{store: uistate.New(), ctx: ctx}
}

func (m *toastQueueModel) Init() tea.Cmd { return nil }

func (m *toastQueueModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || key.Type != tea.KeyRunes {
		return m, nil
	}
	switch string(key.Runes) {
	case "s":
		id := m.store.ShowToast("Saved", uistate.SeveritySuccess, 0)
		m.ids = append(m.ids, id)
	case "d":
		if len(m.ids) > 0 {
			m.store.DismissToast(m.ids[len(m.ids)-1])
			m.ids = m.ids[:len(m.ids)-1]
		}
	case "c":
		m.store.ClearToasts()
		m.ids = nil
	}
	return m, nil
}

func (m *toastQueueModel) View() string {
	toasts := m.store.Toasts()
	views := make([]*components.ToastView, len(toasts))
	for i, toast := range toasts {
		views[i] = components.NewToastView(toast.Message, toneForSeverity(toast.Severity))
	}
	header := fmt.Sprintf("toasts: %d", len(toasts))
	if len(views) == 0 {
		return header
	}
	return header + "\n" + components.ToastStack(views...).ViewWithContext(m.ctx)
}

// toneForSeverity maps store severities onto component tones.
func toneForSeverity(severity uistate.Severity) components.Tone {
	switch severity {
	case uistate.SeveritySuccess:
		return components.ToneSuccess
	case uistate.SeverityWarning:
		return components.ToneWarning
	case uistate.SeverityError:
		return components.ToneError
	default:
		return components.ToneInfo
	}
}
