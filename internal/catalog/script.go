package catalog

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Step is one scripted interaction: an input delivered to the model followed
// by an assertion on the rendered view. Zero-value fields are skipped, so a
// step may be input-only or assertion-only.
type Step struct {
	// Press sends a key by name: a single rune, or one of the named keys
	// ("enter", "esc", "tab", "space", "up", "down", "left", "right").
	Press string
	// Send delivers a raw message; used for window sizes and custom msgs.
	Send tea.Msg
	// Type sends each rune of the string as a key press.
	Type string
	// Expect asserts the view contains this substring after the input.
	Expect string
	// Reject asserts the view does not contain this substring.
	Reject string
}

// maxCmdDepth bounds synchronous command execution per step so a
// self-scheduling tick cannot spin the script forever.
const maxCmdDepth = 16

// RunScript drives a model through the steps and returns the final view.
// Commands returned by Update run synchronously, with batches flattened.
func RunScript(model tea.Model, steps []Step) (string, error) {
	model = drainCmd(model, model.Init(), 0)

	for i, step := range steps {
		for _, msg := range step.messages() {
			var cmd tea.Cmd
			model, cmd = model.Update(msg)
			model = drainCmd(model, cmd, 0)
		}

		view := model.View()
		if step.Expect != "" && !strings.Contains(view, step.Expect) {
			return view, fmt.Errorf("step %d: expected output to contain %q", i+1, step.Expect)
		}
		if step.Reject != "" && strings.Contains(view, step.Reject) {
			return view, fmt.Errorf("step %d: expected output to omit %q", i+1, step.Reject)
		}
	}
	return model.View(), nil
}

func (s Step) messages() []tea.Msg {
	var msgs []tea.Msg
	if s.Send != nil {
		msgs = append(msgs, s.Send)
	}
	if s.Press != "" {
		msgs = append(msgs, keyMsg(s.Press))
	}
	for _, r := range s.Type {
		msgs = append(msgs, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return msgs
}

func keyMsg(name string) tea.Msg {
	switch name {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)}
	}
}

// drainCmd executes a command tree synchronously, feeding produced messages
// back into the model. Quit and tick-style nil results end a branch.
func drainCmd(model tea.Model, cmd tea.Cmd, depth int) tea.Model {
	if cmd == nil || depth >= maxCmdDepth {
		return model
	}

	msg := cmd()
	switch typed := msg.(type) {
	case nil:
		return model
	case tea.BatchMsg:
		for _, sub := range typed {
			model = drainCmd(model, sub, depth+1)
		}
		return model
	case tea.QuitMsg:
		return model
	default:
		var next tea.Cmd
		model, next = model.Update(msg)
		return drainCmd(model, next, depth+1)
	}
}
