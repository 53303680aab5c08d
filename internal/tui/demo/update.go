package demo

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/laststance/plume/internal/uistate"
)

// Update implements tea.Model. Keys route to the open modal first; the
// timeline bindings apply only when no modal is up.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		m.height = typed.Height
		return m, nil

	case StateChangedMsg:
		// Store already holds the new state; re-render is implicit.
		return m, nil

	case tea.KeyMsg:
		if modal := m.store.Modal(); modal.Open {
			return m.updateModal(modal, typed)
		}
		return m.updateTimeline(typed)
	}

	return m, nil
}

func (m Model) updateTimeline(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "j", "down":
		if m.cursor < len(m.posts)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "tab":
		m.navIdx = (m.navIdx + 1) % 4
	case "n":
		m.compose.Reset()
		m.store.OpenModal(uistate.ModalCompose, "")
		return m, m.compose.Focus()
	case "d":
		if len(m.posts) > 0 {
			m.store.OpenModal(uistate.ModalConfirmDelete, m.posts[m.cursor].ID)
		}
	case "?":
		m.store.OpenModal(uistate.ModalHelp, "")
	case "l":
		m = m.toggleLike()
	case "s":
		m.store.ToggleSidebar()
	case "t":
		m.store.ToggleTheme()
	case "x":
		m.store.ClearToasts()
	}
	return m, nil
}

func (m Model) updateModal(modal uistate.ModalState, key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch modal.Kind {
	case uistate.ModalCompose:
		return m.updateCompose(key)
	case uistate.ModalConfirmDelete:
		return m.updateConfirmDelete(modal.SubjectID, key)
	default:
		if key.String() == "esc" || key.String() == "q" {
			m.store.CloseModal()
		}
		return m, nil
	}
}

func (m Model) updateCompose(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc":
		m.store.CloseModal()
		return m, nil
	case "enter":
		body := m.compose.Value()
		m.store.CloseModal()
		if body == "" {
			m.store.Notify("Nothing to post", uistate.SeverityWarning)
			return m, nil
		}
		m = m.publish(body)
		m.store.Notify("Post published", uistate.SeveritySuccess)
		m.log.With(map[string]any{"chars": len(body)}).Debug("post published")
		return m, nil
	}
	return m, m.compose.Update(key)
}

func (m Model) updateConfirmDelete(subjectID string, key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "y", "enter":
		m.store.CloseModal()
		if index := m.postIndex(subjectID); index >= 0 {
			m.posts = append(m.posts[:index:index], m.posts[index+1:]...)
			if m.cursor >= len(m.posts) && m.cursor > 0 {
				m.cursor--
			}
			m.store.Notify("Post deleted", uistate.SeverityInfo)
		}
	case "n", "esc":
		m.store.CloseModal()
	}
	return m, nil
}

func (m Model) publish(body string) Model {
	post := newPost("You", "@you", body)
	m.posts = append([]Post{post}, m.posts...)
	m.cursor = 0
	return m
}

func (m Model) toggleLike() Model {
	if len(m.posts) == 0 {
		return m
	}
	post := &m.posts[m.cursor]
	if post.Liked {
		post.Liked = false
		post.Likes--
	} else {
		post.Liked = true
		post.Likes++
		m.store.ShowToast("Liked "+post.Handle, uistate.SeveritySuccess, 2*time.Second)
	}
	return m
}
