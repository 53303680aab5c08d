package demo

import (
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/laststance/plume/internal/ui"
	"github.com/laststance/plume/internal/ui/components"
	"github.com/laststance/plume/internal/uistate"
)

// View implements tea.Model.
func (m Model) View() string {
	ctx := m.renderContext()
	state := m.store.State()

	if state.Modal.Open {
		return m.viewModal(state.Modal, ctx)
	}

	header := m.viewHeader(ctx, state)
	sidebar := m.viewSidebar(ctx, state)
	timeline := m.viewTimeline(ctx)
	body := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", timeline)
	footer := m.viewFooter(ctx)
	screen := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)

	if len(state.Toasts) == 0 {
		return screen
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.viewToasts(ctx, state.Toasts), screen)
}

func (m Model) viewHeader(ctx components.RenderContext, state uistate.UIState) string {
	theme := ctx.Theme
	title := lipgloss.NewStyle().
		Bold(true).
		Background(theme.Palette.Primary.Base).
		Foreground(theme.Palette.Primary.OnBase).
		Padding(0, 1).
		Render("chirper")
	mode := theme.Typography.Caption.Render(" " + string(state.ThemeMode) + " mode")
	return lipgloss.JoinHorizontal(lipgloss.Center, title, mode)
}

func (m Model) viewSidebar(ctx components.RenderContext, state uistate.UIState) string {
	nav := components.NewNavList(
		components.NavItem{Icon: "⌂", Label: "Home"},
		components.NavItem{Icon: "@", Label: "Mentions"},
		components.NavItem{Icon: "☆", Label: "Bookmarks"},
		components.NavItem{Icon: "⚙", Label: "Settings"},
	).WithSelected(m.navIdx).WithCollapsed(state.SidebarCollapsed)
	return components.NewPanel(nav).ViewWithContext(ctx)
}

func (m Model) viewTimeline(ctx components.RenderContext) string {
	if len(m.posts) == 0 {
		return components.CaptionText("Nothing here yet. Press n to compose.").ViewWithContext(ctx)
	}

	now := time.Now()
	cards := make([]ui.Renderable, 0, len(m.posts))
	for i, post := range m.posts {
		cards = append(cards, m.postCard(post, i == m.cursor, now))
	}
	return components.VStack(cards...).ViewWithContext(ctx)
}

func (m Model) postCard(post Post, selected bool, now time.Time) ui.Renderable {
	author := components.HStack(
		components.NewAvatar(post.Author),
		components.BoldText(" "+post.Author),
		components.CaptionText(" "+post.Handle+" · "+relativeTime(post.PostedAt, now)),
	)
	likeLabel := "♡ " + strconv.Itoa(post.Likes)
	like := components.CaptionText(likeLabel)
	if post.Liked {
		like = components.NewText("♥ " + strconv.Itoa(post.Likes)).
			WithAppliers(components.Foreground(components.PaletteError))
	}

	card := components.NewCard(author, components.NewText(post.Body), like)
	if selected {
		card.WithAppliers(components.Border(components.BorderVariantThick, components.PalettePrimary))
	}
	return card
}

func (m Model) viewToasts(ctx components.RenderContext, toasts []uistate.Toast) string {
	views := make([]*components.ToastView, len(toasts))
	for i, toast := range toasts {
		views[i] = components.NewToastView(toast.Message, toneFor(toast.Severity))
	}
	return components.ToastStack(views...).ViewWithContext(ctx)
}

func (m Model) viewModal(modal uistate.ModalState, ctx components.RenderContext) string {
	var dialog *components.Modal
	switch modal.Kind {
	case uistate.ModalCompose:
		body := components.VStack(
			ui.RenderableFunc(func() string { return m.compose.ViewWithContext(ctx) }),
			components.NewDivider().WithWidth(44),
			components.CaptionText(strconv.Itoa(len(m.compose.Value()))+"/280"),
		)
		dialog = components.NewModal("Compose", body).
			WithHint("enter to post · esc to cancel")

	case uistate.ModalConfirmDelete:
		message := "This can't be undone."
		if index := m.postIndex(modal.SubjectID); index >= 0 {
			message = "Delete post by " + m.posts[index].Handle + "? " + message
		}
		dialog = components.NewModal("Delete post?", components.NewText(message)).
			WithWidth(40).
			WithHint("y to delete · n to keep")

	case uistate.ModalHelp:
		dialog = components.NewModal("Keys", components.NewText(helpText)).
			WithHint("esc to close")

	default:
		dialog = components.NewModal("Unknown", components.NewText("No dialog for this state."))
	}

	return dialog.Overlay(m.width, m.height, ctx)
}

const helpText = `n  compose a post
j/k  move through the timeline
l  like the selected post
d  delete the selected post
s  collapse the sidebar
t  switch light/dark theme
x  clear notifications
q  quit`

// toneFor maps store severities onto component tones.
func toneFor(severity uistate.Severity) components.Tone {
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

func (m Model) viewFooter(ctx components.RenderContext) string {
	return ctx.Theme.Typography.Caption.
		Render("n new · l like · d delete · t theme · s sidebar · ? help · q quit")
}
