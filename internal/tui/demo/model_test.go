package demo

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laststance/plume/internal/logger"
	"github.com/laststance/plume/internal/uistate"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	return NewModel(uistate.New(), logger.Discard())
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, key := range keys {
		var msg tea.KeyMsg
		switch key {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
		}
		next, _ := m.Update(msg)
		updated, ok := next.(Model)
		require.True(t, ok, "update must return a demo model")
		m = updated
	}
	return m
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(Model)
	}
	return m
}

func TestNewModelSeedsFeed(t *testing.T) {
	m := newTestModel(t)

	require.NotEmpty(t, m.posts)
	assert.Equal(t, 0, m.cursor)
	assert.NotNil(t, m.Store())
}

func TestViewShowsTimeline(t *testing.T) {
	m := newTestModel(t)

	view := m.View()

	assert.Contains(t, view, "chirper")
	assert.Contains(t, view, "@ada")
	assert.Contains(t, view, "Home")
}

func TestCursorMovementStaysInRange(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, "k")
	assert.Equal(t, 0, m.cursor, "k at the top stays put")

	for range m.posts {
		m = press(t, m, "j")
	}
	assert.Equal(t, len(m.posts)-1, m.cursor, "j at the bottom stays put")
}

func TestComposeFlowPublishesPost(t *testing.T) {
	m := newTestModel(t)
	before := len(m.posts)

	m = press(t, m, "n")
	require.True(t, m.Store().Modal().Open)
	require.Equal(t, uistate.ModalCompose, m.Store().Modal().Kind)
	assert.Contains(t, m.View(), "Compose")

	m = typeText(t, m, "hello from the demo")
	m = press(t, m, "enter")

	assert.False(t, m.Store().Modal().Open)
	require.Len(t, m.posts, before+1)
	assert.Equal(t, "hello from the demo", m.posts[0].Body)
	assert.Equal(t, "@you", m.posts[0].Handle)

	toasts := m.Store().Toasts()
	require.Len(t, toasts, 1)
	assert.Equal(t, "Post published", toasts[0].Message)
	assert.Equal(t, uistate.SeveritySuccess, toasts[0].Severity)
}

func TestComposeEmptyBodyWarns(t *testing.T) {
	m := newTestModel(t)
	before := len(m.posts)

	m = press(t, m, "n", "enter")

	assert.Len(t, m.posts, before)
	toasts := m.Store().Toasts()
	require.Len(t, toasts, 1)
	assert.Equal(t, uistate.SeverityWarning, toasts[0].Severity)
}

func TestComposeEscCancels(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, "n")
	m = typeText(t, m, "draft")
	m = press(t, m, "esc")

	assert.False(t, m.Store().Modal().Open)
	assert.Len(t, m.posts, len(seedFeed()))
	assert.Empty(t, m.Store().Toasts())
}

func TestDeleteFlowRemovesSelectedPost(t *testing.T) {
	m := newTestModel(t)
	victim := m.posts[1].ID

	m = press(t, m, "j", "d")
	require.True(t, m.Store().Modal().Open)
	require.Equal(t, uistate.ModalConfirmDelete, m.Store().Modal().Kind)
	assert.Equal(t, victim, m.Store().Modal().SubjectID)
	assert.Contains(t, m.View(), "Delete post?")

	m = press(t, m, "y")

	assert.False(t, m.Store().Modal().Open)
	assert.Equal(t, -1, m.postIndex(victim))
	assert.Len(t, m.posts, len(seedFeed())-1)
}

func TestDeleteFlowCancelKeepsPost(t *testing.T) {
	m := newTestModel(t)
	victim := m.posts[0].ID

	m = press(t, m, "d", "n")

	assert.False(t, m.Store().Modal().Open)
	assert.GreaterOrEqual(t, m.postIndex(victim), 0)
	assert.Len(t, m.posts, len(seedFeed()))
}

func TestDeleteLastPostClampsCursor(t *testing.T) {
	m := newTestModel(t)

	for range m.posts {
		m = press(t, m, "j")
	}
	last := m.cursor
	m = press(t, m, "d", "y")

	assert.Equal(t, last-1, m.cursor)
}

func TestLikeTogglesAndToasts(t *testing.T) {
	m := newTestModel(t)
	likes := m.posts[0].Likes

	m = press(t, m, "l")
	assert.True(t, m.posts[0].Liked)
	assert.Equal(t, likes+1, m.posts[0].Likes)
	require.Len(t, m.Store().Toasts(), 1)

	m = press(t, m, "l")
	assert.False(t, m.posts[0].Liked)
	assert.Equal(t, likes, m.posts[0].Likes)
}

func TestSidebarAndThemeKeys(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, "s")
	assert.True(t, m.Store().SidebarCollapsed())
	assert.NotContains(t, m.View(), "Bookmarks", "collapsed sidebar hides labels")

	m = press(t, m, "t")
	assert.Equal(t, uistate.ThemeDark, m.Store().ThemeMode())
	assert.Contains(t, m.View(), "dark mode")
}

func TestHelpModalOpensAndCloses(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, "?")
	require.Equal(t, uistate.ModalHelp, m.Store().Modal().Kind)
	assert.Contains(t, m.View(), "compose a post")

	m = press(t, m, "esc")
	assert.False(t, m.Store().Modal().Open)
}

func TestClearToastsKey(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, "l")
	require.NotEmpty(t, m.Store().Toasts())

	m = press(t, m, "x")
	assert.Empty(t, m.Store().Toasts())
}

func TestToastsRenderInView(t *testing.T) {
	m := newTestModel(t)
	m.Store().ShowToast("Saved draft", uistate.SeverityInfo, 0)

	assert.Contains(t, m.View(), "Saved draft")
}

func TestQuitKeyReturnsQuitCmd(t *testing.T) {
	m := newTestModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestWindowSizeUpdatesDimensions(t *testing.T) {
	m := newTestModel(t)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(Model)

	assert.Equal(t, 120, m.width)
	assert.Equal(t, 40, m.height)
}

func TestRelativeTime(t *testing.T) {
	now := seedFeed()[0].PostedAt

	cases := []struct {
		name string
		age  string
		want string
	}{
		{"seconds", "30s", "now"},
		{"minutes", "5m", "5m"},
		{"hours", "3h", "3h"},
		{"days", "49h", "2d"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			age, err := time.ParseDuration(tc.age)
			require.NoError(t, err)
			assert.Equal(t, tc.want, relativeTime(now.Add(-age), now))
		})
	}
}
