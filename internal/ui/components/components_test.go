package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextRendersContent(t *testing.T) {
	t.Parallel()

	text := NewText("hello")
	assert.Contains(t, text.View(), "hello")
	assert.Equal(t, "hello", text.Content())

	text.SetContent("replaced")
	assert.Contains(t, text.View(), "replaced")
}

func TestTextAppliersCompose(t *testing.T) {
	t.Parallel()

	theme := LightTheme()
	styled := NewText("x").WithAppliers(Bold(), Foreground(PalettePrimary))
	style := styled.ComputeStyle(theme)

	assert.True(t, style.GetBold())
	assert.Equal(t, theme.Palette.Primary.Base, style.GetForeground())
}

func TestHeaderWithSubtitle(t *testing.T) {
	t.Parallel()

	header := NewHeader("Title").WithSubtitle("context")
	view := header.View()

	lines := strings.Split(view, "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Title")
	assert.Contains(t, lines[1], "context")
}

func TestDividerWidth(t *testing.T) {
	t.Parallel()

	t.Run("renders requested width", func(t *testing.T) {
		t.Parallel()
		view := NewDivider().WithWidth(5).View()
		assert.Contains(t, view, strings.Repeat("─", 5))
	})

	t.Run("clamps to context max width", func(t *testing.T) {
		t.Parallel()
		ctx := DefaultContext().WithConstraints(WithMaxWidth(3))
		view := NewDivider().WithWidth(10).ViewWithContext(ctx)
		assert.Contains(t, view, strings.Repeat("─", 3))
		assert.NotContains(t, view, strings.Repeat("─", 4))
	})

	t.Run("zero width renders nothing", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, NewDivider().WithWidth(0).View())
	})
}

func TestStackJoinsChildren(t *testing.T) {
	t.Parallel()

	t.Run("vertical order", func(t *testing.T) {
		t.Parallel()
		view := VStack(NewText("one"), NewText("two")).View()
		lines := strings.Split(view, "\n")
		require.Len(t, lines, 2)
		assert.Contains(t, lines[0], "one")
		assert.Contains(t, lines[1], "two")
	})

	t.Run("vertical gap inserts blank rows", func(t *testing.T) {
		t.Parallel()
		view := VStack(NewText("one"), NewText("two")).WithGap(1).View()
		assert.Len(t, strings.Split(view, "\n"), 3)
	})

	t.Run("horizontal keeps one row", func(t *testing.T) {
		t.Parallel()
		view := HStack(NewText("a"), NewText("b")).WithGap(2).View()
		assert.NotContains(t, view, "\n")
		assert.Contains(t, view, "a")
		assert.Contains(t, view, "b")
	})

	t.Run("empty children render nothing", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, VStack().View())
	})
}

func TestButtonStates(t *testing.T) {
	t.Parallel()

	theme := LightTheme()
	ctx := DefaultContext()

	plain := PrimaryButton("Go").ViewWithContext(ctx)
	assert.Contains(t, plain, "Go")

	disabled := PrimaryButton("Go").WithDisabled(true)
	style := disabled.ComputeStyle(theme)
	// disabled styling happens at render time, label must still show
	assert.Contains(t, disabled.ViewWithContext(ctx), "Go")
	assert.False(t, style.GetUnderline())

	focused := PrimaryButton("Go").WithFocused(true).ViewWithContext(ctx)
	assert.Contains(t, focused, "Go")
}

func TestBadgeText(t *testing.T) {
	t.Parallel()

	badge := SuccessBadge("Active")
	assert.Contains(t, badge.View(), "Active")
	assert.Equal(t, "Active", badge.Text())
}

func TestAvatarInitials(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		want string
	}{
		{"Ada Lovelace", "AL"},
		{"Grace Brewster Murray Hopper", "GH"},
		{"turing", "T"},
		{"", "?"},
		{"  ", "?"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NewAvatar(tc.name).Initials(), "name %q", tc.name)
	}
}

func TestAlertShowsIconAndMessage(t *testing.T) {
	t.Parallel()

	assert.Contains(t, SuccessAlert("done").View(), "✓")
	assert.Contains(t, WarningAlert("careful").View(), "!")
	assert.Contains(t, ErrorAlert("broken").View(), "✗")
	assert.Contains(t, NewAlert("fyi").View(), "ℹ")
	assert.Contains(t, SuccessAlert("done").View(), "done")
}

func TestCardIncludesTitleAndFooter(t *testing.T) {
	t.Parallel()

	card := NewCard(NewText("body")).
		WithTitle("Heading").
		WithFooter(CaptionText("footer"))
	view := card.View()

	assert.Contains(t, view, "Heading")
	assert.Contains(t, view, "body")
	assert.Contains(t, view, "footer")
	assert.Contains(t, view, "╭", "card keeps its rounded border")
}

func TestPanelTitle(t *testing.T) {
	t.Parallel()

	panel := NewPanel(NewText("content")).WithTitle("Section")
	view := panel.View()

	assert.Contains(t, view, "Section")
	assert.Contains(t, view, "content")
	assert.Equal(t, "Section", panel.Title())
}

func TestContainerExplicitBorder(t *testing.T) {
	t.Parallel()

	view := NewContainer(NewText("inside")).
		WithBorder(lipgloss.DoubleBorder()).
		View()

	assert.Contains(t, view, "inside")
	assert.Contains(t, view, "═")
}

func TestModalContents(t *testing.T) {
	t.Parallel()

	modal := NewModal("Confirm", NewText("Are you sure?")).
		WithHint("y/n").
		WithWidth(30)
	view := modal.View()

	assert.Contains(t, view, "Confirm")
	assert.Contains(t, view, "Are you sure?")
	assert.Contains(t, view, "y/n")
	assert.Contains(t, view, "║", "modal draws a double border")
}

func TestModalOverlayCenters(t *testing.T) {
	t.Parallel()

	overlay := NewModal("T", NewText("b")).WithWidth(10).Overlay(60, 20, DefaultContext())
	lines := strings.Split(overlay, "\n")

	assert.Len(t, lines, 20)
	assert.Greater(t, lipgloss.Width(overlay), 10)
}

func TestToastStackOrder(t *testing.T) {
	t.Parallel()

	stack := ToastStack(
		NewToastView("first", ToneInfo),
		NewToastView("second", ToneSuccess),
	)
	view := stack.View()

	firstIdx := strings.Index(view, "first")
	secondIdx := strings.Index(view, "second")
	require.GreaterOrEqual(t, firstIdx, 0)
	require.GreaterOrEqual(t, secondIdx, 0)
	assert.Less(t, firstIdx, secondIdx, "toasts render in display order")
}

func TestPlaceToastsTopRight(t *testing.T) {
	t.Parallel()

	stack := ToastStack(NewToastView("ping", ToneInfo))
	placed := PlaceToasts(40, 10, stack, DefaultContext())
	lines := strings.Split(placed, "\n")

	require.Len(t, lines, 10)
	assert.Contains(t, lines[0], "ping")
}

func TestNavListCollapsed(t *testing.T) {
	t.Parallel()

	nav := NewNavList(
		NavItem{Icon: "⌂", Label: "Home"},
		NavItem{Icon: "@", Label: "Mentions"},
	)

	expanded := nav.View()
	assert.Contains(t, expanded, "Home")

	collapsed := nav.WithCollapsed(true).View()
	assert.NotContains(t, collapsed, "Home")
	assert.Contains(t, collapsed, "⌂")
}

func TestNavListSelectionClamped(t *testing.T) {
	t.Parallel()

	nav := NewNavList(NavItem{Label: "a"}, NavItem{Label: "b"})
	assert.Equal(t, 1, nav.WithSelected(99).Selected())
	assert.Equal(t, 0, nav.WithSelected(-3).Selected())
}

func TestSpacerDimensions(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "     ", HorizontalSpacer(5).View())
	assert.Equal(t, " \n \n ", VerticalSpacer(3).View())
	assert.Empty(t, NewSpacer(0, 0).View())
}

func TestInputEditing(t *testing.T) {
	t.Parallel()

	input := NewInput("say something").WithCharLimit(10)
	assert.False(t, input.Focused())

	input.SetValue("hi")
	assert.Equal(t, "hi", input.Value())

	input.Reset()
	assert.Empty(t, input.Value())

	assert.Contains(t, input.View(), "say something", "placeholder shows while empty")
}

func TestSpacingHelpers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Spacing{Top: 2, Right: 2, Bottom: 2, Left: 2}, UniformSpacing(2))
	assert.Equal(t, Spacing{Top: 1, Right: 3, Bottom: 1, Left: 3}, SymmetricSpacing(1, 3))
	assert.True(t, Spacing{}.IsZero())
	assert.False(t, UniformSpacing(1).IsZero())

	style := PaddingSides(SymmetricSpacing(1, 2))(lipgloss.NewStyle(), LightTheme())
	top, right, bottom, left := style.GetPadding()
	assert.Equal(t, []int{1, 2, 1, 2}, []int{top, right, bottom, left})
}

func TestRenderContextConstraints(t *testing.T) {
	t.Parallel()

	ctx := DefaultContext().WithConstraints(Constraints{MaxWidth: 40, MaxHeight: 10})
	assert.Equal(t, 40, ctx.Constraints.MaxWidth)
	assert.Equal(t, 10, ctx.Constraints.MaxHeight)

	themed := ctx.WithTheme(DarkTheme())
	assert.Equal(t, "dark", themed.Theme.Name)
	assert.Equal(t, "light", ctx.Theme.Name, "WithTheme returns a copy")
}
