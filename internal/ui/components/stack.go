package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/laststance/plume/internal/ui"
)

// Direction is the layout axis of a Stack.
type Direction int

const (
	DirectionVertical Direction = iota
	DirectionHorizontal
)

// Align positions children on the cross axis.
type Align int

const (
	AlignStart Align = iota
	AlignCenter
	AlignEnd
)

func (a Align) position() lipgloss.Position {
	switch a {
	case AlignCenter:
		return lipgloss.Center
	case AlignEnd:
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}

// Stack arranges children along one axis with an optional gap.
type Stack struct {
	BaseComponent
	children  []ui.Renderable
	direction Direction
	gap       int
	align     Align
}

// VStack creates a vertical stack.
func VStack(children ...ui.Renderable) *Stack {
	return &Stack{BaseComponent: NewBaseComponent(), children: children}
}

// HStack creates a horizontal stack.
func HStack(children ...ui.Renderable) *Stack {
	s := VStack(children...)
	s.direction = DirectionHorizontal
	return s
}

// View renders with the default context.
func (s *Stack) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders every child under the context's theme and joins the
// results along the stack axis.
func (s *Stack) ViewWithContext(ctx RenderContext) string {
	views := make([]string, 0, len(s.children))
	for _, child := range s.children {
		view := renderChild(child, ctx)
		if view != "" {
			views = append(views, view)
		}
	}
	if len(views) == 0 {
		return ""
	}

	var content string
	if s.direction == DirectionHorizontal {
		content = lipgloss.JoinHorizontal(s.align.position(), s.withGaps(views, strings.Repeat(" ", s.gap))...)
	} else {
		content = lipgloss.JoinVertical(s.align.position(), s.withGaps(views, strings.Repeat("\n", s.gap))...)
	}

	style := s.ComputeStyle(ctx.Theme)
	if ctx.Constraints.MaxWidth > 0 {
		style = style.MaxWidth(ctx.Constraints.MaxWidth)
	}
	if ctx.Constraints.MaxHeight > 0 {
		style = style.MaxHeight(ctx.Constraints.MaxHeight)
	}
	return style.Render(content)
}

func (s *Stack) withGaps(views []string, spacer string) []string {
	if s.gap <= 0 {
		return views
	}
	spaced := make([]string, 0, len(views)*2-1)
	for i, view := range views {
		if i > 0 {
			spaced = append(spaced, spacer)
		}
		spaced = append(spaced, view)
	}
	return spaced
}

// WithGap sets the spacing between children in cells or rows.
func (s *Stack) WithGap(gap int) *Stack {
	s.gap = gap
	return s
}

// WithAlign sets the cross-axis alignment.
func (s *Stack) WithAlign(align Align) *Stack {
	s.align = align
	return s
}

// WithAppliers adds theme-aware style modifiers.
func (s *Stack) WithAppliers(appliers ...StyleFunc) *Stack {
	s.AddAppliers(appliers...)
	return s
}

// Add appends children to the stack.
func (s *Stack) Add(children ...ui.Renderable) *Stack {
	s.children = append(s.children, children...)
	return s
}

// Children returns the child renderables.
func (s *Stack) Children() []ui.Renderable {
	return s.children
}
