package components

import "strings"

// Spacer renders empty space for layout purposes.
type Spacer struct {
	width  int
	height int
}

// NewSpacer creates a spacer of the given dimensions.
func NewSpacer(width, height int) *Spacer {
	return &Spacer{width: width, height: height}
}

// HorizontalSpacer creates a one-row spacer of the given width.
func HorizontalSpacer(width int) *Spacer {
	return NewSpacer(width, 1)
}

// VerticalSpacer creates a one-column spacer of the given height.
func VerticalSpacer(height int) *Spacer {
	return NewSpacer(1, height)
}

// View renders the blank region.
func (s *Spacer) View() string {
	if s.width <= 0 || s.height <= 0 {
		return ""
	}
	row := strings.Repeat(" ", s.width)
	rows := make([]string, s.height)
	for i := range rows {
		rows[i] = row
	}
	return strings.Join(rows, "\n")
}
