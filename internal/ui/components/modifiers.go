package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme-aware style modifiers. Each returns a StyleFunc that pulls the
// concrete value out of the active theme at render time, so a component built
// once renders correctly under any theme.

// Background fills the component with a slot's base color and sets the
// matching on-base foreground.
func Background(slot PaletteSlot) StyleFunc {
	return func(style lipgloss.Style, theme Theme) lipgloss.Style {
		set := theme.Palette.Slot(slot)
		return style.Background(set.Base).Foreground(set.OnBase)
	}
}

// Foreground sets the text color to a slot's base color.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(style lipgloss.Style, theme Theme) lipgloss.Style {
		return style.Foreground(theme.Palette.Slot(slot).Base)
	}
}

// Border applies a themed border variant, tinted with the slot's base color.
func Border(variant BorderVariant, slot PaletteSlot) StyleFunc {
	return func(style lipgloss.Style, theme Theme) lipgloss.Style {
		if variant == BorderVariantNone {
			return style.UnsetBorderStyle()
		}
		return style.
			Border(theme.Borders.Variant(variant)).
			BorderForeground(theme.Palette.Slot(slot).Base)
	}
}

// Padding applies the theme's padding scale uniformly.
func Padding(size SpacingSize) StyleFunc {
	return func(style lipgloss.Style, theme Theme) lipgloss.Style {
		return style.Padding(0, theme.Padding.Of(size))
	}
}

// PaddingAll applies the theme's padding scale on every side.
func PaddingAll(size SpacingSize) StyleFunc {
	return func(style lipgloss.Style, theme Theme) lipgloss.Style {
		return style.Padding(theme.Padding.Of(size))
	}
}

// PaddingSides applies explicit per-side padding, bypassing the theme scale.
func PaddingSides(s Spacing) StyleFunc {
	return func(style lipgloss.Style, _ Theme) lipgloss.Style {
		return style.Padding(s.Top, s.Right, s.Bottom, s.Left)
	}
}

// Margin applies the theme's margin scale horizontally.
func Margin(size SpacingSize) StyleFunc {
	return func(style lipgloss.Style, theme Theme) lipgloss.Style {
		return style.Margin(0, theme.Margin.Of(size))
	}
}

// Typography applies a typography preset from the theme.
func Typography(variant TypographyVariant) StyleFunc {
	return func(style lipgloss.Style, theme Theme) lipgloss.Style {
		return style.Inherit(theme.Typography.Variant(variant))
	}
}

// Bold makes the text bold independent of theme data.
func Bold() StyleFunc {
	return func(style lipgloss.Style, _ Theme) lipgloss.Style {
		return style.Bold(true)
	}
}

// Faint renders the text dimmed independent of theme data.
func Faint() StyleFunc {
	return func(style lipgloss.Style, _ Theme) lipgloss.Style {
		return style.Faint(true)
	}
}

// Width fixes the rendered width in cells.
func Width(cells int) StyleFunc {
	return func(style lipgloss.Style, _ Theme) lipgloss.Style {
		return style.Width(cells)
	}
}

// AlignCenterStyle centers content horizontally within the component's width.
func AlignCenterStyle() StyleFunc {
	return func(style lipgloss.Style, _ Theme) lipgloss.Style {
		return style.Align(lipgloss.Center)
	}
}
