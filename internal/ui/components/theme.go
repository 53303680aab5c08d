package components

import (
	"github.com/charmbracelet/lipgloss"
)

// PaletteSlot names a semantic color role in the theme.
type PaletteSlot int

const (
	PaletteSurface PaletteSlot = iota
	PalettePrimary
	PaletteSecondary
	PaletteMuted
	PaletteSuccess
	PaletteWarning
	PaletteError
	PaletteInfo
)

// String returns the slot name as used in theme files and check reports.
func (s PaletteSlot) String() string {
	switch s {
	case PaletteSurface:
		return "surface"
	case PalettePrimary:
		return "primary"
	case PaletteSecondary:
		return "secondary"
	case PaletteMuted:
		return "muted"
	case PaletteSuccess:
		return "success"
	case PaletteWarning:
		return "warning"
	case PaletteError:
		return "error"
	case PaletteInfo:
		return "info"
	default:
		return "unknown"
	}
}

// PaletteSlots lists every slot, in the order check reports iterate them.
func PaletteSlots() []PaletteSlot {
	return []PaletteSlot{
		PaletteSurface, PalettePrimary, PaletteSecondary, PaletteMuted,
		PaletteSuccess, PaletteWarning, PaletteError, PaletteInfo,
	}
}

// ColorSet pairs a fill color with the foreground color that sits on it.
type ColorSet struct {
	Base   lipgloss.AdaptiveColor
	OnBase lipgloss.AdaptiveColor
}

// Palette holds one ColorSet per semantic slot.
type Palette struct {
	Surface   ColorSet
	Primary   ColorSet
	Secondary ColorSet
	Muted     ColorSet
	Success   ColorSet
	Warning   ColorSet
	Error     ColorSet
	Info      ColorSet
}

// Slot returns the ColorSet for a semantic slot.
func (p Palette) Slot(slot PaletteSlot) ColorSet {
	switch slot {
	case PalettePrimary:
		return p.Primary
	case PaletteSecondary:
		return p.Secondary
	case PaletteMuted:
		return p.Muted
	case PaletteSuccess:
		return p.Success
	case PaletteWarning:
		return p.Warning
	case PaletteError:
		return p.Error
	case PaletteInfo:
		return p.Info
	default:
		return p.Surface
	}
}

// SpacingSize enumerates the spacing scale tokens.
type SpacingSize int

const (
	SpacingSizeNone SpacingSize = iota
	SpacingSizeSmall
	SpacingSizeMedium
	SpacingSizeLarge
	SpacingSizeExtraLarge
)

// SpacingScale maps spacing tokens to cell counts.
type SpacingScale map[SpacingSize]int

// Of returns the cell count for a token, zero when the token is unknown.
func (s SpacingScale) Of(size SpacingSize) int {
	return s[size]
}

// BorderVariant enumerates the border styles a theme provides.
type BorderVariant int

const (
	BorderVariantNone BorderVariant = iota
	BorderVariantNormal
	BorderVariantRounded
	BorderVariantThick
	BorderVariantDouble
)

// BorderSet holds the concrete lipgloss borders per variant.
type BorderSet struct {
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
	Double  lipgloss.Border
}

// Variant returns the border for a variant, hidden border for BorderVariantNone.
func (b BorderSet) Variant(v BorderVariant) lipgloss.Border {
	switch v {
	case BorderVariantNormal:
		return b.Normal
	case BorderVariantRounded:
		return b.Rounded
	case BorderVariantThick:
		return b.Thick
	case BorderVariantDouble:
		return b.Double
	default:
		return lipgloss.HiddenBorder()
	}
}

// TypographyVariant enumerates text presets.
type TypographyVariant int

const (
	TypographyVariantBody TypographyVariant = iota
	TypographyVariantTitle
	TypographyVariantSubtitle
	TypographyVariantCaption
	TypographyVariantCode
	TypographyVariantBold
)

// TypographySet holds the styles backing each typography preset.
type TypographySet struct {
	Body     lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Caption  lipgloss.Style
	Code     lipgloss.Style
	Bold     lipgloss.Style
}

// Variant returns the style for a preset.
func (t TypographySet) Variant(v TypographyVariant) lipgloss.Style {
	switch v {
	case TypographyVariantTitle:
		return t.Title
	case TypographyVariantSubtitle:
		return t.Subtitle
	case TypographyVariantCaption:
		return t.Caption
	case TypographyVariantCode:
		return t.Code
	case TypographyVariantBold:
		return t.Bold
	default:
		return t.Body
	}
}

// Theme is an immutable bundle of design tokens. Themes are plain values:
// customize one by copying a built-in and replacing fields.
type Theme struct {
	Name       string
	Palette    Palette
	Padding    SpacingScale
	Margin     SpacingScale
	Borders    BorderSet
	Typography TypographySet
}

func adaptive(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func defaultSpacing() (SpacingScale, SpacingScale) {
	padding := SpacingScale{
		SpacingSizeNone:       0,
		SpacingSizeSmall:      1,
		SpacingSizeMedium:     2,
		SpacingSizeLarge:      3,
		SpacingSizeExtraLarge: 4,
	}
	margin := SpacingScale{
		SpacingSizeNone:       0,
		SpacingSizeSmall:      1,
		SpacingSizeMedium:     2,
		SpacingSizeLarge:      4,
		SpacingSizeExtraLarge: 6,
	}
	return padding, margin
}

func defaultBorders() BorderSet {
	return BorderSet{
		Normal:  lipgloss.NormalBorder(),
		Rounded: lipgloss.RoundedBorder(),
		Thick:   lipgloss.ThickBorder(),
		Double:  lipgloss.DoubleBorder(),
	}
}

// LightTheme returns the default light theme.
func LightTheme() Theme {
	palette := Palette{
		Surface:   ColorSet{Base: adaptive("#ffffff", "#ffffff"), OnBase: adaptive("#1f2937", "#1f2937")},
		Primary:   ColorSet{Base: adaptive("#2563eb", "#2563eb"), OnBase: adaptive("#ffffff", "#ffffff")},
		Secondary: ColorSet{Base: adaptive("#7c3aed", "#7c3aed"), OnBase: adaptive("#ffffff", "#ffffff")},
		Muted:     ColorSet{Base: adaptive("#e5e7eb", "#e5e7eb"), OnBase: adaptive("#374151", "#374151")},
		Success:   ColorSet{Base: adaptive("#15803d", "#15803d"), OnBase: adaptive("#ffffff", "#ffffff")},
		Warning:   ColorSet{Base: adaptive("#a16207", "#a16207"), OnBase: adaptive("#ffffff", "#ffffff")},
		Error:     ColorSet{Base: adaptive("#b91c1c", "#b91c1c"), OnBase: adaptive("#ffffff", "#ffffff")},
		Info:      ColorSet{Base: adaptive("#0e7490", "#0e7490"), OnBase: adaptive("#ffffff", "#ffffff")},
	}
	padding, margin := defaultSpacing()
	return Theme{
		Name:       "light",
		Palette:    palette,
		Padding:    padding,
		Margin:     margin,
		Borders:    defaultBorders(),
		Typography: typographyFor(palette),
	}
}

// DarkTheme returns the default dark theme.
func DarkTheme() Theme {
	palette := Palette{
		Surface:   ColorSet{Base: adaptive("#111827", "#111827"), OnBase: adaptive("#f9fafb", "#f9fafb")},
		Primary:   ColorSet{Base: adaptive("#3b82f6", "#3b82f6"), OnBase: adaptive("#0b1120", "#0b1120")},
		Secondary: ColorSet{Base: adaptive("#a78bfa", "#a78bfa"), OnBase: adaptive("#0b1120", "#0b1120")},
		Muted:     ColorSet{Base: adaptive("#374151", "#374151"), OnBase: adaptive("#d1d5db", "#d1d5db")},
		Success:   ColorSet{Base: adaptive("#4ade80", "#4ade80"), OnBase: adaptive("#052e16", "#052e16")},
		Warning:   ColorSet{Base: adaptive("#facc15", "#facc15"), OnBase: adaptive("#1f2937", "#1f2937")},
		Error:     ColorSet{Base: adaptive("#f87171", "#f87171"), OnBase: adaptive("#1f2937", "#1f2937")},
		Info:      ColorSet{Base: adaptive("#38bdf8", "#38bdf8"), OnBase: adaptive("#082f49", "#082f49")},
	}
	padding, margin := defaultSpacing()
	theme := Theme{
		Name:       "dark",
		Palette:    palette,
		Padding:    padding,
		Margin:     margin,
		Borders:    defaultBorders(),
		Typography: typographyFor(palette),
	}
	return theme
}

func typographyFor(palette Palette) TypographySet {
	return TypographySet{
		Body:     lipgloss.NewStyle().Foreground(palette.Surface.OnBase),
		Title:    lipgloss.NewStyle().Bold(true).Foreground(palette.Primary.Base),
		Subtitle: lipgloss.NewStyle().Foreground(palette.Secondary.Base),
		Caption:  lipgloss.NewStyle().Faint(true).Foreground(palette.Muted.OnBase),
		Code:     lipgloss.NewStyle().Foreground(palette.Info.Base),
		Bold:     lipgloss.NewStyle().Bold(true).Foreground(palette.Surface.OnBase),
	}
}
