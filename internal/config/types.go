package config

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/laststance/plume/internal/ui/components"
)

// ThemeFile is the on-disk shape of a theme definition inside a theme pack.
// Colors are hex strings; spacing overrides are optional and fall back to the
// built-in scale.
type ThemeFile struct {
	Version string        `yaml:"version" validate:"required,semver"`
	Name    string        `yaml:"name" validate:"required,slug,max=64"`
	Mode    string        `yaml:"mode" validate:"required,oneof=light dark"`
	Palette PaletteFile   `yaml:"palette" validate:"required"`
	Spacing *SpacingFile  `yaml:"spacing,omitempty" validate:"omitempty"`
	Meta    ThemeFileMeta `yaml:"meta,omitempty"`
}

// ThemeFileMeta is informational only.
type ThemeFileMeta struct {
	Author      string `yaml:"author,omitempty"`
	Description string `yaml:"description,omitempty" validate:"omitempty,max=500"`
}

// PaletteFile defines one color pair per semantic slot.
type PaletteFile struct {
	Surface   ColorPairFile `yaml:"surface" validate:"required"`
	Primary   ColorPairFile `yaml:"primary" validate:"required"`
	Secondary ColorPairFile `yaml:"secondary" validate:"required"`
	Muted     ColorPairFile `yaml:"muted" validate:"required"`
	Success   ColorPairFile `yaml:"success" validate:"required"`
	Warning   ColorPairFile `yaml:"warning" validate:"required"`
	Error     ColorPairFile `yaml:"error" validate:"required"`
	Info      ColorPairFile `yaml:"info" validate:"required"`
}

// ColorPairFile is a fill color and the foreground used on top of it.
type ColorPairFile struct {
	Base   string `yaml:"base" validate:"required,hexcolor"`
	OnBase string `yaml:"on_base" validate:"required,hexcolor"`
}

// SpacingFile overrides the padding and margin scales, small to extra large.
type SpacingFile struct {
	Padding []int `yaml:"padding,omitempty" validate:"omitempty,len=4,dive,min=0,max=16"`
	Margin  []int `yaml:"margin,omitempty" validate:"omitempty,len=4,dive,min=0,max=16"`
}

// Theme converts the file into a renderable components.Theme, starting from
// the built-in theme for the declared mode so unset tokens keep defaults.
func (f *ThemeFile) Theme() components.Theme {
	theme := components.LightTheme()
	if f.Mode == "dark" {
		theme = components.DarkTheme()
	}
	theme.Name = f.Name
	theme.Palette = components.Palette{
		Surface:   f.Palette.Surface.colorSet(),
		Primary:   f.Palette.Primary.colorSet(),
		Secondary: f.Palette.Secondary.colorSet(),
		Muted:     f.Palette.Muted.colorSet(),
		Success:   f.Palette.Success.colorSet(),
		Warning:   f.Palette.Warning.colorSet(),
		Error:     f.Palette.Error.colorSet(),
		Info:      f.Palette.Info.colorSet(),
	}
	if f.Spacing != nil {
		applyScale(theme.Padding, f.Spacing.Padding)
		applyScale(theme.Margin, f.Spacing.Margin)
	}
	return theme
}

func (c ColorPairFile) colorSet() components.ColorSet {
	return components.ColorSet{
		Base:   lipgloss.AdaptiveColor{Light: c.Base, Dark: c.Base},
		OnBase: lipgloss.AdaptiveColor{Light: c.OnBase, Dark: c.OnBase},
	}
}

func applyScale(scale components.SpacingScale, values []int) {
	if len(values) != 4 {
		return
	}
	scale[components.SpacingSizeSmall] = values[0]
	scale[components.SpacingSizeMedium] = values[1]
	scale[components.SpacingSizeLarge] = values[2]
	scale[components.SpacingSizeExtraLarge] = values[3]
}
