package catalog

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/laststance/plume/internal/ui/components"
)

// MinContrastRatio is the WCAG AA threshold for normal text, applied to every
// palette base/on-base pair. Terminal emulators remap colors, but a palette
// that fails this on its declared values will be illegible in most of them.
const MinContrastRatio = 4.5

// ContrastIssue reports one palette pair below the threshold.
type ContrastIssue struct {
	Slot  components.PaletteSlot
	Ratio float64
}

func (c ContrastIssue) String() string {
	return fmt.Sprintf("%s: contrast %.2f below %.1f", c.Slot, c.Ratio, MinContrastRatio)
}

// CheckThemeContrast verifies every palette slot of the theme. It returns one
// issue per failing slot and an error only when a color cannot be parsed.
func CheckThemeContrast(theme components.Theme) ([]ContrastIssue, error) {
	var issues []ContrastIssue
	for _, slot := range components.PaletteSlots() {
		set := theme.Palette.Slot(slot)
		ratio, err := ContrastRatio(set.Base, set.OnBase)
		if err != nil {
			return nil, fmt.Errorf("slot %s: %w", slot, err)
		}
		if ratio < MinContrastRatio {
			issues = append(issues, ContrastIssue{Slot: slot, Ratio: ratio})
		}
	}
	return issues, nil
}

// ContrastRatio computes the WCAG contrast ratio between two colors, using
// the dark variant of each adaptive color (the values themes declare).
func ContrastRatio(a, b lipgloss.AdaptiveColor) (float64, error) {
	la, err := relativeLuminance(a.Dark)
	if err != nil {
		return 0, err
	}
	lb, err := relativeLuminance(b.Dark)
	if err != nil {
		return 0, err
	}
	lighter, darker := la, lb
	if darker > lighter {
		lighter, darker = darker, lighter
	}
	return (lighter + 0.05) / (darker + 0.05), nil
}

func relativeLuminance(hex string) (float64, error) {
	r, g, b, err := parseHex(hex)
	if err != nil {
		return 0, err
	}
	return 0.2126*channel(r) + 0.7152*channel(g) + 0.0722*channel(b), nil
}

func channel(v uint8) float64 {
	c := float64(v) / 255.0
	if c <= 0.03928 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

func parseHex(hex string) (uint8, uint8, uint8, error) {
	hex = strings.TrimPrefix(hex, "#")
	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6:
	default:
		return 0, 0, 0, fmt.Errorf("invalid hex color %q", hex)
	}

	var r, g, b uint8
	if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b); err != nil {
		return 0, 0, 0, fmt.Errorf("invalid hex color %q", hex)
	}
	return r, g, b, nil
}
