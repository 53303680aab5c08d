package components

// Tone is the semantic intent shared by buttons, badges, alerts and toasts.
// Each tone maps onto one palette slot.
type Tone int

const (
	ToneDefault Tone = iota
	TonePrimary
	ToneSecondary
	ToneSuccess
	ToneWarning
	ToneError
	ToneInfo
)

// Slot returns the palette slot backing a tone.
func (t Tone) Slot() PaletteSlot {
	switch t {
	case TonePrimary:
		return PalettePrimary
	case ToneSecondary:
		return PaletteSecondary
	case ToneSuccess:
		return PaletteSuccess
	case ToneWarning:
		return PaletteWarning
	case ToneError:
		return PaletteError
	case ToneInfo:
		return PaletteInfo
	default:
		return PaletteMuted
	}
}

// String returns the tone name used in stories and theme files.
func (t Tone) String() string {
	switch t {
	case TonePrimary:
		return "primary"
	case ToneSecondary:
		return "secondary"
	case ToneSuccess:
		return "success"
	case ToneWarning:
		return "warning"
	case ToneError:
		return "error"
	case ToneInfo:
		return "info"
	default:
		return "default"
	}
}
