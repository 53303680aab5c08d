package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseErrorFormatsLine(t *testing.T) {
	cause := stderrors.New("bad indent")
	err := NewParseError("themes/solar.yaml", 12, cause)

	assert.Equal(t, "parse error: themes/solar.yaml:12: bad indent", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestParseErrorWithoutLine(t *testing.T) {
	err := NewParseError("themes/solar.yaml", 0, stderrors.New("empty file"))
	assert.Equal(t, "parse error: themes/solar.yaml: empty file", err.Error())
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("palette.primary.base", "not a hex color", nil)
	assert.Contains(t, err.Error(), "palette.primary.base")

	var target *ValidationError
	require.ErrorAs(t, err, &target)
	assert.Equal(t, "not a hex color", target.Message)
}

func TestStoryError(t *testing.T) {
	cause := stderrors.New("expected output not found")
	err := NewStoryError("button", "focused", cause)

	assert.Equal(t, "story button/focused: expected output not found", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestThemePackError(t *testing.T) {
	cause := stderrors.New("clone failed")
	err := NewThemePackError("solarized", cause)

	var target *ThemePackError
	require.ErrorAs(t, err, &target)
	assert.Equal(t, "solarized", target.Pack)
	assert.ErrorIs(t, err, cause)
}
