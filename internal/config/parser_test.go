package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laststance/plume/internal/ui/components"
	plumeerrors "github.com/laststance/plume/pkg/errors"
)

const validTheme = `
version: "1.0"
name: solarized-dusk
mode: dark
palette:
  surface:   {base: "#002b36", on_base: "#eee8d5"}
  primary:   {base: "#268bd2", on_base: "#fdf6e3"}
  secondary: {base: "#6c71c4", on_base: "#fdf6e3"}
  muted:     {base: "#073642", on_base: "#93a1a1"}
  success:   {base: "#859900", on_base: "#002b36"}
  warning:   {base: "#b58900", on_base: "#002b36"}
  error:     {base: "#dc322f", on_base: "#fdf6e3"}
  info:      {base: "#2aa198", on_base: "#002b36"}
spacing:
  padding: [1, 2, 3, 4]
meta:
  author: test
`

func TestParseThemeValid(t *testing.T) {
	file, err := ParseTheme("solarized.yaml", []byte(validTheme))
	require.NoError(t, err)

	assert.Equal(t, "solarized-dusk", file.Name)
	assert.Equal(t, "dark", file.Mode)
	assert.Equal(t, "#268bd2", file.Palette.Primary.Base)
}

func TestParseThemeFileFromDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "theme.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validTheme), 0o644))

	file, err := ParseThemeFile(path)
	require.NoError(t, err)
	assert.Equal(t, "solarized-dusk", file.Name)
}

func TestParseThemeFileMissing(t *testing.T) {
	_, err := ParseThemeFile(filepath.Join(t.TempDir(), "nope.yaml"))

	var parseErr *plumeerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestParseThemeMalformedYAMLReportsLine(t *testing.T) {
	_, err := ParseTheme("broken.yaml", []byte("name: [unclosed"))

	var parseErr *plumeerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "broken.yaml", parseErr.Path)
}

func TestValidateRejectsBadHex(t *testing.T) {
	bad := []byte(`
version: "1.0"
name: broken
mode: light
palette:
  surface:   {base: "white", on_base: "#111111"}
  primary:   {base: "#2563eb", on_base: "#ffffff"}
  secondary: {base: "#7c3aed", on_base: "#ffffff"}
  muted:     {base: "#e5e7eb", on_base: "#374151"}
  success:   {base: "#15803d", on_base: "#ffffff"}
  warning:   {base: "#a16207", on_base: "#ffffff"}
  error:     {base: "#b91c1c", on_base: "#ffffff"}
  info:      {base: "#0e7490", on_base: "#ffffff"}
`)
	_, err := ParseTheme("bad.yaml", bad)

	var valErr *plumeerrors.ValidationError
	require.ErrorAs(t, err, &valErr)
}

func TestValidateRejectsInvisiblePair(t *testing.T) {
	file, err := ParseTheme("ok.yaml", []byte(validTheme))
	require.NoError(t, err)

	file.Palette.Info.OnBase = file.Palette.Info.Base
	err = ValidateThemeFile(file)

	var valErr *plumeerrors.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Contains(t, valErr.Field, "info")
}

func TestValidateRejectsBadName(t *testing.T) {
	file, err := ParseTheme("ok.yaml", []byte(validTheme))
	require.NoError(t, err)

	file.Name = "Not A Slug"
	require.Error(t, ValidateThemeFile(file))
}

func TestThemeConversion(t *testing.T) {
	file, err := ParseTheme("ok.yaml", []byte(validTheme))
	require.NoError(t, err)

	theme := file.Theme()
	assert.Equal(t, "solarized-dusk", theme.Name)
	assert.Equal(t, "#268bd2", theme.Palette.Primary.Base.Dark)
	assert.Equal(t, 3, theme.Padding.Of(components.SpacingSizeLarge), "spacing override should apply")
	assert.Equal(t, 2, theme.Margin.Of(components.SpacingSizeMedium), "unset margin keeps defaults")
}
