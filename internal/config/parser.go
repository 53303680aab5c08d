// Package config parses and validates theme definition files.
package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	plumeerrors "github.com/laststance/plume/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseThemeFile loads a theme definition from disk, validates it, and
// returns the model.
func ParseThemeFile(path string) (*ThemeFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, plumeerrors.NewParseError(path, 0, err)
	}
	return ParseTheme(path, data)
}

// ParseTheme decodes and validates an in-memory theme definition. path is
// used for error reporting only.
func ParseTheme(path string, data []byte) (*ThemeFile, error) {
	var file ThemeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, plumeerrors.NewParseError(path, extractLine(err), err)
	}

	if err := ValidateThemeFile(&file); err != nil {
		return nil, err
	}

	return &file, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}
	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}
