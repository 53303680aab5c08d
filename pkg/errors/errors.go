// Package errors defines the typed errors shared across plume. Each type
// wraps an underlying cause and supports errors.Is/As through Unwrap.
package errors

import (
	"fmt"
)

// ParseError reports a malformed theme or registry file, with the line when
// the YAML decoder provides one.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError reports a theme or catalog definition that parsed but
// failed validation.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// StoryError reports a catalog story that failed its script or checks.
type StoryError struct {
	Component string
	Scenario  string
	Err       error
}

// NewStoryError constructs a StoryError.
func NewStoryError(component, scenario string, err error) error {
	return &StoryError{Component: component, Scenario: scenario, Err: err}
}

func (e *StoryError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("story %s/%s: %v", e.Component, e.Scenario, e.Err)
}

// Unwrap exposes the underlying error.
func (e *StoryError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ThemePackError reports a failure installing or resolving a theme pack.
type ThemePackError struct {
	Pack    string
	Message string
	Err     error
}

// NewThemePackError constructs a ThemePackError.
func NewThemePackError(pack string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ThemePackError{Pack: pack, Message: message, Err: err}
}

func (e *ThemePackError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("theme pack %s: %s", e.Pack, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ThemePackError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
