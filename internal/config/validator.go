package config

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	plumeerrors "github.com/laststance/plume/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?$`)
	slugPattern   = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
			return slugPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})
	return validateInst
}

// ValidateThemeFile performs schema validation plus the cross-field checks
// the struct tags cannot express.
func ValidateThemeFile(file *ThemeFile) error {
	if file == nil {
		return plumeerrors.NewValidationError("theme", "theme file is nil", nil)
	}

	if err := validatorInstance().Struct(file); err != nil {
		return convertValidationError(err)
	}

	// A pair whose fill equals its foreground renders invisible text. Catch
	// it here rather than letting the contrast check fail later with a less
	// direct message.
	for slot, pair := range map[string]ColorPairFile{
		"surface":   file.Palette.Surface,
		"primary":   file.Palette.Primary,
		"secondary": file.Palette.Secondary,
		"muted":     file.Palette.Muted,
		"success":   file.Palette.Success,
		"warning":   file.Palette.Warning,
		"error":     file.Palette.Error,
		"info":      file.Palette.Info,
	} {
		if strings.EqualFold(pair.Base, pair.OnBase) {
			field := fmt.Sprintf("palette.%s", slot)
			return plumeerrors.NewValidationError(field, "base and on_base are identical", nil)
		}
	}

	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if ok := asValidationErrors(err, &fieldErrors); ok && len(fieldErrors) > 0 {
		first := fieldErrors[0]
		field := strings.ToLower(strings.TrimPrefix(first.Namespace(), "ThemeFile."))
		message := fmt.Sprintf("failed %q constraint", first.Tag())
		return plumeerrors.NewValidationError(field, message, err)
	}

	return plumeerrors.NewValidationError("", err.Error(), err)
}

func asValidationErrors(err error, target *validator.ValidationErrors) bool {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return false
	}
	*target = ve
	return true
}
