package config

import (
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/workflowdeck/internal/catalog/source"
	"github.com/alexisbeaulieu97/workflowdeck/internal/prefs"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("source_uri", func(fl validator.FieldLevel) bool {
			return isValidSourceURI(fl.Field().String())
		})

		_ = v.RegisterValidation("theme", func(fl validator.FieldLevel) bool {
			return prefs.ValidTheme(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns a configured validator instance for use outside the config package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}

// isValidSourceURI accepts anything source.Open can build a Source from,
// without touching the filesystem or network.
func isValidSourceURI(uri string) bool {
	if strings.TrimSpace(uri) == "" || strings.Contains(uri, "\x00") {
		return false
	}
	_, err := source.Open(uri, source.Options{})
	return err == nil
}
