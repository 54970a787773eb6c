package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	wferrors "github.com/alexisbeaulieu97/workflowdeck/pkg/errors"
)

// ValidateConfig performs schema and cross-field validation on the configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return wferrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	if cfg.Icons.Probe == "dir" && cfg.Icons.Dir == "" {
		return wferrors.NewValidationError("icons.dir", "required when icons.probe is dir", nil)
	}

	for i, slide := range cfg.UI.Slides {
		if strings.TrimSpace(slide.Title) == "" {
			return wferrors.NewValidationError(fmt.Sprintf("ui.slides[%d].title", i), "slide title is required", nil)
		}
	}

	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return wferrors.NewValidationError(field, msg, err)
	}

	return wferrors.NewValidationError("config", err.Error(), err)
}

// yamlishFieldName turns Config.Catalog.Source into catalog.source.
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	lowered := make([]string, 0, len(parts))
	for _, part := range parts {
		lowered = append(lowered, toSnake(part))
	}
	return strings.Join(lowered, ".")
}

func toSnake(s string) string {
	var b strings.Builder
	prevLower := false
	for _, r := range s {
		upper := r >= 'A' && r <= 'Z'
		if upper {
			if prevLower {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		prevLower = !upper
		b.WriteRune(r)
	}
	return b.String()
}
