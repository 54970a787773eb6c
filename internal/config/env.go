package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix is prepended to every environment override.
const EnvPrefix = "WORKFLOWDECK_"

// ParseEnv applies WORKFLOWDECK_* environment variables to target.
// Unset variables leave the current values untouched.
func ParseEnv(target any) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
