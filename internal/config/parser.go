package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	wferrors "github.com/alexisbeaulieu97/workflowdeck/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Load builds the configuration: defaults, then the YAML file at path (when
// path is non-empty), then WORKFLOWDECK_* environment overrides. The result
// is validated.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if err := parseFile(path, cfg); err != nil {
			return nil, err
		}
	}
	if err := ParseEnv(cfg); err != nil {
		return nil, wferrors.NewParseError("environment", 0, err)
	}
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ParseConfig loads a configuration file from disk over the defaults and
// validates it. Environment variables are not consulted.
func ParseConfig(path string) (*Config, error) {
	cfg := Default()
	if err := parseFile(path, cfg); err != nil {
		return nil, err
	}
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func parseFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return wferrors.NewParseError(path, 0, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return wferrors.NewParseError(path, extractLine(err), err)
	}
	return nil
}

// ErrNoConfig is returned by Discover when no configuration file exists.
var ErrNoConfig = errors.New("no configuration file found")

// Discover returns the first existing file among the conventional config
// locations.
func Discover() (string, error) {
	for _, candidate := range []string{"workflowdeck.yaml", "workflowdeck.yml", ".workflowdeck.yaml"} {
		info, err := os.Stat(candidate)
		if err == nil && info.Mode().IsRegular() {
			return candidate, nil
		}
	}
	return "", ErrNoConfig
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
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
