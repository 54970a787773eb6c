package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexisbeaulieu97/workflowdeck/internal/catalog"
	"github.com/alexisbeaulieu97/workflowdeck/internal/config"
)

// resolveConfigPath returns the explicit path when given, otherwise the
// discovered one. An empty result means defaults and environment only.
func resolveConfigPath(explicit string) (string, error) {
	if strings.TrimSpace(explicit) == "" {
		path, err := config.Discover()
		if errors.Is(err, config.ErrNoConfig) {
			return "", nil
		}
		return path, err
	}

	abs, err := filepath.Abs(explicit)
	if err != nil {
		return "", fmt.Errorf("resolve config path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("config file does not exist: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("config path %s is a directory", abs)
	}
	return abs, nil
}

// filterFlags are the catalog filter dimensions shared by list and render.
type filterFlags struct {
	search      string
	useCase     string
	integration string
	difficulty  string
}

func (f *filterFlags) state() catalog.FilterState {
	return catalog.FilterState{
		Search:      f.search,
		UseCase:     f.useCase,
		Integration: f.integration,
		Difficulty:  f.difficulty,
	}
}

type flagSet interface {
	StringVarP(p *string, name, shorthand, value, usage string)
	StringVar(p *string, name, value, usage string)
}

func (f *filterFlags) register(fs flagSet) {
	fs.StringVarP(&f.search, "query", "q", "", "Free-text search over title, description and tags")
	fs.StringVar(&f.useCase, "usecase", "", "Only items listing this use case")
	fs.StringVar(&f.integration, "integration", "", "Only items listing this integration")
	fs.StringVar(&f.difficulty, "difficulty", "", "Only items of this difficulty")
}

func newCommandError(operation, context string, cause error, suggestion string) error {
	return &commandError{operation: operation, context: context, cause: cause, suggestion: suggestion}
}

type commandError struct {
	operation  string
	context    string
	cause      error
	suggestion string
}

func (e *commandError) Error() string {
	return fmt.Sprintf("Failed to %s: %s\n\nError: %v\n\nSuggestion: %s", e.operation, e.context, e.cause, e.suggestion)
}

func (e *commandError) Unwrap() error {
	return e.cause
}
