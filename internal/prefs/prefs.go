// Package prefs persists user preferences, currently only the page theme,
// in a single SQLite key/value table.
package prefs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // pure go sqlite driver

	pkgerrors "github.com/alexisbeaulieu97/workflowdeck/pkg/errors"
)

// ThemeKey is the preference key the theme is stored under.
const ThemeKey = "theme-preference"

// Theme values.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// DefaultTheme is reported when no preference has been stored and no other
// fallback was configured.
const DefaultTheme = ThemeLight

// ValidTheme reports whether v is a supported theme.
func ValidTheme(v string) bool {
	return v == ThemeLight || v == ThemeDark
}

// Store is a SQLite-backed preference store.
type Store struct {
	db       *sql.DB
	path     string
	fallback string
}

// Open opens (creating when needed) the preference database at path.
// The special path ":memory:" keeps preferences for the process lifetime.
func Open(path string) (*Store, error) {
	if path == "" {
		path = "workflowdeck.db"
	}
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("create dirs: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// A single connection keeps ":memory:" databases shared.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS preferences (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create preferences table: %w", err)
	}
	return &Store{db: db, path: path, fallback: DefaultTheme}, nil
}

// Path returns the database location.
func (s *Store) Path() string {
	return s.path
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the stored value for key and whether one exists.
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM preferences WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("select %s: %w", key, err)
	}
	return value, true, nil
}

// Set stores value under key, replacing any previous value.
func (s *Store) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO preferences (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	if err != nil {
		return fmt.Errorf("store %s: %w", key, err)
	}
	return nil
}

// SetFallbackTheme changes the theme reported while none is stored.
func (s *Store) SetFallbackTheme(theme string) error {
	if !ValidTheme(theme) {
		return pkgerrors.NewValidationError("theme", fmt.Sprintf("unsupported theme %q (want light or dark)", theme), nil)
	}
	s.fallback = theme
	return nil
}

// Theme returns the stored theme, or the fallback theme when unset or unrecognised.
func (s *Store) Theme(ctx context.Context) (string, error) {
	v, ok, err := s.Get(ctx, ThemeKey)
	if err != nil {
		return s.fallback, err
	}
	if !ok || !ValidTheme(v) {
		return s.fallback, nil
	}
	return v, nil
}

// SetTheme stores theme, rejecting anything but light or dark.
func (s *Store) SetTheme(ctx context.Context, theme string) error {
	if !ValidTheme(theme) {
		return pkgerrors.NewValidationError("theme", fmt.Sprintf("unsupported theme %q (want light or dark)", theme), nil)
	}
	return s.Set(ctx, ThemeKey, theme)
}

// ToggleTheme flips between light and dark and returns the new theme.
func (s *Store) ToggleTheme(ctx context.Context) (string, error) {
	current, err := s.Theme(ctx)
	if err != nil {
		return current, err
	}
	next := ThemeDark
	if current == ThemeDark {
		next = ThemeLight
	}
	if err := s.SetTheme(ctx, next); err != nil {
		return current, err
	}
	return next, nil
}
