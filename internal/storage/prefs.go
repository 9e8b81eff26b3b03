package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// prefTheme is the key the theme toggle persists under.
const prefTheme = "theme"

// GetPref returns the stored value for key, or "" when unset.
func (s *Store) GetPref(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `
		SELECT value FROM prefs WHERE key = ?
	`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read pref %s: %w", key, err)
	}
	return value, nil
}

// SetPref stores value under key, overwriting any previous value.
func (s *Store) SetPref(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO prefs (key, value, updated_at_unix_ms)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at_unix_ms = excluded.updated_at_unix_ms
	`, key, value, time.Now().UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to write pref %s: %w", key, err)
	}
	return nil
}

// ThemePref implements theme.PrefStore.
func (s *Store) ThemePref() (string, error) {
	return s.GetPref(context.Background(), prefTheme)
}

// SetThemePref implements theme.PrefStore.
func (s *Store) SetThemePref(value string) error {
	return s.SetPref(context.Background(), prefTheme, value)
}
