package theme

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	pref    string
	readErr error
	saves   []string
}

func (s *memStore) ThemePref() (string, error) {
	return s.pref, s.readErr
}

func (s *memStore) SetThemePref(v string) error {
	s.pref = v
	s.saves = append(s.saves, v)
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPaletteForExplicitNames(t *testing.T) {
	assert.Equal(t, Light, PaletteFor(Light).Name)
	assert.Equal(t, Dark, PaletteFor(Dark).Name)
}

func TestManagerDefaultsWithoutStore(t *testing.T) {
	m := NewManager(Dark, nil, false, discardLogger())
	assert.Equal(t, Dark, m.Current().Name)
}

func TestManagerPersistedPrefWins(t *testing.T) {
	store := &memStore{pref: "light"}
	m := NewManager(Dark, store, true, discardLogger())
	assert.Equal(t, Light, m.Current().Name)
}

func TestManagerIgnoresInvalidPref(t *testing.T) {
	store := &memStore{pref: "neon"}
	m := NewManager(Dark, store, true, discardLogger())
	assert.Equal(t, Dark, m.Current().Name)
}

func TestManagerIgnoresPrefWhenPersistDisabled(t *testing.T) {
	store := &memStore{pref: "light"}
	m := NewManager(Dark, store, false, discardLogger())
	assert.Equal(t, Dark, m.Current().Name)
}

func TestManagerSurvivesStoreReadError(t *testing.T) {
	store := &memStore{readErr: errors.New("db locked")}
	m := NewManager(Light, store, true, discardLogger())
	assert.Equal(t, Light, m.Current().Name)
}

func TestToggleFlipsAndPersists(t *testing.T) {
	store := &memStore{}
	m := NewManager(Dark, store, true, discardLogger())

	p := m.Toggle()
	assert.Equal(t, Light, p.Name)
	require.Len(t, store.saves, 1)
	assert.Equal(t, "light", store.saves[0])

	p = m.Toggle()
	assert.Equal(t, Dark, p.Name)
	assert.Equal(t, "dark", store.pref)
}

func TestToggleWithoutPersistDoesNotSave(t *testing.T) {
	store := &memStore{}
	m := NewManager(Dark, store, false, discardLogger())
	m.Toggle()
	assert.Empty(t, store.saves)
}
