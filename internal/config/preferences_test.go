package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreferencesPath_XDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	assert.Equal(t, filepath.Join(dir, "firecalc"), PreferencesDir())
	assert.Equal(t, filepath.Join(dir, "firecalc", "config.toml"), PreferencesPath())
}

func TestLoadPreferences_MissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	prefs, err := LoadPreferences()
	require.NoError(t, err)
	assert.Equal(t, DefaultPreferences(), prefs)
}

func TestLoadPreferences_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "firecalc"), 0o755))
	require.NoError(t, os.WriteFile(PreferencesPath(), []byte("currency = \"EUR\"\n\n[output]\ndefault_format = \"json\"\n"), 0o644))

	prefs, err := LoadPreferences()
	require.NoError(t, err)
	assert.Equal(t, "EUR", prefs.Currency)
	assert.Equal(t, "json", prefs.Output.DefaultFormat)
	assert.Equal(t, "warn", prefs.LogLevel)
}

func TestLoadPreferences_InvalidTOML(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "firecalc"), 0o755))
	require.NoError(t, os.WriteFile(PreferencesPath(), []byte("currency = \n"), 0o644))

	_, err := LoadPreferences()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parsing preferences")
}

func TestSavePreferences_RoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	prefs := DefaultPreferences()
	prefs.Currency = "GBP"
	prefs.LogLevel = "debug"
	prefs.Output.DefaultFormat = "html"
	prefs.Output.Directory = "reports"
	require.NoError(t, SavePreferences(prefs))

	loaded, err := LoadPreferences()
	require.NoError(t, err)
	assert.Equal(t, prefs, loaded)
}

func TestSavePreferences_UnwritableDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	// a regular file where the config directory should be
	require.NoError(t, os.WriteFile(filepath.Join(dir, "firecalc"), []byte("x"), 0o644))

	err := SavePreferences(DefaultPreferences())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "creating config dir")
}

func TestSavePreferences_OverwritesExisting(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	first := DefaultPreferences()
	first.Output.Directory = "a-much-longer-reports-directory-name"
	require.NoError(t, SavePreferences(first))

	second := DefaultPreferences()
	require.NoError(t, SavePreferences(second))

	loaded, err := LoadPreferences()
	require.NoError(t, err)
	assert.Equal(t, second, loaded)
}
