package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Preferences holds per-user defaults for the firecalc CLI.
type Preferences struct {
	Output   OutputPreferences `toml:"output"`
	Currency string            `toml:"currency"`
	LogLevel string            `toml:"log_level"`
}

// OutputPreferences holds report settings.
type OutputPreferences struct {
	DefaultFormat string `toml:"default_format"`
	Directory     string `toml:"directory,omitempty"`
}

// DefaultPreferences returns the built-in preferences.
func DefaultPreferences() Preferences {
	return Preferences{
		Output: OutputPreferences{
			DefaultFormat: "console",
		},
		Currency: "USD",
		LogLevel: "warn",
	}
}

// PreferencesDir returns the XDG-compliant config directory.
func PreferencesDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "firecalc")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "firecalc")
}

// PreferencesPath returns the full path to the preferences file.
func PreferencesPath() string {
	return filepath.Join(PreferencesDir(), "config.toml")
}

// LoadPreferences reads the preferences file, returning defaults if it doesn't exist.
// Keys missing from the file keep their default values.
func LoadPreferences() (Preferences, error) {
	prefs := DefaultPreferences()

	data, err := os.ReadFile(PreferencesPath())
	if err != nil {
		if os.IsNotExist(err) {
			return prefs, nil
		}
		return prefs, fmt.Errorf("reading preferences: %w", err)
	}

	if err := toml.Unmarshal(data, &prefs); err != nil {
		return prefs, fmt.Errorf("parsing preferences: %w", err)
	}

	return prefs, nil
}

// SavePreferences writes the preferences to disk.
func SavePreferences(prefs Preferences) error {
	dir := PreferencesDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(PreferencesPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("creating preferences file: %w", err)
	}

	if err := toml.NewEncoder(f).Encode(prefs); err != nil {
		f.Close()
		return fmt.Errorf("writing preferences: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing preferences file: %w", err)
	}
	return nil
}
