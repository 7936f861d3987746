// Package prefs persists alertface host preferences: the theme and the
// 12/24 hour clock setting. Preferences live in ~/.config/alertface/prefs.toml.
package prefs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Prefs holds user preferences.
type Prefs struct {
	Theme    string `toml:"theme"`
	Clock24h *bool  `toml:"clock_24h,omitempty"`
}

const (
	defaultPrefsPath = "~/.config/alertface/prefs.toml"
	defaultTheme     = "Pebble"
	defaultClock24h  = true
)

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Defaults returns the preferences used when nothing is stored.
func Defaults() Prefs {
	use24 := defaultClock24h
	return Prefs{Theme: defaultTheme, Clock24h: &use24}
}

// Is24Hour reports the clock style, defaulting to 24 hour.
func (p Prefs) Is24Hour() bool {
	if p.Clock24h == nil {
		return defaultClock24h
	}
	return *p.Clock24h
}

// WithClock24h returns a copy with the clock style set.
func (p Prefs) WithClock24h(use24 bool) Prefs {
	p.Clock24h = &use24
	return p
}

// Load reads preferences from path. Missing or unreadable files degrade to
// defaults; the error return is kept for callers that want to report it.
func Load(path string) (Prefs, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Defaults(), nil
	}

	bytes, err := os.ReadFile(resolved)
	if err != nil {
		return Defaults(), nil
	}

	var p Prefs
	if err := toml.Unmarshal(bytes, &p); err != nil {
		return Defaults(), nil
	}

	if strings.TrimSpace(p.Theme) == "" {
		p.Theme = defaultTheme
	}
	if p.Clock24h == nil {
		p = p.WithClock24h(defaultClock24h)
	}
	return p, nil
}

// Save writes preferences to path, creating directories as needed.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	bytes, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.WriteFile(resolved, bytes, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultPrefsPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
