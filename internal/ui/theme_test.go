package ui

import "testing"

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	if len(names) != 3 {
		t.Fatalf("ThemeNames() returned %d names, want 3", len(names))
	}
	if names[0] != "Pebble" || names[1] != "Nightfox" || names[2] != "Slate" {
		t.Fatalf("ThemeNames() = %v, want [Pebble Nightfox Slate]", names)
	}
}

func TestNextTheme(t *testing.T) {
	if got := NextTheme("Pebble"); got != "Nightfox" {
		t.Fatalf("NextTheme(Pebble) = %q, want Nightfox", got)
	}
	if got := NextTheme("Slate"); got != "Pebble" {
		t.Fatalf("NextTheme(Slate) = %q, want Pebble", got)
	}
	if got := NextTheme("Unknown"); got != "Pebble" {
		t.Fatalf("NextTheme(Unknown) = %q, want Pebble", got)
	}
}

func TestGetTheme(t *testing.T) {
	for _, name := range ThemeNames() {
		if got := GetTheme(name); got.Name != name {
			t.Fatalf("GetTheme(%s).Name = %q", name, got.Name)
		}
	}
	if got := GetTheme("Unknown"); got.Name != "Pebble" {
		t.Fatalf("GetTheme(Unknown).Name = %q, want Pebble (fallback)", got.Name)
	}
}

func TestThemesDefineWatchColors(t *testing.T) {
	for _, name := range ThemeNames() {
		th := GetTheme(name)
		if th.Screen == "" || th.ScreenInk == "" || th.Bezel == "" {
			t.Fatalf("theme %s missing watch colors: %+v", name, th)
		}
		if th.Screen == th.ScreenInk {
			t.Fatalf("theme %s draws ink in the screen color", name)
		}
	}
}
