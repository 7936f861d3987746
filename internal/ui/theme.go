package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines colors for the watch host.
type Theme struct {
	Name string

	// Terminal around the watch
	Background string
	Surface    string

	// Watch body
	Bezel     string
	Screen    string
	ScreenInk string

	// Text colors
	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Background: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Background)),

		Screen: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Screen)).
			Foreground(lipgloss.Color(t.ScreenInk)),

		Label: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Screen)).
			Foreground(lipgloss.Color(t.ScreenInk)).
			Bold(true),

		Bezel: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color(t.Bezel)),

		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		Footer: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Background lipgloss.Style
	Screen     lipgloss.Style
	Label      lipgloss.Style
	Bezel      lipgloss.Style

	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style

	Footer lipgloss.Style
}

var themes = map[string]Theme{
	"Pebble":   pebbleTheme(),
	"Nightfox": nightfoxTheme(),
	"Slate":    slateTheme(),
}

var themeOrder = []string{"Pebble", "Nightfox", "Slate"}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return pebbleTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

func pebbleTheme() Theme {
	// Classic monochrome e-paper: white ink on a black screen.
	return Theme{
		Name: "Pebble",

		Background: "#000000",
		Surface:    "#111111",

		Bezel:     "#555555",
		Screen:    "#000000",
		ScreenInk: "#ffffff",

		Text:    "#e5e5e5",
		Muted:   "#a3a3a3",
		Faint:   "#737373",
		Accent:  "#ffffff",
		Success: "#4ade80",
		Warning: "#facc15",
		Danger:  "#f87171",
	}
}

func nightfoxTheme() Theme {
	// Nightfox palette: https://github.com/EdenEast/nightfox.nvim
	return Theme{
		Name: "Nightfox",

		Background: "#131a24", // bg0
		Surface:    "#192330", // bg1

		Bezel:     "#39506d", // bg4
		Screen:    "#192330", // bg1
		ScreenInk: "#cdcecf", // fg1

		Text:    "#cdcecf", // fg1
		Muted:   "#738091", // comment
		Faint:   "#71839b", // fg3
		Accent:  "#719cd6", // blue
		Success: "#81b29a", // green
		Warning: "#dbc074", // yellow
		Danger:  "#c94f6d", // red
	}
}

func slateTheme() Theme {
	// Tailwind CSS Slate/Sky palette: https://tailwindcss.com/docs/colors
	return Theme{
		Name: "Slate",

		Background: "#020617", // slate-950
		Surface:    "#0f172a", // slate-900

		Bezel:     "#334155", // slate-700
		Screen:    "#f1f5f9", // slate-100
		ScreenInk: "#020617", // slate-950

		Text:    "#f1f5f9", // slate-100
		Muted:   "#94a3b8", // slate-400
		Faint:   "#64748b", // slate-500
		Accent:  "#38bdf8", // sky-400
		Success: "#22c55e", // green-500
		Warning: "#f59e0b", // amber-500
		Danger:  "#ef4444", // red-500
	}
}
