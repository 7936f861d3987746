package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/alertface/internal/watch"
)

// keyMap defines all keyboard bindings for the host.
type keyMap struct {
	// Watch buttons
	Back   key.Binding
	Select key.Binding
	Up     key.Binding
	Down   key.Binding

	// Host controls
	Quit        key.Binding
	Help        key.Binding
	CycleTheme  key.Binding
	ToggleClock key.Binding
	ToggleLogs  key.Binding

	// Log overlay
	PageUp   key.Binding
	PageDown key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Back: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", "Back button"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "Select button"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "Up button"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "Down button"),
		),

		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		ToggleClock: key.NewBinding(
			key.WithKeys("H"),
			key.WithHelp("H", "Toggle 12/24h clock"),
		),
		ToggleLogs: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "Toggle app log"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "Scroll log up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "Scroll log down"),
		),
	}
}

// button maps a key press onto a watch button.
func (k keyMap) button(msg tea.KeyMsg) (watch.Button, bool) {
	switch {
	case key.Matches(msg, k.Back):
		return watch.ButtonBack, true
	case key.Matches(msg, k.Select):
		return watch.ButtonSelect, true
	case key.Matches(msg, k.Up):
		return watch.ButtonUp, true
	case key.Matches(msg, k.Down):
		return watch.ButtonDown, true
	}
	return 0, false
}

// ShortHelp returns key bindings for the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.ToggleClock, k.ToggleLogs, k.Help, k.Quit}
}

// FullHelp returns key bindings for the help overlay.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Back, k.Select, k.Up, k.Down},
		{k.ToggleClock, k.CycleTheme, k.ToggleLogs, k.PageUp, k.PageDown},
		{k.Help, k.Quit},
	}
}
