// Package ui provides the Bubble Tea terminal host for the alert watch face.
//
// # Overview
//
// The watch face in package watch needs a host: something that delivers
// button presses and minute ticks, runs outbound deliveries, and draws the
// window. This package is that host for a terminal.
//
// # Event Loop
//
// Bubble Tea's Update is the single event loop. Every watch callback is
// invoked from it, one message at a time:
//
//	tea.KeyMsg       ─> App.Click(button)    ─> deliveryCmd (background)
//	deliveryMsg      ─> App.Deliver(outcome) ─> sent / failed callback
//	minuteTickMsg    ─> App.MinuteTick()     ─> next minute boundary
//	linkTickMsg      ─> store snapshot, log overlay refresh
//
// Deliveries run as tea.Cmd functions, so HTTP I/O never blocks the loop,
// and their Outcome comes back as a message rather than touching watch
// state from another goroutine.
//
// # Rendering
//
// The 144x168 watch screen is scaled to 36x21 terminal cells (4x8 pixels
// per cell) and drawn inside a bezel. Text layers are placed on the row at
// the vertical middle of their frame. The large display font is imitated
// with bold, letter-spaced text.
//
// # Key Bindings
//
//   - esc/backspace: Back button
//   - enter/space: Select button
//   - up/k, down/j: Up and Down buttons
//   - H: toggle the 12/24 hour clock setting (saved to prefs)
//   - T: cycle theme (saved to prefs)
//   - L: toggle the app log overlay (pgup/pgdn scroll it; buttons stay live)
//   - ?: help, q/ctrl+c: quit
//
// # Themes
//
// Pebble (monochrome), Nightfox and Slate. The selected theme is persisted
// through package prefs.
package ui
