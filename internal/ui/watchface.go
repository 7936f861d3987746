package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/alertface/internal/appmsg"
	"github.com/five82/alertface/internal/watch"
)

// screenCells returns the watch screen size in terminal cells.
func screenCells() (cols, rows int) {
	return watch.ScreenWidth / CellWidthPx, watch.ScreenHeight / CellHeightPx
}

// renderWatch draws the watch window and its text layers inside a bezel.
func (m Model) renderWatch() string {
	styles := m.theme.Styles()
	cols, rows := screenCells()

	lines := make([]string, rows)
	blank := styles.Screen.Render(strings.Repeat(" ", cols))
	for i := range lines {
		lines[i] = blank
	}

	if w := m.app.Window(); w != nil && w.Loaded() {
		for _, layer := range w.Layers() {
			row, text := layerRow(layer, rows)
			lines[row] = renderLayerText(styles, layer, text, cols)
		}
	}

	return styles.Bezel.Render(strings.Join(lines, "\n"))
}

// layerRow maps a layer's frame to the row its text is drawn on: the
// vertical middle of the frame, clamped to the screen.
func layerRow(layer *watch.TextLayer, rows int) (int, string) {
	top := layer.Frame.Origin.Y / CellHeightPx
	height := layer.Frame.Size.H / CellHeightPx
	row := top + height/2
	if row >= rows {
		row = rows - 1
	}
	if row < 0 {
		row = 0
	}
	return row, layer.Text()
}

func renderLayerText(styles Styles, layer *watch.TextLayer, text string, cols int) string {
	style := styles.Screen
	if layer.Font == watch.FontBitham30Black {
		style = styles.Label
		text = letterSpace(text)
	}
	if lipgloss.Width(text) > cols {
		text = string([]rune(text)[:cols])
	}
	style = style.Width(cols)
	switch layer.Alignment {
	case watch.AlignCenter:
		style = style.Align(lipgloss.Center)
	case watch.AlignRight:
		style = style.Align(lipgloss.Right)
	default:
		style = style.Align(lipgloss.Left)
	}
	return style.Render(text)
}

// letterSpace widens text to stand in for the large display font.
func letterSpace(text string) string {
	runes := []rune(text)
	if len(runes) < 2 {
		return text
	}
	parts := make([]string, len(runes))
	for i, r := range runes {
		parts[i] = string(r)
	}
	return strings.Join(parts, " ")
}

// renderStatus renders the footer: companion link, last send result, keys.
func (m Model) renderStatus() string {
	styles := m.theme.Styles()

	var link string
	switch {
	case m.snapshot.IsOffline():
		link = styles.DangerText.Render("○ companion offline")
	case m.snapshot.HasStatus:
		link = styles.SuccessText.Render("● companion") +
			styles.MutedText.Render(fmt.Sprintf(" %d alerts", m.snapshot.Status.Alerts))
	default:
		link = styles.FaintText.Render("… connecting")
	}

	var send string
	switch {
	case m.sending:
		send = styles.WarningText.Render("sending")
	case m.lastResult != nil:
		// The failure reason goes to the app log only.
		if *m.lastResult == appmsg.OK {
			send = styles.SuccessText.Render("sent")
		} else {
			send = styles.DangerText.Render("send failed")
		}
	}

	clockStyle := "12h"
	if m.clock.Use24h {
		clockStyle = "24h"
	}

	parts := []string{link}
	if send != "" {
		parts = append(parts, send)
	}
	parts = append(parts, styles.MutedText.Render(clockStyle))

	var help []string
	for _, b := range m.keys.ShortHelp() {
		h := b.Help()
		help = append(help, styles.AccentText.Render(h.Key)+" "+styles.FaintText.Render(h.Desc))
	}

	sep := styles.FaintText.Render(" · ")
	return styles.Footer.Render(strings.Join(parts, sep)) + "\n" +
		styles.Footer.Render(strings.Join(help, sep))
}

// place centers content in the terminal.
func (m Model) place(content string) string {
	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		content,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceBackground(lipgloss.Color(m.theme.Background)),
	)
}
