package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/alertface/internal/logtail"
)

// resizeLogViewport fits the log overlay to the terminal.
func (m *Model) resizeLogViewport() {
	width := m.width - 4
	height := m.height - 4
	if width < 10 {
		width = 10
	}
	if height < 3 {
		height = 3
	}
	m.logViewport.Width = width
	m.logViewport.Height = height
	m.updateLogViewport()
}

// updateLogViewport re-renders the log lines and follows the tail.
func (m *Model) updateLogViewport() {
	styles := m.theme.Styles()
	if len(m.logLines) == 0 {
		m.logViewport.SetContent(styles.FaintText.Render("No log entries yet."))
		return
	}
	rendered := make([]string, len(m.logLines))
	for i, line := range m.logLines {
		if logtail.Classify(line) == logtail.SeverityError {
			rendered[i] = styles.DangerText.Render(line)
		} else {
			rendered[i] = styles.Text.Render(line)
		}
	}
	m.logViewport.SetContent(strings.Join(rendered, "\n"))
	m.logViewport.GotoBottom()
}

// renderLogs renders the app log overlay.
func (m Model) renderLogs() string {
	styles := m.theme.Styles()

	header := styles.AccentText.Bold(true).Render("App log") +
		styles.FaintText.Render("  "+m.logPath)

	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Faint))

	return header + "\n" + frame.Render(m.logViewport.View()) + "\n" +
		styles.Footer.Render(styles.FaintText.Render("L close · pgup/pgdn scroll · buttons stay live"))
}
