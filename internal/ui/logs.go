package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/wildwave/internal/logtail"
)

// renderLogs renders the application log overlay.
func (m Model) renderLogs() string {
	styles := m.theme.Styles()

	title := styles.AccentText.Bold(true).Render("Application log")
	if m.logPath != "" {
		title += styles.FaintText.Render("  " + truncateMiddle(m.logPath, maxInt(m.width-24, 10)))
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.BorderFocus)).
		Width(maxInt(m.width-2, 10)).
		Render(m.logViewport.View())

	return m.renderCommandBar() + "\n" + title + "\n" + box
}

// renderLogContent colors each line by its slog level.
func (m Model) renderLogContent() string {
	styles := m.theme.Styles()
	switch {
	case m.logErr != nil:
		return styles.DangerText.Render(fmt.Sprintf("Unable to read log: %v", m.logErr))
	case m.logPath == "":
		return styles.MutedText.Render("Logging to file is disabled.")
	case len(m.logLines) == 0:
		return styles.MutedText.Render("No log entries yet.")
	}

	out := make([]string, 0, len(m.logLines))
	for _, line := range m.logLines {
		out = append(out, m.logLineStyle(logtail.Level(line)).Render(line))
	}
	return strings.Join(out, "\n")
}

func (m Model) logLineStyle(level string) lipgloss.Style {
	styles := m.theme.Styles()
	switch level {
	case "ERROR":
		return styles.DangerText
	case "WARN":
		return styles.WarningText
	case "DEBUG":
		return styles.FaintText
	case "INFO":
		return styles.InfoText
	default:
		return styles.Text
	}
}
