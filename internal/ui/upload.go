package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/wildwave/internal/audio"
)

// Fixed labels on the main screen.
const (
	uploadPlaceholder = "Drag audio here or press o to browse"
	actionLabel       = "Identify Species"
)

// renderMain renders the full main screen.
func (m Model) renderMain() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n\n")

	blocks := []string{m.renderUploadZone(), "", m.renderAction()}
	if toast := m.renderToast(); toast != "" {
		blocks = append(blocks, "", toast)
	}
	if results := m.renderResults(); results != "" {
		blocks = append(blocks, "", results)
	}
	b.WriteString(lipgloss.NewStyle().PaddingLeft(2).Render(lipgloss.JoinVertical(lipgloss.Left, blocks...)))
	return b.String()
}

// renderUploadZone renders the drop target with the selected file, if any.
func (m Model) renderUploadZone() string {
	styles := m.theme.Styles()
	width := m.contentWidth()
	file := m.session.File()

	border := m.theme.Border
	var lines []string
	if file.IsZero() {
		lines = []string{
			styles.MutedText.Render(uploadPlaceholder),
			styles.FaintText.Render(truncate(strings.Join(audio.Extensions(), " "), width-4)),
		}
	} else {
		border = m.theme.BorderFocus
		lines = []string{
			styles.Text.Bold(true).Render("♪ " + truncate(file.Name, width-6)),
			styles.MutedText.Render(truncate(describeFile(file), width-4)),
			styles.FaintText.Render(truncateMiddle(file.Path, width-4)),
		}
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(border)).
		Padding(0, 1).
		Width(width).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}

// renderAction renders the submit button. It is disabled without a file and
// while an upload is in flight.
func (m Model) renderAction() string {
	styles := m.theme.Styles()
	if m.session.Busy() {
		label := styles.ButtonDisabled.Render(actionLabel)
		return label + " " + m.spinner.View() + styles.MutedText.Render(" Analysing "+truncate(m.session.File().Name, 32))
	}
	if !m.session.CanSubmit() {
		return styles.ButtonDisabled.Render(actionLabel)
	}
	return styles.Button.Render(actionLabel) + styles.FaintText.Render("  enter")
}

// renderToast renders the one-line error message.
func (m Model) renderToast() string {
	msg := m.session.ErrorMessage()
	if msg == "" {
		return ""
	}
	return m.theme.Styles().Toast.Render("✗ " + msg)
}
