package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHelp renders the help overlay from the key map.
func (m Model) renderHelp() string {
	styles := m.theme.Styles().WithBackground(m.theme.FocusBg)
	titles := []string{"Analyse", "Log overlay", "General"}

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.Warning)).
		Background(lipgloss.Color(m.theme.FocusBg)).
		Width(12)

	groups := m.keys.FullHelp()
	for i, group := range groups {
		if i < len(titles) {
			b.WriteString(styles.AccentText.Bold(true).Render(titles[i]))
			b.WriteString("\n")
		}
		for _, binding := range group {
			h := binding.Help()
			b.WriteString(keyStyle.Render(h.Key))
			b.WriteString(styles.Text.Render(h.Desc))
			b.WriteString("\n")
		}
		if i < len(groups)-1 {
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(m.renderThemeList(styles))
	b.WriteString("\n\n")
	b.WriteString(styles.MutedText.Render("Paste or drop a file path to select it."))

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Background(lipgloss.Color(m.theme.FocusBg)).
		Padding(1, 2).
		Width(44)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(b.String()),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}

// renderThemeList lists the themes T cycles through, current one first-class.
func (m Model) renderThemeList(styles Styles) string {
	names := ThemeNames()
	parts := make([]string, 0, len(names))
	for _, name := range names {
		if name == m.theme.Name {
			parts = append(parts, styles.AccentText.Bold(true).Render(name))
			continue
		}
		parts = append(parts, styles.FaintText.Render(name))
	}
	return styles.MutedText.Render("Themes ") + strings.Join(parts, styles.FaintText.Render(" · "))
}
