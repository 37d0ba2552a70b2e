package ui

// renderPicker renders the file browser overlay.
func (m Model) renderPicker() string {
	styles := m.theme.Styles()
	title := styles.AccentText.Bold(true).Render("Choose an audio file") +
		styles.FaintText.Render("  "+truncateMiddle(m.picker.CurrentDirectory, maxInt(m.width-26, 10)))
	return m.renderHeader() + "\n" + m.renderCommandBar() + "\n" + title + "\n" + m.picker.View()
}
