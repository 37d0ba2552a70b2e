package ui

// Layout limits.
const (
	// contentMaxWidth caps the upload zone and result cards.
	contentMaxWidth = 72

	// contentMinWidth keeps cards legible on narrow terminals.
	contentMinWidth = 24

	// pickerChromeHeight is the rows taken by the header, command bar and
	// picker title.
	pickerChromeHeight = 4

	// pickerMinHeight is the smallest picker list height.
	pickerMinHeight = 3
)

// logTailLines is how many trailing log lines the log overlay loads.
const logTailLines = 500

func (m Model) contentWidth() int {
	w := m.width - 4
	if w > contentMaxWidth {
		w = contentMaxWidth
	}
	if w < contentMinWidth {
		w = contentMinWidth
	}
	return w
}

// gaugeWidth leaves room for the card border and padding.
func (m Model) gaugeWidth() int {
	return m.contentWidth() - 4
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
