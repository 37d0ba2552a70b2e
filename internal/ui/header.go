package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/wildwave/internal/state"
)

const (
	tagline         = "AI-Powered Avian Acoustic Detection"
	taglineMinWidth = 96
)

// renderHeader renders the status bar: logo, endpoint and session phase.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	sep := bg.Spaces(2)

	status, statusStyle := m.statusLabel()
	parts := []string{bg.Render("wildwave", styles.Logo)}
	reserved := 40
	if m.width >= taglineMinWidth {
		parts = append(parts, bg.Render(tagline, styles.MutedText))
		reserved += len(tagline) + 2
	}
	parts = append(parts, bg.Render(status, statusStyle))
	if m.detector != nil {
		endpoint := truncateMiddle(m.detector.Endpoint(), maxInt(m.width-reserved, 16))
		parts = append(parts, bg.Render(endpoint, styles.FaintText))
	}
	return styles.Header.Width(m.width).Render(strings.Join(parts, sep))
}

func (m Model) statusLabel() (string, lipgloss.Style) {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	switch m.session.Phase() {
	case state.FileSelected:
		return "READY", styles.AccentText.Bold(true)
	case state.Uploading:
		return "ANALYSING", styles.WarningText.Bold(true)
	case state.ResultsShown:
		return fmt.Sprintf("%d SPECIES", len(m.session.Result().Birds)), styles.SuccessText
	case state.ErrorShown:
		return "ERROR", styles.DangerText
	default:
		return "IDLE", styles.MutedText
	}
}

// renderCommandBar renders the key hints bar.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	type cmd struct{ key, desc string }
	var commands []cmd
	switch m.overlay {
	case overlayPicker:
		commands = []cmd{
			{"j/k", "Navigate"},
			{"l/enter", "Open"},
			{"h", "Up"},
			{"esc", "Close"},
		}
	case overlayLogs:
		commands = []cmd{
			{"j/k", "Scroll"},
			{"pgup/pgdown", "Page"},
			{"esc", "Close"},
		}
	default:
		commands = []cmd{
			{"o", "Browse"},
			{"enter", "Identify"},
			{"L", "Log"},
			{"?", "More"},
			{"e", "Quit"},
		}
	}

	colon := bg.Sep(":")
	sep := bg.Spaces(2)
	segments := make([]string, 0, len(commands)+1)
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}
	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	return styles.Header.Width(m.width).Render(strings.Join(segments, sep))
}
