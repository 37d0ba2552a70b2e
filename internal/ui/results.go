package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/wildwave/internal/detector"
)

// resultCard is the display model for one ranked match.
type resultCard struct {
	Rank       int
	Name       string
	Confidence float64
	Tier       detector.Tier
	Color      string
}

// Fraction returns the gauge fill in [0,1].
func (c resultCard) Fraction() float64 {
	f := c.Confidence / 100
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	default:
		return f
	}
}

// resultCards maps a result to cards in server order. It never sorts or
// modifies the result.
func resultCards(result detector.Result, theme Theme) []resultCard {
	if len(result.Birds) == 0 {
		return nil
	}
	cards := make([]resultCard, 0, len(result.Birds))
	for i, b := range result.Birds {
		tier := b.Tier()
		cards = append(cards, resultCard{
			Rank:       i + 1,
			Name:       b.Name,
			Confidence: b.Confidence,
			Tier:       tier,
			Color:      theme.TierColor(tier),
		})
	}
	return cards
}

func (m Model) renderResults() string {
	if !m.session.HasResult() {
		return ""
	}
	styles := m.theme.Styles()
	cards := resultCards(m.session.Result(), m.theme)
	width := m.contentWidth()

	var b strings.Builder
	title := styles.AccentText.Bold(true).Render("Results")
	count := styles.MutedText.Render(fmt.Sprintf("  %d species", len(cards)))
	b.WriteString(title + count)
	b.WriteString("\n")

	if len(cards) == 0 {
		b.WriteString(styles.MutedText.Render("No species detected."))
		return b.String()
	}

	for i, card := range cards {
		b.WriteString("\n")
		b.WriteString(m.renderCard(i, card, width))
	}
	return b.String()
}

func (m Model) renderCard(i int, card resultCard, width int) string {
	styles := m.theme.Styles()
	tierStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(card.Color)).Bold(true)

	rank := styles.FaintText.Render(fmt.Sprintf("#%d", card.Rank))
	score := tierStyle.Render(formatConfidence(card.Confidence) + "  " + card.Tier.String())

	inner := width - 2
	nameWidth := inner - lipgloss.Width(rank) - lipgloss.Width(score) - 3
	name := styles.Text.Bold(true).Render(truncate(card.Name, maxInt(nameWidth, 4)))

	gap := inner - lipgloss.Width(rank) - lipgloss.Width(name) - lipgloss.Width(score) - 1
	line := rank + " " + name + strings.Repeat(" ", maxInt(gap, 1)) + score

	var gauge string
	if i < len(m.gauges) {
		gauge = m.gauges[i].View()
	} else {
		bar := m.newGauge(card.Color)
		gauge = bar.ViewAs(card.Fraction())
	}

	return lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(lipgloss.Color(card.Color)).
		PaddingLeft(1).
		Width(width).
		Render(line + "\n" + gauge)
}
