package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/five82/wildwave/internal/detector"
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
)

// shouldColorize reports whether w is a terminal that accepts color.
func shouldColorize(w io.Writer) bool {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func tierColor(tier detector.Tier) string {
	switch tier {
	case detector.TierA:
		return ansiGreen
	case detector.TierB:
		return ansiYellow
	default:
		return ansiRed
	}
}

func colorizeTier(value string, tier detector.Tier, colorize bool) string {
	if !colorize {
		return value
	}
	return tierColor(tier) + value + ansiReset
}

func renderResultTable(result detector.Result, colorize bool) string {
	headers := []string{"#", "Species", "Confidence", "Tier"}
	rows := make([][]string, 0, len(result.Birds))
	for i, b := range result.Birds {
		tier := b.Tier()
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			b.Name,
			colorizeTier(fmt.Sprintf("%.1f%%", b.Confidence), tier, colorize),
			colorizeTier(tier.String(), tier, colorize),
		})
	}
	return renderTable(headers, rows, []columnAlignment{alignRight, alignLeft, alignRight, alignLeft})
}

func formatBytes(n int64) string {
	if n <= 0 {
		return "0 B"
	}
	return humanize.IBytes(uint64(n))
}
