package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/five82/wildwave/internal/audio"
)

// truncate shortens a string to limit runes, adding an ellipsis if needed.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 {
		return ""
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	return string(runes[:limit-3]) + "..."
}

// truncateMiddle shortens a path by cutting its middle, keeping more of the
// end so the file name stays visible.
func truncateMiddle(value string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit <= 5 {
		return string(runes[:limit])
	}
	endLen := (limit - 3) * 2 / 3
	startLen := limit - 3 - endLen
	return string(runes[:startLen]) + "..." + string(runes[len(runes)-endLen:])
}

// formatConfidence renders a 0-100 score with one decimal, dropping ".0".
func formatConfidence(score float64) string {
	s := fmt.Sprintf("%.1f", score)
	s = strings.TrimSuffix(s, ".0")
	return s + "%"
}

// formatDuration renders a clip length as m:ss or h:mm:ss.
func formatDuration(d time.Duration) string {
	if d <= 0 {
		return ""
	}
	total := int(d.Round(time.Second) / time.Second)
	h, m, s := total/3600, (total%3600)/60, total%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// describeFile builds the detail line under a selected file name.
func describeFile(f audio.SelectedFile) string {
	parts := []string{f.MIMEType}
	if f.Size > 0 {
		parts = append(parts, humanize.IBytes(uint64(f.Size)))
	}
	info := f.Info
	if d := formatDuration(info.Duration); d != "" {
		parts = append(parts, d)
	}
	if info.SampleRate > 0 {
		parts = append(parts, fmt.Sprintf("%.1f kHz", float64(info.SampleRate)/1000))
	}
	switch info.Channels {
	case 0:
	case 1:
		parts = append(parts, "mono")
	case 2:
		parts = append(parts, "stereo")
	default:
		parts = append(parts, fmt.Sprintf("%d ch", info.Channels))
	}
	if info.BitDepth > 0 {
		parts = append(parts, fmt.Sprintf("%d-bit", info.BitDepth))
	}
	return strings.Join(filterEmpty(parts), " · ")
}

func filterEmpty(values []string) []string {
	out := values[:0]
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}
