package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/five82/wildwave/internal/audio"
)

func TestTruncate(t *testing.T) {
	if got := truncate("  hello  ", 10); got != "hello" {
		t.Fatalf("truncate = %q, want hello", got)
	}
	if got := truncate("Eurasian Blackbird", 10); got != "Eurasia..." {
		t.Fatalf("truncate = %q, want Eurasia...", got)
	}
	if got := truncate("Grünfink", 3); got != "Grü" {
		t.Fatalf("truncate = %q, want Grü", got)
	}
	if got := truncate("x", 0); got != "" {
		t.Fatalf("truncate limit 0 = %q, want empty", got)
	}
}

func TestTruncateMiddle(t *testing.T) {
	path := "/home/birder/recordings/2026/spring/dawn-chorus.wav"
	got := truncateMiddle(path, 24)
	if len([]rune(got)) != 24 {
		t.Fatalf("truncateMiddle length = %d, want 24 (%q)", len([]rune(got)), got)
	}
	if !strings.HasSuffix(got, "chorus.wav") || !strings.Contains(got, "...") {
		t.Fatalf("truncateMiddle = %q, want tail kept with ellipsis", got)
	}
	if got := truncateMiddle("short", 24); got != "short" {
		t.Fatalf("truncateMiddle = %q, want short", got)
	}
}

func TestFormatConfidence(t *testing.T) {
	cases := map[float64]string{92: "92%", 54.25: "54.2%", 85.06: "85.1%", 0: "0%"}
	for in, want := range cases {
		if got := formatConfidence(in); got != want {
			t.Fatalf("formatConfidence(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	cases := map[time.Duration]string{
		0:                         "",
		1500 * time.Millisecond:   "0:02",
		83 * time.Second:          "1:23",
		time.Hour + 2*time.Second: "1:00:02",
	}
	for in, want := range cases {
		if got := formatDuration(in); got != want {
			t.Fatalf("formatDuration(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestDescribeFile(t *testing.T) {
	f := audio.SelectedFile{
		Name:     "robin.wav",
		MIMEType: "audio/wav",
		Size:     2 * 1024 * 1024,
		Info: audio.Info{
			Format:     "WAV",
			SampleRate: 48000,
			Channels:   2,
			BitDepth:   16,
			Duration:   83 * time.Second,
		},
	}
	want := "audio/wav · 2.0 MiB · 1:23 · 48.0 kHz · stereo · 16-bit"
	if got := describeFile(f); got != want {
		t.Fatalf("describeFile = %q, want %q", got, want)
	}

	bare := audio.SelectedFile{Name: "x.mp3", MIMEType: "audio/mpeg"}
	if got := describeFile(bare); got != "audio/mpeg" {
		t.Fatalf("describeFile = %q, want audio/mpeg", got)
	}
}
