package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/five82/wildwave/internal/detector"
)

func TestRenderResultTableColorsByTier(t *testing.T) {
	result := detector.Result{Birds: []detector.Bird{
		{Name: "Robin", Confidence: 85},
		{Name: "Wren", Confidence: 60},
		{Name: "Jay", Confidence: 59.9},
	}}

	out := renderResultTable(result, true)
	for _, want := range []string{
		ansiGreen + "85.0%" + ansiReset,
		ansiYellow + "60.0%" + ansiReset,
		ansiRed + "59.9%" + ansiReset,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in:\n%s", want, out)
		}
	}

	plain := renderResultTable(result, false)
	if strings.Contains(plain, "\x1b[") {
		t.Fatalf("expected plain output, got:\n%s", plain)
	}
}

func TestShouldColorizeNonFile(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	if shouldColorize(&bytes.Buffer{}) {
		t.Fatal("a buffer is not a terminal")
	}
}

func TestRenderTablePadsShortRows(t *testing.T) {
	out := renderTable([]string{"A", "B"}, [][]string{{"only"}}, nil)
	if !strings.Contains(out, "only") {
		t.Fatalf("missing row value:\n%s", out)
	}
	if renderTable(nil, nil, nil) != "" {
		t.Fatal("expected empty output without headers")
	}
}
