package ui

import (
	"testing"

	"github.com/five82/wildwave/internal/detector"
)

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	if len(names) != 3 {
		t.Fatalf("ThemeNames() returned %d names, want 3", len(names))
	}
	if names[0] != "Nightfox" || names[1] != "Kanagawa" || names[2] != "Slate" {
		t.Fatalf("ThemeNames() = %v, want [Nightfox Kanagawa Slate]", names)
	}
	names[0] = "mutated"
	if ThemeNames()[0] != "Nightfox" {
		t.Fatalf("ThemeNames() exposes internal order")
	}
}

func TestNextTheme(t *testing.T) {
	cases := map[string]string{
		"Nightfox": "Kanagawa",
		"Kanagawa": "Slate",
		"Slate":    "Nightfox",
		"Unknown":  "Nightfox",
	}
	for in, want := range cases {
		if got := NextTheme(in); got != want {
			t.Fatalf("NextTheme(%s) = %q, want %q", in, got, want)
		}
	}
}

func TestGetTheme(t *testing.T) {
	for _, name := range ThemeNames() {
		if got := GetTheme(name).Name; got != name {
			t.Fatalf("GetTheme(%s).Name = %q", name, got)
		}
	}
	if got := GetTheme("Unknown").Name; got != "Nightfox" {
		t.Fatalf("GetTheme(Unknown).Name = %q, want Nightfox (fallback)", got)
	}
}

func TestTierColor(t *testing.T) {
	for _, name := range ThemeNames() {
		th := GetTheme(name)
		if th.TierColor(detector.TierA) != th.Success {
			t.Fatalf("%s: tier A color = %q, want success", name, th.TierColor(detector.TierA))
		}
		if th.TierColor(detector.TierB) != th.Warning {
			t.Fatalf("%s: tier B color = %q, want warning", name, th.TierColor(detector.TierB))
		}
		if th.TierColor(detector.TierC) != th.Danger {
			t.Fatalf("%s: tier C color = %q, want danger", name, th.TierColor(detector.TierC))
		}
		if th.Success == th.Warning || th.Warning == th.Danger {
			t.Fatalf("%s: tier colors must differ", name)
		}
	}
}
