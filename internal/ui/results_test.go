package ui

import (
	"testing"

	"github.com/five82/wildwave/internal/detector"
)

func TestResultCards_KeepServerOrderAndTierColors(t *testing.T) {
	th := GetTheme("Slate")
	result := detector.Result{Birds: []detector.Bird{
		{Name: "Robin", Confidence: 92},
		{Name: "Jay", Confidence: 54},
	}}

	cards := resultCards(result, th)
	if len(cards) != 2 {
		t.Fatalf("cards = %d, want 2", len(cards))
	}
	if cards[0].Rank != 1 || cards[0].Name != "Robin" || cards[0].Tier != detector.TierA || cards[0].Color != th.Success {
		t.Fatalf("first card = %+v, want #1 Robin tier A success", cards[0])
	}
	if cards[1].Rank != 2 || cards[1].Name != "Jay" || cards[1].Tier != detector.TierC || cards[1].Color != th.Danger {
		t.Fatalf("second card = %+v, want #2 Jay tier C danger", cards[1])
	}
}

func TestResultCards_DoNotSort(t *testing.T) {
	result := detector.Result{Birds: []detector.Bird{
		{Name: "Low", Confidence: 10},
		{Name: "High", Confidence: 99},
	}}
	cards := resultCards(result, GetTheme("Nightfox"))
	if cards[0].Name != "Low" || cards[1].Name != "High" {
		t.Fatalf("cards reordered: %+v", cards)
	}
	if result.Birds[0].Name != "Low" {
		t.Fatalf("input mutated")
	}
}

func TestResultCards_Boundaries(t *testing.T) {
	th := GetTheme("Kanagawa")
	cards := resultCards(detector.Result{Birds: []detector.Bird{
		{Name: "Edge A", Confidence: 85},
		{Name: "Edge B", Confidence: 60},
	}}, th)
	if cards[0].Color != th.Success || cards[1].Color != th.Warning {
		t.Fatalf("boundary colors = %q, %q; want success, warning", cards[0].Color, cards[1].Color)
	}
}

func TestResultCards_Empty(t *testing.T) {
	if cards := resultCards(detector.Result{}, GetTheme("Slate")); cards != nil {
		t.Fatalf("cards = %+v, want nil", cards)
	}
}

func TestResultCardFraction(t *testing.T) {
	cases := map[float64]float64{0: 0, 54: 0.54, 100: 1, 130: 1, -4: 0}
	for score, want := range cases {
		if got := (resultCard{Confidence: score}).Fraction(); got != want {
			t.Fatalf("Fraction(%v) = %v, want %v", score, got, want)
		}
	}
}
