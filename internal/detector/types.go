package detector

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// Bird is one ranked species match returned by the service.
type Bird struct {
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"`
}

// Tier returns the display tier for the bird's confidence.
func (b Bird) Tier() Tier {
	return TierFor(b.Confidence)
}

// Result is the decoded detection payload, in server rank order.
type Result struct {
	Birds []Bird `json:"birds"`
}

// Tier buckets a confidence score for display.
type Tier int

const (
	TierC Tier = iota // below 60
	TierB             // 60 to below 85
	TierA             // 85 and above
)

const (
	tierAThreshold = 85
	tierBThreshold = 60
)

// TierFor maps a 0-100 confidence to its tier. Thresholds are inclusive.
func TierFor(score float64) Tier {
	switch {
	case score >= tierAThreshold:
		return TierA
	case score >= tierBThreshold:
		return TierB
	default:
		return TierC
	}
}

func (t Tier) String() string {
	switch t {
	case TierA:
		return "A"
	case TierB:
		return "B"
	default:
		return "C"
	}
}

// wireResult mirrors the response with pointers so missing fields can be
// told apart from zero values.
type wireResult struct {
	Birds *[]wireBird `json:"birds"`
}

type wireBird struct {
	Name       *string  `json:"name"`
	Confidence *float64 `json:"confidence"`
}

// decodeResult parses and validates a response body.
func decodeResult(data []byte) (Result, error) {
	var wire wireResult
	if err := json.Unmarshal(data, &wire); err != nil {
		return Result{}, fmt.Errorf("decode response: %w", err)
	}
	if wire.Birds == nil {
		return Result{}, fmt.Errorf("invalid response: missing birds")
	}

	birds := make([]Bird, 0, len(*wire.Birds))
	for i, wb := range *wire.Birds {
		if wb.Name == nil || strings.TrimSpace(*wb.Name) == "" {
			return Result{}, fmt.Errorf("invalid response: birds[%d] has no name", i)
		}
		if wb.Confidence == nil {
			return Result{}, fmt.Errorf("invalid response: birds[%d] has no confidence", i)
		}
		birds = append(birds, Bird{Name: *wb.Name, Confidence: *wb.Confidence})
	}

	result := Result{Birds: birds}
	if err := result.Validate(); err != nil {
		return Result{}, err
	}
	return result, nil
}

// Validate checks that every entry is named and scored within [0,100].
func (r Result) Validate() error {
	for i, b := range r.Birds {
		if strings.TrimSpace(b.Name) == "" {
			return fmt.Errorf("invalid response: birds[%d] has no name", i)
		}
		if math.IsNaN(b.Confidence) || b.Confidence < 0 || b.Confidence > 100 {
			return fmt.Errorf("invalid response: birds[%d] confidence %v outside 0-100", i, b.Confidence)
		}
	}
	return nil
}
