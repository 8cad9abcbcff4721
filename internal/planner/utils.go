package planner

import (
	"encoding/json"
	"math"
	"strings"
	"time"
)

// TripDays computes the inclusive calendar-day span of a trip:
// ceil((end - start) / 1 day) + 1. The value is advisory - it is embedded
// in the prompt and never validated against the model's output length.
func TripDays(start, end time.Time) int {
	return int(math.Ceil(end.Sub(start).Hours()/24)) + 1
}

// extractJSON strips a fenced markdown block from the model response when
// present, so a wrapped document parses the same as an unwrapped one
func extractJSON(text string) string {
	text = strings.TrimSpace(text)

	startIdx := strings.Index(text, "```")
	if startIdx == -1 {
		return text
	}

	// skip the opening fence line (and any language identifier on it)
	afterStart := startIdx + 3
	newlineIdx := strings.Index(text[afterStart:], "\n")
	if newlineIdx == -1 {
		return text
	}
	bodyStart := afterStart + newlineIdx + 1

	endIdx := strings.Index(text[bodyStart:], "```")
	if endIdx == -1 {
		return text
	}

	return strings.TrimSpace(text[bodyStart : bodyStart+endIdx])
}

// decodeItinerary produces the typed view of a raw document. The model's
// output is not schema-validated, so a shape mismatch yields an empty
// normalized itinerary rather than an error.
func decodeItinerary(raw []byte) *Itinerary {
	var it Itinerary

	if err := json.Unmarshal(raw, &it); err != nil {
		it = Itinerary{}
	}

	it.Normalize()

	return &it
}
