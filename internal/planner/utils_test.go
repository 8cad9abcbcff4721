package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}

	return t
}

func TestTripDays(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{"same day", "2025-05-01", "2025-05-01", 1},
		{"two days", "2025-05-01", "2025-05-02", 2},
		{"three days inclusive", "2025-05-01", "2025-05-03", 3},
		{"across month boundary", "2025-04-29", "2025-05-02", 4},
		{"across year boundary", "2024-12-30", "2025-01-02", 4},
		{"week long", "2025-07-01", "2025-07-07", 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TripDays(date(tt.start), date(tt.end)))
		})
	}
}

func TestExtractJSON_NoFence(t *testing.T) {
	in := `{"destination": "Tokyo"}`

	assert.Equal(t, in, extractJSON(in))
}

func TestExtractJSON_FencedEqualsUnfenced(t *testing.T) {
	doc := "{\n  \"destination\": \"Tokyo\",\n  \"days\": []\n}"

	fenced := "```json\n" + doc + "\n```"
	bare := "```\n" + doc + "\n```"

	assert.Equal(t, doc, extractJSON(fenced))
	assert.Equal(t, doc, extractJSON(bare))
	assert.Equal(t, extractJSON(doc), extractJSON(fenced),
		"fenced and unfenced content must parse identically")
}

func TestExtractJSON_FenceWithSurroundingText(t *testing.T) {
	doc := `{"destination": "Lisbon"}`
	wrapped := "Here is your itinerary:\n```json\n" + doc + "\n```\nEnjoy!"

	assert.Equal(t, doc, extractJSON(wrapped))
}

func TestExtractJSON_UnterminatedFence(t *testing.T) {
	in := "```json\n{\"destination\": \"Oslo\"}"

	// a malformed fence is left alone; the parse step decides its fate
	assert.Equal(t, in, extractJSON(in))
}

func TestDecodeItinerary_Defaults(t *testing.T) {
	it := decodeItinerary([]byte(`{}`))

	assert.NotNil(t, it.Days)
	assert.NotNil(t, it.Tips)
	assert.Empty(t, it.Days)
}

func TestDecodeItinerary_MistypedShape(t *testing.T) {
	// model returned days as a string; typed view degrades to empty defaults
	it := decodeItinerary([]byte(`{"days": "not an array"}`))

	assert.NotNil(t, it)
	assert.Empty(t, it.Days)
}

func TestActivityLabel_Fallback(t *testing.T) {
	named := Activity{Name: "Senso-ji Temple", Description: "Historic temple"}
	unnamed := Activity{Description: "Morning stroll"}

	assert.Equal(t, "Senso-ji Temple", named.Label())
	assert.Equal(t, "Morning stroll", unnamed.Label())
}
