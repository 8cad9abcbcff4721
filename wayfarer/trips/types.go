package trips

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"codeberg.org/wayfarer/server/internal/planner"
	"github.com/jackc/pgx/v5/pgxpool"
)

// handles trip database operations
type Repository struct {
	db *pgxpool.Pool
}

// Trip pairs user-supplied parameters with a generated itinerary document.
// Rows are created once by the generation flow and never updated.
type Trip struct {
	ID          string            `json:"id"`
	UserID      string            `json:"user_id"`
	Destination string            `json:"destination"`
	Interests   []string          `json:"interests"`
	StartDate   Date              `json:"start_date"`
	EndDate     Date              `json:"end_date"`
	Itinerary   ItineraryDocument `json:"itinerary"`
	CreatedAt   time.Time         `json:"created_at"`
}

// contains data for inserting a trip
type CreateTripRequest struct {
	Destination string
	Interests   []string
	StartDate   Date
	EndDate     Date
	Itinerary   ItineraryDocument
}

// Date is a calendar date, serialized as "2006-01-02"
type Date struct {
	time.Time
}

const dateLayout = "2006-01-02"

func NewDate(t time.Time) Date {
	return Date{t}
}

// ParseDate parses a "2006-01-02" date string
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}

	return Date{t}, nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(dateLayout))
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}

func (d Date) Value() (driver.Value, error) {
	return d.Time, nil
}

func (d *Date) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*d = Date{}
	case time.Time:
		*d = Date{v}
	case string:
		parsed, err := ParseDate(v)
		if err != nil {
			return err
		}
		*d = parsed
	default:
		return fmt.Errorf("cannot scan %T into Date", value)
	}

	return nil
}

// ItineraryDocument is the model-produced JSON stored verbatim. The document
// is not schema-validated; typed access goes through Document().
type ItineraryDocument json.RawMessage

func (doc ItineraryDocument) Value() (driver.Value, error) {
	if len(doc) == 0 {
		return "{}", nil
	}

	return string(doc), nil
}

func (doc *ItineraryDocument) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*doc = ItineraryDocument("{}")
	case []byte:
		*doc = append((*doc)[0:0], v...)
	case string:
		*doc = ItineraryDocument(v)
	default:
		return fmt.Errorf("cannot scan %T into ItineraryDocument", value)
	}

	return nil
}

func (doc ItineraryDocument) MarshalJSON() ([]byte, error) {
	if len(doc) == 0 {
		return []byte("null"), nil
	}

	return doc, nil
}

func (doc *ItineraryDocument) UnmarshalJSON(data []byte) error {
	*doc = append((*doc)[0:0], data...)
	return nil
}

// Document returns the typed view of the stored itinerary with defaults
// applied for every rendering path
func (doc ItineraryDocument) Document() *planner.Itinerary {
	var it planner.Itinerary

	if err := json.Unmarshal(doc, &it); err != nil {
		it = planner.Itinerary{}
	}

	it.Normalize()

	return &it
}

// a per-day preview line for dashboard cards
type Highlight struct {
	Day   int    `json:"day"`
	Label string `json:"label"`
}

// Highlights returns preview lines for up to limit days: the first
// activity's label, or the day description when no activity has one
func (t *Trip) Highlights(limit int) []Highlight {
	doc := t.Itinerary.Document()

	highlights := make([]Highlight, 0, limit)

	for i, day := range doc.Days {
		if i >= limit {
			break
		}

		label := day.Description
		if len(day.Activities) > 0 && day.Activities[0].Label() != "" {
			label = day.Activities[0].Label()
		}

		dayNumber := day.Day
		if dayNumber == 0 {
			dayNumber = i + 1
		}

		highlights = append(highlights, Highlight{Day: dayNumber, Label: label})
	}

	return highlights
}
