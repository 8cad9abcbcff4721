package trips

import (
	"context"

	"codeberg.org/wayfarer/server/wayfarer/trips"
)

// provides trip persistence operations needed by the handlers
type TripStore interface {
	List(ctx context.Context, userID string) ([]trips.Trip, error)
	Get(ctx context.Context, tripID, userID string) (*trips.Trip, error)
	Delete(ctx context.Context, tripID, userID string) error
}

// TripsListResponse wraps the dashboard trip list
type TripsListResponse struct {
	Trips []trips.Trip `json:"trips"`
}

// TripResponse wraps a single trip
type TripResponse struct {
	Trip *trips.Trip `json:"trip"`
}

// HighlightsResponse carries dashboard card preview lines
type HighlightsResponse struct {
	Highlights    []trips.Highlight `json:"highlights"`
	RemainingDays int               `json:"remaining_days"`
}

// MessageResponse for simple success messages
type MessageResponse struct {
	Message string `json:"message"`
}
