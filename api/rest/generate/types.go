package generate

import (
	"context"

	"codeberg.org/wayfarer/server/internal/planner"
	"codeberg.org/wayfarer/server/wayfarer/trips"
)

// produces an itinerary document from trip parameters
type ItineraryPlanner interface {
	Plan(ctx context.Context, req planner.PlanRequest) (*planner.PlanResult, error)
}

// persists generated trips
type TripCreator interface {
	Insert(ctx context.Context, userID string, req trips.CreateTripRequest) (*trips.Trip, error)
}

// Request represents the request body for itinerary generation
type Request struct {
	Destination string   `json:"destination" binding:"required,max=200"`
	Interests   []string `json:"interests" binding:"required,min=1,max=20,dive,max=100"`
	StartDate   string   `json:"startDate" binding:"required"`
	EndDate     string   `json:"endDate" binding:"required"`
}

// Response wraps the saved trip
type Response struct {
	Trip *trips.Trip `json:"trip"`
}
