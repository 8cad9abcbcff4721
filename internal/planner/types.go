package planner

import (
	"encoding/json"
	"time"

	"codeberg.org/wayfarer/server/internal/llm"
)

// Planner turns trip parameters into a generated itinerary document
type Planner struct {
	generator llm.ChatCompleter
}

// contains all inputs for itinerary generation
type PlanRequest struct {
	Destination string
	Interests   []string
	StartDate   time.Time
	EndDate     time.Time
}

// result of a generation call
type PlanResult struct {
	// Raw is the model's document exactly as parsed, preserved for storage
	Raw json.RawMessage

	// Itinerary is the typed view of Raw with defaults applied; rendering
	// paths must not assume the model populated any field
	Itinerary *Itinerary

	Days  int
	Model string
	Usage llm.Usage
}

// Itinerary is the model-produced document. Every field is optional: the
// shape is requested in the prompt but never guaranteed by the model.
type Itinerary struct {
	Destination     string          `json:"destination,omitempty"`
	Summary         string          `json:"summary,omitempty"`
	Days            []Day           `json:"days"`
	Tips            []string        `json:"tips,omitempty"`
	Recommendations Recommendations `json:"recommendations,omitempty"`
}

// one day of the itinerary
type Day struct {
	Day         int        `json:"day,omitempty"`
	Date        string     `json:"date,omitempty"`
	Theme       string     `json:"theme,omitempty"`
	Description string     `json:"description,omitempty"`
	Activities  []Activity `json:"activities"`
}

// a single scheduled activity
type Activity struct {
	Time        string `json:"time,omitempty"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Duration    string `json:"duration,omitempty"`
	Category    string `json:"category,omitempty"`
	Tips        string `json:"tips,omitempty"`
}

// destination-level suggestions
type Recommendations struct {
	Restaurants    []string `json:"restaurants,omitempty"`
	Accommodation  []string `json:"accommodation,omitempty"`
	Transportation []string `json:"transportation,omitempty"`
}

// Label returns the activity's display name, falling back to its
// description when the model omitted the name
func (a Activity) Label() string {
	if a.Name != "" {
		return a.Name
	}

	return a.Description
}

// Normalize fills defaults so rendering paths never see nil slices
func (it *Itinerary) Normalize() {
	if it.Days == nil {
		it.Days = []Day{}
	}

	for i := range it.Days {
		if it.Days[i].Activities == nil {
			it.Days[i].Activities = []Activity{}
		}
	}

	if it.Tips == nil {
		it.Tips = []string{}
	}
}
