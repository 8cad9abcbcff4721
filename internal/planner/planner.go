package planner

import (
	"context"
	"encoding/json"
	"fmt"

	"codeberg.org/wayfarer/server/internal/llm"
)

func New(generator llm.ChatCompleter) *Planner {
	return &Planner{generator: generator}
}

// Plan makes a single gateway call and parses the reply as an itinerary
// document. Every failure is terminal: gateway rejections pass through
// unwrapped sentinels and a malformed document is never repaired or retried.
func (p *Planner) Plan(ctx context.Context, req PlanRequest) (*PlanResult, error) {
	days := TripDays(req.StartDate, req.EndDate)

	resp, err := p.generator.Complete(ctx, llm.CompletionRequest{
		SystemPrompt: systemPrompt,
		Messages: []llm.Message{
			{Role: "user", Content: buildPrompt(req, days)},
		},
	})

	if err != nil {
		return nil, fmt.Errorf("failed to generate itinerary: %w", err)
	}

	text := extractJSON(resp.Text)

	// validity gate only - the document's shape is the model's to decide
	var doc any
	if err := json.Unmarshal([]byte(text), &doc); err != nil {
		return nil, fmt.Errorf("failed to parse itinerary JSON: %w", err)
	}

	return &PlanResult{
		Raw:       json.RawMessage(text),
		Itinerary: decodeItinerary([]byte(text)),
		Days:      days,
		Model:     p.generator.Model(),
		Usage:     resp.Usage,
	}, nil
}
