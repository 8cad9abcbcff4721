package main

import (
	"codeberg.org/wayfarer/server/internal/config"
	"codeberg.org/wayfarer/server/internal/llm"
	"codeberg.org/wayfarer/server/internal/planner"
)

// creates and configures all service clients
func InitializeServices(cfg *config.Config) *Services {
	gateway := llm.NewGatewayClient(llm.GatewayConfig{
		APIKey:  cfg.GatewayAPIKey,
		BaseURL: cfg.GatewayURL,
		Model:   cfg.Model,
	})

	return &Services{
		Planner: planner.New(gateway),
		Gateway: gateway,
	}
}
