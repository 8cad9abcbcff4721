package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

const (
	defaultGatewayURL = "https://ai.gateway.lovable.dev/v1"
	defaultModel      = "google/gemini-2.5-flash"
)

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}

	databaseURL := os.Getenv("DATABASE_URL")
	jwtSecret := os.Getenv("JWT_SECRET")
	gatewayKey := os.Getenv("AI_GATEWAY_API_KEY")
	gatewayURL := os.Getenv("AI_GATEWAY_URL")
	model := os.Getenv("AI_MODEL")
	environment := os.Getenv("ENVIRONMENT")

	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}

	if gatewayKey == "" {
		return nil, fmt.Errorf("AI_GATEWAY_API_KEY environment variable is required")
	}

	if gatewayURL == "" {
		gatewayURL = defaultGatewayURL
	}

	if model == "" {
		model = defaultModel
	}

	if environment == "" {
		environment = "development"
	}

	return &Config{
		DatabaseURL:   databaseURL,
		JWTSecret:     jwtSecret,
		GatewayAPIKey: gatewayKey,
		GatewayURL:    gatewayURL,
		Model:         model,
		Environment:   environment,
	}, nil
}
