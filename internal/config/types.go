package config

type Config struct {
	DatabaseURL   string
	JWTSecret     string
	GatewayAPIKey string
	GatewayURL    string
	Model         string
	Environment   string
}
