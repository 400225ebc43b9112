package config

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration
type Config struct {
	Server    ServerConfig
	OpenAI    OpenAIConfig
	Vapi      VapiConfig
	Dashboard DashboardConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port            string   `envconfig:"PORT" default:"8080"`
	Host            string   `envconfig:"HOST" default:"0.0.0.0"`
	Environment     string   `envconfig:"ENVIRONMENT" default:"development"`
	AllowedOrigins  []string `envconfig:"ALLOWED_ORIGINS" default:"*"`
	ShutdownTimeout int      `envconfig:"SHUTDOWN_TIMEOUT" default:"10"`
}

// OpenAIConfig holds OpenAI completion service configuration
type OpenAIConfig struct {
	APIKey      string  `envconfig:"OPENAI_API_KEY"`
	BaseURL     string  `envconfig:"OPENAI_API_URL" default:"https://api.openai.com"`
	Model       string  `envconfig:"OPENAI_MODEL" default:"gpt-4.1-mini"`
	Temperature float64 `envconfig:"OPENAI_TEMPERATURE" default:"0.1"`
	MaxTokens   int     `envconfig:"OPENAI_MAX_TOKENS" default:"4000"`
}

// VapiConfig holds Vapi call platform configuration
type VapiConfig struct {
	Token   string `envconfig:"VAPI_TOKEN"`
	BaseURL string `envconfig:"VAPI_API_URL" default:"https://api.vapi.ai"`
	UseMock bool   `envconfig:"VAPI_USE_MOCK" default:"false"`
}

// DashboardConfig holds dashboard server configuration
type DashboardConfig struct {
	Port       string `envconfig:"DASHBOARD_PORT" default:"8081"`
	SessionTTL string `envconfig:"DASHBOARD_SESSION_TTL" default:"2h"`
}

// Load loads configuration from environment variables.
// API credentials are intentionally not validated here; missing keys surface
// as failures on the first remote call.
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	return cfg, nil
}

// Addr returns the server listen address
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}
