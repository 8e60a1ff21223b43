package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds everything the CLI reads from the environment.
type Config struct {
	APIBaseURL     string `envconfig:"API_BASE_URL" default:"http://127.0.0.1:8000/"`
	GoogleClientID string `envconfig:"GOOGLE_CLIENT_ID"`

	RedisAddress  string `envconfig:"REDIS_ADDRESS"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`

	RequestTimeoutSeconds int    `envconfig:"REQUEST_TIMEOUT_SECONDS" default:"15"`
	CacheTTLSeconds       int    `envconfig:"CACHE_TTL_SECONDS" default:"60"`
	TokenFile             string `envconfig:"TOKEN_FILE" default:".citisevak-token"`
	LogLevel              string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads a .env file when present, then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("citisevak", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
