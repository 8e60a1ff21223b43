package config_test

import (
	"testing"

	"citisevak-cli/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "http://127.0.0.1:8000/", cfg.APIBaseURL)
	assert.Equal(t, 15, cfg.RequestTimeoutSeconds)
	assert.Equal(t, 60, cfg.CacheTTLSeconds)
	assert.Empty(t, cfg.RedisAddress)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://api.citisevak.example/")
	t.Setenv("REDIS_ADDRESS", "localhost:6379")
	t.Setenv("CACHE_TTL_SECONDS", "120")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "https://api.citisevak.example/", cfg.APIBaseURL)
	assert.Equal(t, "localhost:6379", cfg.RedisAddress)
	assert.Equal(t, 120, cfg.CacheTTLSeconds)
}
