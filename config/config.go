package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config contains the credentials and endpoints for the Lightcast API,
// supplied once at process start.
type Config struct {
	ClientID         string
	ClientSecret     string
	BaseURL          string
	OAuthURL         string
	OAuthScope       string
	RateLimitPerHour int
}

// Load reads configuration from environment variables with sane defaults.
func Load() (Config, error) {
	cfg := Config{
		ClientID:         os.Getenv("LIGHTCAST_CLIENT_ID"),
		ClientSecret:     os.Getenv("LIGHTCAST_CLIENT_SECRET"),
		BaseURL:          getEnv("LIGHTCAST_BASE_URL", "https://api.lightcast.io"),
		OAuthURL:         getEnv("LIGHTCAST_OAUTH_URL", "https://auth.emsicloud.com/connect/token"),
		OAuthScope:       getEnv("LIGHTCAST_OAUTH_SCOPE", "emsi_open"),
		RateLimitPerHour: getInt("LIGHTCAST_RATE_LIMIT", 1000),
	}

	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return Config{}, fmt.Errorf("LIGHTCAST_CLIENT_ID and LIGHTCAST_CLIENT_SECRET are required")
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
