package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds runtime configuration parsed from environment variables.
type Config struct {
	HTTPAddr        string
	CommerceAPIURL  string
	RedisAddr       string
	SessionTTL      time.Duration
	ShutdownTimeout time.Duration
	CORSOrigins     []string
}

// FromEnv builds Config with defaults, overridden by environment variables.
// An empty REDIS_ADDR selects the in-memory session store.
func FromEnv() Config {
	return Config{
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		CommerceAPIURL:  envOrDefault("COMMERCE_API_URL", "http://localhost:4567/api"),
		RedisAddr:       envOrDefault("REDIS_ADDR", ""),
		SessionTTL:      envDuration("SESSION_TTL_SECONDS", 24*time.Hour),
		ShutdownTimeout: envDuration("SHUTDOWN_TIMEOUT_SECONDS", 10*time.Second),
		CORSOrigins:     envList("CORS_ORIGINS", []string{"*"}),
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		seconds, err := strconv.Atoi(v)
		if err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return def
}

func envList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
