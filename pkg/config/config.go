package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	OpenAIAPIKey  string
	OpenAIBaseURL string
	LogLevel      string
	LogFormat     string
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	return fromEnv()
}

func fromEnv() Config {
	return Config{
		Port:          getEnv("PORT", "8080"),
		OpenAIAPIKey:  os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL: os.Getenv("OPENAI_BASE_URL"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", "text"),
	}
}

// Credential returns the provider API key and whether it is set.
// A blank value counts as unset.
func (c Config) Credential() (string, bool) {
	key := strings.TrimSpace(c.OpenAIAPIKey)
	if key == "" {
		return "", false
	}
	return key, true
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
