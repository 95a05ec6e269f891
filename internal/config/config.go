package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const APIKeyEnv = "GOOGLE_API_KEY"

type Config struct {
	// Server
	Port string
	Env  string

	// Gemini AI
	GoogleAPIKey    string
	GeminiModel     string
	UpstreamTimeout time.Duration

	// Frontend
	CORSOrigin string
	StaticDir  string

	// Logging
	Debug bool
}

// MissingConfigError reports a required environment variable that is not set.
type MissingConfigError struct {
	Key string
}

func (e *MissingConfigError) Error() string {
	return fmt.Sprintf("required environment variable %s is not set", e.Key)
}

// Hint is printed next to the error so a first run knows where the key goes.
func (e *MissingConfigError) Hint() string {
	return fmt.Sprintf("Make sure you have a .env file in the working directory with %s=your_api_key", e.Key)
}

func Load() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	apiKey, err := requireEnv(APIKeyEnv)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:            getEnvOrDefault("PORT", "3000"),
		Env:             getEnvOrDefault("ENV", "development"),
		GoogleAPIKey:    apiKey,
		GeminiModel:     getEnvOrDefault("GEMINI_MODEL", "gemini-1.5-flash"),
		UpstreamTimeout: getEnvAsDurationOrDefault("UPSTREAM_TIMEOUT", 0),
		CORSOrigin:      getEnvOrDefault("CORS_ORIGIN", "*"),
		StaticDir:       getEnvOrDefault("STATIC_DIR", ""),
		Debug:           strings.EqualFold(getEnvOrDefault("LOG_LEVEL", "info"), "debug"),
	}

	return cfg, nil
}

func requireEnv(key string) (string, error) {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return "", &MissingConfigError{Key: key}
	}
	return val, nil
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}

// getEnvAsDurationOrDefault accepts Go durations ("30s") or a bare number of seconds.
func getEnvAsDurationOrDefault(key string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	if d, err := time.ParseDuration(val); err == nil && d >= 0 {
		return d
	}
	if secs := getEnvAsIntOrDefault(key, -1); secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	return defaultVal
}
