package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration.
type Config struct {
	Port            string
	Env             string
	CORSAllowOrigin []string
	UploadDir       string

	AuthEmail    string
	AuthPassword string
	AuthName     string
	TokenTTL     time.Duration

	HFAPIKey        string
	HFModel         string
	HFTimeout       time.Duration
	MaxContextChars int
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	env := normalizeEnv(getEnv("ENV", "dev"))

	return Config{
		Port:            getEnv("PORT", "8080"),
		Env:             env,
		CORSAllowOrigin: splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),
		UploadDir:       getEnv("UPLOAD_DIR", "uploads"),
		AuthEmail:       getEnv("AUTH_EMAIL", "test@test.com"),
		AuthPassword:    getEnv("AUTH_PASSWORD", "123456"),
		AuthName:        getEnv("AUTH_NAME", "Test User"),
		TokenTTL:        time.Duration(getEnvInt("TOKEN_TTL_HOURS", 4)) * time.Hour,
		HFAPIKey:        os.Getenv("HF_API_KEY"),
		HFModel:         getEnv("HF_MODEL", "mistralai/Mistral-7B-Instruct-v0.2"),
		HFTimeout:       time.Duration(getEnvInt("HF_TIMEOUT_SECONDS", 120)) * time.Second,
		MaxContextChars: getEnvInt("MAX_CONTEXT_CHARS", 3000),
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed <= 0 {
		return def
	}
	return parsed
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}
