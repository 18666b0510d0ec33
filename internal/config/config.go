package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// ListenPort is fixed; clients are built against :3000.
const ListenPort = "3000"

type Config struct {
	// Server
	Port string
	Env  string

	// LLM backend
	LLMProvider     string
	MaxTokens       int
	UpstreamTimeout time.Duration

	// OpenAI-compatible chat completions
	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string

	// Gemini AI
	GeminiAPIKey string
	GeminiModel  string

	// CORS
	AllowedOrigins string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port:            ListenPort,
		Env:             getEnvOrDefault("ENV", "development"),
		LLMProvider:     getEnvOrDefault("LLM_PROVIDER", "openai"),
		MaxTokens:       getEnvAsIntOrDefault("LLM_MAX_TOKENS", 200),
		UpstreamTimeout: time.Duration(getEnvAsIntOrDefault("UPSTREAM_TIMEOUT_SECONDS", 0)) * time.Second,
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL:   getEnvOrDefault("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		OpenAIModel:     getEnvOrDefault("OPENAI_MODEL", "gpt-4o-mini"),
		GeminiAPIKey:    os.Getenv("GEMINI_API_KEY"),
		GeminiModel:     getEnvOrDefault("GEMINI_MODEL", "gemini-2.0-flash"),
		AllowedOrigins:  getEnvOrDefault("CORS_ALLOWED_ORIGINS", "*"),
	}

	return cfg
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
