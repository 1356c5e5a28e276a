package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	JobsProviderSerpAPI = "serpapi"
	JobsProviderJSearch = "jsearch"
	JobsProviderAdzuna  = "adzuna"

	LLMProviderGemini = "gemini"
	LLMProviderClaude = "claude"
)

type Config struct {
	// Server
	Port           string
	Env            string // development, staging, production
	RequestTimeout time.Duration

	// Web + jobs search
	SerpAPIKey     string
	SerpAPIBaseURL string
	JobsProvider   string // serpapi, jsearch, adzuna

	// Alternate job feeds
	RapidAPIKey   string
	AdzunaAppID   string
	AdzunaAppKey  string
	AdzunaCountry string

	// YouTube Data API
	YouTubeAPIKey  string
	YouTubeBaseURL string

	// Generative text
	LLMProvider   string // gemini, claude
	GeminiAPIKey  string
	GeminiModel   string
	ClaudeAPIKey  string
	ClaudeBaseURL string
	ClaudeModel   string

	// CORS
	AllowedOrigins []string
}

// Load reads the environment. A .env file in the working directory is
// loaded first when present; real environment variables take precedence.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		Env:            getEnv("ENV", "development"),
		RequestTimeout: time.Duration(getEnvInt("REQUEST_TIMEOUT_SECONDS", 60)) * time.Second,
		SerpAPIKey:     getEnv("SERPAPI_KEY", ""),
		SerpAPIBaseURL: getEnv("SERPAPI_BASE_URL", ""),
		JobsProvider:   strings.ToLower(getEnv("JOBS_PROVIDER", JobsProviderSerpAPI)),
		RapidAPIKey:    getEnv("RAPIDAPI_KEY", ""),
		AdzunaAppID:    getEnv("ADZUNA_APP_ID", ""),
		AdzunaAppKey:   getEnv("ADZUNA_APP_KEY", ""),
		AdzunaCountry:  getEnv("ADZUNA_COUNTRY", "in"),
		YouTubeAPIKey:  getEnv("YOUTUBE_API_KEY", ""),
		YouTubeBaseURL: getEnv("YOUTUBE_BASE_URL", ""),
		LLMProvider:    strings.ToLower(getEnv("LLM_PROVIDER", LLMProviderGemini)),
		GeminiAPIKey:   getEnv("GEMINI_API_KEY", ""),
		GeminiModel:    getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
		ClaudeAPIKey:   getEnv("CLAUDE_API_KEY", ""),
		ClaudeBaseURL:  getEnv("CLAUDE_BASE_URL", "https://api.anthropic.com"),
		ClaudeModel:    getEnv("CLAUDE_MODEL", ""),
		AllowedOrigins: getEnvList("ALLOWED_ORIGINS", []string{
			"http://localhost:3000",
			"http://localhost:5173",
		}),
	}

	switch cfg.JobsProvider {
	case JobsProviderSerpAPI, JobsProviderJSearch, JobsProviderAdzuna:
	default:
		return nil, fmt.Errorf("JOBS_PROVIDER must be serpapi, jsearch or adzuna, got %q", cfg.JobsProvider)
	}

	switch cfg.LLMProvider {
	case LLMProviderGemini, LLMProviderClaude:
	default:
		return nil, fmt.Errorf("LLM_PROVIDER must be gemini or claude, got %q", cfg.LLMProvider)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvList(key string, fallback []string) []string {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(val, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
