package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

const (
	ModeRouted = "routed"
	ModeSimple = "simple"

	LLMProviderOpenAI    = "openai"
	LLMProviderAnthropic = "anthropic"

	NewsProviderNewsAPI      = "newsapi"
	NewsProviderFinnhub      = "finnhub"
	NewsProviderAlphaVantage = "alphavantage"
)

type Config struct {
	Addr  string
	Topic string
	Mode  string

	LLMProvider  string
	LLMModel     string
	OpenAIKey    string
	AnthropicKey string

	NewsProvider    string
	NewsAPIKey      string
	FinnhubKey      string
	AlphaVantageKey string
	NewsEndpoint    string
	NewsTimeout     time.Duration

	CacheTTL        time.Duration
	CacheMaxEntries int
	RedisURL        string

	FrontendURL string
}

func Load() Config {
	return Config{
		Addr:  getEnv("ADDR", ":8080"),
		Topic: getEnv("TOPIC", "NVIDIA"),
		Mode:  getEnv("MODE", ModeRouted),

		LLMProvider:  getEnv("LLM_PROVIDER", LLMProviderOpenAI),
		LLMModel:     os.Getenv("LLM_MODEL"),
		OpenAIKey:    os.Getenv("OPENAI_API_KEY"),
		AnthropicKey: os.Getenv("ANTHROPIC_API_KEY"),

		NewsProvider:    getEnv("NEWS_PROVIDER", NewsProviderNewsAPI),
		NewsAPIKey:      os.Getenv("NEWS_API_KEY"),
		FinnhubKey:      os.Getenv("FINNHUB_API_KEY"),
		AlphaVantageKey: os.Getenv("ALPHA_VANTAGE_API_KEY"),
		NewsEndpoint:    getEnv("NEWS_ENDPOINT", "https://newsapi.org/v2/everything"),
		NewsTimeout:     getDuration("NEWS_TIMEOUT", 10*time.Second),

		CacheTTL:        getDuration("CACHE_TTL", 180*time.Second),
		CacheMaxEntries: getInt("CACHE_MAX_ENTRIES", 1024),
		RedisURL:        os.Getenv("REDIS_URL"),

		FrontendURL: os.Getenv("FRONTEND_URL"),
	}
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

func getInt(name string, fallback int) int {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}

	parsed, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("invalid env value, using default", "name", name, "value", v, "error", err)
		return fallback
	}

	return parsed
}

func getDuration(name string, fallback time.Duration) time.Duration {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}

	parsed, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("invalid env value, using default", "name", name, "value", v, "error", err)
		return fallback
	}

	return parsed
}
