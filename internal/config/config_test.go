package config

import (
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

func TestLoadDefaults(t *testing.T) {
	names := []string{
		"ADDR", "TOPIC", "MODE", "LLM_PROVIDER", "LLM_MODEL",
		"NEWS_PROVIDER", "NEWS_ENDPOINT", "NEWS_TIMEOUT",
		"CACHE_TTL", "CACHE_MAX_ENTRIES", "REDIS_URL",
	}
	for _, name := range names {
		t.Setenv(name, "")
	}

	cfg := Load()

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "NVIDIA", cfg.Topic)
	assert.Equal(t, ModeRouted, cfg.Mode)
	assert.Equal(t, LLMProviderOpenAI, cfg.LLMProvider)
	assert.Equal(t, NewsProviderNewsAPI, cfg.NewsProvider)
	assert.Equal(t, "https://newsapi.org/v2/everything", cfg.NewsEndpoint)
	assert.Equal(t, 10*time.Second, cfg.NewsTimeout)
	assert.Equal(t, 180*time.Second, cfg.CacheTTL)
	assert.Equal(t, 1024, cfg.CacheMaxEntries)
	assert.Equal(t, "", cfg.RedisURL)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ADDR", ":9090")
	t.Setenv("TOPIC", "AMD")
	t.Setenv("MODE", "simple")
	t.Setenv("LLM_PROVIDER", "anthropic")
	t.Setenv("NEWS_PROVIDER", "finnhub")
	t.Setenv("CACHE_TTL", "90s")
	t.Setenv("CACHE_MAX_ENTRIES", "16")

	cfg := Load()

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "AMD", cfg.Topic)
	assert.Equal(t, ModeSimple, cfg.Mode)
	assert.Equal(t, LLMProviderAnthropic, cfg.LLMProvider)
	assert.Equal(t, NewsProviderFinnhub, cfg.NewsProvider)
	assert.Equal(t, 90*time.Second, cfg.CacheTTL)
	assert.Equal(t, 16, cfg.CacheMaxEntries)
}

func TestLoadBadValuesFallBack(t *testing.T) {
	t.Setenv("CACHE_TTL", "not-a-duration")
	t.Setenv("CACHE_MAX_ENTRIES", "many")
	t.Setenv("NEWS_TIMEOUT", "soon")

	cfg := Load()

	assert.Equal(t, 180*time.Second, cfg.CacheTTL)
	assert.Equal(t, 1024, cfg.CacheMaxEntries)
	assert.Equal(t, 10*time.Second, cfg.NewsTimeout)
}
