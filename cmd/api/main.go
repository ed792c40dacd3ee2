package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/iopap1/nvidia-chatbot/internal/answer"
	"github.com/iopap1/nvidia-chatbot/internal/cache"
	"github.com/iopap1/nvidia-chatbot/internal/config"
	"github.com/iopap1/nvidia-chatbot/internal/handler"
	"github.com/iopap1/nvidia-chatbot/pkg/llm"
	"github.com/iopap1/nvidia-chatbot/pkg/news"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg := config.Load()

	searcher, err := newSearcher(cfg)
	if err != nil {
		log.Fatalf("error configuring news provider: %v", err)
	}

	llmClient, err := newLLMClient(cfg)
	if err != nil {
		log.Fatalf("error configuring LLM provider: %v", err)
	}

	r := gin.New()
	r.Use(handler.RequestLogger(), gin.Recovery())

	allowedOrigins := []string{"http://localhost:3000"}

	if cfg.FrontendURL != "" {
		allowedOrigins = append(allowedOrigins, cfg.FrontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	systemHandler := handler.NewSystemHandler()
	r.GET("/health", systemHandler.GetHealth)
	r.POST("/echo", systemHandler.PostEcho)

	switch cfg.Mode {
	case config.ModeSimple:
		simple := answer.NewSimple(searcher, llmClient, cfg.Topic)
		chatHandler := handler.NewChatHandler(simple)
		r.POST("/chat", chatHandler.PostChat)
		r.POST("/ask", chatHandler.PostChat)

	default:
		store, err := newStore(cfg)
		if err != nil {
			log.Fatalf("error configuring cache store: %v", err)
		}

		service := answer.NewService(news.NewCachedSearcher(searcher, store), llmClient, cfg.Topic)
		askHandler := handler.NewAskHandler(service)
		newsHandler := handler.NewNewsHandler(service, cfg.Topic)
		r.POST("/ask", askHandler.PostAsk)
		r.POST("/news", newsHandler.PostNews)
	}

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}

func newSearcher(cfg config.Config) (news.Searcher, error) {
	switch cfg.NewsProvider {
	case config.NewsProviderFinnhub:
		if cfg.FinnhubKey == "" {
			return nil, fmt.Errorf("FINNHUB_API_KEY is not set")
		}
		return news.NewFinnHubClient(cfg.FinnhubKey), nil

	case config.NewsProviderAlphaVantage:
		if cfg.AlphaVantageKey == "" {
			return nil, fmt.Errorf("ALPHA_VANTAGE_API_KEY is not set")
		}
		return news.NewAlphaVantageClient(cfg.AlphaVantageKey), nil

	case config.NewsProviderNewsAPI:
		if cfg.NewsAPIKey == "" {
			return nil, fmt.Errorf("NEWS_API_KEY is not set")
		}
		return news.NewNewsAPIClient(cfg.NewsAPIKey, cfg.NewsEndpoint, cfg.NewsTimeout), nil

	default:
		return nil, fmt.Errorf("unknown news provider %q", cfg.NewsProvider)
	}
}

func newLLMClient(cfg config.Config) (llm.Client, error) {
	switch cfg.LLMProvider {
	case config.LLMProviderAnthropic:
		if cfg.AnthropicKey == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY is not set")
		}
		return llm.NewAnthropicClient(cfg.AnthropicKey, cfg.LLMModel, cfg.Topic), nil

	case config.LLMProviderOpenAI:
		if cfg.OpenAIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is not set")
		}
		return llm.NewOpenAIClient(cfg.OpenAIKey, cfg.LLMModel, cfg.Topic), nil

	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.LLMProvider)
	}
}

func newStore(cfg config.Config) (news.Store, error) {
	if cfg.RedisURL != "" {
		client, err := cache.Open(cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		slog.Info("using redis cache store", "ttl", cfg.CacheTTL)
		return cache.NewRedis(client, cfg.CacheTTL), nil
	}

	mem := cache.NewMemory(cfg.CacheTTL, cfg.CacheMaxEntries)
	go sweepLoop(mem, cfg.CacheTTL)
	return mem, nil
}

func sweepLoop(mem *cache.Memory, interval time.Duration) {
	ticker := time.NewTicker(interval)
	for range ticker.C {
		if removed := mem.Sweep(); removed > 0 {
			slog.Info("cache sweep", "removed", removed)
		}
	}
}
