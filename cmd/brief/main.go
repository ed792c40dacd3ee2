package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/iopap1/nvidia-chatbot/internal/answer"
	"github.com/iopap1/nvidia-chatbot/internal/config"
	"github.com/iopap1/nvidia-chatbot/pkg/llm"
	"github.com/iopap1/nvidia-chatbot/pkg/news"
)

func main() {
	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	query := flag.String("query", "", "topic to brief on (defaults to TOPIC)")
	days := flag.Int("days", 7, "recency window in days")
	limit := flag.Int("limit", 5, "number of articles")
	language := flag.String("language", "en", "article language")
	flag.Parse()

	cfg := config.Load()

	topic := *query
	if topic == "" {
		topic = cfg.Topic
	}

	if cfg.NewsAPIKey == "" {
		log.Fatalf("NEWS_API_KEY is not set")
	}

	var llmClient llm.Client
	if cfg.LLMProvider == config.LLMProviderAnthropic && cfg.AnthropicKey != "" {
		llmClient = llm.NewAnthropicClient(cfg.AnthropicKey, cfg.LLMModel, cfg.Topic)
	} else {
		if cfg.OpenAIKey == "" {
			log.Fatalf("OPENAI_API_KEY is not set")
		}
		llmClient = llm.NewOpenAIClient(cfg.OpenAIKey, cfg.LLMModel, cfg.Topic)
	}

	searcher := news.NewNewsAPIClient(cfg.NewsAPIKey, cfg.NewsEndpoint, cfg.NewsTimeout)
	service := answer.NewService(searcher, llmClient, cfg.Topic)

	res, err := service.News(context.Background(), news.Query{
		Text:     topic,
		Days:     *days,
		PageSize: *limit,
		Language: *language,
	})
	if err != nil {
		log.Fatalf("error building brief: %v", err)
	}

	fmt.Println(res.Summary)

	if len(res.Articles) > 0 {
		fmt.Println()
		fmt.Println(answer.Digest(res.Articles))
	}
}
