package answer

import (
	"context"
	"strings"

	"github.com/iopap1/nvidia-chatbot/pkg/llm"
	"github.com/iopap1/nvidia-chatbot/pkg/news"
)

const chatPageSize = 5

type ChatResult struct {
	Answer   string
	UsedNews []string
}

// Simple answers every question with current headlines as context, no
// routing and no caching.
type Simple struct {
	searcher news.Searcher
	llm      llm.Client
	topic    string
}

func NewSimple(searcher news.Searcher, llmClient llm.Client, topic string) *Simple {
	return &Simple{searcher: searcher, llm: llmClient, topic: topic}
}

func (s *Simple) Chat(ctx context.Context, question string) (ChatResult, error) {
	articles, err := s.searcher.Search(ctx, news.Query{
		Text:     s.topic,
		Days:     askDays,
		PageSize: chatPageSize,
		Language: askLanguage,
	})
	if err != nil {
		return ChatResult{}, err
	}

	titles := make([]string, 0, len(articles))
	for _, a := range articles {
		if a.Title != "" {
			titles = append(titles, a.Title)
		}
	}

	text, err := s.llm.Blend(ctx, question, strings.Join(titles, "\n"))
	if err != nil {
		return ChatResult{}, err
	}

	return ChatResult{Answer: text, UsedNews: titles}, nil
}
