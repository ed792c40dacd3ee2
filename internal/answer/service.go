package answer

import (
	"context"
	"fmt"
	"strings"

	"github.com/iopap1/nvidia-chatbot/internal/intent"
	"github.com/iopap1/nvidia-chatbot/pkg/llm"
	"github.com/iopap1/nvidia-chatbot/pkg/news"
)

const (
	ModeNews   = "news"
	ModeDirect = "direct"
)

const (
	askDays     = 7
	askPageSize = 6
	askLanguage = "en"

	noRecentNews = "No recent relevant articles found."
)

type Result struct {
	Answer   string
	Mode     string
	Articles []news.Article
}

type NewsResult struct {
	Summary  string
	Articles []news.Article
}

type Service struct {
	searcher news.Searcher
	llm      llm.Client
	topic    string
}

func NewService(searcher news.Searcher, llmClient llm.Client, topic string) *Service {
	return &Service{searcher: searcher, llm: llmClient, topic: topic}
}

func (s *Service) Ask(ctx context.Context, question string) (Result, error) {
	if !intent.TimeSensitive(question) {
		text, err := s.llm.Direct(ctx, question)
		if err != nil {
			return Result{}, err
		}
		return Result{Answer: text, Mode: ModeDirect}, nil
	}

	articles, err := s.searcher.Search(ctx, news.Query{
		Text:     s.topic,
		Days:     askDays,
		PageSize: askPageSize,
		Language: askLanguage,
	})
	if err != nil {
		return Result{}, err
	}

	summary, err := s.SummarizeArticles(ctx, articles, question)
	if err != nil {
		return Result{}, err
	}

	text, err := s.llm.Blend(ctx, question, summary)
	if err != nil {
		return Result{}, err
	}

	return Result{Answer: text, Mode: ModeNews, Articles: articles}, nil
}

func (s *Service) News(ctx context.Context, q news.Query) (NewsResult, error) {
	articles, err := s.searcher.Search(ctx, q)
	if err != nil {
		return NewsResult{}, err
	}

	summary, err := s.SummarizeArticles(ctx, articles, fmt.Sprintf("Summarize latest about %s", q.Text))
	if err != nil {
		return NewsResult{}, err
	}

	return NewsResult{Summary: summary, Articles: articles}, nil
}

// SummarizeArticles returns a fixed message when there is nothing to
// summarize, skipping the LLM call entirely.
func (s *Service) SummarizeArticles(ctx context.Context, articles []news.Article, question string) (string, error) {
	if len(articles) == 0 {
		return noRecentNews, nil
	}
	return s.llm.Summarize(ctx, Digest(articles), question)
}

func Digest(articles []news.Article) string {
	lines := make([]string, 0, len(articles))
	for i, a := range articles {
		title := a.Title
		if title == "" {
			title = "Untitled"
		}
		source := a.Source
		if source == "" {
			source = "Unknown"
		}
		lines = append(lines, fmt.Sprintf("%d. %s — %s — %s", i+1, title, source, a.URL))
	}
	return strings.Join(lines, "\n")
}
