package answer

import (
	"context"
	"errors"
	"testing"

	"github.com/go-playground/assert/v2"

	"github.com/iopap1/nvidia-chatbot/pkg/news"
)

func TestChat(t *testing.T) {
	searcher := &fakeSearcher{
		articles: []news.Article{
			{Title: "Chip roadmap revealed"},
			{Title: "Earnings beat estimates"},
			{URL: "https://example.com/untitled"},
		},
	}
	client := &fakeLLM{answer: "Based on the headlines, things are busy."}
	simple := NewSimple(searcher, client, "NVIDIA")

	res, err := simple.Chat(context.Background(), "How is the company doing?")

	assert.Equal(t, nil, err)
	assert.Equal(t, "Based on the headlines, things are busy.", res.Answer)
	assert.Equal(t, []string{"Chip roadmap revealed", "Earnings beat estimates"}, res.UsedNews)

	assert.Equal(t, 1, searcher.calls)
	assert.Equal(t, news.Query{Text: "NVIDIA", Days: 7, PageSize: 5, Language: "en"}, searcher.lastQuery)

	assert.Equal(t, 1, client.blendCalls)
	assert.Equal(t, "Chip roadmap revealed\nEarnings beat estimates", client.lastSummary)
}

func TestChatFetchesForEveryQuestion(t *testing.T) {
	searcher := &fakeSearcher{articles: []news.Article{{Title: "headline"}}}
	client := &fakeLLM{answer: "ok"}
	simple := NewSimple(searcher, client, "NVIDIA")

	// No time-sensitive wording; the simple pipeline fetches anyway.
	_, err := simple.Chat(context.Background(), "Explain tensor cores")

	assert.Equal(t, nil, err)
	assert.Equal(t, 1, searcher.calls)
}

func TestChatSearchError(t *testing.T) {
	searcher := &fakeSearcher{err: errors.New("provider down")}
	client := &fakeLLM{}
	simple := NewSimple(searcher, client, "NVIDIA")

	_, err := simple.Chat(context.Background(), "How is the company doing?")

	assert.NotEqual(t, nil, err)
	assert.Equal(t, 0, client.blendCalls)
}
