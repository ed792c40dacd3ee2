package handler

import "github.com/iopap1/nvidia-chatbot/pkg/news"

type EchoRequest struct {
	Message string `json:"message" binding:"required"`
}

type QuestionRequest struct {
	Question string `json:"question" binding:"required"`
}

type NewsRequest struct {
	Query    string `json:"query"`
	Days     int    `json:"days"`
	PageSize int    `json:"page_size"`
	Language string `json:"language"`
}

func (r NewsRequest) withDefaults(topic string) news.Query {
	q := news.Query{Text: r.Query, Days: r.Days, PageSize: r.PageSize, Language: r.Language}

	if q.Text == "" {
		q.Text = topic
	}
	if q.Days <= 0 {
		q.Days = 7
	}
	if q.PageSize <= 0 {
		q.PageSize = 5
	}
	if q.Language == "" {
		q.Language = "en"
	}

	return q
}

type NewsResponse struct {
	Summary  string         `json:"summary"`
	Articles []news.Article `json:"articles"`
}

type ChatResponse struct {
	Answer   string   `json:"answer"`
	UsedNews []string `json:"used_news"`
}
