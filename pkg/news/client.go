package news

import (
	"context"
	"fmt"
)

type Article struct {
	Title       string `json:"title,omitempty"`
	URL         string `json:"url,omitempty"`
	Source      string `json:"source,omitempty"`
	PublishedAt string `json:"publishedAt,omitempty"`
	Description string `json:"description,omitempty"`
	Content     string `json:"content,omitempty"`
}

type Query struct {
	Text     string
	Days     int
	PageSize int
	Language string
}

type Searcher interface {
	Search(ctx context.Context, q Query) ([]Article, error)
	Name() string
}

type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.Status, e.Body)
}
