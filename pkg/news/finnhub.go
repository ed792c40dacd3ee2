package news

import (
	"context"
	"fmt"
	"strings"
	"time"

	finnhub "github.com/Finnhub-Stock-API/finnhub-go/v2"
)

type FinnHubClient struct {
	client *finnhub.DefaultApiService
}

func NewFinnHubClient(apiKey string) *FinnHubClient {
	cfg := finnhub.NewConfiguration()
	cfg.AddDefaultHeader("X-Finnhub-Token", apiKey)
	client := finnhub.NewAPIClient(cfg).DefaultApi
	return &FinnHubClient{client: client}
}

func (c *FinnHubClient) Name() string {
	return "FinnHub"
}

// The query text is treated as a ticker symbol.
func (c *FinnHubClient) Search(ctx context.Context, q Query) ([]Article, error) {
	symbol := strings.ToUpper(strings.TrimSpace(q.Text))

	days := q.Days
	if days <= 0 {
		days = 7
	}
	to := time.Now().UTC()
	from := to.AddDate(0, 0, -days)

	res, _, err := c.client.CompanyNews(ctx).
		Symbol(symbol).
		From(from.Format("2006-01-02")).
		To(to.Format("2006-01-02")).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("finnhub search: %w", err)
	}

	articles := make([]Article, 0, len(res))

	for _, item := range res {
		a := Article{}

		if item.Headline != nil {
			a.Title = *item.Headline
		}

		if item.Url != nil {
			a.URL = *item.Url
		}

		if item.Source != nil {
			a.Source = *item.Source
		}

		if item.Datetime != nil {
			a.PublishedAt = time.Unix(*item.Datetime, 0).UTC().Format(time.RFC3339)
		}

		if item.Summary != nil {
			a.Description = *item.Summary
		}

		articles = append(articles, a)

		if q.PageSize > 0 && len(articles) >= q.PageSize {
			break
		}
	}

	return articles, nil
}
