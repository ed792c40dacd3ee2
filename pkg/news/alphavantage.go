package news

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const avTimeLayout = "20060102T150405"

type AlphaVantageClient struct {
	apiKey     string
	httpClient *http.Client
}

func NewAlphaVantageClient(apiKey string) *AlphaVantageClient {
	return &AlphaVantageClient{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *AlphaVantageClient) Name() string {
	return "AlphaVantage"
}

func (c *AlphaVantageClient) Search(ctx context.Context, q Query) ([]Article, error) {
	params := url.Values{}
	params.Set("function", "NEWS_SENTIMENT")
	if symbol := strings.ToUpper(strings.TrimSpace(q.Text)); symbol != "" {
		params.Set("tickers", symbol)
	}
	if q.Days > 0 {
		params.Set("time_from", time.Now().UTC().AddDate(0, 0, -q.Days).Format(avTimeLayout))
	}
	if q.PageSize > 0 {
		params.Set("limit", strconv.Itoa(q.PageSize))
	}
	params.Set("sort", "LATEST")
	params.Set("apikey", c.apiKey)

	reqURL := "https://www.alphavantage.co/query?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("alphavantage request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("alphavantage fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &StatusError{Status: resp.StatusCode, Body: string(body)}
	}

	var raw avResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("alphavantage decode: %w", err)
	}

	articles := make([]Article, 0, len(raw.Feed))
	for _, item := range raw.Feed {
		publishedAt := item.TimePublished
		if parsed, err := time.Parse(avTimeLayout, item.TimePublished); err == nil {
			publishedAt = parsed.UTC().Format(time.RFC3339)
		}

		articles = append(articles, Article{
			Title:       item.Title,
			URL:         item.URL,
			Source:      item.Source,
			PublishedAt: publishedAt,
			Description: item.Summary,
		})
	}

	return articles, nil
}

type avResponse struct {
	Feed []avFeedItem `json:"feed"`
}

type avFeedItem struct {
	Title         string `json:"title"`
	Summary       string `json:"summary"`
	URL           string `json:"url"`
	Source        string `json:"source"`
	TimePublished string `json:"time_published"`
}
