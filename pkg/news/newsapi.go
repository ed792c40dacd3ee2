package news

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const DefaultNewsAPIEndpoint = "https://newsapi.org/v2/everything"

type NewsAPIClient struct {
	apiKey     string
	endpoint   string
	httpClient *http.Client
	now        func() time.Time
}

func NewNewsAPIClient(apiKey, endpoint string, timeout time.Duration) *NewsAPIClient {
	if endpoint == "" {
		endpoint = DefaultNewsAPIEndpoint
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &NewsAPIClient{
		apiKey:     apiKey,
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
		now:        time.Now,
	}
}

func (c *NewsAPIClient) Name() string {
	return "NewsAPI"
}

func (c *NewsAPIClient) Search(ctx context.Context, q Query) ([]Article, error) {
	params := url.Values{}
	params.Set("q", q.Text)
	params.Set("language", q.Language)
	params.Set("sortBy", "publishedAt")
	params.Set("pageSize", strconv.Itoa(q.PageSize))
	if q.Days > 0 {
		params.Set("from", c.now().UTC().AddDate(0, 0, -q.Days).Format("2006-01-02"))
	}
	params.Set("apiKey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("newsapi request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("newsapi fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &StatusError{Status: resp.StatusCode, Body: string(body)}
	}

	var raw newsAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("newsapi decode: %w", err)
	}

	articles := make([]Article, 0, len(raw.Articles))
	for _, item := range raw.Articles {
		articles = append(articles, Article{
			Title:       item.Title,
			URL:         item.URL,
			Source:      item.Source.Name,
			PublishedAt: item.PublishedAt,
			Description: item.Description,
			Content:     item.Content,
		})
	}

	return articles, nil
}

type newsAPIResponse struct {
	Articles []newsAPIArticle `json:"articles"`
}

type newsAPIArticle struct {
	Title       string        `json:"title"`
	URL         string        `json:"url"`
	Description string        `json:"description"`
	Content     string        `json:"content"`
	PublishedAt string        `json:"publishedAt"`
	Source      newsAPISource `json:"source"`
}

type newsAPISource struct {
	Name string `json:"name"`
}
