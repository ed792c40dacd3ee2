package news

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
)

// Store is the cache a CachedSearcher reads through. Implementations own
// TTL and eviction; a miss is (nil, false).
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte)
}

// CachedSearcher wraps a Searcher with read-through caching. Concurrent
// misses on the same key may each hit the upstream provider; last write
// wins and every caller still gets valid results.
type CachedSearcher struct {
	inner Searcher
	store Store
}

func NewCachedSearcher(inner Searcher, store Store) *CachedSearcher {
	return &CachedSearcher{inner: inner, store: store}
}

func (c *CachedSearcher) Name() string {
	return c.inner.Name()
}

func (c *CachedSearcher) Search(ctx context.Context, q Query) ([]Article, error) {
	key := cacheKey(q)

	if data, ok := c.store.Get(ctx, key); ok {
		var articles []Article
		if err := json.Unmarshal(data, &articles); err == nil {
			return articles, nil
		}
		slog.Warn("dropping undecodable cache entry", "key", key)
	}

	articles, err := c.inner.Search(ctx, q)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(articles); err == nil {
		c.store.Set(ctx, key, data)
	}

	return articles, nil
}

func cacheKey(q Query) string {
	return fmt.Sprintf("news::%s::%d::%d::%s", q.Text, q.Days, q.PageSize, q.Language)
}
