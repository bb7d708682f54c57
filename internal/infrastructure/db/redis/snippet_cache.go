package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/classhub/classhub-api/internal/api/metrics"
	"github.com/classhub/classhub-api/internal/core/domain"
)

const (
	snippetListKey = "snippets:list"
	snippetListTTL = 30 * time.Second
)

// SnippetCache caches the public snippet listing as a JSON blob with a
// short TTL. Only the listing is ever cached; token verification results
// are never stored anywhere.
type SnippetCache struct {
	client *redis.Client
}

func NewSnippetCache(client *redis.Client) *SnippetCache {
	return &SnippetCache{client: client}
}

// GetList returns the cached listing, or (nil, nil) on a miss.
func (c *SnippetCache) GetList(ctx context.Context) ([]domain.Snippet, error) {
	payload, err := c.client.Get(ctx, snippetListKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.SnippetCacheTotal.WithLabelValues("miss").Inc()
			return nil, nil
		}
		return nil, fmt.Errorf("cache get: %w", err)
	}

	var snippets []domain.Snippet
	if err := json.Unmarshal(payload, &snippets); err != nil {
		return nil, fmt.Errorf("cache decode: %w", err)
	}

	metrics.SnippetCacheTotal.WithLabelValues("hit").Inc()
	return snippets, nil
}

func (c *SnippetCache) SetList(ctx context.Context, snippets []domain.Snippet) error {
	payload, err := json.Marshal(snippets)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	return c.client.Set(ctx, snippetListKey, payload, snippetListTTL).Err()
}

func (c *SnippetCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, snippetListKey).Err()
}
