package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/inkwellhq/blog-api/internal/api/metrics"
	"github.com/inkwellhq/blog-api/internal/core/domain"
)

const postCacheTTL = 5 * time.Minute

// PostCache caches posts for public reads, keyed by post id. Entries expire
// after postCacheTTL and are invalidated explicitly on update and delete.
// Key format: post:<id>
type PostCache struct {
	client *redis.Client
}

// NewPostCache creates a PostCache wrapping the given Redis client.
func NewPostCache(client *redis.Client) *PostCache {
	return &PostCache{client: client}
}

// Get returns the cached post, or (nil, nil) on a miss.
func (p *PostCache) Get(ctx context.Context, id string) (*domain.Post, error) {
	raw, err := p.client.Get(ctx, p.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.PostCacheTotal.WithLabelValues("miss").Inc()
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("post cache get: %w", err)
	}

	var post domain.Post
	if err := json.Unmarshal(raw, &post); err != nil {
		return nil, fmt.Errorf("post cache decode: %w", err)
	}

	metrics.PostCacheTotal.WithLabelValues("hit").Inc()
	return &post, nil
}

// Set stores a post with the cache TTL.
func (p *PostCache) Set(ctx context.Context, post *domain.Post) error {
	raw, err := json.Marshal(post)
	if err != nil {
		return fmt.Errorf("post cache encode: %w", err)
	}
	return p.client.Set(ctx, p.key(post.ID), raw, postCacheTTL).Err()
}

// Invalidate drops the cached entry for a post.
func (p *PostCache) Invalidate(ctx context.Context, id string) error {
	return p.client.Del(ctx, p.key(id)).Err()
}

func (p *PostCache) key(id string) string {
	return "post:" + id
}
