package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Guyuepp/Go-Social-Blog/domain"
	"github.com/Guyuepp/Go-Social-Blog/internal/repository/cache"
)

const (
	KeyTrendingDefault = "posts:trending:default"
)

type trendingCache struct {
	client *redis.Client
}

var _ domain.TrendingCache = (*trendingCache)(nil)

// NewTrendingCache caches the default trending page with a logical expiry,
// so a hot listing endpoint never stampedes the score query.
func NewTrendingCache(client *redis.Client) *trendingCache {
	return &trendingCache{client}
}

func (c *trendingCache) GetTrending(ctx context.Context) ([]domain.Post, bool, error) {
	data, err := c.client.Get(ctx, KeyTrendingDefault).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, domain.ErrCacheMiss
	} else if err != nil {
		return nil, false, err
	}

	var envelope cache.Envelope
	if err = json.Unmarshal(data, &envelope); err != nil {
		return nil, false, err
	}
	var posts []domain.Post
	if err = json.Unmarshal(envelope.Data, &posts); err != nil {
		return nil, false, err
	}
	return posts, envelope.IsLogicalExpired(), nil
}

func (c *trendingCache) SetTrending(ctx context.Context, posts []domain.Post, ttl time.Duration) error {
	envelope, err := cache.Wrap(posts, ttl)
	if err != nil {
		return err
	}
	data, err := json.Marshal(&envelope)
	if err != nil {
		return err
	}
	// No physical TTL: logical expiry decides freshness, stale data stays
	// servable while a rebuild runs.
	return c.client.Set(ctx, KeyTrendingDefault, data, 0).Err()
}
