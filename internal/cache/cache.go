package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"inkwell/internal/model"
)

const feedKey = "feed:posts"

// FeedTTL bounds how stale the cached public feed can get even when an
// invalidation is missed.
const FeedTTL = 30 * time.Second

// Client wraps redis.Client but fails safe: when redis is down every read
// behaves like a miss and every write is a no-op, so the feed is simply
// served from MySQL.
type Client struct {
	client *redis.Client
}

// New creates a new Redis client.
func New(addr, password string, db int) *Client {
	opts := &redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	}
	return &Client{client: redis.NewClient(opts)}
}

// GetFeed returns the cached public feed, or ok=false on a miss.
func (c *Client) GetFeed(ctx context.Context) ([]model.PostWithCounts, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	data, err := c.client.Get(ctx, feedKey).Bytes()
	if err != nil {
		return nil, false
	}
	var posts []model.PostWithCounts
	if err := json.Unmarshal(data, &posts); err != nil {
		return nil, false
	}
	return posts, true
}

// SetFeed stores the public feed with FeedTTL, ignoring redis errors.
func (c *Client) SetFeed(ctx context.Context, posts []model.PostWithCounts) {
	if c == nil || c.client == nil {
		return
	}
	data, err := json.Marshal(posts)
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, feedKey, data, FeedTTL).Err()
}

// InvalidateFeed drops the cached feed. Called after any write that changes
// posts, likes or comments.
func (c *Client) InvalidateFeed(ctx context.Context) {
	if c == nil || c.client == nil {
		return
	}
	_ = c.client.Del(ctx, feedKey).Err()
}
