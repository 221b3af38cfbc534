package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/erievs/FourthTube/domain/model"
	"github.com/erievs/FourthTube/infrastructure/logger"

	"github.com/redis/go-redis/v9"
)

const feedKeyPrefix = "feed:"

// FeedCache stores whole feed pages in Redis. Every failure path degrades to a
// miss; the cache must never be the reason a page fails to load.
type FeedCache struct {
	client *redis.Client
}

func NewFeedCache(client *redis.Client) *FeedCache {
	return &FeedCache{client: client}
}

func (c *FeedCache) GetFeed(ctx context.Context, key string) (*model.FeedResult, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	raw, err := c.client.Get(ctx, feedKeyPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("feed cache read failed")
		return nil, false
	}
	var feed model.FeedResult
	if err := json.Unmarshal(raw, &feed); err != nil {
		logger.GetLogger().WithField("error", err).Warn("feed cache entry corrupt, ignoring")
		return nil, false
	}
	return &feed, true
}

func (c *FeedCache) SetFeed(ctx context.Context, key string, feed *model.FeedResult, ttl time.Duration) {
	if c == nil || c.client == nil || feed == nil {
		return
	}
	raw, err := json.Marshal(feed)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, feedKeyPrefix+key, raw, ttl).Err(); err != nil {
		logger.GetLogger().WithField("error", err).Warn("feed cache write failed")
	}
}
