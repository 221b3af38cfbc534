package repository

import (
	"context"
	"time"

	"github.com/erievs/FourthTube/domain/model"
)

// IFeedCache caches whole feed pages keyed by feed id. A nil or unavailable
// backing store must behave as a permanent miss, never as an error.
type IFeedCache interface {
	GetFeed(ctx context.Context, key string) (*model.FeedResult, bool)
	SetFeed(ctx context.Context, key string, feed *model.FeedResult, ttl time.Duration)
}
