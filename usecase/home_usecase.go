package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/erievs/FourthTube/domain/model"
	"github.com/erievs/FourthTube/domain/repository"
	"github.com/erievs/FourthTube/infrastructure/logger"
)

const homeCacheKey = "home"

type IHomeUsecase interface {
	// Home returns the current home feed, loading the first page on demand.
	// refresh forces a reload even when a page is already held.
	Home(ctx context.Context, refresh bool) model.FeedResult
	// LoadMore appends the next page to the held feed.
	LoadMore(ctx context.Context) model.FeedResult
}

// HomeUsecase holds the current home feed. The lock is taken only to read or
// swap the held page; fetches run against a working copy with a busy flag
// marking them in flight, so a slow upstream never blocks cached reads and
// overlapping load-more calls cannot append the same page twice.
type HomeUsecase struct {
	innertube repository.IInnertube
	cache     repository.IFeedCache
	ttl       time.Duration

	mu   sync.Mutex
	busy bool
	feed *model.FeedResult
}

func NewHomeUsecase(innertube repository.IInnertube, cache repository.IFeedCache, ttl time.Duration) *HomeUsecase {
	return &HomeUsecase{innertube: innertube, cache: cache, ttl: ttl}
}

func (u *HomeUsecase) Home(ctx context.Context, refresh bool) model.FeedResult {
	u.mu.Lock()
	if u.feed != nil && !refresh {
		feed := *u.feed
		u.mu.Unlock()
		return feed
	}
	if u.busy {
		// A fetch is already in flight; serve the held page if there is one.
		if u.feed != nil {
			feed := *u.feed
			u.mu.Unlock()
			return feed
		}
		u.mu.Unlock()
		return model.FeedResult{Error: "home page load already in progress"}
	}
	u.busy = true
	u.mu.Unlock()

	feed := u.load(ctx, refresh)

	u.mu.Lock()
	u.feed = &feed
	u.busy = false
	u.mu.Unlock()
	return feed
}

// load resolves the first page, consulting the cache unless refreshing.
func (u *HomeUsecase) load(ctx context.Context, refresh bool) model.FeedResult {
	if !refresh {
		if cached, ok := u.cache.GetFeed(ctx, homeCacheKey); ok {
			return *cached
		}
	}
	feed := u.innertube.LoadHomePage(ctx)
	if feed.Error == "" {
		u.cache.SetFeed(ctx, homeCacheKey, &feed, u.ttl)
	} else {
		logger.GetLogger().WithField("error", feed.Error).Warn("home page load returned error")
	}
	return feed
}

func (u *HomeUsecase) LoadMore(ctx context.Context) model.FeedResult {
	u.mu.Lock()
	if u.busy {
		// A fetch is in flight; return the held page untouched rather than
		// risking a duplicate append.
		var feed model.FeedResult
		if u.feed != nil {
			feed = *u.feed
		}
		u.mu.Unlock()
		return feed
	}
	if u.feed == nil {
		// Nothing held; behave like a first load.
		u.busy = true
		u.mu.Unlock()

		feed := u.load(ctx, false)

		u.mu.Lock()
		u.feed = &feed
		u.busy = false
		u.mu.Unlock()
		return feed
	}
	u.busy = true
	working := *u.feed
	u.mu.Unlock()

	err := u.innertube.LoadMoreHome(ctx, &working)

	u.mu.Lock()
	u.feed = &working
	u.busy = false
	u.mu.Unlock()

	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("home load-more rejected")
		return working
	}
	u.cache.SetFeed(ctx, homeCacheKey, &working, u.ttl)
	return working
}
