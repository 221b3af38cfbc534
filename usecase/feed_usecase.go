package usecase

import (
	"context"
	"sync"

	"github.com/erievs/FourthTube/domain/dto"
	"github.com/erievs/FourthTube/domain/model"
	"github.com/erievs/FourthTube/domain/repository"
	"github.com/erievs/FourthTube/infrastructure/logger"
)

type IFeedUsecase interface {
	// RefreshFeed rebuilds the subscription feed from every subscribed
	// channel's latest uploads. Blocks until done; concurrent callers get the
	// result of the refresh already in flight.
	RefreshFeed(ctx context.Context) dto.SubscriptionFeedResponse
	// Feed returns the current snapshot without refreshing.
	Feed(ctx context.Context) dto.SubscriptionFeedResponse
	// Progress reports the state of an in-flight refresh.
	Progress() dto.FeedProgress
}

// FeedConfig is the aggregation policy.
type FeedConfig struct {
	ContentLanguage string
	Cutoff          RecencyKey
}

type FeedUsecase struct {
	innertube    repository.IInnertube
	subscription repository.ISubscription
	cfg          FeedConfig

	mu        sync.Mutex
	running   bool
	done      chan struct{}
	completed int
	total     int
	videos    []model.VideoSummary
	lastError string
}

func NewFeedUsecase(innertube repository.IInnertube, subscription repository.ISubscription, cfg FeedConfig) *FeedUsecase {
	if cfg.ContentLanguage == "" {
		cfg.ContentLanguage = "en"
	}
	if cfg.Cutoff == (RecencyKey{}) {
		cfg.Cutoff = RecencyKey{Unit: unitMonth, Magnitude: 2}
	}
	return &FeedUsecase{innertube: innertube, subscription: subscription, cfg: cfg}
}

func (u *FeedUsecase) Feed(ctx context.Context) dto.SubscriptionFeedResponse {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.snapshotLocked()
}

func (u *FeedUsecase) Progress() dto.FeedProgress {
	u.mu.Lock()
	defer u.mu.Unlock()
	return dto.FeedProgress{Completed: u.completed, Total: u.total, Running: u.running}
}

func (u *FeedUsecase) RefreshFeed(ctx context.Context) dto.SubscriptionFeedResponse {
	u.mu.Lock()
	if u.running {
		// Join the refresh in flight instead of starting a second one.
		done := u.done
		u.mu.Unlock()
		select {
		case <-done:
		case <-ctx.Done():
		}
		u.mu.Lock()
		defer u.mu.Unlock()
		return u.snapshotLocked()
	}
	u.running = true
	u.completed = 0
	u.total = 0
	u.done = make(chan struct{})
	done := u.done
	u.mu.Unlock()

	u.refresh(ctx)

	u.mu.Lock()
	u.running = false
	close(done)
	defer u.mu.Unlock()
	return u.snapshotLocked()
}

func (u *FeedUsecase) refresh(ctx context.Context) {
	channels, err := u.subscription.ListValid(ctx)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("listing subscriptions failed")
		u.mu.Lock()
		u.lastError = "subscription list unavailable: " + err.Error()
		u.mu.Unlock()
		return
	}

	ids := make([]string, 0, len(channels))
	for _, ch := range channels {
		ids = append(ids, ch.ID)
	}

	results := u.innertube.LoadChannelPages(ctx, ids, func(completed, total int) {
		u.mu.Lock()
		u.completed = completed
		u.total = total
		u.mu.Unlock()
	})

	var all []model.VideoSummary
	failures := 0
	for _, result := range results {
		if result.Error != "" {
			failures++
			continue
		}
		// Refresh the stored directory entry while the page is fresh.
		if result.Name != "" {
			if err := u.subscription.Upsert(ctx, result.Summary()); err != nil {
				logger.GetLogger().WithFields(map[string]interface{}{"channel": result.ID, "error": err}).Warn("subscription metadata refresh failed")
			}
		}
		all = append(all, result.Videos...)
	}

	videos := AggregateByRecency(all, u.cfg.ContentLanguage, u.cfg.Cutoff)

	u.mu.Lock()
	u.videos = videos
	u.lastError = ""
	if failures == len(results) && len(results) > 0 {
		u.lastError = "every channel fetch failed"
	}
	u.mu.Unlock()

	logger.GetLogger().WithFields(map[string]interface{}{
		"channels": len(results),
		"failed":   failures,
		"videos":   len(videos),
	}).Info("subscription feed refreshed")
}

func (u *FeedUsecase) snapshotLocked() dto.SubscriptionFeedResponse {
	videos := make([]model.VideoSummary, len(u.videos))
	copy(videos, u.videos)
	return dto.SubscriptionFeedResponse{
		Videos:   videos,
		Progress: dto.FeedProgress{Completed: u.completed, Total: u.total, Running: u.running},
		Error:    u.lastError,
	}
}
