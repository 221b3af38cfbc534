package usecase

import (
	"context"

	"github.com/erievs/FourthTube/domain/model"
	"github.com/erievs/FourthTube/domain/repository"
	"github.com/erievs/FourthTube/infrastructure/logger"
)

type ISubscriptionUsecase interface {
	// List returns the subscribed channels shown to the user (valid only).
	List(ctx context.Context) ([]model.ChannelSummary, error)
	// ListAll returns every stored channel including invalid ones.
	ListAll(ctx context.Context) ([]model.ChannelSummary, error)
	Subscribe(ctx context.Context, channel model.ChannelSummary) error
	Unsubscribe(ctx context.Context, channelID string) error
	IsSubscribed(ctx context.Context, channelID string) (bool, error)
	// Import pulls the authenticated account's subscriptions from the upstream
	// and merges them into the stored directory. Returns how many were stored.
	Import(ctx context.Context) (int, error)
}

type SubscriptionUsecase struct {
	store     repository.ISubscription
	innertube repository.IInnertube
}

func NewSubscriptionUsecase(store repository.ISubscription, innertube repository.IInnertube) *SubscriptionUsecase {
	return &SubscriptionUsecase{store: store, innertube: innertube}
}

func (u *SubscriptionUsecase) List(ctx context.Context) ([]model.ChannelSummary, error) {
	return u.store.ListValid(ctx)
}

func (u *SubscriptionUsecase) ListAll(ctx context.Context) ([]model.ChannelSummary, error) {
	return u.store.List(ctx)
}

func (u *SubscriptionUsecase) Subscribe(ctx context.Context, channel model.ChannelSummary) error {
	channel.Valid = model.ValidateChannel(channel)
	return u.store.Upsert(ctx, channel)
}

func (u *SubscriptionUsecase) Unsubscribe(ctx context.Context, channelID string) error {
	return u.store.Delete(ctx, channelID)
}

func (u *SubscriptionUsecase) IsSubscribed(ctx context.Context, channelID string) (bool, error) {
	return u.store.IsSubscribed(ctx, channelID)
}

func (u *SubscriptionUsecase) Import(ctx context.Context) (int, error) {
	channels, err := u.innertube.LoadSubscriptionsList(ctx)
	if err != nil {
		return 0, err
	}
	stored := 0
	for _, ch := range channels {
		if err := u.store.Upsert(ctx, ch); err != nil {
			logger.GetLogger().WithFields(map[string]interface{}{"channel": ch.ID, "error": err}).Warn("subscription import upsert failed")
			continue
		}
		stored++
	}
	logger.GetLogger().WithFields(map[string]interface{}{"fetched": len(channels), "stored": stored}).Info("subscriptions imported")
	return stored, nil
}
