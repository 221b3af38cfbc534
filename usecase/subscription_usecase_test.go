package usecase_test

import (
	"context"
	"testing"

	"github.com/erievs/FourthTube/domain/model"
	"github.com/erievs/FourthTube/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSubscriptionUsecase_SubscribeComputesValidity(t *testing.T) {
	mockStore := new(MockSubscription)
	mockInnertube := new(MockInnertube)

	var stored model.ChannelSummary
	mockStore.On("Upsert", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		stored = args.Get(1).(model.ChannelSummary)
	}).Return(nil)

	uc := usecase.NewSubscriptionUsecase(mockStore, mockInnertube)
	err := uc.Subscribe(context.Background(), model.ChannelSummary{
		ID:      "UCa",
		URL:     "https://m.youtube.com/channel/UCa",
		Name:    "Alpha",
		IconURL: "https://yt3.ggpht.com/a=s72",
	})
	require.NoError(t, err)
	assert.True(t, stored.Valid)

	err = uc.Subscribe(context.Background(), model.ChannelSummary{
		ID:   "UCb",
		URL:  "https://evil.example/channel/UCb",
		Name: "Beta",
	})
	require.NoError(t, err)
	assert.False(t, stored.Valid)
}

func TestSubscriptionUsecase_Import(t *testing.T) {
	mockStore := new(MockSubscription)
	mockInnertube := new(MockInnertube)

	channels := []model.ChannelSummary{
		{ID: "UCa", Name: "Alpha"},
		{ID: "UCb", Name: "Beta"},
		{ID: "UCc", Name: "Gamma"},
	}
	mockInnertube.On("LoadSubscriptionsList", mock.Anything).Return(channels, nil)
	mockStore.On("Upsert", mock.Anything, mock.MatchedBy(func(ch model.ChannelSummary) bool {
		return ch.ID == "UCb"
	})).Return(assert.AnError)
	mockStore.On("Upsert", mock.Anything, mock.Anything).Return(nil)

	uc := usecase.NewSubscriptionUsecase(mockStore, mockInnertube)
	stored, err := uc.Import(context.Background())

	// One upsert failed; the rest still land.
	require.NoError(t, err)
	assert.Equal(t, 2, stored)
}

func TestSubscriptionUsecase_ImportUpstreamFailure(t *testing.T) {
	mockStore := new(MockSubscription)
	mockInnertube := new(MockInnertube)
	mockInnertube.On("LoadSubscriptionsList", mock.Anything).Return(nil, assert.AnError)

	uc := usecase.NewSubscriptionUsecase(mockStore, mockInnertube)
	_, err := uc.Import(context.Background())
	assert.Error(t, err)
	mockStore.AssertNotCalled(t, "Upsert")
}
