package usecase_test

import (
	"context"
	"testing"

	"github.com/erievs/FourthTube/domain/model"
	"github.com/erievs/FourthTube/domain/repository"
	"github.com/erievs/FourthTube/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock implementations
type MockInnertube struct {
	mock.Mock
}

func (m *MockInnertube) LoadHomePage(ctx context.Context) model.FeedResult {
	args := m.Called(ctx)
	return args.Get(0).(model.FeedResult)
}

func (m *MockInnertube) LoadMoreHome(ctx context.Context, feed *model.FeedResult) error {
	args := m.Called(ctx, feed)
	return args.Error(0)
}

func (m *MockInnertube) LoadChannelPage(ctx context.Context, channelID string) model.ChannelDetail {
	args := m.Called(ctx, channelID)
	return args.Get(0).(model.ChannelDetail)
}

func (m *MockInnertube) LoadMoreChannelVideos(ctx context.Context, channel *model.ChannelDetail) error {
	args := m.Called(ctx, channel)
	return args.Error(0)
}

func (m *MockInnertube) LoadChannelPlaylists(ctx context.Context, channel *model.ChannelDetail) error {
	args := m.Called(ctx, channel)
	return args.Error(0)
}

func (m *MockInnertube) LoadMoreCommunityPosts(ctx context.Context, channel *model.ChannelDetail) error {
	args := m.Called(ctx, channel)
	return args.Error(0)
}

func (m *MockInnertube) LoadChannelPages(ctx context.Context, channelIDs []string, progress repository.ProgressFunc) []model.ChannelDetail {
	args := m.Called(ctx, channelIDs, progress)
	if progress != nil {
		progress(0, len(channelIDs))
		for i := range channelIDs {
			progress(i+1, len(channelIDs))
		}
	}
	return args.Get(0).([]model.ChannelDetail)
}

func (m *MockInnertube) LoadSubscriptionsList(ctx context.Context) ([]model.ChannelSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ChannelSummary), args.Error(1)
}

type MockSubscription struct {
	mock.Mock
}

func (m *MockSubscription) List(ctx context.Context) ([]model.ChannelSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ChannelSummary), args.Error(1)
}

func (m *MockSubscription) ListValid(ctx context.Context) ([]model.ChannelSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ChannelSummary), args.Error(1)
}

func (m *MockSubscription) Upsert(ctx context.Context, channel model.ChannelSummary) error {
	args := m.Called(ctx, channel)
	return args.Error(0)
}

func (m *MockSubscription) Delete(ctx context.Context, channelID string) error {
	args := m.Called(ctx, channelID)
	return args.Error(0)
}

func (m *MockSubscription) IsSubscribed(ctx context.Context, channelID string) (bool, error) {
	args := m.Called(ctx, channelID)
	return args.Bool(0), args.Error(1)
}

func channelDetail(id, name string, videos ...model.VideoSummary) model.ChannelDetail {
	detail := model.ChannelDetail{Videos: videos}
	detail.ID = id
	detail.Name = name
	detail.URL = "https://m.youtube.com/channel/" + id
	detail.IconURL = "https://yt3.ggpht.com/" + id + "=s88"
	return detail
}

func TestFeedUsecase_RefreshFeed(t *testing.T) {
	mockInnertube := new(MockInnertube)
	mockSubscription := new(MockSubscription)

	subs := []model.ChannelSummary{
		{ID: "UCa", Name: "Alpha"},
		{ID: "UCb", Name: "Beta"},
	}
	mockSubscription.On("ListValid", mock.Anything).Return(subs, nil)

	results := []model.ChannelDetail{
		channelDetail("UCa", "Alpha",
			model.VideoSummary{ID: "a1", PublishDateText: "3 days ago"},
			model.VideoSummary{ID: "a2", PublishDateText: "4 months ago"},
		),
		channelDetail("UCb", "Beta",
			model.VideoSummary{ID: "b1", PublishDateText: "2 hours ago"},
		),
	}
	mockInnertube.On("LoadChannelPages", mock.Anything, []string{"UCa", "UCb"}, mock.Anything).Return(results)
	mockSubscription.On("Upsert", mock.Anything, mock.Anything).Return(nil)

	uc := usecase.NewFeedUsecase(mockInnertube, mockSubscription, usecase.FeedConfig{})
	res := uc.RefreshFeed(context.Background())

	require.Empty(t, res.Error)
	// a2 falls outside the default two month cutoff; the rest is newest-first.
	require.Len(t, res.Videos, 2)
	assert.Equal(t, "b1", res.Videos[0].ID)
	assert.Equal(t, "a1", res.Videos[1].ID)
	assert.Equal(t, 2, res.Progress.Completed)
	assert.Equal(t, 2, res.Progress.Total)
	assert.False(t, res.Progress.Running)

	// Channel metadata was refreshed from the fetched pages.
	mockSubscription.AssertNumberOfCalls(t, "Upsert", 2)

	// A later snapshot returns the same feed without refetching.
	snapshot := uc.Feed(context.Background())
	assert.Equal(t, res.Videos, snapshot.Videos)
	mockInnertube.AssertNumberOfCalls(t, "LoadChannelPages", 1)
}

func TestFeedUsecase_RefreshFeedPartialFailure(t *testing.T) {
	mockInnertube := new(MockInnertube)
	mockSubscription := new(MockSubscription)

	subs := []model.ChannelSummary{{ID: "UCa", Name: "Alpha"}, {ID: "UCbad", Name: "Broken"}}
	mockSubscription.On("ListValid", mock.Anything).Return(subs, nil)

	failed := model.ChannelDetail{Error: "[ch] upstream exploded"}
	failed.ID = "UCbad"
	results := []model.ChannelDetail{
		channelDetail("UCa", "Alpha", model.VideoSummary{ID: "a1", PublishDateText: "1 week ago"}),
		failed,
	}
	mockInnertube.On("LoadChannelPages", mock.Anything, mock.Anything, mock.Anything).Return(results)
	mockSubscription.On("Upsert", mock.Anything, mock.Anything).Return(nil)

	uc := usecase.NewFeedUsecase(mockInnertube, mockSubscription, usecase.FeedConfig{})
	res := uc.RefreshFeed(context.Background())

	require.Len(t, res.Videos, 1)
	assert.Empty(t, res.Error)
	// The failed channel contributed nothing and its metadata was not touched.
	mockSubscription.AssertNumberOfCalls(t, "Upsert", 1)
}

func TestFeedUsecase_SubscriptionListFailure(t *testing.T) {
	mockInnertube := new(MockInnertube)
	mockSubscription := new(MockSubscription)
	mockSubscription.On("ListValid", mock.Anything).Return(nil, assert.AnError)

	uc := usecase.NewFeedUsecase(mockInnertube, mockSubscription, usecase.FeedConfig{})
	res := uc.RefreshFeed(context.Background())

	assert.NotEmpty(t, res.Error)
	assert.Empty(t, res.Videos)
	mockInnertube.AssertNotCalled(t, "LoadChannelPages")
}
