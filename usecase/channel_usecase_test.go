package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/erievs/FourthTube/domain/model"
	"github.com/erievs/FourthTube/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestChannelUsecase_ChannelHoldsPage(t *testing.T) {
	mockInnertube := new(MockInnertube)
	detail := channelDetail("UCa", "Alpha", model.VideoSummary{ID: "a1"})
	mockInnertube.On("LoadChannelPage", mock.Anything, "UCa").Return(detail)

	uc := usecase.NewChannelUsecase(mockInnertube)

	got := uc.Channel(context.Background(), "UCa", false)
	assert.Equal(t, "Alpha", got.Name)

	// Second access without refresh serves the held page.
	got = uc.Channel(context.Background(), "UCa", false)
	assert.Equal(t, "Alpha", got.Name)
	mockInnertube.AssertNumberOfCalls(t, "LoadChannelPage", 1)

	// refresh forces a refetch.
	uc.Channel(context.Background(), "UCa", true)
	mockInnertube.AssertNumberOfCalls(t, "LoadChannelPage", 2)
}

func TestChannelUsecase_MoreVideosRequiresLoad(t *testing.T) {
	mockInnertube := new(MockInnertube)
	uc := usecase.NewChannelUsecase(mockInnertube)

	_, err := uc.MoreVideos(context.Background(), "UCnever")
	assert.ErrorIs(t, err, usecase.ErrChannelNotLoaded)
	mockInnertube.AssertNotCalled(t, "LoadMoreChannelVideos")
}

func TestChannelUsecase_MoreVideosAppends(t *testing.T) {
	mockInnertube := new(MockInnertube)
	detail := channelDetail("UCa", "Alpha", model.VideoSummary{ID: "a1"})
	detail.VideosPagination.Capture("tok")
	mockInnertube.On("LoadChannelPage", mock.Anything, "UCa").Return(detail)
	mockInnertube.On("LoadMoreChannelVideos", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		page := args.Get(1).(*model.ChannelDetail)
		page.Videos = append(page.Videos, model.VideoSummary{ID: "a2"})
		page.VideosPagination.Capture("")
	}).Return(nil)

	uc := usecase.NewChannelUsecase(mockInnertube)
	uc.Channel(context.Background(), "UCa", false)

	got, err := uc.MoreVideos(context.Background(), "UCa")
	require.NoError(t, err)
	require.Len(t, got.Videos, 2)
	assert.Equal(t, model.PageStateExhausted, got.VideosPagination.State)
}

func TestChannelUsecase_SlowLoadMoreDoesNotBlockOtherChannels(t *testing.T) {
	mockInnertube := new(MockInnertube)
	detailA := channelDetail("UCa", "Alpha", model.VideoSummary{ID: "a1"})
	detailA.VideosPagination.Capture("tok-a")
	detailB := channelDetail("UCb", "Beta", model.VideoSummary{ID: "b1"})
	mockInnertube.On("LoadChannelPage", mock.Anything, "UCa").Return(detailA)
	mockInnertube.On("LoadChannelPage", mock.Anything, "UCb").Return(detailB)

	release := make(chan struct{})
	mockInnertube.On("LoadMoreChannelVideos", mock.Anything, mock.Anything).Run(func(mock.Arguments) {
		<-release
	}).Return(nil)

	uc := usecase.NewChannelUsecase(mockInnertube)
	uc.Channel(context.Background(), "UCa", false)
	uc.Channel(context.Background(), "UCb", false)

	moreDone := make(chan struct{})
	go func() {
		uc.MoreVideos(context.Background(), "UCa")
		close(moreDone)
	}()

	// While channel A's load-more hangs on the upstream, the cached page of
	// channel B must still be served immediately.
	readDone := make(chan model.ChannelDetail, 1)
	go func() {
		readDone <- uc.Channel(context.Background(), "UCb", false)
	}()
	select {
	case got := <-readDone:
		assert.Equal(t, "Beta", got.Name)
	case <-time.After(500 * time.Millisecond):
		t.Fatal("cached read blocked behind another channel's network call")
	}

	close(release)
	<-moreDone
}

func TestChannelUsecase_OverlappingLoadMoreRejected(t *testing.T) {
	mockInnertube := new(MockInnertube)
	detail := channelDetail("UCa", "Alpha", model.VideoSummary{ID: "a1"})
	detail.VideosPagination.Capture("tok")
	mockInnertube.On("LoadChannelPage", mock.Anything, "UCa").Return(detail)

	started := make(chan struct{})
	release := make(chan struct{})
	mockInnertube.On("LoadMoreChannelVideos", mock.Anything, mock.Anything).Run(func(mock.Arguments) {
		close(started)
		<-release
	}).Return(nil)

	uc := usecase.NewChannelUsecase(mockInnertube)
	uc.Channel(context.Background(), "UCa", false)

	moreDone := make(chan struct{})
	go func() {
		uc.MoreVideos(context.Background(), "UCa")
		close(moreDone)
	}()
	<-started

	// A second load-more while one is in flight is rejected, not queued.
	_, err := uc.MoreVideos(context.Background(), "UCa")
	assert.ErrorIs(t, err, usecase.ErrLoadInProgress)

	close(release)
	<-moreDone
	mockInnertube.AssertNumberOfCalls(t, "LoadMoreChannelVideos", 1)
}

func TestChannelUsecase_PlaylistsOnlyResolvedOnce(t *testing.T) {
	mockInnertube := new(MockInnertube)
	detail := channelDetail("UCa", "Alpha")
	detail.PlaylistTabBrowseID = "UCa"
	detail.PlaylistTabParams = "params"
	mockInnertube.On("LoadChannelPage", mock.Anything, "UCa").Return(detail)
	mockInnertube.On("LoadChannelPlaylists", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		page := args.Get(1).(*model.ChannelDetail)
		page.PlaylistGroups = []model.PlaylistGroup{{Name: "Albums"}}
		page.PlaylistTabBrowseID = ""
		page.PlaylistTabParams = ""
	}).Return(nil)

	uc := usecase.NewChannelUsecase(mockInnertube)
	uc.Channel(context.Background(), "UCa", false)

	got, err := uc.Playlists(context.Background(), "UCa")
	require.NoError(t, err)
	require.Len(t, got.PlaylistGroups, 1)

	// Already resolved; no second upstream call.
	_, err = uc.Playlists(context.Background(), "UCa")
	require.NoError(t, err)
	mockInnertube.AssertNumberOfCalls(t, "LoadChannelPlaylists", 1)
}
