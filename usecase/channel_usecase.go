package usecase

import (
	"context"
	"errors"
	"sync"

	"github.com/erievs/FourthTube/domain/model"
	"github.com/erievs/FourthTube/domain/repository"
)

var (
	ErrChannelNotLoaded = errors.New("channel page not loaded")
	ErrLoadInProgress   = errors.New("channel load already in progress")
)

type IChannelUsecase interface {
	// Channel returns the channel page, fetching it on first access.
	Channel(ctx context.Context, channelID string, refresh bool) model.ChannelDetail
	// MoreVideos appends the next page of uploads to the held channel.
	MoreVideos(ctx context.Context, channelID string) (model.ChannelDetail, error)
	// Playlists resolves the channel's playlists tab into the held page.
	Playlists(ctx context.Context, channelID string) (model.ChannelDetail, error)
	// MoreCommunity loads the community tab or its next page.
	MoreCommunity(ctx context.Context, channelID string) (model.ChannelDetail, error)
}

// channelState is the held page of one channel. busy marks a fetch in flight;
// the lock is taken only to read or swap fields, never across a network call.
// Overlapping fetches for the same channel are rejected via busy, which is
// what prevents duplicate appends from overlapping load-more calls.
type channelState struct {
	mu     sync.Mutex
	busy   bool
	detail *model.ChannelDetail
}

// ChannelUsecase keeps loaded channel pages in memory so that load-more calls
// continue from the stored continuation cursor instead of refetching. State is
// per channel: a slow fetch for one channel never blocks reads of another.
type ChannelUsecase struct {
	innertube repository.IInnertube

	mu    sync.Mutex
	pages map[string]*channelState
}

func NewChannelUsecase(innertube repository.IInnertube) *ChannelUsecase {
	return &ChannelUsecase{innertube: innertube, pages: map[string]*channelState{}}
}

// state returns the per-channel slot, creating it on first access. The map
// lock covers only the lookup.
func (u *ChannelUsecase) state(channelID string) *channelState {
	u.mu.Lock()
	defer u.mu.Unlock()
	st, ok := u.pages[channelID]
	if !ok {
		st = &channelState{}
		u.pages[channelID] = st
	}
	return st
}

func (u *ChannelUsecase) Channel(ctx context.Context, channelID string, refresh bool) model.ChannelDetail {
	st := u.state(channelID)

	st.mu.Lock()
	if st.detail != nil && !refresh {
		detail := *st.detail
		st.mu.Unlock()
		return detail
	}
	if st.busy {
		// A fetch is already in flight; serve what is held rather than piling
		// a second request onto the upstream.
		if st.detail != nil {
			detail := *st.detail
			st.mu.Unlock()
			return detail
		}
		st.mu.Unlock()
		return model.ChannelDetail{Error: ErrLoadInProgress.Error()}
	}
	st.busy = true
	st.mu.Unlock()

	detail := u.innertube.LoadChannelPage(ctx, channelID)

	st.mu.Lock()
	st.detail = &detail
	st.busy = false
	st.mu.Unlock()
	return detail
}

func (u *ChannelUsecase) MoreVideos(ctx context.Context, channelID string) (model.ChannelDetail, error) {
	return u.withPage(channelID, func(page *model.ChannelDetail) error {
		return u.innertube.LoadMoreChannelVideos(ctx, page)
	})
}

func (u *ChannelUsecase) Playlists(ctx context.Context, channelID string) (model.ChannelDetail, error) {
	return u.withPage(channelID, func(page *model.ChannelDetail) error {
		if len(page.PlaylistGroups) > 0 || !page.HasPlaylistTab() {
			// Already resolved, or the channel has no playlists tab.
			return nil
		}
		return u.innertube.LoadChannelPlaylists(ctx, page)
	})
}

func (u *ChannelUsecase) MoreCommunity(ctx context.Context, channelID string) (model.ChannelDetail, error) {
	return u.withPage(channelID, func(page *model.ChannelDetail) error {
		return u.innertube.LoadMoreCommunityPosts(ctx, page)
	})
}

// withPage runs fn against a working copy of the held page and swaps the
// result back in afterwards. The page must already be loaded; overlapping
// calls for the same channel are rejected while one is in flight.
func (u *ChannelUsecase) withPage(channelID string, fn func(*model.ChannelDetail) error) (model.ChannelDetail, error) {
	st := u.state(channelID)

	st.mu.Lock()
	if st.detail == nil {
		st.mu.Unlock()
		return model.ChannelDetail{}, ErrChannelNotLoaded
	}
	if st.busy {
		st.mu.Unlock()
		return model.ChannelDetail{}, ErrLoadInProgress
	}
	st.busy = true
	working := *st.detail
	st.mu.Unlock()

	err := fn(&working)

	st.mu.Lock()
	st.detail = &working
	st.busy = false
	st.mu.Unlock()
	return working, err
}
