package repository

import (
	"context"

	"github.com/erievs/FourthTube/domain/model"
)

// ProgressFunc receives (completed, total) as individual page fetches finish,
// in completion order. completed is monotonically increasing and ends at total.
type ProgressFunc func(completed, total int)

// IInnertube is the client for the upstream browse API. Load-more operations
// mutate the passed struct in place: on success they append newly parsed items
// and re-derive the pagination state, on failure they set the struct's Error
// and leave the item lists untouched.
type IInnertube interface {
	LoadHomePage(ctx context.Context) model.FeedResult
	LoadMoreHome(ctx context.Context, feed *model.FeedResult) error

	LoadChannelPage(ctx context.Context, channelID string) model.ChannelDetail
	LoadMoreChannelVideos(ctx context.Context, channel *model.ChannelDetail) error
	LoadChannelPlaylists(ctx context.Context, channel *model.ChannelDetail) error
	LoadMoreCommunityPosts(ctx context.Context, channel *model.ChannelDetail) error

	// LoadChannelPages fetches many channel pages without each waiting on the
	// others. The result slice is indexed by submission order regardless of
	// completion timing; a failed target occupies its slot with Error set.
	LoadChannelPages(ctx context.Context, channelIDs []string, progress ProgressFunc) []model.ChannelDetail

	// LoadSubscriptionsList imports the authenticated account's subscribed
	// channels from the upstream channels feed.
	LoadSubscriptionsList(ctx context.Context) ([]model.ChannelSummary, error)
}

// IAuthState is the authentication collaborator. The client only consults it
// to pick a request profile and attach a bearer token; token refresh is the
// collaborator's concern.
type IAuthState interface {
	IsAuthenticated() bool
	AccessToken(ctx context.Context) (string, error)
}
