package model

// ChannelSummary is the directory entry kept for a subscribed channel.
// Valid is derived from URL-shape checks; an invalid channel stays persisted
// but is excluded from display lists.
type ChannelSummary struct {
	ID                  string `json:"id"`
	URL                 string `json:"url"`
	Name                string `json:"name"`
	IconURL             string `json:"icon_url"`
	SubscriberCountText string `json:"subscriber_count_str"`
	Valid               bool   `json:"-"`
}

// PlaylistSummary is one playlist card on a channel's playlists tab.
type PlaylistSummary struct {
	Title          string `json:"title"`
	URL            string `json:"url"`
	ThumbnailURL   string `json:"thumbnail_url"`
	VideoCountText string `json:"video_count_str"`
}

// PlaylistGroup is a named shelf of playlists.
type PlaylistGroup struct {
	Name      string            `json:"name"`
	Playlists []PlaylistSummary `json:"playlists"`
}

// CommunityPost is one post on a channel's community tab. At most one of the
// image/video/poll attachments is present.
type CommunityPost struct {
	Message        string        `json:"message"`
	AuthorName     string        `json:"author_name"`
	AuthorIconURL  string        `json:"author_icon_url"`
	TimeText       string        `json:"time_text"`
	UpvotesText    string        `json:"upvotes_str"`
	ImageURL       string        `json:"image_url,omitempty"`
	Video          *VideoSummary `json:"video,omitempty"`
	PollTotalVotes string        `json:"poll_total_votes,omitempty"`
	PollChoices    []string      `json:"poll_choices,omitempty"`
}

// ChannelDetail is a fully loaded channel page: header metadata, the videos
// tab with its continuation cursor, lazily loaded playlists and community
// posts with their own cursors.
type ChannelDetail struct {
	ChannelSummary
	Description string `json:"description"`
	BannerURL   string `json:"banner_url"`

	Videos           []VideoSummary  `json:"videos"`
	VideosPagination Pagination      `json:"videos_pagination"`
	PlaylistGroups   []PlaylistGroup `json:"playlist_groups,omitempty"`

	CommunityPosts      []CommunityPost `json:"community_posts,omitempty"`
	CommunityPagination Pagination      `json:"community_pagination"`
	// CommunityLoaded distinguishes "community tab never fetched" from
	// "fetched, continuation pending".
	CommunityLoaded bool `json:"community_loaded"`

	// Lazy reference to the playlists tab, resolved by LoadChannelPlaylists.
	PlaylistTabBrowseID string `json:"playlist_tab_browse_id,omitempty"`
	PlaylistTabParams   string `json:"playlist_tab_params,omitempty"`

	Error string `json:"error,omitempty"`
}

// HasPlaylistTab reports whether the playlists tab reference was captured on
// the initial page load.
func (c *ChannelDetail) HasPlaylistTab() bool {
	return c.PlaylistTabBrowseID != "" && c.PlaylistTabParams != ""
}

// Summary returns the directory entry refreshed from this page load.
func (c *ChannelDetail) Summary() ChannelSummary {
	return c.ChannelSummary
}
