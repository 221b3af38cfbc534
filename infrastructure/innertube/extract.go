package innertube

import (
	"strings"

	"github.com/erievs/FourthTube/domain/model"

	"github.com/tidwall/gjson"
)

// Field extractors never fail: a missing key degrades to an empty field and
// the caller decides whether an empty mandatory field disqualifies the item.

// textOf flattens a rich-text object into its literal content. The upstream
// represents display text as a list of styled runs; older shapes carry a
// simpleText instead.
func textOf(node gjson.Result) string {
	if runs := node.Get("runs"); runs.Exists() {
		var b strings.Builder
		for _, run := range runs.Array() {
			b.WriteString(run.Get("text").String())
		}
		return b.String()
	}
	if simple := node.Get("simpleText"); simple.Exists() {
		return simple.String()
	}
	return ""
}

// thumbnailExact picks the rendition whose declared width equals the requested
// one, falling back to the closest available. Empty candidate list yields "".
func thumbnailExact(thumbnails gjson.Result, width int64) string {
	for _, t := range thumbnails.Array() {
		if t.Get("width").Int() == width {
			return t.Get("url").String()
		}
	}
	return thumbnailClosest(thumbnails, width)
}

// thumbnailClosest picks the rendition minimizing the absolute width distance
// from the requested one. Empty candidate list yields "".
func thumbnailClosest(thumbnails gjson.Result, width int64) string {
	best := ""
	var bestDist int64 = -1
	for _, t := range thumbnails.Array() {
		dist := t.Get("width").Int() - width
		if dist < 0 {
			dist = -dist
		}
		if bestDist < 0 || dist < bestDist {
			bestDist = dist
			best = t.Get("url").String()
		}
	}
	return best
}

// accessibilitySeparator splits the combined accessibility string some shapes
// use in place of structured fields.
const accessibilitySeparator = " - "

// splitAccessibilityText maps a combined accessibility label onto its
// positional fields. Views and publish date only exist when the split yields
// at least six segments; shorter labels leave them empty.
func splitAccessibilityText(text string) (viewsText, publishDateText string) {
	parts := strings.Split(text, accessibilitySeparator)
	if len(parts) >= 6 {
		return parts[4], parts[5]
	}
	return "", ""
}

// videoFromRenderer extracts a video from the compactVideoRenderer and
// videoWithContextRenderer shapes, which share most field locations.
func videoFromRenderer(node gjson.Result) model.VideoSummary {
	id := node.Get("videoId").String()

	title := textOf(node.Get("title"))
	if title == "" {
		title = textOf(node.Get("headline"))
	}

	views := textOf(node.Get("shortViewCountText"))
	if views == "" {
		views = textOf(node.Get("viewCountText"))
	}

	v := model.VideoSummary{
		ID:              id,
		Title:           title,
		ThumbnailURL:    thumbnailClosest(node.Get("thumbnail.thumbnails"), 320),
		DurationText:    textOf(node.Get("lengthText")),
		ViewsText:       views,
		PublishDateText: textOf(node.Get("publishedTimeText")),
		Author:          textOf(node.Get("shortBylineText")),
		AuthorID:        node.Get("shortBylineText.runs.0.navigationEndpoint.browseEndpoint.browseId").String(),
	}
	if id != "" {
		v.URL = watchURL(id)
	}
	return v
}

// videoFromElementModel extracts a video from the model-based element shape
// one client profile serves. Structured views/date fields do not exist there;
// they come from the combined accessibility string.
func videoFromElementModel(node gjson.Result) model.VideoSummary {
	data := node.Get("compactVideoData")
	id := data.Get("onTap.innertubeCommand.watchEndpoint.videoId").String()

	v := model.VideoSummary{
		ID:           id,
		Title:        data.Get("videoData.metadata.title").String(),
		DurationText: data.Get("videoData.thumbnail.timestampText").String(),
		Author:       data.Get("videoData.metadata.byline").String(),
	}
	v.ViewsText, v.PublishDateText = splitAccessibilityText(data.Get("accessibilityText").String())
	if id != "" {
		v.URL = watchURL(id)
		v.ThumbnailURL = videoThumbnailURL(id)
	}
	return v
}

// playlistFromCompact extracts one playlist card. Playlist share URLs are
// normalized to a watch URL so a player can open them directly; the video id
// comes out of the thumbnail URL.
func playlistFromCompact(node gjson.Result) model.PlaylistSummary {
	p := model.PlaylistSummary{
		Title:          textOf(node.Get("title")),
		VideoCountText: textOf(node.Get("videoCountText")),
	}
	for _, t := range node.Get("thumbnail.thumbnails").Array() {
		if strings.Contains(t.Get("url").String(), "/default.jpg") {
			p.ThumbnailURL = t.Get("url").String()
		}
	}

	share := node.Get("shareUrl").String()
	switch {
	case strings.HasPrefix(share, "https://www.youtube.com/watch"), strings.HasPrefix(share, "https://m.youtube.com/watch"):
		p.URL = share
	case strings.Contains(share, "/playlist?"):
		playlistID := queryParam(share, "list")
		videoID := videoIDFromThumbnailURL(p.ThumbnailURL)
		if playlistID != "" && videoID != "" {
			p.URL = watchURL(videoID) + "&list=" + playlistID
		}
	}
	return p
}

// channelFromCompact extracts one channel entry from the subscriptions import
// feed.
func channelFromCompact(node gjson.Result) model.ChannelSummary {
	ch := model.ChannelSummary{
		ID:                  node.Get("channelId").String(),
		Name:                textOf(node.Get("displayName")),
		SubscriberCountText: textOf(node.Get("videoCountText")),
		IconURL:             thumbnailExact(node.Get("thumbnail.thumbnails"), 72),
	}
	if ch.Name == "" {
		ch.Name = textOf(node.Get("title"))
	}
	browseID := node.Get("navigationEndpoint.browseEndpoint.browseId").String()
	if browseID == "" {
		browseID = ch.ID
	}
	if browseID != "" {
		ch.URL = channelURL(browseID)
	}
	ch.Valid = model.ValidateChannel(ch)
	return ch
}

// communityPostFrom extracts one community post with its optional image,
// video or poll attachment.
func communityPostFrom(node gjson.Result) model.CommunityPost {
	post := model.CommunityPost{
		Message:       textOf(node.Get("contentText")),
		AuthorName:    textOf(node.Get("authorText")),
		AuthorIconURL: thumbnailClosest(node.Get("authorThumbnail.thumbnails"), 70),
		TimeText:      textOf(node.Get("publishedTimeText")),
		UpvotesText:   textOf(node.Get("voteCount")),
	}

	attachment := node.Get("backstageAttachment")
	if image := attachment.Get("backstageImageRenderer"); image.Exists() {
		if thumbs := image.Get("image.thumbnails").Array(); len(thumbs) > 0 {
			post.ImageURL = thumbs[0].Get("url").String()
		}
	}
	if video := attachment.Get("videoRenderer"); video.Exists() {
		v := videoFromRenderer(video)
		post.Video = &v
	}
	if poll := attachment.Get("pollRenderer"); poll.Exists() {
		post.PollTotalVotes = textOf(poll.Get("totalVotes"))
		for _, choice := range poll.Get("choices").Array() {
			post.PollChoices = append(post.PollChoices, textOf(choice.Get("text")))
		}
	}
	return post
}
