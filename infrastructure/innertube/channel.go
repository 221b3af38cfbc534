package innertube

import (
	"context"
	"errors"
	"strings"

	"github.com/erievs/FourthTube/domain/model"
	"github.com/erievs/FourthTube/infrastructure/logger"

	"github.com/tidwall/gjson"
)

var errNoPlaylistTab = errors.New("channel has no playlists tab")

// LoadChannelPage fetches a channel's videos tab plus header metadata and the
// lazy reference to its playlists tab.
func (c *Client) LoadChannelPage(ctx context.Context, channelID string) model.ChannelDetail {
	var res model.ChannelDetail

	body, err := c.browseBody(profileMWEB, channelID, browseParamsVideos)
	if err != nil {
		res.Error = "[ch] " + err.Error()
		return res
	}
	root, err := c.browse(ctx, body, "")
	if err != nil {
		res.Error = "[ch] " + err.Error()
		res.VideosPagination.State = model.PageStateFailed
		logger.GetLogger().WithFields(map[string]interface{}{"channel": channelID, "error": err}).Error("channel page load failed")
		return res
	}

	c.parseChannelPage(root, &res)
	return res
}

// parseChannelPage populates a ChannelDetail from a channel browse response.
func (c *Client) parseChannelPage(root gjson.Result, res *model.ChannelDetail) {
	metadata := root.Get("metadata.channelMetadataRenderer")
	res.ID = metadata.Get("externalId").String()
	res.Name = metadata.Get("title").String()
	res.Description = metadata.Get("description").String()
	if res.ID != "" {
		res.URL = channelURL(res.ID)
	}

	// Two header generations are in circulation; try the tabbed header
	// first, then the view-model one.
	if header := root.Get("header.c4TabbedHeaderRenderer"); header.Exists() {
		res.SubscriberCountText = textOf(header.Get("subscriberCountText"))
		res.BannerURL = thumbnailExact(header.Get("banner.thumbnails"), 320)
		res.IconURL = thumbnailClosest(header.Get("avatar.thumbnails"), 88)
	} else if vm := root.Get("header.pageHeaderRenderer.content.pageHeaderViewModel"); vm.Exists() {
		res.BannerURL = thumbnailExact(vm.Get("banner.imageBannerViewModel.image.sources"), 320)
		res.IconURL = thumbnailClosest(vm.Get("image.decoratedAvatarViewModel.avatar.avatarViewModel.image.sources"), 88)
		rows := vm.Get("metadata.contentMetadataViewModel.metadataRows").Array()
		if len(rows) > 1 {
			if parts := rows[1].Get("metadataParts").Array(); len(parts) > 0 {
				res.SubscriberCountText = parts[0].Get("text.content").String()
			}
		}
	}

	token := ""
	for _, key := range []string{
		"contents.singleColumnBrowseResultsRenderer.tabs",
		"contents.twoColumnBrowseResultsRenderer.tabs",
	} {
		for _, tab := range root.Get(key).Array() {
			for _, item := range tab.Get("tabRenderer.content.richGridRenderer.contents").Array() {
				kind, payload := classifyItem(item)
				switch kind {
				case itemCompactVideo, itemVideoWithContext:
					if v := videoFromRenderer(payload); v.ID != "" {
						res.Videos = append(res.Videos, v)
					}
				case itemContinuation:
					if t := continuationTokenFromItem(item); t != "" {
						token = t
					}
				default:
					logger.GetLogger().Debug("unknown item in channel videos, skipping")
				}
			}
			tabURL := tab.Get("tabRenderer.endpoint.commandMetadata.webCommandMetadata.url").String()
			if strings.HasSuffix(tabURL, "/playlists") {
				res.PlaylistTabBrowseID = tab.Get("tabRenderer.endpoint.browseEndpoint.browseId").String()
				res.PlaylistTabParams = tab.Get("tabRenderer.endpoint.browseEndpoint.params").String()
			}
		}
	}
	res.VideosPagination.Capture(token)
	res.Valid = model.ValidateChannel(res.ChannelSummary)
}

// LoadMoreChannelVideos extends the channel's video list by one page.
func (c *Client) LoadMoreChannelVideos(ctx context.Context, channel *model.ChannelDetail) error {
	if err := guardLoadMore(&channel.VideosPagination); err != nil {
		return err
	}

	body, err := c.continuationBody(profileMWEB, channel.VideosPagination.Token, "")
	if err != nil {
		return err
	}
	root, err := c.browse(ctx, body, "")
	if err != nil {
		channel.VideosPagination.State = model.PageStateFailed
		channel.Error = "[ch+] " + err.Error()
		logger.GetLogger().WithField("error", err).Error("channel videos continuation failed")
		return err
	}

	token := ""
	for _, item := range appendedContinuationItems(root) {
		kind, payload := classifyItem(item)
		switch kind {
		case itemCompactVideo, itemVideoWithContext:
			if v := videoFromRenderer(payload); v.ID != "" {
				channel.Videos = append(channel.Videos, v)
			}
		case itemContinuation:
			if t := continuationTokenFromItem(item); t != "" {
				token = t
			}
		}
	}
	channel.VideosPagination.Capture(token)
	return nil
}

// LoadChannelPlaylists resolves the lazily referenced playlists tab into named
// playlist groups. The tab reference is cleared afterwards; playlists are a
// one-shot load.
func (c *Client) LoadChannelPlaylists(ctx context.Context, channel *model.ChannelDetail) error {
	if !channel.HasPlaylistTab() {
		return errNoPlaylistTab
	}

	body, err := c.browseBody(profileMWEB, channel.PlaylistTabBrowseID, channel.PlaylistTabParams)
	if err != nil {
		return err
	}
	root, err := c.browse(ctx, body, "")
	if err != nil {
		channel.Error = "[ch/pl] " + err.Error()
		logger.GetLogger().WithField("error", err).Error("channel playlists load failed")
		return err
	}

	for _, content := range tabContents(root) {
		sectionList := content.Get("sectionListRenderer")
		for _, sectionNode := range sectionList.Get("contents").Array() {
			section := classifySection(sectionNode)
			switch section.kind {
			case sectionShelf:
				name := textOf(sectionNode.Get("shelfRenderer.title"))
				if group := playlistGroup(name, section.items); len(group.Playlists) > 0 {
					channel.PlaylistGroups = append(channel.PlaylistGroups, group)
				}
			case sectionItemList:
				// The generic container names its group through the sub menu.
				var name strings.Builder
				for _, entry := range sectionList.Get("subMenu.channelSubMenuRenderer.contentTypeSubMenuItems").Array() {
					name.WriteString(entry.Get("title").String())
				}
				if group := playlistGroup(name.String(), section.items); len(group.Playlists) > 0 {
					channel.PlaylistGroups = append(channel.PlaylistGroups, group)
				}
			}
		}
	}

	channel.PlaylistTabBrowseID = ""
	channel.PlaylistTabParams = ""
	return nil
}

func playlistGroup(name string, items []gjson.Result) model.PlaylistGroup {
	group := model.PlaylistGroup{Name: name}
	for _, item := range items {
		if kind, payload := classifyItem(item); kind == itemCompactPlaylist {
			group.Playlists = append(group.Playlists, playlistFromCompact(payload))
		}
	}
	return group
}
