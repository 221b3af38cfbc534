package innertube

import (
	"context"

	"github.com/erievs/FourthTube/domain/model"
	"github.com/erievs/FourthTube/infrastructure/logger"

	"github.com/tidwall/gjson"
)

// LoadMoreCommunityPosts loads the channel's community tab. The first call
// browses the tab itself; later calls follow the captured continuation. Both
// paths append to the existing post list.
func (c *Client) LoadMoreCommunityPosts(ctx context.Context, channel *model.ChannelDetail) error {
	if !channel.CommunityLoaded {
		return c.loadCommunityTab(ctx, channel)
	}
	return c.loadCommunityContinuation(ctx, channel)
}

func (c *Client) loadCommunityTab(ctx context.Context, channel *model.ChannelDetail) error {
	body, err := c.browseBody(profileWeb, channel.ID, browseParamsCommunity)
	if err != nil {
		return err
	}
	root, err := c.browse(ctx, body, "")
	if err != nil {
		channel.CommunityPagination.State = model.PageStateFailed
		channel.Error = "[comm] " + err.Error()
		logger.GetLogger().WithFields(map[string]interface{}{"channel": channel.ID, "error": err}).Error("community tab load failed")
		return err
	}

	token := ""
	for _, content := range tabContents(root) {
		for _, sectionNode := range content.Get("sectionListRenderer.contents").Array() {
			section := classifySection(sectionNode)
			if section.kind != sectionItemList {
				continue
			}
			token = appendCommunityItems(channel, section.items, token)
		}
	}
	channel.CommunityPagination.Capture(token)
	channel.CommunityLoaded = true
	return nil
}

func (c *Client) loadCommunityContinuation(ctx context.Context, channel *model.ChannelDetail) error {
	if err := guardLoadMore(&channel.CommunityPagination); err != nil {
		return err
	}

	body, err := c.continuationBody(profileWeb, channel.CommunityPagination.Token, "")
	if err != nil {
		return err
	}
	root, err := c.browse(ctx, body, "")
	if err != nil {
		channel.CommunityPagination.State = model.PageStateFailed
		channel.Error = "[comm+] " + err.Error()
		logger.GetLogger().WithField("error", err).Error("community continuation failed")
		return err
	}

	token := appendCommunityItems(channel, appendedContinuationItems(root), "")
	channel.CommunityPagination.Capture(token)
	return nil
}

// appendCommunityItems appends every recognized post and returns the last
// continuation token seen among the items, falling back to the given one.
func appendCommunityItems(channel *model.ChannelDetail, items []gjson.Result, token string) string {
	for _, item := range items {
		kind, payload := classifyItem(item)
		switch kind {
		case itemBackstagePost:
			channel.CommunityPosts = append(channel.CommunityPosts, communityPostFrom(payload))
		case itemContinuation:
			if t := continuationTokenFromItem(item); t != "" {
				token = t
			}
		default:
			logger.GetLogger().Debug("unknown item in community tab, skipping")
		}
	}
	return token
}
