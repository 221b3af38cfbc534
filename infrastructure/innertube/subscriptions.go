package innertube

import (
	"context"
	"errors"
	"sort"

	"github.com/erievs/FourthTube/domain/model"
	"github.com/erievs/FourthTube/infrastructure/logger"
)

var errNotAuthenticated = errors.New("subscriptions import requires authentication")

// LoadSubscriptionsList imports the account's subscribed channels from the
// channels feed. Entries missing a name or failing URL validation are dropped;
// duplicates collapse to their first occurrence. The result is sorted by name.
func (c *Client) LoadSubscriptionsList(ctx context.Context) ([]model.ChannelSummary, error) {
	bearer := c.bearerToken(ctx)
	if bearer == "" {
		return nil, errNotAuthenticated
	}

	body, err := c.browseBody(profileAndroidVR, browseIDChannels, "")
	if err != nil {
		return nil, err
	}
	root, err := c.browse(ctx, body, bearer)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("subscriptions import failed")
		return nil, err
	}

	seen := map[string]bool{}
	var channels []model.ChannelSummary
	for _, content := range tabContents(root) {
		for _, sectionNode := range content.Get("sectionListRenderer.contents").Array() {
			section := classifySection(sectionNode)
			if section.kind != sectionShelf && section.kind != sectionItemList {
				continue
			}
			for _, item := range section.items {
				kind, payload := classifyItem(item)
				if kind != itemCompactChannel {
					continue
				}
				ch := channelFromCompact(payload)
				if ch.ID == "" || ch.Name == "" || !ch.Valid || seen[ch.ID] {
					continue
				}
				seen[ch.ID] = true
				channels = append(channels, ch)
			}
		}
	}

	sort.Slice(channels, func(i, j int) bool { return channels[i].Name < channels[j].Name })
	return channels, nil
}
