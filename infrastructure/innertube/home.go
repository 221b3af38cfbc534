package innertube

import (
	"context"

	"github.com/erievs/FourthTube/domain/model"
	"github.com/erievs/FourthTube/infrastructure/logger"
)

// LoadHomePage fetches the first page of the home feed. The browse target and
// request profile depend on authentication state because the upstream serves
// entirely different layouts to each.
func (c *Client) LoadHomePage(ctx context.Context) model.FeedResult {
	var res model.FeedResult

	profile := profileAndroid
	browseID := browseIDHomeUnauthed
	bearer := c.bearerToken(ctx)
	if bearer != "" {
		profile = profileAndroidVR
		browseID = browseIDHomeAuthed
	}

	body, err := c.browseBody(profile, browseID, "")
	if err != nil {
		res.Error = "[home] " + err.Error()
		return res
	}
	root, err := c.browse(ctx, body, bearer)
	if err != nil {
		res.Error = "[home] " + err.Error()
		res.Pagination.State = model.PageStateFailed
		logger.GetLogger().WithField("error", err).Error("home page load failed")
		return res
	}

	res.Pagination.CaptureVisitorData(root.Get("responseContext.visitorData").String())

	token := ""
	for _, content := range tabContents(root) {
		sectionList := content.Get("sectionListRenderer")
		if !sectionList.Exists() {
			continue
		}
		videos, t := videosFromSectionList(sectionList)
		for _, v := range videos {
			if v.ID == "" {
				continue
			}
			res.Videos = append(res.Videos, v)
		}
		if t != "" {
			token = t
		}
	}
	res.Pagination.Capture(token)
	return res
}

// LoadMoreHome extends the home feed by one page. On success newly parsed
// videos are appended and the pagination state re-derived; on failure the
// existing videos are left untouched and the feed is marked failed.
func (c *Client) LoadMoreHome(ctx context.Context, feed *model.FeedResult) error {
	if err := guardLoadMore(&feed.Pagination); err != nil {
		return err
	}

	profile := profileMWEB
	bearer := c.bearerToken(ctx)
	if bearer != "" {
		profile = profileAndroidVR
	}

	body, err := c.continuationBody(profile, feed.Pagination.Token, feed.Pagination.VisitorData)
	if err != nil {
		return err
	}
	root, err := c.browse(ctx, body, bearer)
	if err != nil {
		feed.Pagination.State = model.PageStateFailed
		feed.Error = "[home-c] " + err.Error()
		logger.GetLogger().WithField("error", err).Error("home continuation failed")
		return err
	}

	feed.Pagination.CaptureVisitorData(root.Get("responseContext.visitorData").String())

	continuation := sectionListContinuation(root)
	videos, token := videosFromSectionList(continuation)
	for _, v := range videos {
		if v.ID == "" {
			continue
		}
		feed.Videos = append(feed.Videos, v)
	}
	feed.Pagination.Capture(token)
	return nil
}
