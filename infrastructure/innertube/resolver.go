package innertube

import (
	"github.com/erievs/FourthTube/domain/model"
	"github.com/erievs/FourthTube/infrastructure/logger"

	"github.com/tidwall/gjson"
)

// The upstream represents one list of content with several container
// conventions depending on endpoint and client profile. Classification is a
// fixed-priority presence check; anything unrecognized is skipped so that new
// upstream shapes degrade to "no items" instead of errors.

type sectionKind int

const (
	sectionUnknown sectionKind = iota
	// sectionShelf is a shelfRenderer wrapping a vertical list of compact items.
	sectionShelf
	// sectionItemList is an itemSectionRenderer with "with context" items.
	sectionItemList
	// sectionRichGrid is a richGridRenderer, used by channel video tabs.
	sectionRichGrid
	// sectionContinuation is a continuation marker posing as a section.
	sectionContinuation
)

type classifiedSection struct {
	kind  sectionKind
	items []gjson.Result
	token string
}

// classifySection maps one entry of a section list onto a known container
// shape and flattens its items.
func classifySection(node gjson.Result) classifiedSection {
	if shelf := node.Get("shelfRenderer"); shelf.Exists() {
		return classifiedSection{kind: sectionShelf, items: shelf.Get("content.verticalListRenderer.items").Array()}
	}
	if sec := node.Get("itemSectionRenderer"); sec.Exists() {
		return classifiedSection{kind: sectionItemList, items: sec.Get("contents").Array()}
	}
	if grid := node.Get("richGridRenderer"); grid.Exists() {
		return classifiedSection{kind: sectionRichGrid, items: grid.Get("contents").Array()}
	}
	if token := continuationTokenFromItem(node); token != "" {
		return classifiedSection{kind: sectionContinuation, token: token}
	}
	return classifiedSection{kind: sectionUnknown}
}

type itemKind int

const (
	itemUnknown itemKind = iota
	itemCompactVideo
	itemVideoWithContext
	itemElementModel
	itemCompactPlaylist
	itemCompactChannel
	itemBackstagePost
	itemContinuation
)

// classifyItem maps one list entry onto a known item renderer and returns the
// unwrapped payload node. richItemRenderer is a transparent wrapper and is
// unwrapped before classification.
func classifyItem(node gjson.Result) (itemKind, gjson.Result) {
	if content := node.Get("richItemRenderer.content"); content.Exists() {
		node = content
	}
	if v := node.Get("compactVideoRenderer"); v.Exists() {
		return itemCompactVideo, v
	}
	if v := node.Get("videoWithContextRenderer"); v.Exists() {
		return itemVideoWithContext, v
	}
	if v := node.Get("elementRenderer.newElement.type.componentType.model.compactVideoModel"); v.Exists() {
		return itemElementModel, v
	}
	if v := node.Get("compactPlaylistRenderer"); v.Exists() {
		return itemCompactPlaylist, v
	}
	if v := node.Get("compactChannelRenderer"); v.Exists() {
		return itemCompactChannel, v
	}
	if v := node.Get("backstagePostThreadRenderer.post.backstagePostRenderer"); v.Exists() {
		return itemBackstagePost, v
	}
	if node.Get("continuationItemRenderer").Exists() {
		return itemContinuation, node
	}
	return itemUnknown, gjson.Result{}
}

// tabContents walks the known tab containers and returns each tab's content
// node. Both the single-column (mobile) and two-column (desktop) layouts are
// checked.
func tabContents(root gjson.Result) []gjson.Result {
	var out []gjson.Result
	for _, key := range []string{
		"contents.singleColumnBrowseResultsRenderer.tabs",
		"contents.twoColumnBrowseResultsRenderer.tabs",
	} {
		for _, tab := range root.Get(key).Array() {
			if content := tab.Get("tabRenderer.content"); content.Exists() {
				out = append(out, content)
			}
		}
	}
	return out
}

// videosFromSectionList extracts videos from one section-list content node and
// returns them together with any continuation token attached to the list.
func videosFromSectionList(sectionList gjson.Result) ([]model.VideoSummary, string) {
	var videos []model.VideoSummary
	token := tokenFromContinuations(sectionList)
	for _, section := range sectionList.Get("contents").Array() {
		cs := classifySection(section)
		switch cs.kind {
		case sectionShelf, sectionItemList, sectionRichGrid:
			for _, item := range cs.items {
				kind, payload := classifyItem(item)
				switch kind {
				case itemCompactVideo, itemVideoWithContext:
					videos = append(videos, videoFromRenderer(payload))
				case itemElementModel:
					videos = append(videos, videoFromElementModel(payload))
				case itemContinuation:
					if t := continuationTokenFromItem(item); t != "" {
						token = t
					}
				case itemUnknown:
					logger.GetLogger().Debug("unknown item shape in section, skipping")
				}
			}
		case sectionContinuation:
			token = cs.token
		case sectionUnknown:
			logger.GetLogger().Debug("unknown section shape, skipping")
		}
	}
	return videos, token
}
