package innertube

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestClassifySection(t *testing.T) {
	shelf := gjson.Parse(`{"shelfRenderer":{"content":{"verticalListRenderer":{"items":[{"compactVideoRenderer":{"videoId":"a"}}]}}}}`)
	cs := classifySection(shelf)
	assert.Equal(t, sectionShelf, cs.kind)
	assert.Len(t, cs.items, 1)

	itemList := gjson.Parse(`{"itemSectionRenderer":{"contents":[{"videoWithContextRenderer":{"videoId":"b"}},{"videoWithContextRenderer":{"videoId":"c"}}]}}`)
	cs = classifySection(itemList)
	assert.Equal(t, sectionItemList, cs.kind)
	assert.Len(t, cs.items, 2)

	grid := gjson.Parse(`{"richGridRenderer":{"contents":[]}}`)
	assert.Equal(t, sectionRichGrid, classifySection(grid).kind)

	cont := gjson.Parse(`{"continuationItemRenderer":{"continuationEndpoint":{"continuationCommand":{"token":"tok1"}}}}`)
	cs = classifySection(cont)
	assert.Equal(t, sectionContinuation, cs.kind)
	assert.Equal(t, "tok1", cs.token)

	assert.Equal(t, sectionUnknown, classifySection(gjson.Parse(`{"someNewRenderer":{}}`)).kind)
}

func TestClassifyItem(t *testing.T) {
	cases := []struct {
		name string
		json string
		want itemKind
	}{
		{"compact video", `{"compactVideoRenderer":{"videoId":"a"}}`, itemCompactVideo},
		{"with context", `{"videoWithContextRenderer":{"videoId":"b"}}`, itemVideoWithContext},
		{"element model", `{"elementRenderer":{"newElement":{"type":{"componentType":{"model":{"compactVideoModel":{}}}}}}}`, itemElementModel},
		{"playlist", `{"compactPlaylistRenderer":{}}`, itemCompactPlaylist},
		{"channel", `{"compactChannelRenderer":{}}`, itemCompactChannel},
		{"post", `{"backstagePostThreadRenderer":{"post":{"backstagePostRenderer":{}}}}`, itemBackstagePost},
		{"continuation", `{"continuationItemRenderer":{}}`, itemContinuation},
		{"unknown", `{"brandNewRenderer":{}}`, itemUnknown},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			kind, _ := classifyItem(gjson.Parse(tc.json))
			assert.Equal(t, tc.want, kind)
		})
	}
}

func TestClassifyItemUnwrapsRichItem(t *testing.T) {
	wrapped := gjson.Parse(`{"richItemRenderer":{"content":{"compactVideoRenderer":{"videoId":"wrapped1"}}}}`)
	kind, payload := classifyItem(wrapped)
	assert.Equal(t, itemCompactVideo, kind)
	assert.Equal(t, "wrapped1", payload.Get("videoId").String())
}

func TestVideosFromSectionList(t *testing.T) {
	sectionList := gjson.Parse(`{
		"contents": [
			{"shelfRenderer":{"content":{"verticalListRenderer":{"items":[
				{"compactVideoRenderer":{"videoId":"v1","title":{"simpleText":"One"}}},
				{"compactVideoRenderer":{"videoId":"v2","title":{"simpleText":"Two"}}}
			]}}}},
			{"itemSectionRenderer":{"contents":[
				{"videoWithContextRenderer":{"videoId":"v3","headline":{"runs":[{"text":"Three"}]}}}
			]}},
			{"someFutureRenderer":{}}
		],
		"continuations": [{"nextContinuationData":{"continuation":"next-token"}}]
	}`)
	videos, token := videosFromSectionList(sectionList)
	require.Len(t, videos, 3)
	assert.Equal(t, "v1", videos[0].ID)
	assert.Equal(t, "Two", videos[1].Title)
	assert.Equal(t, "Three", videos[2].Title)
	assert.Equal(t, "next-token", token)
}

func TestVideosFromSectionListItemContinuation(t *testing.T) {
	sectionList := gjson.Parse(`{
		"contents": [
			{"itemSectionRenderer":{"contents":[
				{"videoWithContextRenderer":{"videoId":"v1"}},
				{"continuationItemRenderer":{"continuationEndpoint":{"continuationCommand":{"token":"item-token"}}}}
			]}}
		]
	}`)
	videos, token := videosFromSectionList(sectionList)
	assert.Len(t, videos, 1)
	assert.Equal(t, "item-token", token)
}

func TestTabContents(t *testing.T) {
	root := gjson.Parse(`{"contents":{"singleColumnBrowseResultsRenderer":{"tabs":[
		{"tabRenderer":{"content":{"sectionListRenderer":{"contents":[]}}}},
		{"tabRenderer":{"title":"Empty tab"}}
	]}}}`)
	contents := tabContents(root)
	assert.Len(t, contents, 1)
}
