package innertube

import (
	"fmt"

	"github.com/erievs/FourthTube/domain/model"

	"github.com/tidwall/gjson"
)

// The upstream hands out continuation tokens in different envelopes depending
// on whether the page is an initial load or a follow-up, so every known
// location is checked.

// tokenFromContinuations reads the continuations array attached to a
// section-list container (initial-load envelope).
func tokenFromContinuations(node gjson.Result) string {
	for _, c := range node.Get("continuations").Array() {
		if token := c.Get("nextContinuationData.continuation").String(); token != "" {
			return token
		}
	}
	return ""
}

// continuationTokenFromItem reads a continuationItemRenderer posing as a list
// entry (channel tabs and community lists).
func continuationTokenFromItem(item gjson.Result) string {
	return item.Get("continuationItemRenderer.continuationEndpoint.continuationCommand.token").String()
}

// appendedContinuationItems collects the items of every
// appendContinuationItemsAction in the response. Both the actions and the
// endpoints envelope are checked; which one the upstream uses varies by feed.
func appendedContinuationItems(root gjson.Result) []gjson.Result {
	var items []gjson.Result
	for _, key := range []string{"onResponseReceivedActions", "onResponseReceivedEndpoints"} {
		for _, action := range root.Get(key).Array() {
			items = append(items, action.Get("appendContinuationItemsAction.continuationItems").Array()...)
		}
	}
	return items
}

// sectionListContinuation returns the section-list continuation envelope used
// by scroll continuations of the home feed.
func sectionListContinuation(root gjson.Result) gjson.Result {
	return root.Get("continuationContents.sectionListContinuation")
}

// guardLoadMore rejects load-more calls that are invalid for the current
// pagination state, without mutating anything. This is what protects against
// duplicate appends from overlapping scroll-triggered calls.
func guardLoadMore(p *model.Pagination) error {
	switch p.State {
	case model.PageStateHasToken:
		return nil
	case model.PageStateNone:
		return fmt.Errorf("no page loaded yet")
	case model.PageStateExhausted:
		return fmt.Errorf("no more pages")
	case model.PageStateFailed:
		return fmt.Errorf("previous page load failed")
	}
	return fmt.Errorf("invalid pagination state %d", p.State)
}
