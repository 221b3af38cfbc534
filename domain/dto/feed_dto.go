package dto

import "github.com/erievs/FourthTube/domain/model"

// Res is the generic error envelope.
type Res struct {
	ResponseCode    string `json:"responseCode"`
	ResponseMessage string `json:"responseMessage"`
}

// SubscribeRequest is the body for POST /api/subscriptions.
type SubscribeRequest struct {
	ID                  string `json:"id" binding:"required"`
	URL                 string `json:"url"`
	Name                string `json:"name"`
	IconURL             string `json:"icon_url"`
	SubscriberCountText string `json:"subscriber_count_str"`
}

// FeedProgress reports how far a multi-channel refresh has come.
type FeedProgress struct {
	Completed int  `json:"completed"`
	Total     int  `json:"total"`
	Running   bool `json:"running"`
}

// SubscriptionFeedResponse is the aggregated feed snapshot plus refresh state.
type SubscriptionFeedResponse struct {
	Videos   []model.VideoSummary `json:"videos"`
	Progress FeedProgress         `json:"progress"`
	Error    string               `json:"error,omitempty"`
}
