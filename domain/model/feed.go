package model

// PageState tracks where a paginated feed is in its lifecycle.
type PageState int

const (
	// PageStateNone means no fetch has happened yet.
	PageStateNone PageState = iota
	// PageStateHasToken means a continuation token is stored and more pages can be requested.
	PageStateHasToken
	// PageStateExhausted means the last response carried no continuation block.
	PageStateExhausted
	// PageStateFailed means the last request failed; existing items are preserved.
	PageStateFailed
)

func (s PageState) String() string {
	switch s {
	case PageStateNone:
		return "none"
	case PageStateHasToken:
		return "has_token"
	case PageStateExhausted:
		return "exhausted"
	case PageStateFailed:
		return "failed"
	}
	return "unknown"
}

// Pagination is the continuation cursor for one feed. The token alone never
// decides whether more pages exist; State does.
type Pagination struct {
	State PageState `json:"state"`
	Token string    `json:"token"`
	// VisitorData is an opaque correlation id some feeds require echoed back on
	// continuation requests. Once captured it is never cleared by an empty
	// response field.
	VisitorData string `json:"visitor_data,omitempty"`
}

// HasMore reports whether a load-more call is valid from the current state.
func (p *Pagination) HasMore() bool {
	return p.State == PageStateHasToken
}

// Capture stores a newly observed continuation token, or marks the feed
// exhausted when the response carried none.
func (p *Pagination) Capture(token string) {
	if token == "" {
		p.State = PageStateExhausted
		p.Token = ""
		return
	}
	p.State = PageStateHasToken
	p.Token = token
}

// CaptureVisitorData records visitor data, keeping any previous value when the
// response field is empty.
func (p *Pagination) CaptureVisitorData(v string) {
	if v != "" {
		p.VisitorData = v
	}
}

// VideoSummary is one video card as extracted from a feed or channel page.
// Built wholesale per fetch; never partially mutated.
type VideoSummary struct {
	ID              string `json:"id"`
	URL             string `json:"url"`
	Title           string `json:"title"`
	ThumbnailURL    string `json:"thumbnail_url"`
	DurationText    string `json:"duration_text"`
	ViewsText       string `json:"views_text"`
	PublishDateText string `json:"publish_date_text"`
	Author          string `json:"author,omitempty"`
	AuthorID        string `json:"author_id,omitempty"`
}

// FeedResult is one loaded page sequence (home feed, channel videos, ...).
// Error is reserved for transport/protocol failures; missing cosmetic fields
// on individual items never set it.
type FeedResult struct {
	Videos     []VideoSummary `json:"videos"`
	Pagination Pagination     `json:"pagination"`
	Error      string         `json:"error,omitempty"`
}
