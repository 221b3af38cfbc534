package innertube

import "encoding/json"

// Request profiles. The upstream serves different response layouts per client
// identity, so the profile choice decides which renderer shapes come back.
type clientProfile struct {
	name    string
	version string
	// extra client fields some profiles require (device identity and the like).
	extra map[string]any
}

var (
	// profileMWEB is the default: channel pages, playlists, video tabs.
	profileMWEB = clientProfile{name: "MWEB", version: "2.20240304.08.00"}
	// profileAndroid serves the unauthenticated home feed.
	profileAndroid = clientProfile{
		name:    "ANDROID",
		version: "19.51.37",
		extra: map[string]any{
			"osName":            "Android",
			"osVersion":         "14",
			"androidSdkVersion": 34,
		},
	}
	// profileAndroidVR serves the authenticated home and subscription feeds.
	profileAndroidVR = clientProfile{
		name:    "ANDROID_VR",
		version: "1.65.10",
		extra: map[string]any{
			"deviceMake":        "Oculus",
			"deviceModel":       "Quest 3",
			"osName":            "Android",
			"osVersion":         "14",
			"androidSdkVersion": 34,
		},
	}
	// profileWeb serves the community tab and its continuations.
	profileWeb = clientProfile{name: "WEB", version: "2.20240304.08.00"}
)

// browseParamsVideos selects a channel's videos tab.
const browseParamsVideos = "EgZ2aWRlb3PyBgQKAjoA"

// browseParamsCommunity selects a channel's community tab.
const browseParamsCommunity = "Egljb21tdW5pdHk%3D"

// Well-known browse ids.
const (
	browseIDHomeAuthed   = "FEwhat_to_watch"
	browseIDHomeUnauthed = "FEhype_leaderboard"
	browseIDChannels     = "FEchannels"
)

func (c *Client) clientContext(p clientProfile, visitorData string) map[string]any {
	client := map[string]any{
		"hl":            c.cfg.Language,
		"gl":            c.cfg.Region,
		"clientName":    p.name,
		"clientVersion": p.version,
	}
	for k, v := range p.extra {
		client[k] = v
	}
	if visitorData != "" {
		client["visitorData"] = visitorData
	}
	return map[string]any{"client": client}
}

// browseBody builds the request body for an initial page load. params is
// optional and selects a tab within the browse target.
func (c *Client) browseBody(p clientProfile, browseID, params string) ([]byte, error) {
	body := map[string]any{
		"context":  c.clientContext(p, ""),
		"browseId": browseID,
	}
	if params != "" {
		body["params"] = params
	}
	return json.Marshal(body)
}

// continuationBody builds the request body for a follow-up page load.
// visitorData is echoed back for the feeds that require it.
func (c *Client) continuationBody(p clientProfile, token, visitorData string) ([]byte, error) {
	body := map[string]any{
		"context":      c.clientContext(p, visitorData),
		"continuation": token,
	}
	return json.Marshal(body)
}
