package innertube

import (
	"net/url"
	"strings"
)

func watchURL(videoID string) string {
	return "https://m.youtube.com/watch?v=" + videoID
}

func channelURL(channelID string) string {
	return "https://m.youtube.com/channel/" + channelID
}

// videoThumbnailURL builds the canonical thumbnail location for shapes that
// carry no thumbnail list of their own.
func videoThumbnailURL(videoID string) string {
	return "https://i.ytimg.com/vi/" + videoID + "/mqdefault.jpg"
}

func queryParam(rawURL, key string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Query().Get(key)
}

// videoIDFromThumbnailURL recovers the video id from a thumbnail URL of the
// form https://i.ytimg.com/vi/<id>/<name>.jpg.
func videoIDFromThumbnailURL(thumbnailURL string) string {
	const marker = "/vi/"
	idx := strings.Index(thumbnailURL, marker)
	if idx < 0 {
		return ""
	}
	rest := thumbnailURL[idx+len(marker):]
	if end := strings.IndexByte(rest, '/'); end >= 0 {
		return rest[:end]
	}
	return rest
}
