package model

import "strings"

// IsYouTubeURL reports whether url points at a recognized upstream page.
func IsYouTubeURL(url string) bool {
	for _, prefix := range []string{
		"https://m.youtube.com/",
		"https://www.youtube.com/",
		"https://youtube.com/",
	} {
		if strings.HasPrefix(url, prefix) {
			return true
		}
	}
	return false
}

// IsYouTubeThumbnailURL reports whether url points at a recognized upstream
// image host.
func IsYouTubeThumbnailURL(url string) bool {
	for _, prefix := range []string{
		"https://i.ytimg.com/",
		"https://yt3.ggpht.com/",
		"https://yt3.googleusercontent.com/",
	} {
		if strings.HasPrefix(url, prefix) {
			return true
		}
	}
	return false
}

// ValidateChannel derives the display-validity flag from URL-shape checks.
// Channels failing validation are kept in storage but hidden from lists.
func ValidateChannel(c ChannelSummary) bool {
	return c.ID != "" && IsYouTubeURL(c.URL) && IsYouTubeThumbnailURL(c.IconURL)
}
