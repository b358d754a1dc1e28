package playback

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

// liveStreamPathMarker identifies the station's live mount point.
const liveStreamPathMarker = "/radio.mp3"

// IsLiveStream reports whether the URL points at the station's live
// broadcast rather than an on-demand file.
func IsLiveStream(rawURL string) bool {
	if rawURL == "" {
		return false
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return strings.Contains(rawURL, liveStreamPathMarker)
	}
	return strings.HasSuffix(u.Path, liveStreamPathMarker)
}

// RewriteForLiveEdge appends a timestamp query parameter to live-stream
// URLs so the player reconnects at the live edge instead of resuming a
// stale buffered position. Non-stream URLs pass through unchanged.
func RewriteForLiveEdge(rawURL string, now time.Time) string {
	if !IsLiveStream(rawURL) {
		return rawURL
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	q := u.Query()
	q.Set("t", strconv.FormatInt(now.UnixMilli(), 10))
	u.RawQuery = q.Encode()
	return u.String()
}
