package media

// NowPlayingInfo is the station metadata the kiosk displays: the current
// and upcoming song plus live-broadcast state.
type NowPlayingInfo struct {
	Current      Song   `json:"current"`
	Next         Song   `json:"next"`
	IsLive       bool   `json:"isLive"`
	StreamerName string `json:"streamerName,omitempty"`
}
