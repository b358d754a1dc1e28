package media

import "strings"

// Track is one entry from the station's on-demand track listing.
type Track struct {
	Title       string   // Track title (catalog key source)
	Album       string   // Album name
	Artist      string   // Artist name
	ArtURL      string   // Album art URL
	Playlists   []string // Station playlists the track belongs to
	DownloadURL string   // Relative download path on the station host
}

// Key returns the normalized catalog key derived from the track title.
func (t Track) Key() string {
	return NormalizeTrigger(t.Title)
}

// InPlaylist reports whether any of the track's playlist names contains the
// search term, case-insensitively.
func (t Track) InPlaylist(term string) bool {
	norm := NormalizeTrigger(term)
	if norm == "" {
		return false
	}
	for _, p := range t.Playlists {
		if containsFold(p, norm) {
			return true
		}
	}
	return false
}

func containsFold(s, normTerm string) bool {
	return strings.Contains(strings.ToLower(s), normTerm)
}

// Song is the currently playing (or upcoming) song reported by the station.
type Song struct {
	Title  string `json:"title"`
	Artist string `json:"artist"`
	Album  string `json:"album"`
	Art    string `json:"art"`
}
