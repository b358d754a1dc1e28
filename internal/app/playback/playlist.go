package playback

import (
	"sort"
	"strings"

	"github.com/hoosierillusions/kiosk/internal/domain/media"
)

// BuildPlaylistFromTheme selects the on-demand tracks matching a theme
// term. A track qualifies through its album name or through station
// playlist membership; when neither yields anything, an exact title match
// becomes a single-track playlist. The result is sorted by title so
// playback order is stable across rebuilds.
func BuildPlaylistFromTheme(tracks []media.Track, theme string) []media.Track {
	term := strings.ToLower(strings.TrimSpace(theme))
	if term == "" {
		return nil
	}

	var matched []media.Track
	for _, t := range tracks {
		if albumMatches(t.Album, term) || t.InPlaylist(term) {
			matched = append(matched, t)
		}
	}

	if len(matched) == 0 {
		for _, t := range tracks {
			if strings.EqualFold(strings.TrimSpace(t.Title), term) {
				matched = append(matched, t)
				break
			}
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return strings.ToLower(matched[i].Title) < strings.ToLower(matched[j].Title)
	})

	return matched
}

// albumMatches applies a bidirectional substring test so "haunted"
// matches the album "Haunted Ballroom" and vice versa.
func albumMatches(album, term string) bool {
	a := strings.ToLower(strings.TrimSpace(album))
	if a == "" {
		return false
	}
	return strings.Contains(a, term) || strings.Contains(term, a)
}
