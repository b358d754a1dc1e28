package playback

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hoosierillusions/kiosk/internal/domain/media"
)

func themeTracks() []media.Track {
	return []media.Track{
		{Title: "Waltz of the Wisps", Album: "Haunted Ballroom", Playlists: []string{"spooky"}},
		{Title: "Candle Smoke", Album: "Haunted Ballroom", Playlists: []string{"spooky"}},
		{Title: "Great Southern Shuffle", Album: "Roadhouse", Playlists: []string{"blues night"}},
		{Title: "Moonlight in Her Eyes", Album: "", Playlists: []string{"ballads"}},
	}
}

func TestBuildPlaylistFromTheme(t *testing.T) {
	tests := []struct {
		name       string
		theme      string
		wantTitles []string
	}{
		{
			name:       "album substring match, sorted by title",
			theme:      "haunted",
			wantTitles: []string{"Candle Smoke", "Waltz of the Wisps"},
		},
		{
			name:       "term containing the album also matches",
			theme:      "the roadhouse sessions",
			wantTitles: []string{"Great Southern Shuffle"},
		},
		{
			name:       "playlist membership when no album matches",
			theme:      "ballads",
			wantTitles: []string{"Moonlight in Her Eyes"},
		},
		{
			name:       "exact title becomes a single-track playlist",
			theme:      "moonlight in her eyes",
			wantTitles: []string{"Moonlight in Her Eyes"},
		},
		{
			name:       "no match",
			theme:      "polka",
			wantTitles: nil,
		},
		{
			name:       "empty theme",
			theme:      "   ",
			wantTitles: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildPlaylistFromTheme(themeTracks(), tt.theme)
			titles := make([]string, 0, len(got))
			for _, tr := range got {
				titles = append(titles, tr.Title)
			}
			if tt.wantTitles == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.wantTitles, titles)
		})
	}
}

func TestBuildPlaylistFromTheme_AlbumAndPlaylistCombine(t *testing.T) {
	tracks := []media.Track{
		{Title: "Sleigh Ride South", Album: "Hoosier Holidays"},
		{Title: "Cold Front Boogie", Album: "Hoosier Holidays"},
		{Title: "Tinsel Town Stomp", Album: "Roadhouse", Playlists: []string{"holidays-mix"}},
	}

	got := BuildPlaylistFromTheme(tracks, "Holidays")

	titles := make([]string, 0, len(got))
	for _, tr := range got {
		titles = append(titles, tr.Title)
	}
	assert.Equal(t, []string{"Cold Front Boogie", "Sleigh Ride South", "Tinsel Town Stomp"}, titles)
}
