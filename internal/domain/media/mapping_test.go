package media

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeTrigger(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "already normalized", input: "deadspeak", expected: "deadspeak"},
		{name: "mixed case with padding", input: "  DeadSpeak ", expected: "deadspeak"},
		{name: "inner spaces preserved", input: "Hoosier Illusions", expected: "hoosier illusions"},
		{name: "empty", input: "", expected: ""},
		{name: "whitespace only", input: "   ", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeTrigger(tt.input))
		})
	}
}

func TestMapping_UnmarshalJSON_Defaults(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		expected Mapping
	}{
		{
			name:    "absent booleans default",
			payload: `{"audioUrl":"a.mp3"}`,
			expected: Mapping{
				AudioURL:       "a.mp3",
				ShowInDropdown: true,
				MuteVideo:      true,
			},
		},
		{
			name:    "explicit false survives",
			payload: `{"audioUrl":"a.mp3","showInDropdown":false,"muteVideo":false}`,
			expected: Mapping{
				AudioURL: "a.mp3",
			},
		},
		{
			name:    "tombstone",
			payload: `{"_deleted":true}`,
			expected: Mapping{
				ShowInDropdown: true,
				MuteVideo:      true,
				Deleted:        true,
			},
		},
		{
			name:    "urls trimmed",
			payload: `{"videoUrl":" v.mp4 ","playFullscreen":true}`,
			expected: Mapping{
				VideoURL:       "v.mp4",
				ShowInDropdown: true,
				MuteVideo:      true,
				PlayFullscreen: true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m Mapping
			require.NoError(t, json.Unmarshal([]byte(tt.payload), &m))
			assert.Equal(t, tt.expected, m)
		})
	}
}

func TestCatalog_Get(t *testing.T) {
	c := Catalog{
		"deadspeak": {VideoURL: "v.mp4", AudioURL: "radio.mp3"},
	}

	m, ok := c.Get("  DeadSpeak ")
	require.True(t, ok)
	assert.Equal(t, "v.mp4", m.VideoURL)

	_, ok = c.Get("xyz123")
	assert.False(t, ok)
}

func TestCatalog_DropdownTriggers(t *testing.T) {
	c := Catalog{
		"visible": {AudioURL: "a.mp3", ShowInDropdown: true},
		"hidden":  {AudioURL: "b.mp3", ShowInDropdown: false},
		"gone":    {AudioURL: "c.mp3", ShowInDropdown: true, Deleted: true},
	}

	triggers := c.DropdownTriggers()
	assert.ElementsMatch(t, []string{"visible"}, triggers)
}

func TestTrack_InPlaylist(t *testing.T) {
	tr := Track{Title: "Cocoa Kisses", Playlists: []string{"Holidays-Mix", "chill"}}

	assert.True(t, tr.InPlaylist("holidays"))
	assert.True(t, tr.InPlaylist("CHILL"))
	assert.False(t, tr.InPlaylist("jazz"))
	assert.False(t, tr.InPlaylist(""))
}

func TestDefaultCatalog_Shape(t *testing.T) {
	c := DefaultCatalog()

	require.NotEmpty(t, c)

	// Built-in radio triggers carry the live stream URL.
	m, ok := c.Get("deadspeak")
	require.True(t, ok)
	assert.Equal(t, LiveStreamURL, m.AudioURL)
	assert.True(t, m.ShowInDropdown)

	// Hidden defaults stay out of the dropdown.
	m, ok = c.Get("moonlight in her eyes")
	require.True(t, ok)
	assert.False(t, m.ShowInDropdown)

	// Each call returns an independent copy.
	c["deadspeak"] = Mapping{}
	c2 := DefaultCatalog()
	m, _ = c2.Get("deadspeak")
	assert.Equal(t, LiveStreamURL, m.AudioURL)
}
