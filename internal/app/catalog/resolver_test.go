package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoosierillusions/kiosk/internal/domain/media"
)

func TestResolver_DirectAudio(t *testing.T) {
	r := NewResolver(testStationURL)
	cat := media.Catalog{
		"deadspeak": {VideoURL: "v.mp4", AudioURL: "radio.mp3"},
	}

	rm, err := r.Resolve("  DeadSpeak ", cat, nil)
	require.NoError(t, err)

	assert.Equal(t, "deadspeak", rm.Trigger)
	assert.Equal(t, "radio.mp3", rm.AudioURL)
	assert.Equal(t, "v.mp4", rm.VideoURL)
}

func TestResolver_UnknownTrigger(t *testing.T) {
	r := NewResolver(testStationURL)

	_, err := r.Resolve("xyz123", media.Catalog{}, nil)
	require.Error(t, err)

	var unknown *UnknownTriggerError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "xyz123", unknown.Trigger)
}

func TestResolver_OnDemandFallback(t *testing.T) {
	r := NewResolver(testStationURL)
	cat := media.Catalog{
		"cocoa kisses": {Title: "Cocoa Kisses", ImageURL: ""},
	}
	tracks := []media.Track{
		{Title: "cocoa KISSES", ArtURL: "https://img/cocoa.png", DownloadURL: "/dl/1"},
	}

	rm, err := r.Resolve("Cocoa Kisses", cat, tracks)
	require.NoError(t, err)

	assert.Equal(t, OnDemandAudioURL(testStationURL, tracks[0]), rm.AudioURL)
	assert.Equal(t, "https://img/cocoa.png", rm.ImageURL)
}

func TestResolver_OnDemandFallback_UsesTriggerWhenNoTitle(t *testing.T) {
	r := NewResolver(testStationURL)
	cat := media.Catalog{
		"dan toler": {},
	}
	tracks := []media.Track{
		{Title: "Dan Toler", DownloadURL: "/dl/2"},
	}

	rm, err := r.Resolve("Dan Toler", cat, tracks)
	require.NoError(t, err)
	assert.Equal(t, OnDemandAudioURL(testStationURL, tracks[0]), rm.AudioURL)
}

func TestResolver_TrackNotFound(t *testing.T) {
	r := NewResolver(testStationURL)
	cat := media.Catalog{
		"lost song": {Title: "Lost Song"},
	}

	_, err := r.Resolve("lost song", cat, nil)
	require.Error(t, err)

	var notFound *TrackNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Lost Song", notFound.TrackName)
}

func TestResolver_PanoOnlyMapping(t *testing.T) {
	r := NewResolver(testStationURL)
	cat := media.Catalog{
		"vr": {PanoURL: "https://pano/alma.jpg"},
	}

	rm, err := r.Resolve("vr", cat, nil)
	require.NoError(t, err)
	assert.Equal(t, "https://pano/alma.jpg", rm.PanoURL)
	assert.Empty(t, rm.AudioURL)
}
