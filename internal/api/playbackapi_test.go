package api

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoosierillusions/kiosk/internal/domain/media"
)

const onDemandListing = `[
 {"media":{"title":"Candle Smoke","album":"Haunted Ballroom","artist":"The Wisps","art":"/art/candle.jpg","playlists":["spooky"]},"download_url":"/api/station/hoosier-illusions/ondemand/download/1"},
 {"media":{"title":"Waltz of the Wisps","album":"Haunted Ballroom","artist":"The Wisps","art":"/art/waltz.jpg","playlists":["spooky"]},"download_url":"/api/station/hoosier-illusions/ondemand/download/2"}
]`

func TestPlaybackState_InitialIsIdle(t *testing.T) {
	f := newFixture(t)
	f.serveOnDemand(`[]`)

	rec := f.do(t, http.MethodGet, "/api/playback/state", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	state := decodeBody[playbackStateResponse](t, rec)
	assert.True(t, state.IsInitialState)
	assert.Equal(t, "idle", state.DisplayMode)
	assert.Equal(t, media.DefaultLogoURL, state.EffectiveImage)
	assert.Equal(t, media.DefaultVideoURL, state.IdleVideoSrc)
	assert.NotEmpty(t, state.PlaybackID)
}

func TestPlayTrigger(t *testing.T) {
	f := newFixture(t)
	f.serveOnDemand(onDemandListing)

	t.Run("known trigger activates media", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/playback/trigger", playTriggerRequest{Text: "  DeadSpeak "})

		require.Equal(t, http.StatusOK, rec.Code)
		state := decodeBody[playbackStateResponse](t, rec)
		assert.False(t, state.IsInitialState)
		assert.Equal(t, "theaterVideo", state.DisplayMode)
		assert.NotEmpty(t, state.VideoSrc)
		assert.True(t, strings.Contains(state.AudioSrc, "?t=") || strings.Contains(state.AudioSrc, "&t="),
			"live audio is rewritten to the live edge: %s", state.AudioSrc)
		assert.Empty(t, state.Error)
	})

	t.Run("unknown trigger reports the error in state", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/playback/trigger", playTriggerRequest{Text: "xyz123"})

		require.Equal(t, http.StatusOK, rec.Code)
		state := decodeBody[playbackStateResponse](t, rec)
		assert.Contains(t, state.Error, "xyz123")
		assert.Empty(t, state.VideoSrc)
	})

	t.Run("on-demand fallback resolves by title", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/playback/trigger", playTriggerRequest{Text: "candle smoke"})

		require.Equal(t, http.StatusOK, rec.Code)
		state := decodeBody[playbackStateResponse](t, rec)
		assert.Empty(t, state.Error)
		assert.Contains(t, state.AudioSrc, "/api/proxy-audio?url=")
	})

	t.Run("empty text rejected", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/playback/trigger", playTriggerRequest{Text: ""})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestPlayTheme_BuildsAndAdvances(t *testing.T) {
	f := newFixture(t)
	f.serveOnDemand(onDemandListing)

	rec := f.do(t, http.MethodPost, "/api/playback/theme", playThemeRequest{Theme: "haunted"})

	require.Equal(t, http.StatusOK, rec.Code)
	state := decodeBody[playbackStateResponse](t, rec)
	require.NotNil(t, state.Playlist)
	assert.Equal(t, 2, state.Playlist.Count)
	assert.Equal(t, 0, state.Playlist.Index)
	require.NotNil(t, state.Playlist.Current)
	assert.Equal(t, "Candle Smoke", state.Playlist.Current.Title)
	assert.Contains(t, state.AudioSrc, "/api/proxy-audio?url=")

	// discovered tracks become catalog triggers
	rec = f.do(t, http.MethodGet, "/api/config", nil)
	cat := decodeBody[media.Catalog](t, rec)
	_, ok := cat.Get("candle smoke")
	assert.True(t, ok)

	// advance walks the playlist and wraps
	rec = f.do(t, http.MethodPost, "/api/playback/advance", nil)
	state = decodeBody[playbackStateResponse](t, rec)
	assert.Equal(t, "Waltz of the Wisps", state.Playlist.Current.Title)

	rec = f.do(t, http.MethodPost, "/api/playback/advance", nil)
	state = decodeBody[playbackStateResponse](t, rec)
	assert.Equal(t, "Candle Smoke", state.Playlist.Current.Title)
}

func TestPlayTheme_NoMatches(t *testing.T) {
	f := newFixture(t)
	f.serveOnDemand(onDemandListing)

	rec := f.do(t, http.MethodPost, "/api/playback/theme", playThemeRequest{Theme: "polka"})

	require.Equal(t, http.StatusOK, rec.Code)
	state := decodeBody[playbackStateResponse](t, rec)
	assert.Contains(t, state.Error, "polka")
	assert.Nil(t, state.Playlist)
}

func TestExpandedAndReset(t *testing.T) {
	f := newFixture(t)
	f.serveOnDemand(onDemandListing)

	f.do(t, http.MethodPost, "/api/playback/trigger", playTriggerRequest{Text: "deadspeak"})

	rec := f.do(t, http.MethodPost, "/api/playback/expanded", setExpandedRequest{Expanded: true})
	state := decodeBody[playbackStateResponse](t, rec)
	assert.True(t, state.IsExpanded)

	rec = f.do(t, http.MethodPost, "/api/playback/reset", nil)
	state = decodeBody[playbackStateResponse](t, rec)
	assert.True(t, state.IsInitialState)
	assert.False(t, state.IsExpanded, "reset collapses the expanded view")
	assert.Equal(t, "idle", state.DisplayMode)
}

func TestReportVideoError_FallsBackToImage(t *testing.T) {
	f := newFixture(t)
	f.serveOnDemand(onDemandListing)

	rec := f.do(t, http.MethodPost, "/api/playback/trigger", playTriggerRequest{Text: "deadspeak"})
	state := decodeBody[playbackStateResponse](t, rec)
	require.Equal(t, "theaterVideo", state.DisplayMode)

	rec = f.do(t, http.MethodPost, "/api/playback/video-error", videoErrorRequest{URL: state.VideoSrc})
	state = decodeBody[playbackStateResponse](t, rec)
	assert.Equal(t, "theaterImage", state.DisplayMode)

	rec = f.do(t, http.MethodPost, "/api/playback/video-error", videoErrorRequest{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
