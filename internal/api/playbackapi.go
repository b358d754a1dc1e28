package api

import (
	"net/http"
	"strings"

	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"

	"github.com/hoosierillusions/kiosk/internal/app/playback"
	"github.com/hoosierillusions/kiosk/internal/domain/media"
)

type playlistState struct {
	Index   int          `json:"index"`
	Count   int          `json:"count"`
	Current *media.Track `json:"current,omitempty"`
	Next    *media.Track `json:"next,omitempty"`
}

type playbackStateResponse struct {
	PlaybackID     string                `json:"playbackId"`
	DisplayMode    string                `json:"displayMode"`
	Mapping        *media.Mapping        `json:"mapping,omitempty"`
	AudioSrc       string                `json:"audioSrc,omitempty"`
	VideoSrc       string                `json:"videoSrc,omitempty"`
	ImageSrc       string                `json:"imageSrc,omitempty"`
	PanoSrc        string                `json:"panoSrc,omitempty"`
	EffectiveImage string                `json:"effectiveImageSrc"`
	IdleVideoSrc   string                `json:"idleVideoSrc,omitempty"`
	IsInitialState bool                  `json:"isInitialState"`
	IsExpanded     bool                  `json:"isExpanded"`
	Error          string                `json:"error,omitempty"`
	NowPlaying     *media.NowPlayingInfo `json:"nowPlaying,omitempty"`
	AlbumArt       string                `json:"albumArt,omitempty"`
	Playlist       *playlistState        `json:"playlist,omitempty"`
}

func stateResponse(snap playback.Snapshot) playbackStateResponse {
	resp := playbackStateResponse{
		PlaybackID:     snap.PlaybackID,
		DisplayMode:    playback.ComputeDisplayMode(snap).String(),
		Mapping:        snap.Mapping,
		AudioSrc:       snap.AudioSrc,
		VideoSrc:       snap.VideoSrc,
		ImageSrc:       snap.ImageSrc,
		PanoSrc:        snap.PanoSrc,
		EffectiveImage: playback.EffectiveImageSource(snap),
		IsInitialState: snap.IsInitialState,
		IsExpanded:     snap.IsExpanded,
		Error:          snap.Error,
		NowPlaying:     snap.NowPlaying,
		AlbumArt:       snap.AlbumArt,
	}
	if snap.IsInitialState {
		resp.IdleVideoSrc = media.DefaultVideoURL
	}
	if len(snap.Playlist) > 0 {
		resp.Playlist = &playlistState{
			Index:   snap.TrackIndex,
			Count:   len(snap.Playlist),
			Current: snap.CurrentTrack(),
			Next:    snap.NextTrack(),
		}
	}
	return resp
}

// PlaybackState returns the current session state for rendering.
func (h *Handler) PlaybackState(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, stateResponse(h.session.Snapshot()))
}

type playTriggerRequest struct {
	Text string `json:"text"`
}

// PlayTrigger resolves typed text against the catalog and activates the
// result. Resolution failures land in the session error so the kiosk
// shows them in place; the endpoint itself still answers 200.
func (h *Handler) PlayTrigger(w http.ResponseWriter, r *http.Request) {
	var req playTriggerRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		h.respondError(w, http.StatusBadRequest, "text is required")
		return
	}

	cat, tracks := h.catalog.Effective(r.Context())
	rm, err := h.resolver.Resolve(req.Text, cat, tracks)
	if err != nil {
		h.session.PlayFailure(err)
	} else {
		h.session.PlayResolved(rm)
	}
	h.poller.Sync()

	h.respondJSON(w, http.StatusOK, stateResponse(h.session.Snapshot()))
}

type playThemeRequest struct {
	Theme string `json:"theme"`
}

// PlayTheme builds a playlist from the on-demand listing for a theme
// term and starts it. Discovered tracks are written back to the catalog
// so they become triggers of their own.
func (h *Handler) PlayTheme(w http.ResponseWriter, r *http.Request) {
	var req playThemeRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Theme) == "" {
		h.respondError(w, http.StatusBadRequest, "theme is required")
		return
	}

	cat, tracks := h.catalog.Effective(r.Context())
	matched := playback.BuildPlaylistFromTheme(tracks, req.Theme)
	if len(matched) == 0 {
		h.session.PlayFailure(errors.Newf("no tracks match theme %q", req.Theme))
		h.poller.Sync()
		h.respondJSON(w, http.StatusOK, stateResponse(h.session.Snapshot()))
		return
	}

	if err := h.catalog.UpsertTracks(r.Context(), matched); err != nil {
		zlog.Warn().Err(err).Msgf("failed to persist theme tracks")
	}

	h.session.StartPlaylist(matched, cat)
	h.poller.Sync()

	h.respondJSON(w, http.StatusOK, stateResponse(h.session.Snapshot()))
}

// AdvanceTrack moves playlist playback to the next track, wrapping
// around at the end.
func (h *Handler) AdvanceTrack(w http.ResponseWriter, r *http.Request) {
	cat, _ := h.catalog.Effective(r.Context())
	h.session.Advance(cat)
	h.poller.Sync()

	h.respondJSON(w, http.StatusOK, stateResponse(h.session.Snapshot()))
}

type setExpandedRequest struct {
	Expanded bool `json:"expanded"`
}

// SetExpanded toggles the expanded presentation.
func (h *Handler) SetExpanded(w http.ResponseWriter, r *http.Request) {
	var req setExpandedRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	h.session.SetExpanded(req.Expanded)
	h.respondJSON(w, http.StatusOK, stateResponse(h.session.Snapshot()))
}

type videoErrorRequest struct {
	URL string `json:"url"`
}

// ReportVideoError records a video source the client failed to play so
// display resolution falls back to image mode.
func (h *Handler) ReportVideoError(w http.ResponseWriter, r *http.Request) {
	var req videoErrorRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	if req.URL == "" {
		h.respondError(w, http.StatusBadRequest, "url is required")
		return
	}
	h.session.RecordVideoFailure(req.URL)
	h.respondJSON(w, http.StatusOK, stateResponse(h.session.Snapshot()))
}

// ResetPlayback returns the kiosk to the idle attract loop.
func (h *Handler) ResetPlayback(w http.ResponseWriter, r *http.Request) {
	h.session.Reset()
	h.poller.Sync()
	h.respondJSON(w, http.StatusOK, stateResponse(h.session.Snapshot()))
}
