// Package playback holds the kiosk's playback session state machine:
// which media sources are active, the theme playlist position, and the
// now-playing metadata attached to the live stream.
package playback

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hoosierillusions/kiosk/internal/app/catalog"
	"github.com/hoosierillusions/kiosk/internal/domain/media"
)

// Session is the kiosk's playback state. All mutations take the lock
// and apply as one atomic patch so a snapshot never observes a half
// applied transition.
type Session struct {
	mu sync.Mutex

	playbackID     string
	mapping        *media.Mapping
	audioSrc       string
	videoSrc       string
	imageSrc       string
	panoSrc        string
	playlist       []media.Track
	trackIndex     int
	isInitialState bool
	isExpanded     bool
	errMsg         string

	nowPlaying *media.NowPlayingInfo
	albumArt   string

	failed         *FailedURLCache
	stationBaseURL string
	now            func() time.Time
}

// Snapshot is an immutable copy of the session state.
type Snapshot struct {
	PlaybackID     string
	Mapping        *media.Mapping
	AudioSrc       string
	VideoSrc       string
	ImageSrc       string
	PanoSrc        string
	Playlist       []media.Track
	TrackIndex     int
	IsInitialState bool
	IsExpanded     bool
	Error          string
	NowPlaying     *media.NowPlayingInfo
	AlbumArt       string
	VideoFailed    bool
}

// CurrentTrack returns the active playlist track, or nil outside
// playlist playback.
func (s Snapshot) CurrentTrack() *media.Track {
	if len(s.Playlist) == 0 || s.TrackIndex < 0 || s.TrackIndex >= len(s.Playlist) {
		return nil
	}
	t := s.Playlist[s.TrackIndex]
	return &t
}

// NextTrack returns the upcoming playlist track with wraparound, or nil
// outside playlist playback.
func (s Snapshot) NextTrack() *media.Track {
	if len(s.Playlist) == 0 {
		return nil
	}
	t := s.Playlist[(s.TrackIndex+1)%len(s.Playlist)]
	return &t
}

// NewSession creates a session in the initial attract state.
func NewSession(stationBaseURL string, failedURLLimit int) *Session {
	return &Session{
		playbackID:     uuid.NewString(),
		isInitialState: true,
		failed:         NewFailedURLCache(failedURLLimit),
		stationBaseURL: stationBaseURL,
		now:            time.Now,
	}
}

// PlayResolved activates resolved media. Live-stream audio is rewritten
// to the live edge here, exactly once per activation. Any running
// playlist is discarded and the attract loop ends.
func (s *Session) PlayResolved(rm catalog.ResolvedMedia) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := rm.Mapping
	s.playbackID = uuid.NewString()
	s.mapping = &m
	s.audioSrc = RewriteForLiveEdge(rm.AudioURL, s.now())
	s.videoSrc = rm.VideoURL
	s.imageSrc = rm.ImageURL
	s.panoSrc = rm.PanoURL
	s.playlist = nil
	s.trackIndex = 0
	s.isInitialState = false
	s.errMsg = ""
}

// PlayFailure records a resolution failure: all sources are cleared and
// the message is surfaced to the client. The attract state is left as
// is so a failed trigger on the idle screen stays on the idle screen.
func (s *Session) PlayFailure(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.mapping = nil
	s.audioSrc = ""
	s.videoSrc = ""
	s.imageSrc = ""
	s.panoSrc = ""
	s.playlist = nil
	s.trackIndex = 0
	s.errMsg = err.Error()
}

// StartPlaylist begins playlist playback from the first track. Tracks
// must be non-empty; callers resolve empty matches as failures.
func (s *Session) StartPlaylist(tracks []media.Track, cat media.Catalog) {
	if len(tracks) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.playbackID = uuid.NewString()
	s.playlist = append([]media.Track(nil), tracks...)
	s.trackIndex = 0
	s.isInitialState = false
	s.errMsg = ""
	s.assignTrackLocked(cat)
}

// Advance moves to the next playlist track, wrapping to the first after
// the last. Outside playlist playback it is a no-op.
func (s *Session) Advance(cat media.Catalog) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.playlist) == 0 {
		return
	}
	s.trackIndex = (s.trackIndex + 1) % len(s.playlist)
	s.assignTrackLocked(cat)
}

// assignTrackLocked derives sources for the current playlist track: the
// canonical on-demand audio URL from the track, with any catalog
// override for the same title supplying video and image.
func (s *Session) assignTrackLocked(cat media.Catalog) {
	t := s.playlist[s.trackIndex]
	s.audioSrc = catalog.OnDemandAudioURL(s.stationBaseURL, t)
	s.panoSrc = ""

	if m, ok := cat.Get(t.Key()); ok {
		s.mapping = &m
		s.videoSrc = m.VideoURL
		s.imageSrc = m.ImageURL
		if s.imageSrc == "" {
			s.imageSrc = t.ArtURL
		}
		return
	}

	s.mapping = &media.Mapping{
		Title:          t.Title,
		Album:          t.Album,
		Artist:         t.Artist,
		ImageURL:       t.ArtURL,
		ShowInDropdown: true,
		MuteVideo:      true,
	}
	s.videoSrc = ""
	s.imageSrc = t.ArtURL
}

// ApplyPoll folds now-playing metadata into the session. The update is
// keyed to the audio source that was active when the poll started; if
// the user switched media in the meantime the stale result is dropped.
// When the current song's title matches a catalog mapping its visuals
// are adopted, otherwise visuals are cleared so the album art fallback
// takes over.
func (s *Session) ApplyPoll(originAudioSrc string, info media.NowPlayingInfo, cat media.Catalog) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.audioSrc != originAudioSrc {
		return
	}

	cp := info
	s.nowPlaying = &cp
	if info.Current.Art != "" {
		s.albumArt = info.Current.Art
	}

	if s.isInitialState {
		return
	}

	m, ok := cat.Get(media.NormalizeTrigger(info.Current.Title))
	switch {
	case ok && m.VideoURL != "":
		s.mapping = &m
		s.videoSrc = m.VideoURL
		s.imageSrc = m.ImageURL
	case ok && m.ImageURL != "":
		s.mapping = &m
		s.videoSrc = ""
		s.imageSrc = m.ImageURL
	case ok:
		// audio-only mapping: no visuals, but its flags still apply
		s.mapping = &m
		s.videoSrc = ""
		s.imageSrc = ""
	default:
		s.mapping = nil
		s.videoSrc = ""
		s.imageSrc = ""
	}
}

// ClearNowPlaying drops polled metadata, used when the poller stops
// because the live stream is no longer the audio source.
func (s *Session) ClearNowPlaying() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nowPlaying = nil
	s.albumArt = ""
}

// RecordVideoFailure marks a video URL as unplayable so future display
// resolution skips it.
func (s *Session) RecordVideoFailure(url string) {
	s.failed.Record(url)
}

// SetExpanded toggles the expanded presentation flag.
func (s *Session) SetExpanded(expanded bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isExpanded = expanded
}

// Reset returns the session to the initial attract state. The expanded
// flag is cleared with it so the next activation starts compact.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.playbackID = uuid.NewString()
	s.mapping = nil
	s.audioSrc = ""
	s.videoSrc = ""
	s.imageSrc = ""
	s.panoSrc = ""
	s.playlist = nil
	s.trackIndex = 0
	s.isInitialState = true
	s.isExpanded = false
	s.errMsg = ""
	s.nowPlaying = nil
	s.albumArt = ""
}

// AudioSrc returns the currently active audio source.
func (s *Session) AudioSrc() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.audioSrc
}

// Snapshot returns a copy of the session state for rendering.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		PlaybackID:     s.playbackID,
		AudioSrc:       s.audioSrc,
		VideoSrc:       s.videoSrc,
		ImageSrc:       s.imageSrc,
		PanoSrc:        s.panoSrc,
		TrackIndex:     s.trackIndex,
		IsInitialState: s.isInitialState,
		IsExpanded:     s.isExpanded,
		Error:          s.errMsg,
		AlbumArt:       s.albumArt,
		VideoFailed:    s.videoSrc != "" && s.failed.Has(s.videoSrc),
	}
	if s.mapping != nil {
		m := *s.mapping
		snap.Mapping = &m
	}
	if s.nowPlaying != nil {
		np := *s.nowPlaying
		snap.NowPlaying = &np
	}
	if len(s.playlist) > 0 {
		snap.Playlist = append([]media.Track(nil), s.playlist...)
	}
	return snap
}
