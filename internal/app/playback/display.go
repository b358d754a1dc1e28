package playback

import "github.com/hoosierillusions/kiosk/internal/domain/media"

// DisplayMode is the visual state the kiosk client should render.
type DisplayMode int

const (
	ModeIdle DisplayMode = iota
	ModePanorama
	ModeFullscreenVideo
	ModeTheaterVideo
	ModeFullscreenImage
	ModeTheaterImage
)

func (m DisplayMode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModePanorama:
		return "panorama"
	case ModeFullscreenVideo:
		return "fullscreenVideo"
	case ModeTheaterVideo:
		return "theaterVideo"
	case ModeFullscreenImage:
		return "fullscreenImage"
	case ModeTheaterImage:
		return "theaterImage"
	default:
		return "idle"
	}
}

// ComputeDisplayMode derives the display mode from a session snapshot.
// Precedence: the idle attract loop before any activation, then
// panorama, then video, then image. A video that was reported as failed
// is skipped so the resolver falls through to image display. Image mode
// requires either an explicit image source or active audio to decorate;
// anything else is idle.
func ComputeDisplayMode(s Snapshot) DisplayMode {
	if s.IsInitialState {
		return ModeIdle
	}
	if s.PanoSrc != "" {
		return ModePanorama
	}

	fullscreen := s.Mapping != nil && s.Mapping.PlayFullscreen

	if s.VideoSrc != "" && !s.VideoFailed {
		if fullscreen {
			return ModeFullscreenVideo
		}
		return ModeTheaterVideo
	}

	if s.ImageSrc != "" || s.AudioSrc != "" {
		if fullscreen {
			return ModeFullscreenImage
		}
		return ModeTheaterImage
	}

	return ModeIdle
}

// EffectiveImageSource resolves the image to render in image mode:
// the explicit image source, else the polled album art, else the
// station logo. Resolved at render time so late-arriving album art is
// picked up without a state write.
func EffectiveImageSource(s Snapshot) string {
	if s.ImageSrc != "" {
		return s.ImageSrc
	}
	if s.AlbumArt != "" {
		return s.AlbumArt
	}
	return media.DefaultLogoURL
}
