package catalog

import (
	"strings"

	"github.com/hoosierillusions/kiosk/internal/domain/media"
)

// ResolvedMedia is the outcome of a successful trigger resolution: the
// mapping plus the concrete, ready-to-assign media sources. The audio URL
// is raw; live-edge rewriting happens once, when the playback session
// adopts the resolution.
type ResolvedMedia struct {
	Trigger  string
	Mapping  media.Mapping
	AudioURL string
	VideoURL string
	ImageURL string
	PanoURL  string
}

// Resolver turns trigger words into playable media.
type Resolver struct {
	stationBaseURL string
}

// NewResolver creates a resolver constructing on-demand URLs against the
// given station host.
func NewResolver(stationBaseURL string) *Resolver {
	return &Resolver{stationBaseURL: stationBaseURL}
}

// Resolve looks the normalized trigger up in the catalog. A mapping with a
// direct audio URL resolves immediately; one without falls back to an
// on-demand lookup by title against the station track listing. A trigger
// absent from the catalog fails with UnknownTriggerError; a failed
// on-demand lookup fails with TrackNotFoundError.
func (r *Resolver) Resolve(trigger string, cat media.Catalog, tracks []media.Track) (ResolvedMedia, error) {
	norm := media.NormalizeTrigger(trigger)

	m, ok := cat[norm]
	if !ok {
		return ResolvedMedia{}, &UnknownTriggerError{Trigger: norm}
	}

	rm := ResolvedMedia{
		Trigger:  norm,
		Mapping:  m,
		AudioURL: m.AudioURL,
		VideoURL: m.VideoURL,
		ImageURL: m.ImageURL,
		PanoURL:  m.PanoURL,
	}

	if rm.AudioURL != "" {
		return rm, nil
	}

	// A pano-only mapping has nothing to look up.
	if rm.PanoURL != "" {
		return rm, nil
	}

	trackName := m.Title
	if trackName == "" {
		trackName = norm
	}

	for _, t := range tracks {
		if strings.EqualFold(strings.TrimSpace(t.Title), strings.TrimSpace(trackName)) {
			rm.AudioURL = OnDemandAudioURL(r.stationBaseURL, t)
			if rm.ImageURL == "" {
				rm.ImageURL = t.ArtURL
			}
			return rm, nil
		}
	}

	return ResolvedMedia{}, &TrackNotFoundError{TrackName: trackName}
}
