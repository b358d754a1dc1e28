// Package catalog builds the effective trigger catalog and resolves
// trigger words to playable media.
package catalog

import (
	"strings"

	"github.com/hoosierillusions/kiosk/internal/domain/media"
)

// onDemandPathMarker identifies audio URLs that point at the station's
// on-demand download endpoint. Those are placeholders: the station reissues
// download paths, so they are refreshed from the live listing on every merge.
const onDemandPathMarker = "/ondemand/download/"

// OnDemandAudioURL builds the proxy-relative playable URL for an on-demand
// track, so the browser never needs direct cross-origin access to the
// station host.
func OnDemandAudioURL(stationBaseURL string, t media.Track) string {
	return "/api/proxy-audio?url=" + stationBaseURL + t.DownloadURL
}

func isPlaceholderAudioURL(url string) bool {
	return url == "" || strings.Contains(url, onDemandPathMarker)
}

// Merge builds the effective catalog from its three layers, lowest to
// highest precedence: built-in defaults, persisted custom overrides, then
// the live on-demand listing. Custom entries replace defaults key-wise; the
// remote listing only back-fills missing fields and never clobbers explicit
// user data. Tombstoned entries are dropped regardless of layer.
func Merge(defaults, custom media.Catalog, remote []media.Track, stationBaseURL string) media.Catalog {
	merged := defaults.Clone()
	for key, m := range custom {
		merged[media.NormalizeTrigger(key)] = m
	}

	for key, m := range merged {
		if m.Deleted {
			delete(merged, key)
		}
	}

	for _, t := range remote {
		key := t.Key()
		if key == "" {
			continue
		}
		audioURL := OnDemandAudioURL(stationBaseURL, t)

		existing, ok := merged[key]
		if !ok {
			merged[key] = media.Mapping{
				AudioURL:       audioURL,
				ShowInDropdown: true,
				MuteVideo:      true,
				Title:          t.Title,
				Album:          t.Album,
				Artist:         t.Artist,
				ImageURL:       t.ArtURL,
			}
			continue
		}

		if isPlaceholderAudioURL(existing.AudioURL) {
			existing.AudioURL = audioURL
		}
		if existing.ImageURL == "" && t.ArtURL != "" {
			existing.ImageURL = t.ArtURL
		}
		if existing.Title == "" {
			existing.Title = t.Title
		}
		merged[key] = existing
	}

	return merged
}
