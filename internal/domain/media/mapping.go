// Package media provides the trigger-to-media mapping domain entities.
package media

import (
	"encoding/json"
	"strings"
)

// Mapping is one catalog entry: a normalized trigger word mapped to the
// media assets it plays. All fields are fully populated at ingestion;
// optional wire fields get their defaults applied exactly once in
// UnmarshalJSON, never in render logic.
type Mapping struct {
	VideoURL       string `json:"videoUrl,omitempty"`
	AudioURL       string `json:"audioUrl,omitempty"`
	PanoURL        string `json:"panoUrl,omitempty"`
	ImageURL       string `json:"imageUrl,omitempty"`
	ShowInDropdown bool   `json:"showInDropdown"`
	MuteVideo      bool   `json:"muteVideo"`
	PlayFullscreen bool   `json:"playFullscreen,omitempty"`
	Title          string `json:"title,omitempty"`
	Album          string `json:"album,omitempty"`
	Artist         string `json:"artist,omitempty"`

	// Deleted marks a tombstone: the entry stays in storage so a shipped
	// default can be suppressed without mutating the defaults table, but it
	// never appears in the effective catalog.
	Deleted bool `json:"_deleted,omitempty"`
}

// mappingDoc is the wire form. Pointer booleans distinguish "absent" from
// "explicitly false" so the absent case can default to true.
type mappingDoc struct {
	VideoURL       string `json:"videoUrl"`
	AudioURL       string `json:"audioUrl"`
	PanoURL        string `json:"panoUrl"`
	ImageURL       string `json:"imageUrl"`
	ShowInDropdown *bool  `json:"showInDropdown"`
	MuteVideo      *bool  `json:"muteVideo"`
	PlayFullscreen *bool  `json:"playFullscreen"`
	Title          string `json:"title"`
	Album          string `json:"album"`
	Artist         string `json:"artist"`
	Deleted        *bool  `json:"_deleted"`
}

// UnmarshalJSON decodes a mapping and applies the ingestion defaults:
// showInDropdown and muteVideo default to true, playFullscreen and the
// tombstone flag default to false.
func (m *Mapping) UnmarshalJSON(data []byte) error {
	var doc mappingDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	m.VideoURL = strings.TrimSpace(doc.VideoURL)
	m.AudioURL = strings.TrimSpace(doc.AudioURL)
	m.PanoURL = strings.TrimSpace(doc.PanoURL)
	m.ImageURL = strings.TrimSpace(doc.ImageURL)
	m.Title = doc.Title
	m.Album = doc.Album
	m.Artist = doc.Artist

	m.ShowInDropdown = boolOr(doc.ShowInDropdown, true)
	m.MuteVideo = boolOr(doc.MuteVideo, true)
	m.PlayFullscreen = boolOr(doc.PlayFullscreen, false)
	m.Deleted = boolOr(doc.Deleted, false)

	return nil
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

// HasMedia reports whether the mapping carries any playable or displayable
// asset at all.
func (m Mapping) HasMedia() bool {
	return m.AudioURL != "" || m.VideoURL != "" || m.PanoURL != "" || m.ImageURL != ""
}

// NormalizeTrigger canonicalizes a trigger word for catalog lookup:
// surrounding whitespace stripped, lower-cased.
func NormalizeTrigger(trigger string) string {
	return strings.ToLower(strings.TrimSpace(trigger))
}

// Catalog is the effective set of trigger-to-mapping entries, keyed by
// normalized trigger.
type Catalog map[string]Mapping

// Get looks up a mapping by raw (unnormalized) trigger text.
func (c Catalog) Get(trigger string) (Mapping, bool) {
	m, ok := c[NormalizeTrigger(trigger)]
	return m, ok
}

// Clone returns a shallow copy; mappings are value types so the copy is
// safe to mutate key-wise.
func (c Catalog) Clone() Catalog {
	out := make(Catalog, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}

// DropdownTriggers returns the triggers visible in the kiosk dropdown.
func (c Catalog) DropdownTriggers() []string {
	out := make([]string, 0, len(c))
	for k, m := range c {
		if m.ShowInDropdown && !m.Deleted {
			out = append(out, k)
		}
	}
	return out
}
