// Package azuracast provides the HTTP client for the station's AzuraCast API.
package azuracast

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/go-resty/resty/v2"

	"github.com/hoosierillusions/kiosk/internal/domain/media"
)

const requestTimeout = 10 * time.Second

// Client is the HTTP client for the station's AzuraCast instance.
type Client struct {
	client  *resty.Client
	station string
}

// Config represents AzuraCast client configuration.
type Config struct {
	BaseURL string // e.g. https://stream.hoosierillusions.com
	Station string // station short name, e.g. hoosier-illusions
}

// New creates a new AzuraCast API client with sensible defaults.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" || cfg.Station == "" {
		return nil, errors.New("station base URL and name are required")
	}

	return &Client{
		client: resty.New().
			SetBaseURL(cfg.BaseURL).
			SetTimeout(requestTimeout),
		station: cfg.Station,
	}, nil
}

// BaseURL returns the configured station base URL.
func (c *Client) BaseURL() string {
	return c.client.BaseURL
}

// Live describes the station's live-broadcast state.
type Live struct {
	IsLive       bool   `json:"is_live"`
	StreamerName string `json:"streamer_name"`
}

// SongEntry wraps a song in the now-playing payload.
type SongEntry struct {
	Song media.Song `json:"song"`
}

// StationInfo carries the station branding fields the kiosk uses.
type StationInfo struct {
	LogoURL string `json:"logo_url,omitempty"`
	Art     string `json:"art,omitempty"`
}

// NowPlaying is the station metadata payload: current and upcoming song
// plus live-broadcast state.
type NowPlaying struct {
	Station     *StationInfo `json:"station,omitempty"`
	Live        Live         `json:"live"`
	NowPlaying  SongEntry    `json:"now_playing"`
	PlayingNext SongEntry    `json:"playing_next"`
}

// Info converts the wire payload into the domain representation the
// playback session stores.
func (np *NowPlaying) Info() media.NowPlayingInfo {
	return media.NowPlayingInfo{
		Current:      np.NowPlaying.Song,
		Next:         np.PlayingNext.Song,
		IsLive:       np.Live.IsLive,
		StreamerName: np.Live.StreamerName,
	}
}

// OfflineNowPlaying returns the synthetic payload served when the station
// has never been reachable.
func OfflineNowPlaying() *NowPlaying {
	return &NowPlaying{
		Live:       Live{IsLive: false, StreamerName: "Offline"},
		NowPlaying: SongEntry{Song: media.Song{Title: "Stream Offline", Artist: ""}},
	}
}

// GetNowPlaying fetches the station's current metadata.
func (c *Client) GetNowPlaying(ctx context.Context) (*NowPlaying, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		Get(fmt.Sprintf("/api/nowplaying/%s", c.station))
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch now playing")
	}

	if !resp.IsSuccess() {
		return nil, errors.Newf("api returned status %d: %s", resp.StatusCode(), resp.Status())
	}

	var np NowPlaying
	if err := json.Unmarshal(resp.Body(), &np); err != nil {
		return nil, errors.Wrap(err, "failed to parse now playing response")
	}

	return &np, nil
}

// onDemandEntry is one row of the on-demand track listing.
type onDemandEntry struct {
	Media struct {
		Title     string   `json:"title"`
		Album     string   `json:"album"`
		Artist    string   `json:"artist"`
		Art       string   `json:"art"`
		Playlists []string `json:"playlists"`
	} `json:"media"`
	DownloadURL string `json:"download_url"`
}

// GetOnDemand fetches the station's on-demand track listing. Entries
// without a title are dropped; they cannot become catalog keys.
func (c *Client) GetOnDemand(ctx context.Context) ([]media.Track, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		Get(fmt.Sprintf("/api/station/%s/ondemand", c.station))
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch on-demand listing")
	}

	if !resp.IsSuccess() {
		return nil, errors.Newf("api returned status %d: %s", resp.StatusCode(), resp.Status())
	}

	var entries []onDemandEntry
	if err := json.Unmarshal(resp.Body(), &entries); err != nil {
		return nil, errors.Wrap(err, "failed to parse on-demand response")
	}

	tracks := make([]media.Track, 0, len(entries))
	for _, e := range entries {
		if e.Media.Title == "" {
			continue
		}
		tracks = append(tracks, media.Track{
			Title:       e.Media.Title,
			Album:       e.Media.Album,
			Artist:      e.Media.Artist,
			ArtURL:      e.Media.Art,
			Playlists:   e.Media.Playlists,
			DownloadURL: e.DownloadURL,
		})
	}

	return tracks, nil
}
