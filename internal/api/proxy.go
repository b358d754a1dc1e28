package api

import (
	"io"
	"net/http"

	zlog "github.com/rs/zerolog/log"

	"github.com/hoosierillusions/kiosk/internal/domain/media"
)

// GetNowPlaying proxies the station's now-playing metadata. On upstream
// failure the last successful payload is served, then the synthetic
// offline payload, so the endpoint always answers 200.
func (h *Handler) GetNowPlaying(w http.ResponseWriter, r *http.Request) {
	np, err := h.station.GetNowPlaying(r.Context())
	if err != nil {
		zlog.Warn().Err(err).Msgf("now playing fetch failed, serving cached payload")
		np = h.poller.Latest()
	} else {
		h.poller.RecordGood(np)
	}
	w.Header().Set("Cache-Control", "public, max-age=3, stale-while-revalidate=5")
	h.respondJSON(w, http.StatusOK, np)
}

// ProxyAlbumArt streams remote album art through the kiosk origin so
// the client never mixes origins. Any failure redirects to the station
// logo instead of breaking the image element.
func (h *Handler) ProxyAlbumArt(w http.ResponseWriter, r *http.Request) {
	rawURL := r.URL.Query().Get("url")
	if rawURL == "" {
		http.Redirect(w, r, media.DefaultLogoURL, http.StatusFound)
		return
	}

	req, err := http.NewRequestWithContext(r.Context(), http.MethodGet, rawURL, nil)
	if err != nil {
		http.Redirect(w, r, media.DefaultLogoURL, http.StatusFound)
		return
	}

	resp, err := h.upstream.Do(req)
	if err != nil {
		zlog.Warn().Err(err).Msgf("album art fetch failed")
		http.Redirect(w, r, media.DefaultLogoURL, http.StatusFound)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		http.Redirect(w, r, media.DefaultLogoURL, http.StatusFound)
		return
	}

	if ct := resp.Header.Get("Content-Type"); ct != "" {
		w.Header().Set("Content-Type", ct)
	}
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	io.Copy(w, resp.Body)
}

// ProxyAudio streams on-demand audio through the kiosk origin,
// forwarding Range requests so the player can seek. Content-Length is
// deliberately not forwarded; the body is streamed chunked and the
// upstream length is not always trustworthy for partial responses.
func (h *Handler) ProxyAudio(w http.ResponseWriter, r *http.Request) {
	rawURL := r.URL.Query().Get("url")
	if rawURL == "" {
		h.respondError(w, http.StatusBadRequest, "url parameter is required")
		return
	}

	req, err := http.NewRequestWithContext(r.Context(), http.MethodGet, rawURL, nil)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid url parameter")
		return
	}
	if rng := r.Header.Get("Range"); rng != "" {
		req.Header.Set("Range", rng)
	}

	resp, err := h.upstream.Do(req)
	if err != nil {
		zlog.Warn().Err(err).Msgf("audio fetch failed")
		h.respondError(w, http.StatusBadGateway, "failed to fetch audio")
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		h.respondError(w, http.StatusBadGateway, "upstream rejected audio request")
		return
	}

	for _, header := range []string{"Content-Type", "Content-Range", "Accept-Ranges"} {
		if v := resp.Header.Get(header); v != "" {
			w.Header().Set(header, v)
		}
	}
	w.Header().Set("Content-Disposition", "inline")
	w.WriteHeader(resp.StatusCode)
	io.Copy(w, resp.Body)
}
