package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"

	"github.com/hoosierillusions/kiosk/internal/domain/theater"
	"github.com/hoosierillusions/kiosk/internal/infra/store"
)

// Object keys for the persisted theater layout blobs.
const (
	theaterConfigKey = "theater-config.json"
	videoPositionKey = "video-position.json"
	hotspotConfigKey = "hotspot-config.json"
)

// GetTheaterConfig returns the stored theater scene, or the shipped
// default when nothing has been saved yet.
func (h *Handler) GetTheaterConfig(w http.ResponseWriter, r *http.Request) {
	h.getBlob(w, r, theaterConfigKey, theater.DefaultConfig())
}

// SaveTheaterConfig persists the theater scene exactly as posted.
func (h *Handler) SaveTheaterConfig(w http.ResponseWriter, r *http.Request) {
	h.saveBlob(w, r, theaterConfigKey)
}

// GetVideoPosition returns the stored video frame placement, or the
// shipped default.
func (h *Handler) GetVideoPosition(w http.ResponseWriter, r *http.Request) {
	h.getBlob(w, r, videoPositionKey, theater.DefaultVideoPosition())
}

// SaveVideoPosition persists the video frame placement.
func (h *Handler) SaveVideoPosition(w http.ResponseWriter, r *http.Request) {
	h.saveBlob(w, r, videoPositionKey)
}

// GetHotspotConfig returns the stored hotspot layout, or the shipped
// default.
func (h *Handler) GetHotspotConfig(w http.ResponseWriter, r *http.Request) {
	h.getBlob(w, r, hotspotConfigKey, theater.DefaultHotspotConfig())
}

// SaveHotspotConfig persists the hotspot layout.
func (h *Handler) SaveHotspotConfig(w http.ResponseWriter, r *http.Request) {
	h.saveBlob(w, r, hotspotConfigKey)
}

// getBlob serves a stored JSON blob, falling back to the given default
// when the blob is missing or storage is unreachable. The kiosk must
// render with defaults even when storage is down.
func (h *Handler) getBlob(w http.ResponseWriter, r *http.Request, key string, fallback any) {
	data, err := h.store.Get(r.Context(), key)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			zlog.Warn().Err(err).Msgf("failed to load %s, serving default", key)
		}
		h.respondJSON(w, http.StatusOK, fallback)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// saveBlob persists the posted body verbatim. Layout blobs are owned by
// the admin editor; the server only checks that they are valid JSON.
func (h *Handler) saveBlob(w http.ResponseWriter, r *http.Request, key string) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "failed to read body")
		return
	}
	if !json.Valid(body) {
		h.respondError(w, http.StatusBadRequest, "body is not valid JSON")
		return
	}

	if err := h.store.Put(r.Context(), key, body); err != nil {
		zlog.Error().Err(err).Msgf("failed to save %s", key)
		h.respondError(w, http.StatusInternalServerError, "failed to save configuration")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
