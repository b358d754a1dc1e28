package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	zlog "github.com/rs/zerolog/log"

	"github.com/hoosierillusions/kiosk/internal/domain/media"
)

// GetConfig serves the effective trigger catalog the kiosk renders
// from. Clients may cache it briefly; edits show up within the window.
func (h *Handler) GetConfig(w http.ResponseWriter, r *http.Request) {
	cat, _ := h.catalog.Effective(r.Context())

	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", h.cfg.Catalog.CacheSec))
	h.respondJSON(w, http.StatusOK, cat)
}

// GetCustomMedia serves the admin editing view of the catalog: stored
// overrides overlaid with on-demand download URLs, without the shipped
// defaults.
func (h *Handler) GetCustomMedia(w http.ResponseWriter, r *http.Request) {
	cat, err := h.catalog.RawCustom(r.Context())
	if err != nil {
		zlog.Error().Err(err).Msgf("failed to load custom media")
		h.respondError(w, http.StatusInternalServerError, "failed to load custom media")
		return
	}
	h.respondJSON(w, http.StatusOK, cat)
}

// SaveCustomMedia replaces the stored catalog overrides with the posted
// set. Shipped defaults absent from the payload are tombstoned so the
// deletion survives the merge.
func (h *Handler) SaveCustomMedia(w http.ResponseWriter, r *http.Request) {
	var payload media.Catalog
	if !h.decodeJSON(w, r, &payload) {
		return
	}

	if err := h.catalog.SaveCustom(r.Context(), payload); err != nil {
		zlog.Error().Err(err).Msgf("failed to save custom media")
		h.respondError(w, http.StatusInternalServerError, "failed to save custom media")
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// saveMappingRequest is the flat save-mapping body: the trigger word
// alongside the mapping's own fields. Decoding runs the payload through
// Mapping's unmarshalling so absent booleans default the same way they
// do in the stored catalog.
type saveMappingRequest struct {
	Trigger string
	Mapping media.Mapping
}

func (sr *saveMappingRequest) UnmarshalJSON(data []byte) error {
	var head struct {
		Trigger string `json:"trigger"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return err
	}
	var m media.Mapping
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	sr.Trigger = head.Trigger
	sr.Mapping = m
	return nil
}

func (sr saveMappingRequest) MarshalJSON() ([]byte, error) {
	raw, err := json.Marshal(sr.Mapping)
	if err != nil {
		return nil, err
	}
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	trigger, err := json.Marshal(sr.Trigger)
	if err != nil {
		return nil, err
	}
	fields["trigger"] = trigger
	return json.Marshal(fields)
}

// SaveMapping stores a single trigger mapping after checking that its
// media URLs answer a HEAD request. Audio on the station host is
// exempt: the live mount streams forever and never HEADs cleanly.
func (h *Handler) SaveMapping(w http.ResponseWriter, r *http.Request) {
	var req saveMappingRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Trigger) == "" {
		h.respondError(w, http.StatusBadRequest, "trigger is required")
		return
	}

	if bad := h.validateMappingURLs(r, req.Mapping); bad != "" {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("media URL is not reachable: %s", bad))
		return
	}

	if err := h.catalog.SaveMapping(r.Context(), req.Trigger, req.Mapping); err != nil {
		zlog.Error().Err(err).Msgf("failed to save mapping %q", req.Trigger)
		h.respondError(w, http.StatusInternalServerError, "failed to save mapping")
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// validateMappingURLs returns the first unreachable URL, or "" when all
// check out. Only video and audio are checked; pano and image assets
// are large externally hosted files the admin uploads separately.
func (h *Handler) validateMappingURLs(r *http.Request, m media.Mapping) string {
	stationHost := h.station.BaseURL()
	for _, u := range []string{m.VideoURL, m.AudioURL} {
		if u == "" || strings.HasPrefix(u, "/") {
			continue
		}
		if u == m.AudioURL && stationHost != "" && strings.Contains(u, stationHost) {
			continue
		}
		if !h.headOK(r, u) {
			return u
		}
	}
	return ""
}

func (h *Handler) headOK(r *http.Request, url string) bool {
	req, err := http.NewRequestWithContext(r.Context(), http.MethodHead, url, nil)
	if err != nil {
		return false
	}
	resp, err := h.upstream.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode < http.StatusBadRequest
}
