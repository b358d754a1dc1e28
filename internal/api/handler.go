// Package api provides the kiosk's HTTP endpoints: catalog and theater
// configuration, station proxies, the chat assistant, and playback
// session control.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	zlog "github.com/rs/zerolog/log"

	"github.com/hoosierillusions/kiosk/internal/app/catalog"
	"github.com/hoosierillusions/kiosk/internal/app/nowplaying"
	"github.com/hoosierillusions/kiosk/internal/app/playback"
	"github.com/hoosierillusions/kiosk/internal/infra/azuracast"
	"github.com/hoosierillusions/kiosk/internal/infra/config"
	"github.com/hoosierillusions/kiosk/internal/infra/genai"
	"github.com/hoosierillusions/kiosk/internal/infra/store"
)

// Handler provides the kiosk HTTP endpoints.
type Handler struct {
	cfg      *config.Config
	store    store.ObjectStore
	catalog  *catalog.Service
	resolver *catalog.Resolver
	session  *playback.Session
	poller   *nowplaying.Poller
	station  *azuracast.Client
	chat     *genai.Client

	// upstream is used for the byte proxies and HEAD validation, where
	// the raw response body must be streamed through untouched.
	upstream *http.Client
}

// NewHandler creates the API handler.
func NewHandler(
	cfg *config.Config,
	st store.ObjectStore,
	cat *catalog.Service,
	session *playback.Session,
	poller *nowplaying.Poller,
	station *azuracast.Client,
	chat *genai.Client,
) *Handler {
	return &Handler{
		cfg:      cfg,
		store:    st,
		catalog:  cat,
		resolver: catalog.NewResolver(cfg.Station.BaseURL),
		session:  session,
		poller:   poller,
		station:  station,
		chat:     chat,
		upstream: &http.Client{Timeout: 30 * time.Second},
	}
}

// Routes registers all API routes on the given router.
func (h *Handler) Routes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.Health)

		r.Get("/config", h.GetConfig)
		r.Get("/custom-media", h.GetCustomMedia)
		r.Get("/theater-config", h.GetTheaterConfig)
		r.Get("/video-position", h.GetVideoPosition)
		r.Get("/hotspot-config", h.GetHotspotConfig)

		// configuration writes require the admin token when one is set
		r.Group(func(r chi.Router) {
			r.Use(h.requireAdmin)
			r.Post("/custom-media", h.SaveCustomMedia)
			r.Post("/save-mapping", h.SaveMapping)
			r.Post("/theater-config", h.SaveTheaterConfig)
			r.Post("/video-position", h.SaveVideoPosition)
			r.Post("/hotspot-config", h.SaveHotspotConfig)
		})

		r.Get("/nowplaying", h.GetNowPlaying)
		r.Get("/album-art", h.ProxyAlbumArt)
		r.Get("/proxy-audio", h.ProxyAudio)

		r.Post("/chat", h.Chat)

		r.Route("/playback", func(r chi.Router) {
			r.Get("/state", h.PlaybackState)
			r.Post("/trigger", h.PlayTrigger)
			r.Post("/theme", h.PlayTheme)
			r.Post("/advance", h.AdvanceTrack)
			r.Post("/expanded", h.SetExpanded)
			r.Post("/video-error", h.ReportVideoError)
			r.Post("/reset", h.ResetPlayback)
		})
	})
}

// AdminTokenHeader carries the admin token on configuration writes.
const AdminTokenHeader = "X-Admin-Token"

// requireAdmin rejects configuration writes without the configured
// admin token. With no token configured the kiosk runs open, which is
// how local development works.
func (h *Handler) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.cfg.Admin.Token != "" && r.Header.Get(AdminTokenHeader) != h.cfg.Admin.Token {
			h.respondError(w, http.StatusUnauthorized, "invalid admin token")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Health reports readiness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zlog.Warn().Err(err).Msgf("failed to write response")
	}
}

func (h *Handler) respondError(w http.ResponseWriter, status int, msg string) {
	h.respondJSON(w, status, map[string]string{"error": msg})
}

func (h *Handler) decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}
