package api

import (
	"fmt"
	"net/http"
	"sort"
	"strings"

	zlog "github.com/rs/zerolog/log"

	"github.com/hoosierillusions/kiosk/internal/domain/media"
	"github.com/hoosierillusions/kiosk/internal/infra/genai"
)

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Type    string         `json:"type"`
	Trigger string         `json:"trigger,omitempty"`
	Mapping *media.Mapping `json:"mapping,omitempty"`
	Reply   string         `json:"response,omitempty"`
}

// Chat answers kiosk chat messages. A message matching a catalog
// trigger short-circuits into playback instructions; anything else goes
// to the assistant, with a canned reply when that is unavailable.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		h.respondError(w, http.StatusBadRequest, "message is required")
		return
	}

	cat, _ := h.catalog.Effective(r.Context())

	trigger := media.NormalizeTrigger(req.Message)
	if m, ok := cat.Get(trigger); ok && !m.Deleted && m.HasMedia() {
		h.respondJSON(w, http.StatusOK, chatResponse{
			Type:    "trigger",
			Trigger: trigger,
			Mapping: &m,
		})
		return
	}

	if !h.chat.Enabled() {
		h.respondJSON(w, http.StatusOK, chatResponse{Type: "chat", Reply: genai.FallbackReply})
		return
	}

	reply, err := h.chat.Generate(r.Context(), chatPrompt(cat, req.Message))
	if err != nil {
		zlog.Warn().Err(err).Msgf("chat generation failed")
		reply = genai.FallbackReply
	}
	h.respondJSON(w, http.StatusOK, chatResponse{Type: "chat", Reply: reply})
}

// chatPrompt frames the visitor's message with the kiosk persona and
// the triggers the dropdown advertises.
func chatPrompt(cat media.Catalog, message string) string {
	triggers := cat.DropdownTriggers()
	sort.Strings(triggers)

	return fmt.Sprintf(
		"You are the mysterious host of Hoosier Illusions, an online radio "+
			"station with a haunted theater vibe. Keep replies short, playful, "+
			"and in character. Visitors can type these shortcuts to play media: "+
			"%s. If the visitor seems to want one of them, suggest typing it "+
			"exactly.\n\nVisitor: %s",
		strings.Join(triggers, ", "), message)
}
