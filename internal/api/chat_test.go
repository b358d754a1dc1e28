package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoosierillusions/kiosk/internal/infra/genai"
)

func TestChat_TriggerShortCircuits(t *testing.T) {
	f := newFixture(t)
	f.serveOnDemand(`[]`)

	rec := f.do(t, http.MethodPost, "/api/chat", chatRequest{Message: "  DeadSpeak "})

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[chatResponse](t, rec)
	assert.Equal(t, "trigger", resp.Type)
	assert.Equal(t, "deadspeak", resp.Trigger)
	require.NotNil(t, resp.Mapping)
	assert.NotEmpty(t, resp.Mapping.VideoURL)
}

func TestChat_FallbackWithoutAPIKey(t *testing.T) {
	f := newFixture(t)
	f.serveOnDemand(`[]`)

	rec := f.do(t, http.MethodPost, "/api/chat", chatRequest{Message: "what is this place?"})

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[chatResponse](t, rec)
	assert.Equal(t, "chat", resp.Type)
	assert.Equal(t, genai.FallbackReply, resp.Reply)
}

func TestChat_GeneratedReply(t *testing.T) {
	f := newFixtureWithChat(t, nil)
	f.serveOnDemand(`[]`)

	var prompt string
	f.mux.HandleFunc("/v1beta/models/", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Contents []struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"contents"`
		}
		_ = decodeInto(r, &req)
		if len(req.Contents) > 0 && len(req.Contents[0].Parts) > 0 {
			prompt = req.Contents[0].Parts[0].Text
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Welcome to the illusion."}]}}]}`))
	})

	// rebuild the chat client against the fixture's upstream
	chat, err := genai.New(map[string]any{
		"api_key":  "test-key",
		"base_url": f.upstream.URL + "/v1beta",
	})
	require.NoError(t, err)
	f.handler.chat = chat

	rec := f.do(t, http.MethodPost, "/api/chat", chatRequest{Message: "tell me a secret"})

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[chatResponse](t, rec)
	assert.Equal(t, "chat", resp.Type)
	assert.Equal(t, "Welcome to the illusion.", resp.Reply)
	assert.Contains(t, rec.Body.String(), `"response":"Welcome to the illusion."`)

	// the assistant is briefed with the dropdown triggers
	assert.Contains(t, prompt, "deadspeak")
	assert.Contains(t, prompt, "tell me a secret")
}

func TestChat_FallbackOnUpstreamError(t *testing.T) {
	f := newFixture(t)
	f.serveOnDemand(`[]`)
	f.mux.HandleFunc("/v1beta/models/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	chat, err := genai.New(map[string]any{
		"api_key":  "test-key",
		"base_url": f.upstream.URL + "/v1beta",
	})
	require.NoError(t, err)
	f.handler.chat = chat

	rec := f.do(t, http.MethodPost, "/api/chat", chatRequest{Message: "hello?"})

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[chatResponse](t, rec)
	assert.Equal(t, genai.FallbackReply, resp.Reply)
}

func TestChat_EmptyMessageRejected(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/api/chat", chatRequest{Message: "   "})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
