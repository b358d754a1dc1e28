// Package genai provides a client for the Gemini text-completion API used
// by the kiosk chat assistant.
package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
)

// FallbackReply is served when no API key is configured or the upstream
// call fails; the kiosk chat should never surface a hard error.
const FallbackReply = "I'm here to help! Try typing one of the available shortcuts to play media, or ask me how to use this site."

// Settings represents the chat provider settings block.
type Settings struct {
	APIKey  string `yaml:"api_key" mapstructure:"api_key"`
	Model   string `yaml:"model" mapstructure:"model" default:"gemini-1.5-flash-latest"`
	BaseURL string `yaml:"base_url" mapstructure:"base_url" default:"https://generativelanguage.googleapis.com/v1beta" validate:"required,url"`
}

// Client is a Gemini generateContent API client.
type Client struct {
	settings   Settings
	httpClient *http.Client
}

// New creates a client from a raw settings map.
func New(settings map[string]any) (*Client, error) {
	var s Settings
	if err := mapstructure.Decode(settings, &s); err != nil {
		return nil, errors.Wrap(err, "failed to decode settings")
	}
	if err := defaults.Set(&s); err != nil {
		return nil, errors.Wrap(err, "failed to set defaults")
	}
	if err := validator.New().Struct(s); err != nil {
		return nil, errors.Wrap(err, "validation failed")
	}

	return &Client{
		settings:   s,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}, nil
}

// Enabled reports whether an API key is configured. When false, callers
// should serve FallbackReply without hitting the network.
func (c *Client) Enabled() bool {
	return c.settings.APIKey != ""
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Generate sends a single-turn prompt and returns the generated text.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if !c.Enabled() {
		return "", errors.New("no API key configured")
	}

	reqBody, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to encode request")
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.settings.BaseURL, c.settings.Model, c.settings.APIKey)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(reqBody))
	if err != nil {
		return "", errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "failed to send request")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "failed to read response body")
	}

	if resp.StatusCode != http.StatusOK {
		return "", errors.Newf("generate API error %d: %s", resp.StatusCode, string(body))
	}

	var out generateResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", errors.Wrap(err, "failed to parse response")
	}

	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("empty completion")
	}

	return out.Candidates[0].Content.Parts[0].Text, nil
}
