package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoosierillusions/kiosk/internal/domain/theater"
)

func TestTheaterConfig_DefaultWhenMissing(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/api/theater-config", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	cfg := decodeBody[theater.Config](t, rec)
	assert.Equal(t, theater.DefaultConfig(), cfg)
}

func TestTheaterConfig_SaveAndReload(t *testing.T) {
	f := newFixture(t)

	saved := theater.Config{BackgroundURL: "/custom/bg.png", MaskURL: "/custom/mask.png"}
	rec := f.do(t, http.MethodPost, "/api/theater-config", saved)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, http.MethodGet, "/api/theater-config", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, saved, decodeBody[theater.Config](t, rec))
}

func TestTheaterConfig_RejectsInvalidJSON(t *testing.T) {
	f := newFixture(t)

	req := f.do(t, http.MethodPost, "/api/theater-config", nil)
	assert.Equal(t, http.StatusBadRequest, req.Code)

	// nothing was stored
	_, err := f.store.Get(context.Background(), "theater-config.json")
	assert.Error(t, err)
}

func TestVideoPosition_DefaultAndRoundTrip(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/api/video-position", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, theater.DefaultVideoPosition(), decodeBody[theater.VideoPosition](t, rec))

	pos := theater.VideoPosition{Top: "10%", Left: "20%", Width: "50%", Height: "30%"}
	rec = f.do(t, http.MethodPost, "/api/video-position", pos)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, http.MethodGet, "/api/video-position", nil)
	assert.Equal(t, pos, decodeBody[theater.VideoPosition](t, rec))
}

func TestHotspotConfig_DefaultWhenMissing(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/api/hotspot-config", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	cfg := decodeBody[theater.HotspotConfig](t, rec)
	assert.Equal(t, theater.DefaultHotspotConfig(), cfg)
}
