// Package nowplaying runs the background poll that keeps station
// metadata attached to live-stream playback.
package nowplaying

import (
	"context"
	"sync"
	"time"

	zlog "github.com/rs/zerolog/log"

	"github.com/hoosierillusions/kiosk/internal/app/catalog"
	"github.com/hoosierillusions/kiosk/internal/app/playback"
	"github.com/hoosierillusions/kiosk/internal/infra/azuracast"
)

// Poller polls the station's now-playing endpoint while the session's
// audio source is the live stream. It stops itself when playback moves
// to on-demand audio and restarts when the live stream is adopted
// again. The last successful payload is retained across poll failures.
type Poller struct {
	client   *azuracast.Client
	session  *playback.Session
	catalog  *catalog.Service
	interval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	origin string
	done   chan struct{}

	lastMu   sync.RWMutex
	lastGood *azuracast.NowPlaying
}

// NewPoller creates a poller. The interval is how often the station is
// asked for metadata while the live stream plays.
func NewPoller(client *azuracast.Client, session *playback.Session, cat *catalog.Service, interval time.Duration) *Poller {
	return &Poller{
		client:   client,
		session:  session,
		catalog:  cat,
		interval: interval,
	}
}

// Sync reconciles the poll loop with the session's current audio
// source. Call it after every playback mutation.
func (p *Poller) Sync() {
	src := p.session.AudioSrc()

	p.mu.Lock()
	defer p.mu.Unlock()

	if !playback.IsLiveStream(src) {
		p.stopLocked()
		p.session.ClearNowPlaying()
		return
	}
	if p.cancel != nil && p.origin == src {
		return
	}

	p.stopLocked()
	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	p.origin = src
	p.done = make(chan struct{})
	go p.run(ctx, src, p.done)
}

// Stop halts any running poll loop and waits for it to exit.
func (p *Poller) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked()
}

func (p *Poller) stopLocked() {
	if p.cancel == nil {
		return
	}
	p.cancel()
	<-p.done
	p.cancel = nil
	p.origin = ""
	p.done = nil
}

// Latest returns the most recent successful payload, or the synthetic
// offline payload when the station has never answered.
func (p *Poller) Latest() *azuracast.NowPlaying {
	p.lastMu.RLock()
	defer p.lastMu.RUnlock()
	if p.lastGood == nil {
		return azuracast.OfflineNowPlaying()
	}
	return p.lastGood
}

// RecordGood stores a successful payload fetched outside the poll loop,
// so Latest can serve it across later upstream failures even while the
// loop is idle.
func (p *Poller) RecordGood(np *azuracast.NowPlaying) {
	if np == nil {
		return
	}
	p.lastMu.Lock()
	p.lastGood = np
	p.lastMu.Unlock()
}

func (p *Poller) run(ctx context.Context, origin string, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.poll(ctx, origin)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.poll(ctx, origin)
		}
	}
}

func (p *Poller) poll(ctx context.Context, origin string) {
	np, err := p.client.GetNowPlaying(ctx)
	if err != nil {
		if ctx.Err() == nil {
			zlog.Warn().Err(err).Msgf("now-playing poll failed, keeping last known metadata")
		}
		return
	}

	p.RecordGood(np)

	cat, _ := p.catalog.Effective(ctx)
	p.session.ApplyPoll(origin, np.Info(), cat)
}
