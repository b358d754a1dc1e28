// Package main provides the kiosk server entry point.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	zlog "github.com/rs/zerolog/log"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/hoosierillusions/kiosk/internal/api"
	"github.com/hoosierillusions/kiosk/internal/app/catalog"
	"github.com/hoosierillusions/kiosk/internal/app/nowplaying"
	"github.com/hoosierillusions/kiosk/internal/app/playback"
	"github.com/hoosierillusions/kiosk/internal/infra/azuracast"
	"github.com/hoosierillusions/kiosk/internal/infra/config"
	"github.com/hoosierillusions/kiosk/internal/infra/genai"
	"github.com/hoosierillusions/kiosk/internal/infra/logger"
	"github.com/hoosierillusions/kiosk/internal/infra/store"
)

var (
	app         = kingpin.New("kiosk-server", "Hoosier Illusions kiosk server")
	configPath  = app.Flag("config", "Path to config file").Default("config/server.yaml").String()
	verbose     = app.Flag("verbose", "Enable verbose (DEBUG) logging").Short('v').Bool()
	logfile     = app.Flag("logfile", "Path to log file (default: stdout)").String()
	memoryStore = app.Flag("memory-store", "Keep config blobs in memory instead of S3 (local development)").Bool()
)

func main() {
	// Load .env file if it exists (errors are ignored)
	_ = godotenv.Load()

	kingpin.MustParse(app.Parse(os.Args[1:]))

	loggerConfig := logger.Config{Level: "info", File: *logfile}
	if *verbose {
		loggerConfig.Level = "debug"
	}
	if err := logger.Init(loggerConfig); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	zlog.Info().Msgf("Loading config from %s", *configPath)
	cfg, err := config.Load(*configPath)
	if err != nil {
		zlog.Fatal().Msgf("Failed to load config: %v", err)
	}

	if err := run(cfg); err != nil {
		zlog.Error().Msgf("Server error: %v", err)
		os.Exit(1)
	}
}

// run executes the main server logic. Using a separate function ensures
// defer statements are executed even when returning with an error.
func run(cfg *config.Config) error {
	ctx := context.Background()

	objectStore, err := buildStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to create object store: %w", err)
	}

	station, err := azuracast.New(azuracast.Config{
		BaseURL: cfg.Station.BaseURL,
		Station: cfg.Station.Name,
	})
	if err != nil {
		return fmt.Errorf("failed to create station client: %w", err)
	}

	chat, err := genai.New(cfg.Chat.Settings)
	if err != nil {
		return fmt.Errorf("failed to create chat client: %w", err)
	}
	if !chat.Enabled() {
		zlog.Warn().Msg("No chat API key configured, chat will serve the fallback reply")
	}

	catalogSvc := catalog.NewService(
		objectStore,
		station,
		cfg.Station.BaseURL,
		time.Duration(cfg.Catalog.CacheSec)*time.Second,
	)

	session := playback.NewSession(cfg.Station.BaseURL, cfg.Playback.FailedURLCacheSize)
	poller := nowplaying.NewPoller(
		station,
		session,
		catalogSvc,
		time.Duration(cfg.Station.PollIntervalSec)*time.Second,
	)
	defer poller.Stop()

	handler := api.NewHandler(cfg, objectStore, catalogSvc, session, poller, station, chat)

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	handler.Routes(r)

	// h2c lets HTTP/2 clients connect without TLS behind the edge proxy
	server := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: h2c.NewHandler(r, &http2.Server{}),
	}

	serverErrCh := make(chan error, 1)
	go func() {
		zlog.Info().Msgf("Starting server: addr=%s station=%s", cfg.Server.Addr, cfg.Station.Name)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigCh:
		zlog.Info().Msg("Received shutdown signal...")
	case err := <-serverErrCh:
		return fmt.Errorf("server error: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zlog.Error().Msgf("Failed to shutdown server: %v", err)
	}

	zlog.Info().Msg("Server stopped")
	return nil
}

// buildStore selects the object store backing the config blobs.
func buildStore(ctx context.Context, cfg *config.Config) (store.ObjectStore, error) {
	if *memoryStore {
		zlog.Warn().Msg("Using in-memory store, saved configuration will not survive restarts")
		return store.NewMemoryStore(), nil
	}

	return store.NewS3Store(ctx, store.S3Config{
		Bucket:   cfg.Storage.Bucket,
		Region:   cfg.Storage.Region,
		Endpoint: cfg.Storage.Endpoint,
	})
}
