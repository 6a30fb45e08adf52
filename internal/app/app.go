package app

import (
	"context"
	"fmt"
	stdhttp "net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/vovakirdan/borderchat-server/internal/config"
	"github.com/vovakirdan/borderchat-server/internal/core"
	"github.com/vovakirdan/borderchat-server/internal/naming"
	"github.com/vovakirdan/borderchat-server/internal/store"
	"github.com/vovakirdan/borderchat-server/internal/store/sqlite"
	transporthttp "github.com/vovakirdan/borderchat-server/internal/transport/http"
)

// App wires together core and transport layers.
type App struct {
	server          *stdhttp.Server
	shutdownTimeout time.Duration
	store           store.ModerationStore
	log             *zerolog.Logger
}

// New constructs the application with provided configuration.
func New(cfg *config.Config, logger *zerolog.Logger) (*App, error) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", cfg.Timezone, err)
	}

	st, err := sqlite.New(cfg.ModerationDB)
	if err != nil {
		return nil, fmt.Errorf("init moderation store: %w", err)
	}

	banned, err := st.ListBannedDevices(context.Background())
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("load banned devices: %w", err)
	}
	logger.Info().
		Str("db_path", cfg.ModerationDB).
		Int("banned_devices", len(banned)).
		Msg("moderation store loaded")

	namer := naming.New(cfg.NamingURL, cfg.NamingTimeout)
	registry := core.NewRegistry(namer, logger)
	rooms := core.NewRoomStore(cfg.HistoryLimit)
	gate := core.NewGate(banned)
	hub := core.NewHub(logger)
	svc := core.NewService(rooms, registry, gate, hub, cfg.MaxMessageChars, loc, logger)

	server := transporthttp.NewServer(svc, hub, cfg, logger)

	return &App{
		server:          server,
		shutdownTimeout: cfg.ShutdownTimeout,
		store:           st,
		log:             logger,
	}, nil
}

// Run starts the HTTP server and blocks until context cancellation or fatal error.
func (a *App) Run(ctx context.Context) error {
	serverErr := make(chan error, 1)

	go func() {
		if err := a.server.ListenAndServe(); err != nil && err != stdhttp.ErrServerClosed {
			serverErr <- err
			return
		}
		serverErr <- nil
	}()

	select {
	case err := <-serverErr:
		a.cleanup()
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
		defer cancel()

		a.log.Info().Msg("shutting down http server")
		if err := a.server.Shutdown(shutdownCtx); err != nil {
			a.cleanup()
			return err
		}

		a.cleanup()
		return <-serverErr
	}
}

// cleanup closes the moderation store and other resources.
func (a *App) cleanup() {
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			a.log.Warn().Err(err).Msg("failed to close moderation store")
		} else {
			a.log.Info().Msg("moderation store closed")
		}
	}
}
