package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"NutriAssist/internal/chat"
	"NutriAssist/internal/completion"
	"NutriAssist/internal/config"
	"NutriAssist/internal/server"
	"NutriAssist/internal/session"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

func gracefulShutdown(ctx context.Context, apiServer *http.Server) error {
	// Listen for the interrupt signal.
	<-ctx.Done()

	log.Info().Msg("shutting down gracefully, press Ctrl+C again to force")

	// The server has 5 seconds to finish the request it is currently handling
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := apiServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
		return err
	}

	log.Info().Msg("Server exiting")
	return nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("could not load configuration")
	}

	client, err := completion.New(cfg.CompletionConfig())
	if err != nil {
		log.Fatal().Err(err).Msg("could not initialize completion client")
	}

	manager := session.NewManager(session.Options{
		MaxSessions:    cfg.MaxSessions,
		TTL:            cfg.SessionTTL,
		MessagesPerMin: cfg.MessagesPerMin,
	}, func() *chat.Controller {
		return chat.NewController(client,
			chat.WithParams(cfg.CompletionParams()),
			chat.WithRetryPolicy(cfg.RetryPolicy()),
		)
	})
	defer manager.Close()

	apiServer := server.NewServer(cfg, manager)

	// Create context that listens for the interrupt signal from the OS.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().
			Str("addr", apiServer.Addr).
			Str("provider", cfg.CompletionProvider).
			Str("model", cfg.Model).
			Msg("NutriAssist listening")
		if err := apiServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		err := gracefulShutdown(gctx, apiServer)
		stop() // Allow Ctrl+C to force shutdown
		return err
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("http server error")
		return
	}
	log.Info().Msg("Graceful shutdown complete.")
}
