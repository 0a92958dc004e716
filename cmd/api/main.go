// Package main starts an HTTP server that generates random adjacency matrices,
// serves the stored graph files and remembers each visitor's last graph. It
// uses the internal handlers package to process incoming requests and return
// JSON responses.
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/graphsupply/core/cmd/api/middleware"
	"github.com/graphsupply/core/internal/adjacency"
	"github.com/graphsupply/core/internal/config"
	"github.com/graphsupply/core/internal/handlers"
	"github.com/graphsupply/core/internal/session"
)

func main() {
	configPath := flag.String("config", os.Getenv("GRAPHSUPPLY_CONFIG"), "path to an optional config file")
	flag.Parse()

	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logger := cfg.Log.Logger(os.Stderr)
	log.Logger = logger

	store := session.NewStore(cfg.Session.TTL)
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	go store.Run(ctx, cfg.Session.CleanupInterval)

	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      newServer(cfg, adjacency.NewGenerator(), store, logger),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info().
			Str("address", server.Addr).
			Str("url", cfg.Public.URL()).
			Str("graphs_dir", cfg.Storage.GraphsDir).
			Msg("🚀 graphsupply listening")

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.Info().Msg("Server shutdown complete")
}

// newServer wires the router and the middleware stack. Recovery is
// outermost so it also covers the other middleware.
func newServer(cfg *config.Config, generator *adjacency.Generator, store *session.Store, logger zerolog.Logger) http.Handler {
	h := handlers.New(cfg, generator, logger)

	var handler http.Handler = h.Router(cfg.Public.Prefix)
	handler = session.Middleware(store, cfg.Session.CookieName)(handler)
	handler = middleware.Cors(cfg.CORS.AllowedOrigins)(handler)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.Recovery(logger)(handler)
	return handler
}
