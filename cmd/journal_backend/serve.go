package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"journal_backend/internal/ai"
	"journal_backend/internal/config"
	"journal_backend/internal/handlers"
	"journal_backend/internal/logger"
	"journal_backend/internal/sentiment"
	"journal_backend/internal/storage"
	"journal_backend/internal/usecases"
)

const (
	serviceName     = "journal-backend"
	shutdownTimeout = 10 * time.Second
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
}

func runServe() error {
	cfg, err := config.New()
	if err != nil {
		return err
	}

	log := logger.New(serviceName, cfg.LogLevel, cfg.LogFormat)

	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("invalid configuration")
		return err
	}

	log.Info().
		Str("store_backend", cfg.StoreBackend).
		Str("table", cfg.JournalTable).
		Str("openai_model", cfg.OpenAIModel).
		Int("http_port", cfg.HTTPPort).
		Strs("cors_origins", cfg.CORSAllowedOrigins).
		Msg("journal backend starting")

	// ctx only bounds startup and triggers shutdown. Request contexts do not
	// derive from it, so in-flight calls finish during Shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := storage.New(ctx, cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("entry store unavailable")
		return err
	}
	defer closeStore()

	if err := storage.WaitUntilReady(ctx, store, cfg.StoreReadyTimeout, log); err != nil {
		log.Warn().Err(err).Msg("entry store unreachable, serving anyway")
	}

	aiClient := ai.NewOpenAIClient(cfg.OpenAIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL)
	counselor := usecases.NewCounselor(store, aiClient)

	router := handlers.NewRouter(handlers.Services{
		Journal:   usecases.NewJournal(store, sentiment.NewScorer()),
		Insights:  usecases.NewInsightsBuilder(store),
		Prompts:   usecases.NewPromptGenerator(aiClient),
		Counselor: counselor,
	}, cfg.CORSAllowedOrigins, log)

	server := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           router,
		ReadTimeout:       cfg.HTTPReadTimeout,
		ReadHeaderTimeout: cfg.HTTPReadTimeout,
		WriteTimeout:      cfg.HTTPWriteTimeout,
		IdleTimeout:       cfg.HTTPIdleTimeout,
	}

	errCh := serveHTTP(server, log)

	select {
	case <-ctx.Done():
		log.Info().Msg("shutting down server")
		ctxShutdown, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(ctxShutdown); err != nil {
			log.Error().Err(err).Msg("server forced to shutdown")
			return err
		}
		log.Info().Msg("server exited")
		return nil
	case err := <-errCh:
		log.Error().Err(err).Msg("HTTP server failed")
		return err
	}
}

func serveHTTP(server *http.Server, log zerolog.Logger) <-chan error {
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", server.Addr).Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	return errCh
}
