package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"afyabuddy/internal/api"
	"afyabuddy/internal/clinics"
	"afyabuddy/internal/config"
	"afyabuddy/internal/firstaid"
	"afyabuddy/internal/history"
	"afyabuddy/internal/session"
	"afyabuddy/internal/translate"
	"afyabuddy/internal/triage"
	"afyabuddy/internal/wellness"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP and WebSocket API server",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	// Set up a context that will be canceled on SIGINT or SIGTERM
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	components, err := setupComponents(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to set up components: %w", err)
	}
	defer components.Close()

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      components.mux,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Server listening",
			zap.String("addr", server.Addr),
			zap.String("translation_mode", cfg.Translation.Mode),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down server")

		// Create a deadline for graceful shutdown
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("Server gracefully stopped")
	return nil
}

// Components holds all the application components
type Components struct {
	mux         *http.ServeMux
	coordinator *api.Coordinator
	logger      *zap.Logger
	closers     []func() error
}

// Close releases storage connections
func (c *Components) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil {
			c.logger.Warn("Failed to close component", zap.Error(err))
		}
	}
}

// setupComponents initializes all application components
func setupComponents(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Components, error) {
	components := &Components{mux: http.NewServeMux(), logger: logger}

	var sessions session.Store
	if cfg.Session.RedisURL != "" {
		rdb, err := session.Dial(ctx, cfg.Session.RedisURL)
		if err != nil {
			return nil, err
		}
		components.closers = append(components.closers, rdb.Close)
		sessions = session.NewRedisStore(rdb, cfg.Session.MaxMessages, cfg.Session.TTL)
		logger.Info("Using Redis session store")
	} else {
		sessions = session.NewMemoryStore(cfg.Session.MaxMessages, cfg.Session.TTL)
		logger.Info("Using in-memory session store")
	}

	var hist api.HistoryStore
	if cfg.History.DBPath != "" {
		store, err := history.Open(ctx, cfg.History.DBPath)
		if err != nil {
			components.Close()
			return nil, err
		}
		components.closers = append(components.closers, store.Close)
		hist = store
		logger.Info("Recording consultations", zap.String("db_path", store.Path()))
	}

	guides, err := firstaid.Default()
	if err != nil {
		components.Close()
		return nil, fmt.Errorf("failed to load first-aid guides: %w", err)
	}

	components.coordinator = api.NewCoordinator(
		triage.NewRuleBasedClassifier(triage.ClassifierConfig{}),
		translate.New(translate.ParseMode(cfg.Translation.Mode)),
		clinics.NewDirectory(nil),
		sessions,
		hist,
		logger,
		api.CoordinatorConfig{SimulatedLatency: cfg.Server.SimulatedLatency},
	)

	handler := api.NewHandler(components.coordinator, guides, wellness.NewAnalyzer(nil), logger, cfg.Server.MaxBodyBytes)
	handler.RegisterRoutes(components.mux)
	components.mux.Handle("/ws", api.NewWSHandler(components.coordinator, logger, cfg.Server.AllowedOrigins))

	return components, nil
}
