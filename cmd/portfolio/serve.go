package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aishwary11/portfolio"
	"github.com/aishwary11/portfolio/api"
	"github.com/aishwary11/portfolio/config"
)

func init() { //nolint: gochecknoinits
	serveCmd.Flags().StringVarP(&configPath, "config", "c", "portfolio.toml", "Path to the configuration file")
	rootCmd.AddCommand(serveCmd)
}

var (
	configPath string

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Serve the portfolio over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}
)

func serve(ctx context.Context, cfg *config.Config) error {
	logger, err := newLogger(os.Stderr, cfg.Log)
	if err != nil {
		return err
	}
	if !config.Exists(configPath) {
		logger.Info("No config file found, using defaults and environment", "path", configPath)
	}
	logger.Info("Portfolio server starting up", "storage", cfg.Storage.Type, "cache", cfg.Cache.Type)

	store, err := newStore(cfg, logger)
	if err != nil {
		logger.Error("Failed to open store", "error", err)
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("Failed to close store", "error", err)
		}
	}()

	sealer, err := newSealer(cfg.Cookie)
	if err != nil {
		logger.Error("Invalid cookie key", "error", err)
		return err
	}
	if sealer == nil {
		logger.Warn("No cookie key configured, browser cookies are not sealed")
	}

	srv, err := api.NewServer(api.Config{
		ListenAddress: cfg.Server.ListenAddress,
		ReadTimeout:   cfg.Server.ReadTimeout,
		WriteTimeout:  cfg.Server.WriteTimeout,
		IdleTimeout:   cfg.Server.IdleTimeout,
		Store:         store,
		DefaultTheme:  portfolio.Theme(cfg.Theme.Default),
		Cookie: api.CookieConfig{
			Name:   cfg.Cookie.Name,
			Secure: cfg.Cookie.Secure,
			MaxAge: cfg.Cookie.MaxAge,
			Sealer: sealer,
		},
		Logger: logger,
	})
	if err != nil {
		logger.Error("Failed to create HTTP server", "error", err)
		return err
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("HTTP server error", "error", err)
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", "error", err)
		return err
	}
	logger.Info("Server exited gracefully")
	return nil
}
