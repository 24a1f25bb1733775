package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	apihttp "github.com/artem13815/askexpert/api/http"
	"github.com/artem13815/askexpert/api/http/handlers"
	"github.com/artem13815/askexpert/pkg/config"
	"github.com/artem13815/askexpert/pkg/consult"
	"github.com/artem13815/askexpert/pkg/health"
	"github.com/artem13815/askexpert/pkg/health/checkers"
	"github.com/artem13815/askexpert/pkg/llm/openai"
	"github.com/artem13815/askexpert/pkg/logging"
)

func newServeCmd() *cobra.Command {
	var port string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the web form and JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, port)
		},
	}
	cmd.Flags().StringVar(&port, "port", "", "listen port (overrides PORT)")
	return cmd
}

func runServe(cmd *cobra.Command, port string) error {
	// Load configuration from env/.env
	cfg := config.Load()
	if port != "" {
		cfg.Port = port
	}

	logger := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	if _, ok := cfg.Credential(); ok {
		logger.Info("credential loaded", "env", "OPENAI_API_KEY")
	} else {
		logger.Warn("OPENAI_API_KEY is not set; questions will fail until it is configured")
	}

	// Wire dependencies
	provider := openai.New(cfg.OpenAIBaseURL)
	svc := consult.NewService(cfg, provider, logger)
	readiness := health.NewService(checkers.NewCredentialChecker(cfg))

	app := apihttp.NewApp(logger)
	apihttp.Register(app,
		handlers.NewHealthHandler(readiness),
		handlers.NewAskHandler(svc),
		handlers.NewFormHandler(svc),
	)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", "addr", ":"+cfg.Port, "version", Version)
		errCh <- app.Listen(":" + cfg.Port)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server stopped", "error", err)
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logger.Error("shutdown", "error", err)
		return err
	}
	logger.Info("server stopped")
	return nil
}
