package main

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/sitewise/camcheck"
	"github.com/sitewise/camcheck/infrastructure/api"
	"github.com/sitewise/camcheck/internal/log"
)

func serveCmd() *cobra.Command {
	var (
		envFile string
		host    string
		port    int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Long: `Start the HTTP API server.

Configuration is loaded in the following order (later sources override
earlier):
  1. Default values
  2. .env file (if --env-file specified or .env exists in current directory)
  3. Environment variables
  4. Command line flags

Environment variables:
  CAMCHECK_HOST            Server host to bind to (default: 0.0.0.0)
  CAMCHECK_PORT            Server port to listen on (default: 8080)
  CAMCHECK_DATA_DIR        Data directory (default: .camcheck)
  CAMCHECK_DB_URL          Database URL (default: sqlite:///{data_dir}/camcheck.db)
  CAMCHECK_LOG_LEVEL       Log level: DEBUG, INFO, WARN, ERROR (default: INFO)
  CAMCHECK_LOG_FORMAT      Log format: pretty, json (default: pretty)
  CAMCHECK_API_KEYS        Comma-separated keys for write-protected endpoints
  CAMCHECK_HISTORY_LIMIT   Default page size for check history (default: 50)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(envFile, host, port)
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", "", "Path to .env file (default: .env in current directory)")
	cmd.Flags().StringVar(&host, "host", "", "Server host to bind to (default: 0.0.0.0)")
	cmd.Flags().IntVar(&port, "port", 0, "Server port to listen on (default: 8080)")

	return cmd
}

func runServe(envFile, host string, port int) error {
	cfg, err := loadConfig(envFile)
	if err != nil {
		return err
	}
	cfg = cfg.WithHost(host).WithPort(port)

	if err := cfg.EnsureDataDir(); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	logger := log.New(cfg.LogFormat(), cfg.LogLevel())
	slog.SetDefault(logger)

	client, err := camcheck.New(
		camcheck.WithDatabaseURL(cfg.DBURL()),
		camcheck.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("create camcheck client: %w", err)
	}
	defer func() {
		if err := client.Close(); err != nil {
			logger.Error("failed to close client", "error", err)
		}
	}()

	server := api.NewAPIServer(client.Checks, cfg.APIKeys(), cfg.HistoryLimit(), version, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.ListenAndServe(cfg.Addr())
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
