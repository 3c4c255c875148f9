package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"recall/internal/app"
	"recall/internal/config"
	"recall/internal/logging"
	httpTransport "recall/internal/transport/http"
	"recall/internal/web"
)

const shutdownTimeout = 30 * time.Second

func newServeCmd() *cobra.Command {
	var host, port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the web screen",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if host != "" {
				cfg.Server.Host = host
			}
			if port != "" {
				cfg.Server.Port = port
			}
			return runServer(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "listen host (overrides HOST)")
	cmd.Flags().StringVar(&port, "port", "", "listen port (overrides PORT)")

	return cmd
}

func runServer(ctx context.Context, cfg *config.Config) error {
	logger := logging.Setup(cfg.Logging)

	logger.Info("starting recall server",
		"env", cfg.Server.Env,
		"port", cfg.Server.Port,
	)

	hub := app.NewDrillHub(logger, app.HubOptions{
		IdleTimeout:     cfg.Drill.IdleTimeout,
		CleanupInterval: cfg.Drill.CleanupInterval,
		MaxTextBytes:    cfg.Drill.MaxTextBytes,
	})
	defer hub.Close()

	server := httpTransport.NewServer(cfg, hub, logger, web.FS)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		return err
	}

	logger.Info("server stopped")
	return nil
}
