package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/bookkeeper/internal/handlers"
	"github.com/SscSPs/bookkeeper/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the bookkeeping HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a, err := opts.buildApp(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			level := a.cfg.LogLevel
			if opts.debug {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
			slog.SetDefault(logger)

			if a.cfg.IsProduction {
				gin.SetMode(gin.ReleaseMode)
			}

			r := gin.New()
			r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
			if err := r.SetTrustedProxies(nil); err != nil {
				return fmt.Errorf("failed to set trusted proxies: %w", err)
			}
			if err := handlers.RegisterRoutes(r, a.cfg, a.services); err != nil {
				return err
			}

			srv := &http.Server{
				Addr:              ":" + a.cfg.Port,
				Handler:           r,
				ReadHeaderTimeout: 10 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				logger.Info("Server starting", slog.String("port", a.cfg.Port), slog.String("storage", a.cfg.StorageBackend))
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("server failed to run: %w", err)
				}
				return nil
			case <-ctx.Done():
			}

			logger.Info("Shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("server shutdown failed: %w", err)
			}
			return nil
		},
	}
}
