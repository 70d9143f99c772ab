package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/msttrace/internal/httpd"
	"github.com/katalvlaran/msttrace/internal/logging"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the stateless trace HTTP server",
	Long: `Starts an HTTP server exposing the trace contract: POST a textual graph
description to /v1/trace and receive the JSON step trace. Each request runs
an independent computation; the server holds no graph state.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		level, _ := cmd.Flags().GetString("log-level")
		addr, _ := cmd.Flags().GetString("addr")
		configPath, _ := cmd.Flags().GetString("config")

		logger := logging.New(logging.ParseLevel(level))

		cfg, err := httpd.LoadConfig(configPath)
		if err != nil {
			return err
		}
		if addr != "" {
			cfg.Addr = addr
		}

		handler := httpd.NewHandler(cfg, logger, httpd.NewMetrics())
		srv := &http.Server{
			Addr:         cfg.Addr,
			Handler:      handler,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)
		go func() {
			logger.Info("listening", "addr", cfg.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err = <-serverErrors:
			return fmt.Errorf("server error: %w", err)

		case sig := <-shutdown:
			logger.Info("shutting down", "signal", sig.String())

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
			defer cancel()

			if err = srv.Shutdown(ctx); err != nil {
				logger.Warn("graceful shutdown incomplete", "error", err)
				if err = srv.Close(); err != nil {
					return fmt.Errorf("close server: %w", err)
				}
			}
			logger.Info("stopped")
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("addr", "a", "", "Listen address (overrides config)")
	serveCmd.Flags().StringP("config", "c", "", "Path to YAML config file")
}
