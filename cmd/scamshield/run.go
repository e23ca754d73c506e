package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/scamshield/scamshield/internal/config"
	"github.com/scamshield/scamshield/internal/extract"
	"github.com/scamshield/scamshield/internal/logger"
	"github.com/scamshield/scamshield/internal/logging"
	"github.com/scamshield/scamshield/internal/observability"
	"github.com/scamshield/scamshield/internal/rules"
	"github.com/scamshield/scamshield/internal/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRunCmd() *cobra.Command {
	var configPath string
	var listenOverride string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the ScamShield analysis server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if configPath != "" {
				loaded, err := config.Load(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			if listenOverride != "" {
				cfg.Server.Listen = listenOverride
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return runServer(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (defaults apply when omitted)")
	cmd.Flags().StringVar(&listenOverride, "listen", "", "Override the listen address")

	return cmd
}

func runServer(ctx context.Context, cfg *config.Config) error {
	log, err := logger.New(cfg.Logging.Format, cfg.Logging.Level)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	engine, err := rules.BuildEngine(cfg, log)
	if err != nil {
		return err
	}

	srv := server.New(cfg, engine, extract.NewRegistry(log), log)

	if cfg.Logging.AnalysisLog != "" {
		analysisLog, closer, err := logging.OpenAnalysisLog(cfg.ResolvePath(cfg.Logging.AnalysisLog))
		if err != nil {
			return err
		}
		defer func() { _ = closer() }()
		srv.SetAnalysisLogger(analysisLog)
	}

	metricsSrv, err := startMetricsServer(cfg, srv)
	if err != nil {
		return err
	}
	defer func() {
		if metricsSrv != nil {
			_ = metricsSrv.Shutdown(context.Background())
		}
	}()

	httpSrv := &http.Server{
		Addr:              cfg.Server.Listen,
		Handler:           srv,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- httpSrv.ListenAndServe()
	}()

	log.Info("server listening",
		zap.String("addr", cfg.Server.Listen),
		zap.Int("rules", len(engine.Rules())))

	signalCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case <-signalCtx.Done():
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return httpSrv.Shutdown(shutdownCtx)
}

func startMetricsServer(cfg *config.Config, srv *server.Server) (*http.Server, error) {
	if !cfg.Metrics.Enabled {
		return nil, nil
	}

	reg := prometheus.NewRegistry()
	metrics := observability.NewMetrics(reg)
	srv.SetMetrics(metrics)

	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler(reg))

	metricsSrv := &http.Server{Addr: cfg.Metrics.Listen, Handler: mux}
	go func() {
		_ = metricsSrv.ListenAndServe()
	}()
	return metricsSrv, nil
}
