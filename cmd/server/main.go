package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"instructrisk/internal/api"
	"instructrisk/internal/config"
	"instructrisk/internal/evaluate"
	"instructrisk/internal/logging"
	"instructrisk/internal/metrics"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	envErr := config.Load()
	logging.Init(logging.ParseLevel(config.LogLevel()), config.LogFormat())
	log := logging.New("server")
	if envErr != nil {
		log.Info("no .env loaded", "error", envErr)
	}
	if config.APIKey() == "" {
		log.Warn("RISK_API_KEY not set; /api routes are open")
	}
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	opts := api.Options{
		Evaluator:  evaluate.Default(),
		APIKey:     config.APIKey(),
		BatchLimit: config.BatchLimit(),
		Version:    version,
		Logger:     logging.New("http"),
	}
	if config.MetricsEnabled() {
		opts.Metrics = metrics.New(prometheus.DefaultRegisterer)
		opts.MetricsHandler = promhttp.Handler()
	}

	srv := &http.Server{
		Addr:              config.Addr(),
		Handler:           api.NewRouter(opts),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("listening", "addr", srv.Addr, "version", version,
			"detectors", len(opts.Evaluator.Detectors()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown", slog.Any("error", err))
	}
}
