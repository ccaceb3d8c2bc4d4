// Package api exposes the evaluator over HTTP with gin. It is the only package
// that depends on the web stack; the evaluator and the CLI do not import it.
package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"instructrisk/internal/auth"
	"instructrisk/internal/config"
	"instructrisk/internal/evaluate"
	"instructrisk/internal/metrics"
)

const serviceName = "instructrisk"

// Options configures NewRouter. Zero values are usable: the embedded evaluator
// is used, metrics are off, and /api is open. A BatchLimit of zero means
// config.DefaultBatchLimit.
type Options struct {
	Evaluator *evaluate.Evaluator
	// Metrics records evaluations and request latency. Nil disables recording.
	Metrics *metrics.Metrics
	// MetricsHandler serves GET /metrics when set.
	MetricsHandler http.Handler
	APIKey         string
	BatchLimit     int
	Version        string
	Logger         *slog.Logger
}

// NewRouter builds the gin engine with all routes registered.
func NewRouter(opts Options) *gin.Engine {
	if opts.Evaluator == nil {
		opts.Evaluator = evaluate.Default()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.BatchLimit <= 0 {
		opts.BatchLimit = config.DefaultBatchLimit
	}

	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), RequestLogger(opts.Logger, opts.Metrics))

	r.GET("/health", Health(opts.Version))
	if opts.MetricsHandler != nil {
		r.GET("/metrics", gin.WrapH(opts.MetricsHandler))
	}

	api := r.Group("/api")
	api.Use(auth.APIKey(opts.APIKey))
	{
		api.POST("/evaluate", EvaluateHandler(opts.Evaluator, opts.Metrics))
		api.POST("/evaluate/batch", BatchHandler(opts.Evaluator, opts.Metrics, opts.BatchLimit))
		api.GET("/risk-levels", LevelsHandler(opts.Evaluator))
		api.GET("/schema", SchemaHandler())
	}
	return r
}
