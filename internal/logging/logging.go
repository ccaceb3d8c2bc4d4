// Package logging configures the process-wide slog logger shared by the
// server and the riskcheck CLI. Format and level come from RISK_LOG_FORMAT and
// RISK_LOG_LEVEL via the config package.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Formats accepted by Init, matching config.LogFormat.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Init installs a slog default writing to w (stderr when omitted or nil).
// An unrecognised format falls back to text and is reported once at warn level.
func Init(level slog.Level, format string, w ...io.Writer) {
	out := io.Writer(os.Stderr)
	if len(w) > 0 && w[0] != nil {
		out = w[0]
	}

	handler, known := newHandler(format, out, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
	if !known {
		slog.Warn("unknown log format, using text", "format", format)
	}
}

func newHandler(format string, out io.Writer, opts *slog.HandlerOptions) (slog.Handler, bool) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatJSON:
		return slog.NewJSONHandler(out, opts), true
	case FormatText, "":
		return slog.NewTextHandler(out, opts), true
	default:
		return slog.NewTextHandler(out, opts), false
	}
}

// New returns the default logger tagged with component, e.g. "http" or "cli".
func New(component string) *slog.Logger {
	return slog.Default().With(slog.String("component", component))
}

// ParseLevel maps debug, info, warn and error to slog levels. Anything else is info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
