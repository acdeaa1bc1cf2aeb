package cli

import (
	"io"
	"log/slog"

	"github.com/cmlabs-hris/biztime-backend-go/internal/config"
	"github.com/go-chi/httplog/v3"
)

// newLogger builds the JSON logger shared by the request log and the error
// log. Under the test environment everything is discarded.
func newLogger(w io.Writer, cfg *config.Config) (*slog.Logger, slog.Level, error) {
	level, err := cfg.LogLevel()
	if err != nil {
		return nil, 0, err
	}
	if cfg.IsTest() {
		return slog.New(slog.DiscardHandler), level, nil
	}

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "biztime"),
		slog.String("version", version),
		slog.String("env", cfg.App.Env),
	)
	return logger, level, nil
}
