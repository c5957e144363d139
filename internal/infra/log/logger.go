// Package logs builds the process-wide slog logger from the env section of the config.
package logs

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/thenextech/shoploc-back-end/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type Params struct {
	fx.In

	Config *config.Config
}

func New(params Params) (*slog.Logger, error) {
	return build(os.Stdout, params.Config)
}

// build writes JSON lines unless env.log.pretty asks for logfmt text.
func build(w io.Writer, cfg *config.Config) (*slog.Logger, error) {
	level, err := parseLogLevel(cfg.Env.Log.Level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level, AddSource: cfg.Env.Debug}
	newHandler := func(w io.Writer, o *slog.HandlerOptions) slog.Handler { return slog.NewJSONHandler(w, o) }
	if cfg.Env.Log.Pretty {
		newHandler = func(w io.Writer, o *slog.HandlerOptions) slog.Handler { return slog.NewTextHandler(w, o) }
	}

	attrs := []slog.Attr{}
	if cfg.Env.ServiceName != "" {
		attrs = append(attrs, slog.String("service", cfg.Env.ServiceName))
	}
	if cfg.Env.Env != "" {
		attrs = append(attrs, slog.String("env", cfg.Env.Env))
	}

	return slog.New(newHandler(w, opts).WithAttrs(attrs)), nil
}

// parseLogLevel accepts the slog level names in any case; empty means info.
func parseLogLevel(raw string) (slog.Level, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return slog.LevelInfo, nil
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo, errors.Errorf("unknown log level: %s", raw)
	}

	return level, nil
}
