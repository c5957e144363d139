package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "github.com/thenextech/shoploc-back-end/internal/delivery/context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

// queryLogger routes gorm output through slog. Statements executed inside an
// HTTP request are logged with that request's logger, so they carry its id.
type queryLogger struct {
	base *slog.Logger
	mode gormlogger.LogLevel
	slow time.Duration
}

func newQueryLogger(base *slog.Logger, debug bool) gormlogger.Interface {
	mode := gormlogger.Warn
	if debug {
		mode = gormlogger.Info
	}

	return &queryLogger{base: base, mode: mode, slow: slowQueryThreshold}
}

func (l *queryLogger) LogMode(mode gormlogger.LogLevel) gormlogger.Interface {
	next := *l
	next.mode = mode

	return &next
}

func (l *queryLogger) Info(ctx context.Context, format string, args ...any) {
	l.printf(ctx, gormlogger.Info, slog.LevelInfo, format, args)
}

func (l *queryLogger) Warn(ctx context.Context, format string, args ...any) {
	l.printf(ctx, gormlogger.Warn, slog.LevelWarn, format, args)
}

func (l *queryLogger) Error(ctx context.Context, format string, args ...any) {
	l.printf(ctx, gormlogger.Error, slog.LevelError, format, args)
}

func (l *queryLogger) printf(ctx context.Context, need gormlogger.LogLevel, level slog.Level, format string, args []any) {
	if l.base == nil || l.mode < need {
		return
	}

	deliverycontext.LoggerFrom(ctx, l.base).Log(ctx, level, "gorm", slog.String("detail", fmt.Sprintf(format, args...)))
}

// Trace logs failed statements, slow statements, and in debug mode every statement.
func (l *queryLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.base == nil || l.mode == gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	level, msg, extra, ok := l.classify(elapsed, err)
	if !ok {
		return
	}

	stmt, rows := fc()
	attrs := append([]slog.Attr{
		slog.String("sql", stmt),
		slog.Int64("rows", rows),
		slog.Duration("elapsed", elapsed),
	}, extra...)
	deliverycontext.LoggerFrom(ctx, l.base).LogAttrs(ctx, level, msg, attrs...)
}

func (l *queryLogger) classify(elapsed time.Duration, err error) (slog.Level, string, []slog.Attr, bool) {
	switch {
	// A missing row is an ordinary NotFound answer, not a query failure.
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.mode >= gormlogger.Error:
		return slog.LevelError, "query failed", []slog.Attr{slog.String("error", err.Error())}, true
	case l.slow > 0 && elapsed > l.slow && l.mode >= gormlogger.Warn:
		return slog.LevelWarn, "slow query", []slog.Attr{slog.Duration("threshold", l.slow)}, true
	case l.mode >= gormlogger.Info:
		return slog.LevelDebug, "query", nil, true
	default:
		return 0, "", nil, false
	}
}
