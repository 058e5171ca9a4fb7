package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// sqlLogLimit caps the SQL text carried on one log line.
const sqlLogLimit = 200

// queryLogger routes GORM's logging onto slog so the statements issued by
// the joke store and sink show up in the application's log stream. Completed
// statements land at Debug; statement failures at Error. Level filtering is
// slog's job, so LogMode is a no-op.
type queryLogger struct{}

func (l queryLogger) LogMode(logger.LogLevel) logger.Interface { return l }

func (l queryLogger) Info(_ context.Context, msg string, args ...any) {
	slog.Info(fmt.Sprintf(msg, args...))
}

func (l queryLogger) Warn(_ context.Context, msg string, args ...any) {
	slog.Warn(fmt.Sprintf(msg, args...))
}

func (l queryLogger) Error(_ context.Context, msg string, args ...any) {
	slog.Error(fmt.Sprintf(msg, args...))
}

// Trace logs each completed statement. ErrRecordNotFound is the ordinary
// empty result of a lookup and stays with the Debug branch, which also skips
// the SQL formatting callback entirely when Debug is filtered out.
func (l queryLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		sql, rows := fc()
		slog.Error("sql statement failed",
			"sql", clipSQL(sql),
			"rows", rows,
			"elapsed", elapsed,
			"error", err,
		)
		return
	}

	if !slog.Default().Enabled(ctx, slog.LevelDebug) {
		return
	}

	sql, rows := fc()
	slog.Debug("sql statement",
		"sql", clipSQL(sql),
		"rows", rows,
		"elapsed", elapsed,
	)
}

// clipSQL replaces the middle of an overlong SQL string with an ellipsis.
func clipSQL(sql string) string {
	if len(sql) <= sqlLogLimit {
		return sql
	}
	half := (sqlLogLimit - 3) / 2
	return sql[:half] + "..." + sql[len(sql)-half:]
}
