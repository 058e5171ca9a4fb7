package persistence

import (
	"context"
	"database/sql/driver"
	"errors"
	"log/slog"
	"net"
	"strings"
	"time"

	"github.com/punchlabs/punchup/domain/joke"
)

const (
	// DefaultWriteTimeout bounds a single record's write, retry included.
	DefaultWriteTimeout = 5 * time.Second

	retryBackoff = 100 * time.Millisecond
)

// DatabaseSink writes enriched records to a database table, upserting by
// joke id. Each record's write is independently atomic: a failure on one
// record is reported and does not block the rest of the batch.
type DatabaseSink struct {
	store   JokeStore
	table   string
	timeout time.Duration
	logger  *slog.Logger
}

// NewDatabaseSink creates a DatabaseSink on top of a joke store.
func NewDatabaseSink(store JokeStore, table string, timeout time.Duration, logger *slog.Logger) *DatabaseSink {
	if table == "" {
		table = DefaultTableName
	}
	if timeout <= 0 {
		timeout = DefaultWriteTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &DatabaseSink{store: store, table: table, timeout: timeout, logger: logger}
}

// Name identifies the sink in summaries and logs.
func (s *DatabaseSink) Name() string { return "database:" + s.table }

// Write upserts each record under a bounded per-record timeout. Transient
// connection failures get one retry after a short backoff; any other failure
// puts the record's id in the report and the batch moves on.
func (s *DatabaseSink) Write(ctx context.Context, records []joke.Record) (joke.WriteReport, error) {
	written := 0
	var failedIDs []string

	for _, record := range records {
		if err := ctx.Err(); err != nil {
			return joke.NewWriteReport(written, failedIDs), err
		}

		if err := s.writeOne(ctx, record); err != nil {
			failedIDs = append(failedIDs, record.ID())
			s.logger.Warn("record write failed", "joke_id", record.ID(), "table", s.table, "error", err)
			continue
		}
		written++
	}

	return joke.NewWriteReport(written, failedIDs), nil
}

func (s *DatabaseSink) writeOne(ctx context.Context, record joke.Record) error {
	writeCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	_, err := s.store.Save(writeCtx, record)
	if err == nil || !isTransient(err) {
		return err
	}

	select {
	case <-writeCtx.Done():
		return err
	case <-time.After(retryBackoff):
	}

	_, retryErr := s.store.Save(writeCtx, record)
	return retryErr
}

// isTransient reports whether a write failure is a connection-level problem
// worth one retry. Constraint and validation failures are not retried.
func isTransient(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	if errors.Is(err, driver.ErrBadConn) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "connection reset") || strings.Contains(msg, "broken pipe")
}
