package jsonl

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/punchlabs/punchup/domain/joke"
)

// FileSink writes enriched records to a JSONL file, one record per line.
// The output path is created or truncated on each write.
type FileSink struct {
	path   string
	logger *slog.Logger
}

// NewFileSink creates a FileSink targeting path.
func NewFileSink(path string, logger *slog.Logger) *FileSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileSink{path: path, logger: logger}
}

// Name identifies the sink in summaries and logs.
func (s *FileSink) Name() string { return "file:" + s.path }

// Write marshals each record onto its own line. A record that fails to
// marshal lands in the report's failed IDs and the rest still go out; a file
// that cannot be created or flushed is a SinkError.
func (s *FileSink) Write(ctx context.Context, records []joke.Record) (joke.WriteReport, error) {
	f, err := os.Create(s.path)
	if err != nil {
		return joke.WriteReport{}, &joke.SinkError{Cause: fmt.Errorf("create output file %s: %w", s.path, err)}
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	written := 0
	var failedIDs []string

	for _, record := range records {
		if err := ctx.Err(); err != nil {
			return joke.NewWriteReport(written, failedIDs), err
		}

		data, err := joke.MarshalRecord(record)
		if err != nil {
			failedIDs = append(failedIDs, record.ID())
			s.logger.Warn("skipping unmarshalable record", "joke_id", record.ID(), "error", err)
			continue
		}

		if _, err := w.Write(data); err != nil {
			return joke.NewWriteReport(written, failedIDs), &joke.SinkError{Cause: fmt.Errorf("write output file %s: %w", s.path, err)}
		}
		if err := w.WriteByte('\n'); err != nil {
			return joke.NewWriteReport(written, failedIDs), &joke.SinkError{Cause: fmt.Errorf("write output file %s: %w", s.path, err)}
		}
		written++
	}

	if err := w.Flush(); err != nil {
		return joke.NewWriteReport(written, failedIDs), &joke.SinkError{Cause: fmt.Errorf("flush output file %s: %w", s.path, err)}
	}
	if err := f.Close(); err != nil {
		return joke.NewWriteReport(written, failedIDs), &joke.SinkError{Cause: fmt.Errorf("close output file %s: %w", s.path, err)}
	}

	return joke.NewWriteReport(written, failedIDs), nil
}
