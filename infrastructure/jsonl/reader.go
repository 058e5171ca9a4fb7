// Package jsonl reads and writes joke records as line-delimited JSON.
package jsonl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/punchlabs/punchup/domain/joke"
)

// maxLineBytes bounds a single input line. Records are short; this leaves
// generous headroom for jokes with large pre-existing enrichment envelopes.
// Longer lines are skipped and counted as parse failures.
const maxLineBytes = 1024 * 1024

// Reader ingests joke records from a JSONL stream. Blank lines are skipped;
// malformed lines are logged and counted but never abort the batch.
type Reader struct {
	logger *slog.Logger
}

// NewReader creates a Reader logging through the given logger.
func NewReader(logger *slog.Logger) *Reader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reader{logger: logger}
}

// ReadFile opens and reads a JSONL file.
// Returns the parsed records and the number of lines that failed to parse.
func (r *Reader) ReadFile(path string) ([]joke.Record, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("open input file: %w", err)
	}
	defer f.Close()

	return r.Read(f)
}

// Read consumes the stream line by line until EOF. A line longer than
// maxLineBytes is counted as a single parse failure and the rest of the
// stream is still read.
func (r *Reader) Read(input io.Reader) ([]joke.Record, int, error) {
	buffered := bufio.NewReaderSize(input, maxLineBytes)

	var records []joke.Record
	parseFailures := 0
	lineNumber := 0

	for {
		line, isPrefix, err := buffered.ReadLine()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return records, parseFailures, fmt.Errorf("read input: %w", err)
		}
		lineNumber++

		if isPrefix {
			if err := drainLine(buffered); err != nil && !errors.Is(err, io.EOF) {
				return records, parseFailures, fmt.Errorf("read input: %w", err)
			}
			parseFailures++
			r.logger.Warn("skipping oversized line", "line", lineNumber, "limit_bytes", maxLineBytes)
			continue
		}

		if isBlank(line) {
			continue
		}

		record, err := joke.ParseLine(line)
		if err != nil {
			parseFailures++
			r.logger.Warn("skipping malformed record", "line", lineNumber, "error", err)
			continue
		}
		records = append(records, record)
	}

	return records, parseFailures, nil
}

// drainLine discards the remainder of a line that overflowed the read buffer.
func drainLine(buffered *bufio.Reader) error {
	for {
		_, isPrefix, err := buffered.ReadLine()
		if err != nil || !isPrefix {
			return err
		}
	}
}

func isBlank(line []byte) bool {
	for _, b := range line {
		if b != ' ' && b != '\t' && b != '\r' {
			return false
		}
	}
	return true
}
