package joke

import (
	"errors"
	"fmt"
)

// ErrMissingJokeID indicates an input line without a usable joke_id.
var ErrMissingJokeID = errors.New("joke_id is required")

// ParseError reports an input line that could not be turned into a Record.
// The line is skipped and counted; it never reaches the pipeline.
type ParseError struct {
	Cause error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse record: %v", e.Cause)
}

// Unwrap returns the underlying cause.
func (e *ParseError) Unwrap() error { return e.Cause }

// SinkError reports a sink-level write failure. Record-level failures are
// collected in WriteReport instead; a SinkError means the sink itself is
// unusable (unreachable database, unwritable output file).
type SinkError struct {
	Cause error
}

func (e *SinkError) Error() string {
	return fmt.Sprintf("sink: %v", e.Cause)
}

// Unwrap returns the underlying cause.
func (e *SinkError) Unwrap() error { return e.Cause }
