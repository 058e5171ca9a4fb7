package joke

import "context"

// Sink persists completed records. Implementations write each record
// independently: a failure on one record is recorded in the WriteReport and
// never rolls back or blocks records already written. The error return is
// reserved for sink-level failures that make the sink unusable as a whole.
type Sink interface {
	Name() string
	Write(ctx context.Context, records []Record) (WriteReport, error)
}

// WriteReport summarises the outcome of one Sink.Write call.
type WriteReport struct {
	written   int
	failedIDs []string
}

// NewWriteReport creates a WriteReport.
func NewWriteReport(written int, failedIDs []string) WriteReport {
	ids := make([]string, len(failedIDs))
	copy(ids, failedIDs)
	return WriteReport{written: written, failedIDs: ids}
}

// Written returns the number of records successfully written.
func (r WriteReport) Written() int { return r.written }

// FailedIDs returns the ids of records whose write failed.
func (r WriteReport) FailedIDs() []string {
	ids := make([]string, len(r.failedIDs))
	copy(ids, r.failedIDs)
	return ids
}
