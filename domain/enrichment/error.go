package enrichment

import "fmt"

// Error reports the failure of one enricher on one record. A failure is
// isolated to the (record, enricher) pair: the pipeline counts it and carries
// on with the record's remaining enrichers.
type Error struct {
	EnricherName string
	RecordID     string
	Cause        error
}

func (e *Error) Error() string {
	return fmt.Sprintf("enrich record %s with %s: %v", e.RecordID, e.EnricherName, e.Cause)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error { return e.Cause }
