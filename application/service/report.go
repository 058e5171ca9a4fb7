package service

import (
	"time"

	"github.com/google/uuid"
)

// RunReport accumulates the outcome of one pipeline run: how many records
// went in, how many came out fully enriched, and per-enricher failure counts
// and processing time. The run id correlates log lines and the summary for a
// single invocation.
type RunReport struct {
	runID         string
	totalRecords  int
	succeeded     int
	parseFailures int
	failures      map[string]int
	elapsed       map[string]time.Duration
}

// NewRunReport creates an empty report with a fresh run id.
func NewRunReport() RunReport {
	return RunReport{
		runID:    uuid.NewString(),
		failures: map[string]int{},
		elapsed:  map[string]time.Duration{},
	}
}

// RunID returns the unique id of this run.
func (r RunReport) RunID() string { return r.runID }

// TotalRecords returns the number of records the pipeline received.
func (r RunReport) TotalRecords() int { return r.totalRecords }

// Succeeded returns the number of records for which every selected enricher
// returned a result.
func (r RunReport) Succeeded() int { return r.succeeded }

// ParseFailures returns the number of input lines dropped during ingestion.
func (r RunReport) ParseFailures() int { return r.parseFailures }

// Failures returns per-enricher failure counts. Only enrichers that failed
// at least once appear.
func (r RunReport) Failures() map[string]int {
	out := make(map[string]int, len(r.failures))
	for name, count := range r.failures {
		out[name] = count
	}
	return out
}

// Elapsed returns per-enricher processing time, summed across records (CPU
// time spent enriching, not wall time of the run).
func (r RunReport) Elapsed() map[string]time.Duration {
	out := make(map[string]time.Duration, len(r.elapsed))
	for name, d := range r.elapsed {
		out[name] = d
	}
	return out
}

// WithParseFailures returns a copy of the report with the ingestion drop
// count set.
func (r RunReport) WithParseFailures(count int) RunReport {
	merged := r.clone()
	merged.parseFailures = count
	return merged
}

// merge folds a partial report from one worker into this one. The receiver's
// run id wins.
func (r RunReport) merge(other RunReport) RunReport {
	merged := r.clone()
	merged.totalRecords += other.totalRecords
	merged.succeeded += other.succeeded
	merged.parseFailures += other.parseFailures
	for name, count := range other.failures {
		merged.failures[name] += count
	}
	for name, d := range other.elapsed {
		merged.elapsed[name] += d
	}
	return merged
}

func (r RunReport) clone() RunReport {
	out := RunReport{
		runID:         r.runID,
		totalRecords:  r.totalRecords,
		succeeded:     r.succeeded,
		parseFailures: r.parseFailures,
		failures:      make(map[string]int, len(r.failures)),
		elapsed:       make(map[string]time.Duration, len(r.elapsed)),
	}
	for name, count := range r.failures {
		out.failures[name] = count
	}
	for name, d := range r.elapsed {
		out.elapsed[name] = d
	}
	return out
}
