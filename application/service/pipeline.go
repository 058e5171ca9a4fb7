// Package service orchestrates the enrichment run: the pipeline that applies
// enrichers to records, the run report, and the summary rendering.
package service

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/punchlabs/punchup/domain/enrichment"
	"github.com/punchlabs/punchup/domain/joke"
	domainservice "github.com/punchlabs/punchup/domain/service"
)

// Pipeline applies a fixed selection of enrichers to a batch of records.
// An enricher failing on one record is isolated to that (record, enricher)
// pair: the record still flows through with whatever enrichments succeeded,
// and every input record appears in the output.
type Pipeline struct {
	enrichers []domainservice.Enricher
	logger    *slog.Logger
	workers   int
}

// PipelineOption configures a Pipeline.
type PipelineOption func(*Pipeline)

// WithLogger sets the pipeline logger.
func WithLogger(logger *slog.Logger) PipelineOption {
	return func(p *Pipeline) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithWorkers sets how many records are enriched concurrently. Values below
// one keep the sequential baseline.
func WithWorkers(n int) PipelineOption {
	return func(p *Pipeline) {
		if n > 1 {
			p.workers = n
		}
	}
}

// NewPipeline creates a Pipeline applying the given enrichers in order.
func NewPipeline(enrichers []domainservice.Enricher, opts ...PipelineOption) *Pipeline {
	p := &Pipeline{
		enrichers: enrichers,
		logger:    slog.Default(),
		workers:   1,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run enriches every record and reports what happened. Enrichment failures
// never surface as the run error; the error return is non-nil only when ctx
// terminates the run early, in which case the records processed so far and
// the partial report are still returned so the caller can flush them.
func (p *Pipeline) Run(ctx context.Context, records []joke.Record) ([]joke.Record, RunReport, error) {
	if p.workers > 1 {
		return p.runParallel(ctx, records)
	}
	return p.runSequential(ctx, records)
}

func (p *Pipeline) runSequential(ctx context.Context, records []joke.Record) ([]joke.Record, RunReport, error) {
	report := NewRunReport()
	out := make([]joke.Record, 0, len(records))

	for _, record := range records {
		if err := ctx.Err(); err != nil {
			return out, report, err
		}
		enriched, partial := p.enrichOne(record)
		out = append(out, enriched)
		report = report.merge(partial)
	}
	return out, report, nil
}

// runParallel fans records out over an errgroup. Results are written to an
// index-addressed slice, so the output preserves input order.
func (p *Pipeline) runParallel(ctx context.Context, records []joke.Record) ([]joke.Record, RunReport, error) {
	enriched := make([]joke.Record, len(records))
	partials := make([]RunReport, len(records))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)
	for i, record := range records {
		i, record := i, record
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			enriched[i], partials[i] = p.enrichOne(record)
			return nil
		})
	}
	runErr := g.Wait()

	report := NewRunReport()
	out := make([]joke.Record, 0, len(records))
	for i := range records {
		if partials[i].totalRecords == 0 {
			continue
		}
		out = append(out, enriched[i])
		report = report.merge(partials[i])
	}
	return out, report, runErr
}

// enrichOne runs every enricher against one record and returns the enriched
// record with a single-record partial report. Elapsed time is attributed per
// enricher and summed across records by the caller.
func (p *Pipeline) enrichOne(record joke.Record) (joke.Record, RunReport) {
	partial := RunReport{
		totalRecords: 1,
		failures:     map[string]int{},
		elapsed:      map[string]time.Duration{},
	}

	allSucceeded := true
	for _, e := range p.enrichers {
		start := time.Now()
		result, err := e.Enrich(record)
		partial.elapsed[e.Name()] += time.Since(start)

		if err != nil {
			allSucceeded = false
			partial.failures[e.Name()]++
			enrichErr := &enrichment.Error{EnricherName: e.Name(), RecordID: record.ID(), Cause: err}
			p.logger.Warn("enrichment failed",
				"joke_id", record.ID(),
				"enricher", e.Name(),
				"error", enrichErr)
			continue
		}
		record = record.WithEnrichment(e.Name(), result)
	}

	if allSucceeded {
		partial.succeeded = 1
	}
	return record, partial
}
