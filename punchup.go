// Package punchup enriches line-delimited joke records with derived
// metadata: sentiment, programming keywords, readability, and length.
//
// Basic usage:
//
//	client, err := punchup.New(ctx,
//	    punchup.WithEnrichments(enricher.KindSentiment, enricher.KindLength),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	outcome, err := client.Run(ctx, "jokes.jsonl")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(outcome.Summary())
package punchup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/punchlabs/punchup/application/service"
	"github.com/punchlabs/punchup/domain/joke"
	"github.com/punchlabs/punchup/infrastructure/enricher"
	"github.com/punchlabs/punchup/infrastructure/jsonl"
	"github.com/punchlabs/punchup/infrastructure/persistence"
	"github.com/punchlabs/punchup/internal/config"
	"github.com/punchlabs/punchup/internal/database"
	"github.com/punchlabs/punchup/internal/log"
)

// ErrClientClosed indicates the client has been closed.
var ErrClientClosed = errors.New("punchup: client is closed")

// Client is the main entry point for the punchup library. It owns the
// reader, pipeline, and sink for one configuration and can run any number of
// batches until closed.
type Client struct {
	cfg      config.AppConfig
	logger   *slog.Logger
	reader   *jsonl.Reader
	pipeline *service.Pipeline
	sink     joke.Sink

	db     database.Database
	closed atomic.Bool
}

// Outcome is the result of one Run: the enriched records and the reports
// the summary is rendered from.
type Outcome struct {
	Records     []joke.Record
	RunReport   service.RunReport
	WriteReport joke.WriteReport
	SinkName    string
}

// Summary renders the outcome as human-readable text.
func (o *Outcome) Summary() string {
	return service.Summarize(o.RunReport, o.WriteReport, o.SinkName)
}

// New creates a Client: configuration, logging, tuning, enricher selection,
// and the output sink are all wired here. A database-mode client makes first
// contact with the database immediately; an unreachable database fails
// construction.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cc := newClientConfig()
	for _, opt := range opts {
		opt(cc)
	}

	cfg, err := resolveConfig(cc)
	if err != nil {
		return nil, err
	}

	logger := cc.logger
	if logger == nil {
		logger = log.NewLogger(cfg).Slog()
	}

	settings, err := resolveSettings(cc, cfg)
	if err != nil {
		return nil, err
	}

	enrichers, err := cc.registry.BuildAll(cc.enrichments, settings)
	if err != nil {
		return nil, err
	}

	workers := cfg.WorkerCount()
	if cc.workers > 0 {
		workers = cc.workers
	}

	client := &Client{
		cfg:    cfg,
		logger: logger,
		reader: jsonl.NewReader(logger),
		pipeline: service.NewPipeline(enrichers,
			service.WithLogger(logger),
			service.WithWorkers(workers)),
	}

	if err := client.wireSink(ctx, cc); err != nil {
		return nil, err
	}

	logger.LogAttrs(ctx, slog.LevelDebug, "punchup client created", cfg.LogAttrs()...)
	return client, nil
}

// Run reads the input file, enriches every record, and writes the result to
// the sink. A context that terminates mid-run still flushes the records
// enriched so far before the context error is returned.
func (c *Client) Run(ctx context.Context, inputPath string) (*Outcome, error) {
	if c.closed.Load() {
		return nil, ErrClientClosed
	}

	records, parseFailures, err := c.reader.ReadFile(inputPath)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s", service.ErrNoValidRecords, inputPath)
	}

	c.logger.Info("starting enrichment run",
		"input", inputPath,
		"records", len(records),
		"parse_failures", parseFailures,
		"sink", c.sink.Name())

	enriched, report, runErr := c.pipeline.Run(ctx, records)
	report = report.WithParseFailures(parseFailures)

	// Flush whatever was enriched even when the run was cut short; the
	// write must not be cancelled by the same context that stopped the run.
	writeCtx := ctx
	if runErr != nil {
		writeCtx = context.WithoutCancel(ctx)
	}
	writeReport, writeErr := c.sink.Write(writeCtx, enriched)

	outcome := &Outcome{
		Records:     enriched,
		RunReport:   report,
		WriteReport: writeReport,
		SinkName:    c.sink.Name(),
	}

	c.logger.Info("enrichment run finished",
		"run_id", report.RunID(),
		"records", report.TotalRecords(),
		"fully_enriched", report.Succeeded(),
		"written", writeReport.Written())

	if runErr != nil {
		return outcome, runErr
	}
	if writeErr != nil {
		return outcome, writeErr
	}
	return outcome, nil
}

// Close releases the sink's resources. Safe to call once; later calls and
// later Runs return ErrClientClosed.
func (c *Client) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return ErrClientClosed
	}
	if c.db != (database.Database{}) {
		if err := c.db.Close(); err != nil {
			return fmt.Errorf("close database: %w", err)
		}
	}
	c.logger.Debug("punchup client closed")
	return nil
}

// Config returns the resolved application config.
func (c *Client) Config() config.AppConfig { return c.cfg }

// Logger returns the client's logger.
func (c *Client) Logger() *slog.Logger { return c.logger }

func resolveConfig(cc *clientConfig) (config.AppConfig, error) {
	if cc.appConfig != nil {
		return *cc.appConfig, nil
	}
	cfg, err := config.LoadConfig(cc.envFile)
	if err != nil {
		return config.AppConfig{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func resolveSettings(cc *clientConfig, cfg config.AppConfig) (enricher.Settings, error) {
	if cc.settings != nil {
		return *cc.settings, nil
	}
	return enricher.LoadTuning(cfg.TuningFile())
}

func (c *Client) wireSink(ctx context.Context, cc *clientConfig) error {
	if cc.sink != nil {
		c.sink = cc.sink
		return nil
	}

	switch c.cfg.OutputMode() {
	case config.OutputModeDatabase:
		db, err := database.NewDatabase(ctx, c.cfg.DBURL())
		if err != nil {
			return &joke.SinkError{Cause: fmt.Errorf("connect database: %w", err)}
		}
		if err := persistence.AutoMigrate(db, c.cfg.DBTable()); err != nil {
			_ = db.Close()
			return &joke.SinkError{Cause: fmt.Errorf("migrate database: %w", err)}
		}
		store := persistence.NewJokeStore(db, c.cfg.DBTable())
		c.db = db
		c.sink = persistence.NewDatabaseSink(store, c.cfg.DBTable(), c.cfg.SinkTimeout(), c.logger)
	default:
		c.sink = jsonl.NewFileSink(c.cfg.OutputPath(), c.logger)
	}
	return nil
}
