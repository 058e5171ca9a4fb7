package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/punchlabs/punchup"
	"github.com/punchlabs/punchup/domain/joke"
	"github.com/punchlabs/punchup/infrastructure/enricher"
	"github.com/punchlabs/punchup/internal/config"
	"github.com/punchlabs/punchup/internal/log"
)

func enrichCmd() *cobra.Command {
	var (
		envFile     string
		enrichments []string
		output      string
		outputMode  string
		tuningFile  string
		workers     int
		showSummary bool
	)

	cmd := &cobra.Command{
		Use:   "enrich INPUT_FILE",
		Short: "Enrich joke records from a JSONL file",
		Long: `Enrich joke records from a JSONL file.

Each input line is a JSON object with joke_id, setup, punchline, and an
optional source_url. Malformed lines are skipped and counted; failures of a
single enricher on a single record never abort the batch.

Configuration is loaded in the following order (later sources override earlier):
  1. Default values
  2. .env file (if --env-file specified or .env exists in current directory)
  3. Environment variables
  4. Command line flags

Environment variables:
  DB_URL        Database URL for database mode (default: sqlite://punchup.db)
  DB_TABLE      Database table (default: enriched_jokes)
  OUTPUT        Output file for file mode (default: enriched_jokes.jsonl)
  OUTPUT_MODE   Output mode: file, database (default: file)
  SINK_TIMEOUT  Per-record database write timeout in seconds (default: 5)
  WORKERS       Concurrent enrichment workers (default: 1)
  TUNING_FILE   YAML file overriding enricher thresholds
  LOG_LEVEL     Log level: DEBUG, INFO, WARN, ERROR (default: INFO)
  LOG_FORMAT    Log format: pretty, json (default: pretty)`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := enrichFlags{
				output:     output,
				outputMode: outputMode,
				tuningFile: tuningFile,
				workers:    workers,
			}
			return runEnrich(cmd.Context(), args[0], envFile, enrichments, flags, showSummary)
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", "", "Path to .env file (default: .env in current directory)")
	cmd.Flags().StringSliceVarP(&enrichments, "enrichment", "e", []string{"sentiment"},
		"Enrichments to apply: sentiment, keywords, readability, length")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file for enriched jokes (default: enriched_jokes.jsonl)")
	cmd.Flags().StringVar(&outputMode, "output-mode", "", "Output mode: file, database (default: file)")
	cmd.Flags().StringVar(&tuningFile, "tuning", "", "YAML file overriding enricher thresholds")
	cmd.Flags().IntVar(&workers, "workers", 0, "Concurrent enrichment workers (default: 1)")
	cmd.Flags().BoolVarP(&showSummary, "summary", "s", false, "Print an enrichment summary and a sample record")

	return cmd
}

type enrichFlags struct {
	output     string
	outputMode string
	tuningFile string
	workers    int
}

func runEnrich(ctx context.Context, inputPath, envFile string, enrichments []string, flags enrichFlags, showSummary bool) error {
	if mode := flags.outputMode; mode != "" &&
		mode != string(config.OutputModeFile) && mode != string(config.OutputModeDatabase) {
		return fmt.Errorf("unknown output mode %q (known: file, database)", mode)
	}

	cfg, err := loadConfig(envFile)
	if err != nil {
		return err
	}
	cfg = applyEnrichOverrides(cfg, flags)

	logger := log.Configure(cfg)

	kinds := make([]enricher.Kind, len(enrichments))
	for i, name := range enrichments {
		kinds[i] = enricher.Kind(name)
	}

	client, err := punchup.New(ctx,
		punchup.WithConfig(cfg),
		punchup.WithLogger(logger.Slog()),
		punchup.WithEnrichments(kinds...),
	)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	outcome, err := client.Run(ctx, inputPath)
	if err != nil {
		return err
	}

	if showSummary {
		fmt.Println(outcome.Summary())
		printSample(outcome.Records)
	}
	return nil
}

// applyEnrichOverrides applies command line overrides on top of the loaded
// config. Flags take precedence over env vars.
func applyEnrichOverrides(cfg config.AppConfig, flags enrichFlags) config.AppConfig {
	var opts []config.AppConfigOption
	if flags.output != "" {
		opts = append(opts, config.WithOutputPath(flags.output))
	}
	if flags.outputMode != "" {
		opts = append(opts, config.WithOutputMode(config.OutputMode(flags.outputMode)))
	}
	if flags.tuningFile != "" {
		opts = append(opts, config.WithTuningFile(flags.tuningFile))
	}
	if flags.workers > 0 {
		opts = append(opts, config.WithWorkerCount(flags.workers))
	}
	return cfg.Apply(opts...)
}

func printSample(records []joke.Record) {
	if len(records) == 0 {
		return
	}
	data, err := joke.MarshalRecordIndent(records[0])
	if err != nil {
		return
	}
	fmt.Println("=== Sample Enriched Joke ===")
	fmt.Println(string(data))
}
