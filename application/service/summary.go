package service

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/punchlabs/punchup/domain/joke"
)

// Summarize renders a run's outcome as human-readable text. Pure
// aggregation: it accounts for every skipped record and failed enrichment
// without touching any state.
func Summarize(report RunReport, writeReport joke.WriteReport, sinkName string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "=== Enrichment Summary ===\n")
	fmt.Fprintf(&b, "Run ID:          %s\n", report.RunID())
	fmt.Fprintf(&b, "Total records:   %d\n", report.TotalRecords())
	fmt.Fprintf(&b, "Parse failures:  %d\n", report.ParseFailures())
	fmt.Fprintf(&b, "Fully enriched:  %d\n", report.Succeeded())

	failures := report.Failures()
	elapsed := report.Elapsed()
	for _, name := range enricherNames(failures, elapsed) {
		fmt.Fprintf(&b, "  %s: %d failed, %s\n", name, failures[name], elapsed[name])
	}

	fmt.Fprintf(&b, "Written:         %d -> %s\n", writeReport.Written(), sinkName)
	if failed := writeReport.FailedIDs(); len(failed) > 0 {
		fmt.Fprintf(&b, "Write failures:  %d (%s)\n", len(failed), strings.Join(failed, ", "))
	} else {
		fmt.Fprintf(&b, "Write failures:  0\n")
	}

	return b.String()
}

// enricherNames returns the union of enricher names seen in either map,
// sorted for stable output.
func enricherNames(failures map[string]int, elapsed map[string]time.Duration) []string {
	set := map[string]struct{}{}
	for name := range failures {
		set[name] = struct{}{}
	}
	for name := range elapsed {
		set[name] = struct{}{}
	}

	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
