// Package report writes the finished research run to disk and renders a
// console summary of it.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/marketintel/researcher/pkg/research"
)

// Save writes the full result as indented JSON. When filename is empty a
// timestamped name is generated. Returns the filename written.
func Save(result *research.Result, filename string) (string, error) {
	if filename == "" {
		filename = fmt.Sprintf("market_research_%s.json", time.Now().Format("20060102_150405"))
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal result: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}

	return filename, nil
}

// PrintSummary renders a human-readable overview of the run: a preview of
// the final analysis, the per-iteration trail, and the source count.
func PrintSummary(w io.Writer, result *research.Result) {
	rule := strings.Repeat("=", 50)
	thin := strings.Repeat("-", 50)

	fmt.Fprintf(w, "\n%s\nMARKET RESEARCH REPORT SUMMARY\n%s\n", rule, rule)

	fmt.Fprintf(w, "\nKey Findings\n%s\n%s\n", thin, preview(result.FinalAnalysis, 2000))

	fmt.Fprintf(w, "\nResearch Process\n%s\n", thin)
	for _, it := range result.Iterations {
		fmt.Fprintf(w, "\nIteration %d:\n", it.Iteration)
		fmt.Fprintf(w, "Query: %s\n", preview(it.Query, 150))
		fmt.Fprintf(w, "Sources Found: %d\n", it.SourcesFound)

		if len(it.KnowledgeGaps) > 0 {
			fmt.Fprintln(w, "Identified Gaps:")
			for _, gap := range it.KnowledgeGaps {
				fmt.Fprintf(w, "  - %s\n", preview(gap, 100))
			}
		}
	}

	fmt.Fprintf(w, "\nTotal Sources Analyzed: %d\n%s\n", len(result.AllSources), rule)
}

func preview(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
